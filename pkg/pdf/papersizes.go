package pdf

import "strings"

// PaperSize in millimetres, portrait orientation.
type PaperSize struct {
	Name   string
	Width  float64
	Height float64
}

var (
	A4Size     = PaperSize{Name: "A4", Width: 210, Height: 297}
	LetterSize = PaperSize{Name: "Letter", Width: 215.9, Height: 279.4} // 8.5" x 11"
	LegalSize  = PaperSize{Name: "Legal", Width: 215.9, Height: 355.6}  // 8.5" x 14"
)

// PaperSizeByName resolves A4, Letter or Legal (case-insensitive).
func PaperSizeByName(name string) (PaperSize, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "a4":
		return A4Size, true
	case "letter":
		return LetterSize, true
	case "legal":
		return LegalSize, true
	}
	return PaperSize{}, false
}
