package pdf

import (
	"strings"

	"github.com/jung-kurt/gofpdf"
	"golang.org/x/text/encoding/charmap"
)

// Measurer reports the rendered width of a string in millimetres.
type Measurer interface {
	StringWidth(font Font, s string) float64
}

// FontMetrics measures text with gofpdf's built-in core font tables, the
// same tables the renderer uses. A FontMetrics is not safe for concurrent
// use; create one per document.
type FontMetrics struct {
	pdf *gofpdf.Fpdf
}

// NewFontMetrics returns a Measurer backed by gofpdf core fonts.
func NewFontMetrics() Measurer {
	return &FontMetrics{pdf: gofpdf.New("P", "mm", "A4", "")}
}

func (m *FontMetrics) StringWidth(font Font, s string) float64 {
	if s == "" {
		return 0
	}
	m.pdf.SetFont(font.Family, font.Style, font.Size)
	return m.pdf.GetStringWidth(encodeText(s))
}

// encodeText converts UTF-8 to the Windows-1252 bytes expected by the core
// PDF fonts. Runes outside the code page become '?'.
func encodeText(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r < 0x80 {
			b.WriteByte(byte(r))
			continue
		}
		if c, ok := charmap.Windows1252.EncodeRune(r); ok {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('?')
	}
	return b.String()
}
