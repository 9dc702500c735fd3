package pdf

import "strings"

// Placeholder is printed for labeled fields whose value is absent or blank.
const Placeholder = "N/A"

// OrPlaceholder returns the trimmed value, or Placeholder when it is blank.
func OrPlaceholder(value string) string {
	if v := strings.TrimSpace(value); v != "" {
		return v
	}
	return Placeholder
}

// Margins are page margins in millimetres.
type Margins struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

// Layout holds the page geometry a Builder lays documents out on.
type Layout struct {
	Size       PaperSize
	Margins    Margins
	LineHeight float64
}

// DefaultLayout returns an A4 portrait page with 15mm side margins and a
// taller bottom margin reserved for the footer.
func DefaultLayout() Layout {
	return Layout{
		Size: A4Size,
		Margins: Margins{
			Top:    15,
			Right:  15,
			Bottom: 20,
			Left:   15,
		},
		LineHeight: 5,
	}
}
