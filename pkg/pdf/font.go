package pdf

// ptToMM converts a font size in points to millimetres.
const ptToMM = 25.4 / 72

// Font specifies a core font face. Size is in points.
type Font struct {
	Family string
	Style  string // "", "B", "I", "BI"
	Size   float64
}

// Height returns the font size in millimetres.
func (f Font) Height() float64 {
	return f.Size * ptToMM
}

// Level selects one of the three heading tiers.
type Level int

const (
	LevelDocument Level = iota
	LevelSection
	LevelLabel
)

// Align is the horizontal anchoring of a single line of text.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

const fontFamily = "Helvetica"

var (
	DocumentTitleFont = Font{Family: fontFamily, Style: "B", Size: 14}
	SectionFont       = Font{Family: fontFamily, Style: "B", Size: 11}
	LabelFont         = Font{Family: fontFamily, Style: "B", Size: 9}
	BodyFont          = Font{Family: fontFamily, Style: "", Size: 9}
	TableHeaderFont   = Font{Family: fontFamily, Style: "B", Size: 8}
	TableCellFont     = Font{Family: fontFamily, Style: "", Size: 8}
	FooterFont        = Font{Family: fontFamily, Style: "I", Size: 7}
)

// heading returns the font and line height of a heading tier.
func heading(level Level) (Font, float64) {
	switch level {
	case LevelDocument:
		return DocumentTitleFont, 8
	case LevelSection:
		return SectionFont, 7
	default:
		return LabelFont, 5.5
	}
}
