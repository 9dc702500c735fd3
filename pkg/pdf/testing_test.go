package pdf

// fixedMeasurer gives every rune the same advance, proportional to the font
// size, so layout expectations can be computed by hand.
type fixedMeasurer struct{}

func (fixedMeasurer) StringWidth(font Font, s string) float64 {
	return float64(len([]rune(s))) * font.Size * 0.2
}

func newTestBuilder() *Builder {
	return NewBuilder(DefaultLayout(), fixedMeasurer{}, Info{Title: "test"})
}
