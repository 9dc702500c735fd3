package pdf

// PageCursor is the single source of truth for where the next block is
// drawn. All values are in millimetres. Y grows downward and only ever
// increases within a page.
type PageCursor struct {
	X            float64
	Y            float64
	PageWidth    float64
	PageHeight   float64
	MarginLeft   float64
	MarginRight  float64
	MarginTop    float64
	MarginBottom float64
	Page         int
}

// NewPageCursor places a cursor at the top-left content corner of page 1.
func NewPageCursor(size PaperSize, m Margins) *PageCursor {
	return &PageCursor{
		X:            m.Left,
		Y:            m.Top,
		PageWidth:    size.Width,
		PageHeight:   size.Height,
		MarginLeft:   m.Left,
		MarginRight:  m.Right,
		MarginTop:    m.Top,
		MarginBottom: m.Bottom,
		Page:         1,
	}
}

// Advance moves the write position down by amount.
func (c *PageCursor) Advance(amount float64) {
	c.Y += amount
}

// Limit is the lowest y any content may reach on the current page.
func (c *PageCursor) Limit() float64 {
	return c.PageHeight - c.MarginBottom
}

// Remaining returns the vertical space left before the bottom margin.
func (c *PageCursor) Remaining() float64 {
	return c.Limit() - c.Y
}

// EnsureSpace starts a new page when fewer than required millimetres are
// left on the current one. It reports whether a page break was committed.
func (c *PageCursor) EnsureSpace(required float64) bool {
	if c.Y+required <= c.Limit() {
		return false
	}
	c.Page++
	c.Y = c.MarginTop
	c.X = c.MarginLeft
	return true
}

// ContentWidth is the printable width between the side margins.
func (c *PageCursor) ContentWidth() float64 {
	return c.PageWidth - c.MarginLeft - c.MarginRight
}

// CenterX is the anchor for centered headers and titles.
func (c *PageCursor) CenterX() float64 {
	return c.PageWidth / 2
}

// Columns returns the x positions of the left and right label/value
// columns.
func (c *PageCursor) Columns() (left, right float64) {
	return c.MarginLeft, c.MarginLeft + c.ContentWidth()/2
}
