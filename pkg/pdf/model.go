package pdf

import (
	"math"
	"time"
)

// OpKind identifies a drawing primitive.
type OpKind int

const (
	OpText OpKind = iota
	OpLine
	OpRect
)

// Op is one positioned drawing primitive. For text, Y is the baseline and
// H the height of the line box the text was laid out in. For lines, (X, Y)
// and (X2, Y2) are the end points. For rectangles, (X, Y) is the top-left
// corner and W, H the size.
type Op struct {
	Kind      OpKind
	X, Y      float64
	X2, Y2    float64
	W, H      float64
	Text      string
	Font      Font
	LineWidth float64
	Footer    bool
}

// Bottom returns the lowest y the op paints on.
func (o Op) Bottom() float64 {
	switch o.Kind {
	case OpText:
		return o.Y + o.H/4
	case OpLine:
		return math.Max(o.Y, o.Y2)
	default:
		return o.Y + o.H
	}
}

// Page is an ordered list of ops for one physical page.
type Page struct {
	Number int
	Ops    []Op
}

// Texts returns the strings of every text op on the page, in draw order.
func (p *Page) Texts() []string {
	var out []string
	for _, op := range p.Ops {
		if op.Kind == OpText {
			out = append(out, op.Text)
		}
	}
	return out
}

// Info is the document metadata written into the PDF info dictionary.
type Info struct {
	Title     string
	Subject   string
	Author    string
	Creator   string
	CreatedAt time.Time
}

// Document is the fully laid out, backend-independent form. It is built by
// a Builder and serialized by a Renderer.
type Document struct {
	Info
	Size  PaperSize
	Pages []*Page
}

// PageCount returns the number of pages.
func (d *Document) PageCount() int {
	return len(d.Pages)
}

// Texts returns every text op of the document in page order.
func (d *Document) Texts() []string {
	var out []string
	for _, p := range d.Pages {
		out = append(out, p.Texts()...)
	}
	return out
}

// Ops returns every op of the given kind in page order.
func (d *Document) Ops(kind OpKind) []Op {
	var out []Op
	for _, p := range d.Pages {
		for _, op := range p.Ops {
			if op.Kind == kind {
				out = append(out, op)
			}
		}
	}
	return out
}
