package pdf

import "strings"

const (
	baselineRatio = 0.75 // baseline position inside a line box
	cellPadding   = 1.5
	ellipsis      = "..."
)

// Builder lays content out top to bottom on a PageCursor and records the
// result as a Document. Every block calls EnsureSpace before it draws, so no
// op ever crosses the bottom margin. A Builder is used for one document and
// then discarded.
type Builder struct {
	layout  Layout
	measure Measurer
	cursor  *PageCursor
	doc     *Document
}

// NewBuilder starts an empty document on page 1.
func NewBuilder(layout Layout, m Measurer, info Info) *Builder {
	return &Builder{
		layout:  layout,
		measure: m,
		cursor:  NewPageCursor(layout.Size, layout.Margins),
		doc:     &Document{Info: info, Size: layout.Size},
	}
}

// Cursor exposes the write position.
func (b *Builder) Cursor() *PageCursor {
	return b.cursor
}

// LineHeight is the body line height of the layout.
func (b *Builder) LineHeight() float64 {
	if b.layout.LineHeight <= 0 {
		return 5
	}
	return b.layout.LineHeight
}

func (b *Builder) width(font Font, s string) float64 {
	return b.measure.StringWidth(font, s)
}

func (b *Builder) add(op Op) {
	for len(b.doc.Pages) < b.cursor.Page {
		b.doc.Pages = append(b.doc.Pages, &Page{Number: len(b.doc.Pages) + 1})
	}
	page := b.doc.Pages[b.cursor.Page-1]
	page.Ops = append(page.Ops, op)
}

// textAt records a line of text whose line box starts at the cursor.
func (b *Builder) textAt(x float64, s string, font Font, lh float64) {
	b.add(Op{
		Kind: OpText,
		X:    x,
		Y:    b.cursor.Y + lh*baselineRatio,
		H:    lh,
		Text: s,
		Font: font,
	})
}

func (b *Builder) alignedX(s string, font Font, align Align) float64 {
	c := b.cursor
	switch align {
	case AlignCenter:
		w := b.width(font, s)
		return max(c.MarginLeft, min(c.CenterX()-w/2, c.PageWidth-c.MarginRight-w))
	case AlignRight:
		return c.PageWidth - c.MarginRight - b.width(font, s)
	default:
		return c.MarginLeft
	}
}

// Title draws a single heading line. Blank text draws nothing.
func (b *Builder) Title(text string, level Level, align Align) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	font, lh := heading(level)
	b.Line(text, font, lh, align)
}

// Line draws text in font, wrapped to the content width. Each wrapped line
// is aligned on its own, and a single word wider than the content width is
// cut short with an ellipsis.
func (b *Builder) Line(text string, font Font, lh float64, align Align) {
	if text == "" {
		return
	}
	width := b.cursor.ContentWidth()
	lines := WrapText(text, width, func(s string) float64 {
		return b.width(font, s)
	})
	for _, line := range lines {
		line = b.fit(line, font, width)
		b.cursor.EnsureSpace(lh)
		if line != "" {
			b.textAt(b.alignedX(line, font, align), line, font, lh)
		}
		b.cursor.Advance(lh)
	}
}

// Section draws a left-aligned section heading, kept on the same page as
// at least one following body line.
func (b *Builder) Section(text string) {
	_, lh := heading(LevelSection)
	b.Space(2)
	b.cursor.EnsureSpace(lh + b.LineHeight())
	b.Title(text, LevelSection, AlignLeft)
}

// Field draws "Label: value" across the content width. A blank value is
// printed as Placeholder. Values too long for one line wrap underneath
// themselves.
func (b *Builder) Field(label, value string) {
	c := b.cursor
	b.fieldAt(c.MarginLeft, c.ContentWidth(), label, value)
}

func (b *Builder) fieldAt(x, width float64, label, value string) {
	lh := b.LineHeight()
	prefix := label + ": "
	lw := b.width(LabelFont, prefix)

	lines := WrapText(OrPlaceholder(value), width-lw, func(s string) float64 {
		return b.width(BodyFont, s)
	})
	for i, line := range lines {
		b.cursor.EnsureSpace(lh)
		if i == 0 {
			b.textAt(x, prefix, LabelFont, lh)
		}
		if line != "" {
			b.textAt(x+lw, line, BodyFont, lh)
		}
		b.cursor.Advance(lh)
	}
}

func (b *Builder) fieldWidth(label, value string) float64 {
	return b.width(LabelFont, label+": ") + b.width(BodyFont, OrPlaceholder(value))
}

// FieldPair draws two label/value pairs side by side in the left and right
// columns. When either pair is too wide for its column or holds a line
// break, the pairs are drawn as two full-width fields instead.
func (b *Builder) FieldPair(l1, v1, l2, v2 string) {
	c := b.cursor
	left, right := c.Columns()
	colWidth := right - left - 2

	if strings.ContainsAny(v1+v2, "\r\n") ||
		b.fieldWidth(l1, v1) > colWidth || b.fieldWidth(l2, v2) > colWidth {
		b.Field(l1, v1)
		b.Field(l2, v2)
		return
	}

	lh := b.LineHeight()
	c.EnsureSpace(lh)
	for _, f := range []struct {
		x            float64
		label, value string
	}{{left, l1, v1}, {right, l2, v2}} {
		prefix := f.label + ": "
		b.textAt(f.x, prefix, LabelFont, lh)
		b.textAt(f.x+b.width(LabelFont, prefix), OrPlaceholder(f.value), BodyFont, lh)
	}
	c.Advance(lh)
}

// Paragraph word-wraps text to maxWidth in the body font and returns the
// number of lines produced. Blank text draws nothing and leaves the cursor
// where it was.
func (b *Builder) Paragraph(text string, maxWidth, lineHeight float64) int {
	lines := WrapText(text, maxWidth, func(s string) float64 {
		return b.width(BodyFont, s)
	})
	for _, line := range lines {
		b.cursor.EnsureSpace(lineHeight)
		if line != "" {
			b.textAt(b.cursor.MarginLeft, line, BodyFont, lineHeight)
		}
		b.cursor.Advance(lineHeight)
	}
	return len(lines)
}

// LabeledParagraph draws a bold label line followed by wrapped text. Blank
// text is printed as Placeholder.
func (b *Builder) LabeledParagraph(label, text string) {
	lh := b.LineHeight()
	b.cursor.EnsureSpace(lh * 2)
	b.Line(label+":", LabelFont, lh, AlignLeft)
	b.Paragraph(OrPlaceholder(text), b.cursor.ContentWidth(), lh)
}

// Space moves the cursor down by amount.
func (b *Builder) Space(amount float64) {
	b.cursor.Advance(amount)
}

// Rule draws a thin horizontal line across the content width.
func (b *Builder) Rule() {
	c := b.cursor
	c.EnsureSpace(2)
	y := c.Y + 1
	b.add(Op{
		Kind:      OpLine,
		X:         c.MarginLeft,
		Y:         y,
		X2:        c.MarginLeft + c.ContentWidth(),
		Y2:        y,
		LineWidth: 0.2,
	})
	c.Advance(2)
}

// fit shortens s with an ellipsis until it is no wider than width.
func (b *Builder) fit(s string, font Font, width float64) string {
	if b.width(font, s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 {
		runes = runes[:len(runes)-1]
		candidate := strings.TrimRight(string(runes), " ") + ellipsis
		if b.width(font, candidate) <= width {
			return candidate
		}
	}
	return ""
}

// cell draws a bordered cell at the cursor with s centered in it.
func (b *Builder) cell(x, w, h float64, s string, font Font) {
	y := b.cursor.Y
	b.add(Op{Kind: OpRect, X: x, Y: y, W: w, H: h, LineWidth: 0.2})

	s = b.fit(strings.TrimSpace(s), font, w-2*cellPadding)
	if s == "" {
		return
	}
	fh := font.Height()
	b.add(Op{
		Kind: OpText,
		X:    x + (w-b.width(font, s))/2,
		Y:    y + h/2 + fh*0.35,
		H:    fh,
		Text: s,
		Font: font,
	})
}

func (b *Builder) tableHeader(spec TableSpec, x0, hh float64) {
	for _, col := range spec.Columns {
		b.cell(x0+col.Offset, col.Width, hh, col.Header, TableHeaderFont)
	}
	b.cursor.Advance(hh)
}

// Table draws a bordered header row followed by max(MinRows, len(Rows))
// bordered data rows and returns the number of data rows drawn. Missing
// cells are blank. When a row does not fit, the table continues on a new
// page under a repeated header.
func (b *Builder) Table(spec TableSpec) int {
	if len(spec.Columns) == 0 {
		return 0
	}
	c := b.cursor
	hh, rh := spec.heights()
	x0 := c.MarginLeft

	c.EnsureSpace(hh + rh)
	b.tableHeader(spec, x0, hh)

	n := spec.rowCount()
	for i := 0; i < n; i++ {
		if c.EnsureSpace(rh) {
			b.tableHeader(spec, x0, hh)
		}
		var row []string
		if i < len(spec.Rows) {
			row = spec.Rows[i]
		}
		for j, col := range spec.Columns {
			var s string
			if j < len(row) {
				s = row[j]
			}
			b.cell(x0+col.Offset, col.Width, rh, s, TableCellFont)
		}
		c.Advance(rh)
	}
	return n
}

// Signatures draws one signature line per caption, spread evenly across
// the content width, with the caption centered under its line.
func (b *Builder) Signatures(captions ...string) {
	if len(captions) == 0 {
		return
	}
	c := b.cursor
	const gap, captionLine = 12.0, 5.0
	c.EnsureSpace(gap + captionLine + 1)
	c.Advance(gap)

	w := c.ContentWidth() / float64(len(captions))
	for i, caption := range captions {
		x := c.MarginLeft + float64(i)*w
		b.add(Op{Kind: OpLine, X: x + 5, Y: c.Y, X2: x + w - 5, Y2: c.Y, LineWidth: 0.3})
		cw := b.width(BodyFont, caption)
		b.add(Op{
			Kind: OpText,
			X:    x + (w-cw)/2,
			Y:    c.Y + 1 + captionLine*baselineRatio,
			H:    captionLine,
			Text: caption,
			Font: BodyFont,
		})
	}
	c.Advance(captionLine + 1)
}

// Finish stamps a footer on every page and returns the document. footer
// receives the 1-based page number and the total page count; a nil footer
// or an empty result leaves the page without one. The footer sits inside
// the bottom margin, below the content area, and is cut short to the
// content width.
func (b *Builder) Finish(footer func(page, pages int) string) *Document {
	if len(b.doc.Pages) == 0 {
		b.doc.Pages = append(b.doc.Pages, &Page{Number: 1})
	}
	if footer == nil {
		return b.doc
	}
	c := b.cursor
	total := len(b.doc.Pages)
	y := c.PageHeight - c.MarginBottom/2
	for _, page := range b.doc.Pages {
		text := b.fit(footer(page.Number, total), FooterFont, c.ContentWidth())
		if text == "" {
			continue
		}
		page.Ops = append(page.Ops, Op{
			Kind:   OpText,
			X:      b.alignedX(text, FooterFont, AlignCenter),
			Y:      y,
			H:      FooterFont.Height(),
			Text:   text,
			Font:   FooterFont,
			Footer: true,
		})
	}
	return b.doc
}
