package pdf

// Column describes one table column. Offset is the distance from the
// table's left edge to the column's left border.
type Column struct {
	Header string
	Width  float64
	Offset float64
}

// NewColumns pairs headers with widths and computes offsets cumulatively.
// Extra headers or widths beyond the shorter list are ignored.
func NewColumns(headers []string, widths []float64) []Column {
	n := min(len(headers), len(widths))
	cols := make([]Column, 0, n)
	offset := 0.0
	for i := 0; i < n; i++ {
		cols = append(cols, Column{Header: headers[i], Width: widths[i], Offset: offset})
		offset += widths[i]
	}
	return cols
}

// ScaleColumns builds columns whose widths are proportional to weights and
// together span total.
func ScaleColumns(headers []string, weights []float64, total float64) []Column {
	sum := 0.0
	for _, w := range weights {
		sum += w
	}
	if sum <= 0 {
		return NewColumns(headers, weights)
	}
	widths := make([]float64, len(weights))
	for i, w := range weights {
		widths[i] = total * w / sum
	}
	return NewColumns(headers, widths)
}

// TableSpec is a ruled grid. Rows beyond len(Rows) up to MinRows are drawn
// empty. Zero heights fall back to 7mm rows and an 8mm header.
type TableSpec struct {
	Columns      []Column
	Rows         [][]string
	MinRows      int
	RowHeight    float64
	HeaderHeight float64
}

// TotalWidth is the sum of all column widths.
func (t TableSpec) TotalWidth() float64 {
	total := 0.0
	for _, c := range t.Columns {
		total += c.Width
	}
	return total
}

func (t TableSpec) rowCount() int {
	return max(t.MinRows, len(t.Rows))
}

func (t TableSpec) heights() (header, row float64) {
	header, row = t.HeaderHeight, t.RowHeight
	if header <= 0 {
		header = 8
	}
	if row <= 0 {
		row = 7
	}
	return header, row
}
