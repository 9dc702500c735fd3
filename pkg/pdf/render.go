package pdf

import (
	"bytes"
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"
)

// Renderer serializes a laid out Document.
type Renderer interface {
	Render(w io.Writer, doc *Document) error
}

// FPDFRenderer writes documents with gofpdf using the core Helvetica fonts.
// It holds no state between calls and may be shared.
type FPDFRenderer struct {
	Compress bool
}

// NewRenderer returns the default gofpdf-backed renderer.
func NewRenderer() *FPDFRenderer {
	return &FPDFRenderer{Compress: true}
}

// Render draws every op of doc and writes the PDF to w.
func (r *FPDFRenderer) Render(w io.Writer, doc *Document) error {
	if doc == nil {
		return fmt.Errorf("render: nil document")
	}

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           gofpdf.SizeType{Wd: doc.Size.Width, Ht: doc.Size.Height},
	})
	pdf.SetCompression(r.Compress)
	pdf.SetCatalogSort(true)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetMargins(0, 0, 0)
	if !doc.CreatedAt.IsZero() {
		pdf.SetCreationDate(doc.CreatedAt)
	}
	pdf.SetTitle(doc.Title, true)
	pdf.SetSubject(doc.Subject, true)
	pdf.SetAuthor(doc.Author, true)
	pdf.SetCreator(doc.Creator, true)

	pages := doc.Pages
	if len(pages) == 0 {
		pages = []*Page{{Number: 1}}
	}
	for _, page := range pages {
		pdf.AddPage()
		pdf.SetTextColor(0, 0, 0)
		pdf.SetDrawColor(0, 0, 0)
		for _, op := range page.Ops {
			drawOp(pdf, op)
		}
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to write PDF: %w", err)
	}
	return nil
}

func drawOp(pdf *gofpdf.Fpdf, op Op) {
	switch op.Kind {
	case OpText:
		pdf.SetFont(op.Font.Family, op.Font.Style, op.Font.Size)
		pdf.Text(op.X, op.Y, encodeText(op.Text))
	case OpLine:
		pdf.SetLineWidth(lineWidth(op))
		pdf.Line(op.X, op.Y, op.X2, op.Y2)
	case OpRect:
		pdf.SetLineWidth(lineWidth(op))
		pdf.Rect(op.X, op.Y, op.W, op.H, "D")
	}
}

func lineWidth(op Op) float64 {
	if op.LineWidth > 0 {
		return op.LineWidth
	}
	return 0.2
}

// RenderBytes renders doc into memory.
func RenderBytes(r Renderer, doc *Document) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.Render(&buf, doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
