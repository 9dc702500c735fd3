package forms

import (
	"fmt"
	"strings"
	"time"

	"github.com/Cyannimazing/BCSystem-sub000/pkg/nullable"
	"github.com/Cyannimazing/BCSystem-sub000/pkg/pdf"
)

const (
	DefaultLaborMinRows = 15
	creator             = "Birth Care System"
	isoDate             = "2006-01-02"
)

// Generator lays out clinical forms. Each call builds a fresh document and
// measurer, so a Generator may be shared between goroutines.
type Generator struct {
	Layout       pdf.Layout
	NewMeasurer  func() pdf.Measurer
	Clock        func() time.Time
	LaborMinRows int
	// Facility fills in the facility name and address when a request
	// leaves them out.
	Facility Facility
}

// NewGenerator returns a Generator using gofpdf font metrics and the wall
// clock.
func NewGenerator(layout pdf.Layout, laborMinRows int) *Generator {
	return &Generator{
		Layout:       layout,
		NewMeasurer:  pdf.NewFontMetrics,
		Clock:        time.Now,
		LaborMinRows: laborMinRows,
	}
}

// DefaultGenerator lays forms out on A4 with the default margins.
func DefaultGenerator() *Generator {
	return NewGenerator(pdf.DefaultLayout(), DefaultLaborMinRows)
}

func (g *Generator) now() time.Time {
	if g.Clock == nil {
		return time.Now()
	}
	return g.Clock()
}

func (g *Generator) measurer() pdf.Measurer {
	if g.NewMeasurer == nil {
		return pdf.NewFontMetrics()
	}
	return g.NewMeasurer()
}

// page wraps a Builder with the facility and generation time every form
// prints in its header and footer.
type page struct {
	*pdf.Builder
	facility    Facility
	generatedAt time.Time
}

// ResolveFacility fills the name and address f leaves out from the
// generator's configured facility.
func (g *Generator) ResolveFacility(f Facility) Facility {
	if f.Name.IsNil() {
		f.Name = g.Facility.Name
	}
	if f.Address.IsNil() {
		f.Address = g.Facility.Address
	}
	return f
}

func (g *Generator) newPage(facility Facility, title, subject string, now time.Time) *page {
	facility = g.ResolveFacility(facility)
	b := pdf.NewBuilder(g.Layout, g.measurer(), pdf.Info{
		Title:     title,
		Subject:   subject,
		Author:    facility.DisplayName(),
		Creator:   creator,
		CreatedAt: now,
	})
	return &page{Builder: b, facility: facility, generatedAt: now}
}

// header prints the facility block and the centered document title.
func (p *page) header(title string) {
	p.Title(p.facility.DisplayName(), pdf.LevelDocument, pdf.AlignCenter)
	p.Line(p.facility.DisplayAddress(), pdf.BodyFont, p.LineHeight(), pdf.AlignCenter)
	p.Space(2)
	p.Rule()
	p.Space(2)
	p.Title(strings.ToUpper(title), pdf.LevelSection, pdf.AlignCenter)
	p.Space(2)
}

func (p *page) finish() *pdf.Document {
	name := p.facility.DisplayName()
	stamp := p.generatedAt.Format("2006-01-02 15:04")
	return p.Finish(func(n, total int) string {
		return fmt.Sprintf("%s | Generated: %s | Page %d of %d", name, stamp, n, total)
	})
}

type field struct {
	label string
	value string
}

func nf(label string, value nullable.String) field {
	return field{label: label, value: value.ForceValue()}
}

// fields prints label/value pairs two per line, with a lone trailing field
// on its own line.
func (p *page) fields(list ...field) {
	for i := 0; i < len(list); i += 2 {
		if i+1 == len(list) {
			p.Field(list[i].label, list[i].value)
			break
		}
		p.FieldPair(list[i].label, list[i].value, list[i+1].label, list[i+1].value)
	}
}

func (p *page) patientBlock(patient *Patient) {
	if patient == nil {
		patient = &Patient{}
	}
	p.Section("Patient Information")
	p.fields(
		field{"Name", patient.FullName()},
		nf("Age", patient.Age),
		field{"Date of Birth", displayDate(patient.DateOfBirth)},
		nf("Civil Status", patient.CivilStatus),
		nf("Contact No.", patient.ContactNumber),
		nf("PhilHealth No.", patient.PhilHealthNo),
		nf("Religion", patient.Religion),
		nf("Occupation", patient.Occupation),
	)
	p.Field("Address", patient.Address.ForceValue())
}

// displayDate formats a date for a labeled field, keeping blanks blank so
// the field falls back to the placeholder.
func displayDate(v nullable.String) string {
	return pdf.FormatDate(v.ForceValue())
}

// formDate normalizes a form date to YYYY-MM-DD, falling back to the
// generation date when the value is absent or unparseable.
func formDate(v nullable.String, now time.Time) string {
	if !v.IsNil() {
		if t, ok := pdf.ParseTolerant(v.String); ok {
			return t.Format(isoDate)
		}
	}
	return now.Format(isoDate)
}

func subjectName(name string) string {
	if strings.TrimSpace(name) == "" {
		return DefaultSubjectName
	}
	return name
}

func generatedAt(now time.Time) string {
	return now.Format(time.RFC3339)
}
