package forms

import (
	"strconv"
	"strings"

	"github.com/Cyannimazing/BCSystem-sub000/pkg/pdf"
)

var apgarCriteria = []string{
	"Appearance (skin color)",
	"Pulse (heart rate)",
	"Grimace (reflex irritability)",
	"Activity (muscle tone)",
	"Respiration (breathing effort)",
}

// ApgarTotal sums the numeric criterion scores of one interval. ok is false
// when no criterion holds a number, in which case the total is left blank.
func ApgarTotal(s ApgarScore) (total int, ok bool) {
	for _, v := range s.values() {
		n, err := strconv.Atoi(strings.TrimSpace(v.ForceValue()))
		if err != nil {
			continue
		}
		total += n
		ok = true
	}
	return total, ok
}

func apgarTotalText(s ApgarScore) string {
	if total, ok := ApgarTotal(s); ok {
		return strconv.Itoa(total)
	}
	return ""
}

// ApgarInterpretation classifies a total score.
func ApgarInterpretation(total int) string {
	switch {
	case total >= 7:
		return "Normal"
	case total >= 4:
		return "Moderately abnormal"
	default:
		return "Low"
	}
}

// ApgarTable returns the criterion grid with one score column per interval
// and a total row.
func ApgarTable(in ApgarInput, width float64) pdf.TableSpec {
	intervals := []ApgarScore{in.OneMinute, in.FiveMinute, in.TenMinute}
	rows := make([][]string, 0, len(apgarCriteria)+1)
	for i, criterion := range apgarCriteria {
		row := []string{criterion}
		for _, s := range intervals {
			row = append(row, strings.TrimSpace(s.values()[i].ForceValue()))
		}
		rows = append(rows, row)
	}
	total := []string{"TOTAL"}
	for _, s := range intervals {
		total = append(total, apgarTotalText(s))
	}
	rows = append(rows, total)

	return pdf.TableSpec{
		Columns: pdf.ScaleColumns(
			[]string{"Criterion", "1 Minute", "5 Minutes", "10 Minutes"},
			[]float64{3, 1, 1, 1},
			width,
		),
		Rows:         rows,
		RowHeight:    8,
		HeaderHeight: 8,
	}
}

func newbornName(n *Newborn, mother *Patient) string {
	if n != nil {
		if name := joinNames(n.FirstName, n.LastName); name != "" {
			return name
		}
	}
	if m := mother.ShortName(); m != "" {
		return "Baby " + m
	}
	return ""
}

// Apgar lays out the newborn APGAR score sheet.
func (g *Generator) Apgar(in ApgarInput) *Form {
	now := g.now()
	n := in.Newborn
	if n == nil {
		n = &Newborn{}
	}
	name := newbornName(in.Newborn, in.Mother)

	p := g.newPage(in.Facility, "APGAR Score Sheet", name, now)
	p.header("APGAR Score Sheet")

	p.Section("Newborn Information")
	p.fields(
		field{"Name", name},
		nf("Sex", n.Sex),
		field{"Date of Birth", displayDate(n.DateOfBirth)},
		field{"Time of Birth", pdf.FormatTime(n.TimeOfBirth.ForceValue())},
		nf("Birth Weight", n.BirthWeight),
		nf("Birth Length", n.BirthLength),
		nf("Gestational Age", n.GestationalAge),
		nf("Delivery Type", n.DeliveryType),
	)
	p.Field("Mother", in.Mother.FullName())

	p.Section("APGAR Score")
	p.Table(ApgarTable(in, p.Cursor().ContentWidth()))
	p.Space(2)

	fiveMin := ""
	if total, ok := ApgarTotal(in.FiveMinute); ok {
		fiveMin = strconv.Itoa(total) + " - " + ApgarInterpretation(total)
	}
	p.Field("5-Minute Interpretation", fiveMin)
	p.LabeledParagraph("Remarks", in.Remarks.ForceValue())
	p.Field("Assessed By", in.AssessedBy.ForceValue())

	p.Signatures("Assessed By")

	date := formDate(n.DateOfBirth, now)
	return &Form{
		Type:        TypeApgar,
		SubjectName: subjectName(name),
		Date:        date,
		Metadata: map[string]string{
			"birth_date":   date,
			"apgar_1min":   apgarTotalText(in.OneMinute),
			"apgar_5min":   apgarTotalText(in.FiveMinute),
			"apgar_10min":  apgarTotalText(in.TenMinute),
			"patient_name": name,
			"generated_at": generatedAt(now),
		},
		Document: p.finish(),
	}
}
