package forms

import (
	"strconv"

	"github.com/Cyannimazing/BCSystem-sub000/pkg/pdf"
)

var monitoringWeights = []float64{25, 18, 18, 18, 18, 28, 55}

// MonitoringTable returns the monitoring table for entries, padded to
// minRows ruled rows and spanning width.
func MonitoringTable(entries []MonitoringEntry, minRows int, width float64) pdf.TableSpec {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, e.Cells())
	}
	return pdf.TableSpec{
		Columns:      pdf.ScaleColumns(MonitoringHeaders, monitoringWeights, width),
		Rows:         rows,
		MinRows:      minRows,
		RowHeight:    7,
		HeaderHeight: 8,
	}
}

// LaborMonitoring lays out the labor monitoring sheet.
func (g *Generator) LaborMonitoring(in LaborInput) *Form {
	now := g.now()

	p := g.newPage(in.Facility, "Labor Monitoring Sheet", in.Patient.FullName(), now)
	p.header("Labor Monitoring Sheet")

	p.patientBlock(in.Patient)

	p.Section("Admission")
	p.fields(
		field{"Admission Date", displayDate(in.AdmissionDate)},
		field{"Admission Time", pdf.FormatTime(in.AdmissionTime.ForceValue())},
		nf("Gravida", in.Gravida),
		nf("Para", in.Para),
		nf("Attending Physician", in.AttendingPhysician),
	)
	p.Field("Admitting Diagnosis", in.AdmittingDiagnosis.ForceValue())

	p.Section("Monitoring")
	minRows := g.LaborMinRows
	if minRows < 0 {
		minRows = 0
	}
	p.Table(MonitoringTable(in.Entries, minRows, p.Cursor().ContentWidth()))

	p.Field("Monitored By", in.MonitoredBy.ForceValue())
	p.Signatures("Monitored By", "Attending Physician")

	admission := ""
	if !in.AdmissionDate.IsNil() {
		admission = formDate(in.AdmissionDate, now)
	}
	return &Form{
		Type:        TypeLaborMonitoring,
		SubjectName: subjectName(in.Patient.ShortName()),
		Date:        now.Format(isoDate),
		Metadata: map[string]string{
			"entry_count":    strconv.Itoa(len(in.Entries)),
			"patient_name":   in.Patient.FullName(),
			"admission_date": admission,
			"generated_at":   generatedAt(now),
		},
		Document: p.finish(),
	}
}
