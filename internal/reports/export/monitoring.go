package export

import (
	"strconv"

	"github.com/Cyannimazing/BCSystem-sub000/internal/forms"
	"github.com/Cyannimazing/BCSystem-sub000/pkg/pdf"
)

// MonitoringSheet is the labor monitoring table in spreadsheet form, with
// the same cell formatting as the printed sheet.
type MonitoringSheet struct {
	// Title is stored as the workbook title.
	Title   string
	Headers []string
	Rows    [][]string
	Info    []InfoRow
}

// InfoRow is one label/value line of the patient summary sheet.
type InfoRow struct {
	Label string
	Value string
}

// NewMonitoringSheet collects the entries and patient summary of in. The
// facility is printed as given, so callers resolve configured defaults
// first.
func NewMonitoringSheet(in forms.LaborInput) MonitoringSheet {
	rows := make([][]string, 0, len(in.Entries))
	for _, e := range in.Entries {
		rows = append(rows, e.Cells())
	}
	return MonitoringSheet{
		Title:   "Labor Monitoring",
		Headers: forms.MonitoringHeaders,
		Rows:    rows,
		Info: []InfoRow{
			{"Facility", in.Facility.DisplayName()},
			{"Patient", pdf.OrPlaceholder(in.Patient.FullName())},
			{"Admission Date", pdf.OrPlaceholder(pdf.FormatDate(in.AdmissionDate.ForceValue()))},
			{"Admission Time", pdf.OrPlaceholder(pdf.FormatTime(in.AdmissionTime.ForceValue()))},
			{"Attending Physician", pdf.OrPlaceholder(in.AttendingPhysician.ForceValue())},
			{"Entries", strconv.Itoa(len(in.Entries))},
		},
	}
}
