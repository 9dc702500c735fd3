package export

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/Cyannimazing/BCSystem-sub000/internal/forms"
	"github.com/Cyannimazing/BCSystem-sub000/pkg/nullable"
)

func laborInput() forms.LaborInput {
	s := nullable.NewString
	return forms.LaborInput{
		Patient:       &forms.Patient{FirstName: s("Maria"), LastName: s("Cruz")},
		AdmissionDate: s("2025-01-15"),
		Entries: []forms.MonitoringEntry{
			{Date: s("2025-01-15"), Time: s("08:30:00"), Temperature: s("36.8"), Pulse: s("88"), BloodPressure: s("120/80")},
			{Date: s("not-a-date"), Time: s("2025-01-15T09:45:00"), FHTLocation: s("142, LLQ")},
		},
	}
}

func TestNewMonitoringSheet(t *testing.T) {
	sheet := NewMonitoringSheet(laborInput())

	assert.Equal(t, forms.MonitoringHeaders, sheet.Headers)
	require.Len(t, sheet.Rows, 2)
	assert.Equal(t, []string{"01/15/25", "08:30", "36.8", "88", "", "120/80", ""}, sheet.Rows[0])
	assert.Equal(t, []string{"not-a-date", "09:45", "", "", "", "", "142, LLQ"}, sheet.Rows[1])
	assert.Contains(t, sheet.Info, InfoRow{"Patient", "Maria Cruz"})
	assert.Contains(t, sheet.Info, InfoRow{"Facility", forms.DefaultFacilityName})
	assert.Contains(t, sheet.Info, InfoRow{"Attending Physician", "N/A"})
}

func TestExcelExporter_Export(t *testing.T) {
	exporter, err := NewExcelExporter(DefaultExcelOptions())
	require.NoError(t, err)
	defer exporter.Close()

	data, err := exporter.Export(NewMonitoringSheet(laborInput()))
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Monitoring", "Patient"}, f.GetSheetList())

	props, err := f.GetDocProps()
	require.NoError(t, err)
	assert.Equal(t, "Labor Monitoring", props.Title)

	rows, err := f.GetRows("Monitoring")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "FHT/Location", rows[0][6])
	assert.Equal(t, "01/15/25", rows[1][0])
	assert.Equal(t, "36.8", rows[1][2])
	assert.Equal(t, "120/80", rows[1][5])

	numeric, err := f.GetCellType("Monitoring", "C2")
	require.NoError(t, err)
	text, err := f.GetCellType("Monitoring", "F2")
	require.NoError(t, err)
	assert.NotEqual(t, text, numeric, "readings are stored as numbers")

	patient, err := f.GetCellValue("Patient", "B2")
	require.NoError(t, err)
	assert.Equal(t, "Maria Cruz", patient)
}

func TestCSVExporter_Export(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewCSVExporter(&buf, DefaultCSVOptions()).Export(NewMonitoringSheet(laborInput())))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, forms.MonitoringHeaders, records[0])
	assert.Equal(t, "142, LLQ", records[2][6])
}

func TestCSVExporter_NoHeaderPadsRows(t *testing.T) {
	var buf bytes.Buffer
	e := NewCSVExporter(&buf, CSVOptions{Delimiter: ';'})
	require.NoError(t, e.WriteRows([][]string{{"a"}}, 3))
	require.NoError(t, e.Flush())

	assert.Equal(t, "a;;\n", buf.String())
}
