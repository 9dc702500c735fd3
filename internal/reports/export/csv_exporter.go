package export

import (
	"encoding/csv"
	"fmt"
	"io"
)

// CSVExporter exports monitoring sheets to CSV
type CSVExporter struct {
	writer  *csv.Writer
	options CSVOptions
}

// CSVOptions configures CSV export behavior
type CSVOptions struct {
	Delimiter     rune `json:"delimiter"`      // Field delimiter (default: comma)
	UseCRLF       bool `json:"use_crlf"`       // Use \r\n for line terminator
	IncludeHeader bool `json:"include_header"` // Include column headers
}

// DefaultCSVOptions returns default CSV export options
func DefaultCSVOptions() CSVOptions {
	return CSVOptions{
		Delimiter:     ',',
		UseCRLF:       false,
		IncludeHeader: true,
	}
}

// NewCSVExporter creates a new CSV exporter
func NewCSVExporter(w io.Writer, options CSVOptions) *CSVExporter {
	writer := csv.NewWriter(w)
	if options.Delimiter != 0 {
		writer.Comma = options.Delimiter
	}
	writer.UseCRLF = options.UseCRLF

	return &CSVExporter{writer: writer, options: options}
}

// Export writes the header and every row, then flushes.
func (e *CSVExporter) Export(sheet MonitoringSheet) error {
	if err := e.WriteHeader(sheet.Headers); err != nil {
		return err
	}
	if err := e.WriteRows(sheet.Rows, len(sheet.Headers)); err != nil {
		return err
	}
	return e.Flush()
}

// WriteHeader writes the CSV header row
func (e *CSVExporter) WriteHeader(columns []string) error {
	if !e.options.IncludeHeader {
		return nil
	}
	if err := e.writer.Write(columns); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	return nil
}

// WriteRows writes data rows, padding short rows to width
func (e *CSVExporter) WriteRows(rows [][]string, width int) error {
	for _, row := range rows {
		record := make([]string, width)
		copy(record, row)
		if err := e.writer.Write(record); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	return nil
}

// Flush writes any buffered data to the underlying writer
func (e *CSVExporter) Flush() error {
	e.writer.Flush()
	return e.writer.Error()
}
