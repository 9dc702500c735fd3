package export

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"
)

// ExcelExporter writes monitoring sheets as XLSX workbooks
type ExcelExporter struct {
	file    *excelize.File
	options ExcelOptions
}

// ExcelOptions configures Excel export behavior
type ExcelOptions struct {
	SheetName     string            `json:"sheet_name"`
	InfoSheetName string            `json:"info_sheet_name"`
	FreezeHeader  bool              `json:"freeze_header"`
	AutoFilter    bool              `json:"auto_filter"`
	NumericCells  bool              `json:"numeric_cells"`
	AutoWidth     bool              `json:"auto_width"`
	HeaderStyle   *ExcelStyleConfig `json:"header_style,omitempty"`
	DataStyle     *ExcelStyleConfig `json:"data_style,omitempty"`
}

// ExcelStyleConfig defines style for cells
type ExcelStyleConfig struct {
	FontBold  bool   `json:"font_bold"`
	FontSize  int    `json:"font_size"`
	FontColor string `json:"font_color"`
	FillColor string `json:"fill_color"`
	Alignment string `json:"alignment"` // left, center, right
	Border    bool   `json:"border"`
}

// DefaultExcelOptions returns default Excel export options
func DefaultExcelOptions() ExcelOptions {
	return ExcelOptions{
		SheetName:     "Monitoring",
		InfoSheetName: "Patient",
		FreezeHeader:  true,
		AutoFilter:    true,
		NumericCells:  true,
		AutoWidth:     true,
		HeaderStyle: &ExcelStyleConfig{
			FontBold:  true,
			FontSize:  11,
			FillColor: "D9D9D9",
			Alignment: "center",
			Border:    true,
		},
		DataStyle: &ExcelStyleConfig{
			FontSize:  11,
			Alignment: "center",
			Border:    true,
		},
	}
}

// NewExcelExporter creates a new Excel exporter
func NewExcelExporter(options ExcelOptions) (*ExcelExporter, error) {
	file := excelize.NewFile()
	if err := file.SetSheetName("Sheet1", options.SheetName); err != nil {
		file.Close()
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}
	return &ExcelExporter{file: file, options: options}, nil
}

// Export builds the whole workbook for sheet and returns its bytes.
func (e *ExcelExporter) Export(sheet MonitoringSheet) ([]byte, error) {
	if err := e.WriteHeader(sheet.Headers); err != nil {
		return nil, err
	}
	if err := e.WriteRows(sheet.Rows, len(sheet.Headers)); err != nil {
		return nil, err
	}
	if err := e.WriteInfo(sheet.Info); err != nil {
		return nil, err
	}
	if sheet.Title != "" {
		if err := e.file.SetDocProps(&excelize.DocProperties{Title: sheet.Title}); err != nil {
			return nil, fmt.Errorf("failed to set workbook title: %w", err)
		}
	}

	var buf bytes.Buffer
	if err := e.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteHeader writes the header row with styling
func (e *ExcelExporter) WriteHeader(columns []string) error {
	sheet := e.options.SheetName

	styleID, err := e.createStyle(e.options.HeaderStyle)
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	for i, col := range columns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := e.file.SetCellStr(sheet, cell, col); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
		if styleID > 0 {
			e.file.SetCellStyle(sheet, cell, cell, styleID)
		}
	}

	if e.options.FreezeHeader {
		e.file.SetPanes(sheet, &excelize.Panes{
			Freeze:      true,
			YSplit:      1,
			TopLeftCell: "A2",
			ActivePane:  "bottomLeft",
		})
	}
	if e.options.AutoFilter && len(columns) > 0 {
		last, _ := excelize.CoordinatesToCellName(len(columns), 1)
		e.file.AutoFilter(sheet, "A1:"+last, nil)
	}
	if e.options.AutoWidth {
		for i, col := range columns {
			e.widen(sheet, i, col)
		}
	}
	return nil
}

// WriteRows writes data rows below the header. Short rows are padded with
// empty cells up to width.
func (e *ExcelExporter) WriteRows(rows [][]string, width int) error {
	sheet := e.options.SheetName

	styleID, err := e.createStyle(e.options.DataStyle)
	if err != nil {
		return fmt.Errorf("failed to create data style: %w", err)
	}

	for r, row := range rows {
		for c := 0; c < width; c++ {
			var val string
			if c < len(row) {
				val = row[c]
			}
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			if err := e.setCellValue(sheet, cell, val); err != nil {
				return fmt.Errorf("failed to set cell value: %w", err)
			}
			if styleID > 0 {
				e.file.SetCellStyle(sheet, cell, cell, styleID)
			}
			if e.options.AutoWidth {
				e.widen(sheet, c, val)
			}
		}
	}
	return nil
}

// WriteInfo writes the label/value summary to its own sheet.
func (e *ExcelExporter) WriteInfo(info []InfoRow) error {
	if len(info) == 0 || e.options.InfoSheetName == "" {
		return nil
	}
	sheet := e.options.InfoSheetName
	if _, err := e.file.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to add sheet: %w", err)
	}

	bold, err := e.createStyle(&ExcelStyleConfig{FontBold: true, FontSize: 11})
	if err != nil {
		return fmt.Errorf("failed to create label style: %w", err)
	}
	for i, row := range info {
		label, _ := excelize.CoordinatesToCellName(1, i+1)
		value, _ := excelize.CoordinatesToCellName(2, i+1)
		if err := e.file.SetCellStr(sheet, label, row.Label); err != nil {
			return err
		}
		if err := e.file.SetCellStr(sheet, value, row.Value); err != nil {
			return err
		}
		e.file.SetCellStyle(sheet, label, label, bold)
	}
	e.file.SetColWidth(sheet, "A", "A", 22)
	e.file.SetColWidth(sheet, "B", "B", 40)
	return nil
}

// WriteTo writes the Excel file to a writer
func (e *ExcelExporter) WriteTo(w io.Writer) error {
	return e.file.Write(w)
}

// Close closes the Excel file
func (e *ExcelExporter) Close() error {
	return e.file.Close()
}

// setCellValue stores numeric readings as numbers so they can be charted.
// Dates, times and blood pressure stay text.
func (e *ExcelExporter) setCellValue(sheet, cell, val string) error {
	if e.options.NumericCells {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			return e.file.SetCellFloat(sheet, cell, f, -1, 64)
		}
	}
	return e.file.SetCellStr(sheet, cell, val)
}

// widen grows a column to fit val, clamped to 10..50 characters
func (e *ExcelExporter) widen(sheet string, col int, val string) {
	name, _ := excelize.ColumnNumberToName(col + 1)
	width := float64(utf8.RuneCountInString(val))*1.2 + 2
	width = max(10, min(50, width))
	if current, err := e.file.GetColWidth(sheet, name); err == nil && current >= width {
		return
	}
	e.file.SetColWidth(sheet, name, name, width)
}

// createStyle creates an Excel style from config
func (e *ExcelExporter) createStyle(config *ExcelStyleConfig) (int, error) {
	if config == nil {
		return 0, nil
	}
	style := &excelize.Style{
		Font: &excelize.Font{
			Bold:  config.FontBold,
			Size:  float64(config.FontSize),
			Color: config.FontColor,
		},
	}
	if config.FillColor != "" {
		style.Fill = excelize.Fill{
			Type:    "pattern",
			Pattern: 1,
			Color:   []string{config.FillColor},
		}
	}
	if config.Alignment != "" {
		style.Alignment = &excelize.Alignment{
			Horizontal: config.Alignment,
			Vertical:   "center",
		}
	}
	if config.Border {
		style.Border = []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
		}
	}
	return e.file.NewStyle(style)
}
