// Package excel reads DHS tabulation workbooks into domain tables.
package excel

import (
	"fmt"
	"os"
	"strings"

	"dhsreport/domain/core"
	"dhsreport/domain/table"

	"github.com/xuri/excelize/v2"
)

// WorkbookReader loads named sheets from XLSX workbooks. Legacy BIFF
// .xls files are not supported; the survey tables must be re-saved as
// .xlsx before a run.
type WorkbookReader struct{}

// NewWorkbookReader creates a workbook reader.
func NewWorkbookReader() *WorkbookReader {
	return &WorkbookReader{}
}

// LoadSheet reads one named sheet into a table. The first sheet row is
// the header row; remaining rows become data rows keyed by header.
func (r *WorkbookReader) LoadSheet(file, sheet string) (*table.Table, error) {
	if _, err := os.Stat(file); os.IsNotExist(err) {
		return nil, fmt.Errorf("workbook not found: %s", file)
	}

	f, err := excelize.OpenFile(file)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %s: %w", file, err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("%w: %q in %s", core.ErrSheetNotFound, sheet, file)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("sheet %q in %s: %w", sheet, file, core.ErrEmptyTable)
	}

	return buildTable(sheet, rows), nil
}

// buildTable converts raw string rows into the table format
func buildTable(sheet string, rows [][]string) *table.Table {
	headerRow := rows[0]
	headers := make([]string, len(headerRow))
	for i, header := range headerRow {
		headers[i] = strings.TrimSpace(header)
	}

	var dataRows []table.Row
	for i := 1; i < len(rows); i++ {
		rowData := make(table.Row)
		for j, cell := range rows[i] {
			if j < len(headers) {
				rowData[headers[j]] = strings.TrimSpace(cell)
			}
		}
		dataRows = append(dataRows, rowData)
	}

	return table.New(sheet, headers, dataRows)
}
