// Package ports defines the narrow interfaces the pipeline depends on,
// keeping spreadsheet access and artifact rendering swappable in tests.
package ports

import "dhsreport/domain/table"

// SheetSource loads one named sheet from a workbook file into a table.
type SheetSource interface {
	LoadSheet(file, sheet string) (*table.Table, error)
}
