package table

import (
	"strconv"
	"strings"

	"dhsreport/domain/core"
)

// Row represents one table row as header -> raw cell string
type Row map[string]string

// Table is a loaded survey sheet: ordered column headers plus data rows.
// It is read-only after construction; every lookup is a pure scan.
type Table struct {
	Name    string   // Sheet name the table was loaded from
	Headers []string // Column headers in source order
	Rows    []Row    // Data rows in source order
}

// LabelColumnName is the header DHS exports use for the row-label column.
const LabelColumnName = "row_labels"

// New builds a table from ordered headers and rows.
func New(name string, headers []string, rows []Row) *Table {
	return &Table{Name: name, Headers: headers, Rows: rows}
}

// LabelColumn returns the header holding row labels: the column named
// "row_labels" when present, else the first column.
func (t *Table) LabelColumn() string {
	for _, h := range t.Headers {
		if h == LabelColumnName {
			return h
		}
	}
	if len(t.Headers) > 0 {
		return t.Headers[0]
	}
	return ""
}

// Label returns the row's label cell.
func (t *Table) Label(r Row) string {
	return r[t.LabelColumn()]
}

// CleanLabel strips the hierarchy prefix from a DHS label: "a|b|c" -> "c".
func CleanLabel(label string) string {
	if i := strings.LastIndex(label, "|"); i >= 0 {
		return strings.TrimSpace(label[i+1:])
	}
	return strings.TrimSpace(label)
}

// IsDataRow reports whether a label names an observation row rather than
// table metadata (weighted counts, footnote markers).
func IsDataRow(label string) bool {
	lower := strings.ToLower(label)
	return !strings.Contains(lower, "#") && !strings.Contains(lower, "weighted n")
}

// DataRows returns the rows that carry observations, preserving order.
func (t *Table) DataRows() []Row {
	out := make([]Row, 0, len(t.Rows))
	for _, r := range t.Rows {
		if IsDataRow(t.Label(r)) {
			out = append(out, r)
		}
	}
	return out
}

// Numeric parses the named cell as a float64. A missing or empty cell
// yields ErrMissingCell; a non-numeric cell yields ErrNonNumericCell.
func (t *Table) Numeric(r Row, column string) (float64, error) {
	raw, ok := r[column]
	if !ok || strings.TrimSpace(raw) == "" {
		return 0, core.ErrMissingCell
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, core.ErrNonNumericCell
	}
	return v, nil
}
