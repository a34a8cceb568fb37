package table

import (
	"errors"
	"testing"

	"dhsreport/domain/core"
)

func sampleTable() *Table {
	headers := []string{"row_labels", "Diarrhea|Yes", "Diarrhea|No"}
	rows := []Row{
		{"row_labels": "Urban", "Diarrhea|Yes": "10.5", "Diarrhea|No": "89.5"},
		{"row_labels": "Weighted N", "Diarrhea|Yes": "3500", "Diarrhea|No": ""},
		{"row_labels": "# footnote", "Diarrhea|Yes": "", "Diarrhea|No": ""},
		{"row_labels": "Total", "Diarrhea|Yes": "11.9", "Diarrhea|No": "88.1"},
	}
	return New("Diarrhea", headers, rows)
}

// TestLabelColumnPrefersRowLabels tests the row_labels header is used
// when present
func TestLabelColumnPrefersRowLabels(t *testing.T) {
	tbl := sampleTable()
	if got := tbl.LabelColumn(); got != "row_labels" {
		t.Errorf("expected row_labels, got %q", got)
	}
}

// TestLabelColumnFallsBackToFirst tests the first header is the label
// column when no row_labels header exists
func TestLabelColumnFallsBackToFirst(t *testing.T) {
	tbl := New("t", []string{"Background characteristic", "v"}, nil)
	if got := tbl.LabelColumn(); got != "Background characteristic" {
		t.Errorf("expected first header, got %q", got)
	}
}

// TestCleanLabel tests hierarchical DHS label cleaning
func TestCleanLabel(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Age in months|<6", "<6"},
		{"a|b|c", "c"},
		{"  Total ", "Total"},
		{"plain", "plain"},
	}
	for _, test := range tests {
		if got := CleanLabel(test.in); got != test.want {
			t.Errorf("CleanLabel(%q) = %q, want %q", test.in, got, test.want)
		}
	}
}

// TestDataRowsFiltersMetadata tests weighted-count and footnote rows
// are dropped
func TestDataRowsFiltersMetadata(t *testing.T) {
	tbl := sampleTable()
	data := tbl.DataRows()
	if len(data) != 2 {
		t.Fatalf("expected 2 data rows, got %d", len(data))
	}
	if tbl.Label(data[0]) != "Urban" || tbl.Label(data[1]) != "Total" {
		t.Errorf("unexpected data rows: %q, %q", tbl.Label(data[0]), tbl.Label(data[1]))
	}
}

// TestNumeric tests cell parsing and its error cases
func TestNumeric(t *testing.T) {
	tbl := sampleTable()
	row := tbl.Rows[3]

	v, err := tbl.Numeric(row, "Diarrhea|Yes")
	if err != nil || v != 11.9 {
		t.Errorf("expected 11.9, got %v (err %v)", v, err)
	}

	_, err = tbl.Numeric(tbl.Rows[2], "Diarrhea|Yes")
	if !errors.Is(err, core.ErrMissingCell) {
		t.Errorf("expected ErrMissingCell for empty cell, got %v", err)
	}

	_, err = tbl.Numeric(Row{"x": "n/a"}, "x")
	if !errors.Is(err, core.ErrNonNumericCell) {
		t.Errorf("expected ErrNonNumericCell, got %v", err)
	}

	_, err = tbl.Numeric(row, "absent column")
	if !errors.Is(err, core.ErrMissingCell) {
		t.Errorf("expected ErrMissingCell for absent column, got %v", err)
	}
}
