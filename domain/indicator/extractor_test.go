package indicator

import (
	"errors"
	"strings"
	"testing"

	"dhsreport/domain/core"
	"dhsreport/domain/table"
)

const diarrheaYes = "Diarrhea in the 2 weeks before the survey|Yes"

func makeTable(headers []string, cells ...[]string) *table.Table {
	rows := make([]table.Row, 0, len(cells))
	for _, c := range cells {
		r := make(table.Row, len(headers))
		for i, h := range headers {
			if i < len(c) {
				r[h] = c[i]
			}
		}
		rows = append(rows, r)
	}
	return table.New("test", headers, rows)
}

// TestFindTotalRowSingleMatch tests that the one Total row is returned
func TestFindTotalRowSingleMatch(t *testing.T) {
	tbl := makeTable([]string{"row_labels", "v"},
		[]string{"Urban", "10.0"},
		[]string{"Total 15-49", "11.9"},
		[]string{"Rural", "12.0"},
	)

	row, err := FindTotalRow(tbl)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if row["row_labels"] != "Total 15-49" {
		t.Errorf("expected Total row, got label %q", row["row_labels"])
	}
}

// TestFindTotalRowEnsemble tests the French aggregate label
func TestFindTotalRowEnsemble(t *testing.T) {
	tbl := makeTable([]string{"row_labels", "v"},
		[]string{"Urbain", "10.0"},
		[]string{"Ensemble", "11.9"},
	)

	row, err := FindTotalRow(tbl)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if row["v"] != "11.9" {
		t.Errorf("expected Ensemble row value 11.9, got %q", row["v"])
	}
}

// TestFindTotalRowNoMatch tests that no arbitrary row is returned
func TestFindTotalRowNoMatch(t *testing.T) {
	tbl := makeTable([]string{"row_labels", "v"},
		[]string{"Urban", "10.0"},
		[]string{"Rural", "12.0"},
		[]string{"total", "99.0"}, // lower case: must not match
	)

	_, err := FindTotalRow(tbl)
	if err == nil {
		t.Fatal("expected error for table without a Total row")
	}
	if !errors.Is(err, core.ErrRowNotFound) {
		t.Errorf("expected ErrRowNotFound, got %v", err)
	}
}

// TestFindTotalRowFirstWins tests deterministic first-match resolution
// across repeated invocations
func TestFindTotalRowFirstWins(t *testing.T) {
	tbl := makeTable([]string{"row_labels", "v"},
		[]string{"Total urban", "1.0"},
		[]string{"Total rural", "2.0"},
		[]string{"Total", "3.0"},
	)

	for i := 0; i < 100; i++ {
		row, err := FindTotalRow(tbl)
		if err != nil {
			t.Fatalf("iteration %d: unexpected error: %v", i, err)
		}
		if row["v"] != "1.0" {
			t.Fatalf("iteration %d: expected first Total row, got value %q", i, row["v"])
		}
	}
}

// TestFindColumnFirstWins tests spec'd column ambiguity resolution:
// "Amount of fluids.*more" against both fluids and food headers must
// resolve to the fluids header only
func TestFindColumnFirstWins(t *testing.T) {
	tbl := makeTable([]string{"row_labels", "Amount of fluids given|More", "Amount of food given|More"})

	col, err := FindColumn(tbl, ContainsFold("Amount of fluids.*more"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if col != "Amount of fluids given|More" {
		t.Errorf("expected fluids header, got %q", col)
	}
}

// TestFindColumnNoMatch tests the not-found error carries the pattern
func TestFindColumnNoMatch(t *testing.T) {
	tbl := makeTable([]string{"row_labels", "a", "b"})

	_, err := FindColumn(tbl, Contains("Amount of zinc"))
	if !errors.Is(err, core.ErrColumnNotFound) {
		t.Fatalf("expected ErrColumnNotFound, got %v", err)
	}
	if !strings.Contains(err.Error(), "Amount of zinc") {
		t.Errorf("error should name the failed pattern: %v", err)
	}
}

// TestExtractOrDefaultOnlyOnFailure tests that the default is returned
// when, and only when, the matcher fails
func TestExtractOrDefaultOnlyOnFailure(t *testing.T) {
	tbl := makeTable([]string{"row_labels", diarrheaYes},
		[]string{"Total", "11.9"},
	)

	v, usedDefault := ExtractOr(tbl, Contains("Total"), Contains(diarrheaYes), 99.0)
	if usedDefault {
		t.Error("default must not be used when the lookup resolves")
	}
	if v != 11.9 {
		t.Errorf("expected real value 11.9, got %v", v)
	}

	v, usedDefault = ExtractOr(tbl, Contains("Total"), Contains("no such column"), 99.0)
	if !usedDefault {
		t.Error("expected default substitution for a failed column match")
	}
	if v != 99.0 {
		t.Errorf("expected the default and only the default, got %v", v)
	}
}

// TestExtractTotal tests resolving an aggregate value straight from the
// Total row
func TestExtractTotal(t *testing.T) {
	tbl := makeTable([]string{"row_labels", diarrheaYes},
		[]string{"Urban", "10.5"},
		[]string{"Total", "11.9"},
	)

	v, err := ExtractTotal(tbl, Contains(diarrheaYes))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 11.9 {
		t.Errorf("expected 11.9, got %v", v)
	}

	_, err = ExtractTotal(tbl, Contains("no such column"))
	if !errors.Is(err, core.ErrColumnNotFound) {
		t.Errorf("expected ErrColumnNotFound, got %v", err)
	}
}

func ageTable(t *testing.T) *table.Table {
	t.Helper()
	return makeTable([]string{"row_labels", diarrheaYes},
		[]string{"<6 months", "5.0"},
		[]string{"6-11 months", "20.4"},
		[]string{"12-23 months", "21.1"},
		[]string{"24-35 months", "13.4"},
		[]string{"36-47 months", "7.7"},
		[]string{"48-59 months", "4.9"},
		[]string{"Weighted n", "3500"},
		[]string{"Total", "11.9"},
	)
}

// TestExtractBandedRoundTrip tests the exact per-band scenario: one
// value per declared band in order, plus the trailing Ensemble band
func TestExtractBandedRoundTrip(t *testing.T) {
	got, err := ExtractBanded(ageTable(t), AgeBands, Contains(diarrheaYes))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []BandValue{
		{Band: "<6", Value: 5.0},
		{Band: "6-11", Value: 20.4},
		{Band: "12-23", Value: 21.1},
		{Band: "24-35", Value: 13.4},
		{Band: "36-47", Value: 7.7},
		{Band: "48-59", Value: 4.9},
		{Band: "Ensemble", Value: 11.9},
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d bands, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("band %d: expected %+v, got %+v", i, want[i], got[i])
		}
	}
}

// TestExtractBandedMissingBandFatal tests that a missing band row fails
// rather than substituting anything
func TestExtractBandedMissingBandFatal(t *testing.T) {
	tbl := makeTable([]string{"row_labels", diarrheaYes},
		[]string{"<6 months", "5.0"},
		[]string{"Total", "11.9"},
	)

	_, err := ExtractBanded(tbl, AgeBands, Contains(diarrheaYes))
	if err == nil {
		t.Fatal("expected error for missing band rows")
	}
	if !errors.Is(err, core.ErrBandNotFound) {
		t.Errorf("expected ErrBandNotFound, got %v", err)
	}
	if !strings.Contains(err.Error(), "6-11") {
		t.Errorf("error should name the missing band: %v", err)
	}
}

// TestExtractIdempotent tests bit-identical results across repeated
// extraction over the same immutable table
func TestExtractIdempotent(t *testing.T) {
	tbl := ageTable(t)

	first, err := ExtractBanded(tbl, AgeBands, Contains(diarrheaYes))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := ExtractBanded(tbl, AgeBands, Contains(diarrheaYes))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("band %d differs between runs: %+v vs %+v", i, first[i], second[i])
		}
	}
}

// TestExtractCategoricalOrder tests category series resolve in declared
// order with case-insensitive tokens
func TestExtractCategoricalOrder(t *testing.T) {
	tbl := makeTable([]string{"row_labels", "ORS|Yes"},
		[]string{"Wealth quintile|Richest", "29.9"},
		[]string{"Wealth quintile|Poorest", "9.2"},
		[]string{"Wealth quintile|Poorer", "13.1"},
		[]string{"Wealth quintile|Middle", "18.0"},
		[]string{"Wealth quintile|Richer", "22.4"},
	)
	bands := []Band{
		{Name: "Poorest", Token: "poorest"},
		{Name: "Poorer", Token: "poorer"},
		{Name: "Middle", Token: "middle"},
		{Name: "Richer", Token: "richer"},
		{Name: "Richest", Token: "richest"},
	}

	got, err := ExtractCategorical(tbl, bands, Contains("ORS|Yes"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wantValues := []float64{9.2, 13.1, 18.0, 22.4, 29.9}
	for i, bv := range got {
		if bv.Band != bands[i].Name || bv.Value != wantValues[i] {
			t.Errorf("entry %d: expected %s=%.1f, got %s=%.1f", i, bands[i].Name, wantValues[i], bv.Band, bv.Value)
		}
	}
}
