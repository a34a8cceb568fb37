package indicator

import (
	"fmt"
	"strings"

	"dhsreport/domain/core"
	"dhsreport/domain/table"
)

// totalTokens are the labels DHS sheets use for the aggregate summary row.
// Matching is case-sensitive: "total" inside another word must not count.
var totalTokens = []string{"Total", "Ensemble"}

// FindTotalRow scans rows in source order and returns the first whose
// label contains "Total" or "Ensemble". First match wins; repeated calls
// over the same table return the same row.
func FindTotalRow(t *table.Table) (table.Row, error) {
	for _, r := range t.Rows {
		label := t.Label(r)
		for _, token := range totalTokens {
			if strings.Contains(label, token) {
				return r, nil
			}
		}
	}
	return nil, core.NewRowNotFoundError("Total|Ensemble")
}

// FindRow returns the first row in source order whose label satisfies
// the matcher.
func FindRow(t *table.Table, m Matcher) (table.Row, error) {
	for _, r := range t.Rows {
		if m.Match(t.Label(r)) {
			return r, nil
		}
	}
	return nil, core.NewRowNotFoundError(m.Pattern)
}

// FindColumn scans headers in their defined order and returns the first
// matching the pattern.
func FindColumn(t *table.Table, m Matcher) (string, error) {
	for _, h := range t.Headers {
		if m.Match(h) {
			return h, nil
		}
	}
	return "", core.NewColumnNotFoundError(m.Pattern)
}

// Extract resolves one indicator value: first row matching rowMatcher,
// first column matching colMatcher, cell parsed as a number. Any failure
// propagates; callers that can tolerate layout drift use ExtractOr.
func Extract(t *table.Table, rowMatcher, colMatcher Matcher) (float64, error) {
	row, err := FindRow(t, rowMatcher)
	if err != nil {
		return 0, err
	}
	col, err := FindColumn(t, colMatcher)
	if err != nil {
		return 0, err
	}
	v, err := t.Numeric(row, col)
	if err != nil {
		return 0, fmt.Errorf("sheet %s, row %q, column %q: %w", t.Name, rowMatcher.Pattern, col, err)
	}
	return v, nil
}

// ExtractTotal resolves a value from the Total/Ensemble row.
func ExtractTotal(t *table.Table, colMatcher Matcher) (float64, error) {
	row, err := FindTotalRow(t)
	if err != nil {
		return 0, err
	}
	col, err := FindColumn(t, colMatcher)
	if err != nil {
		return 0, err
	}
	v, err := t.Numeric(row, col)
	if err != nil {
		return 0, fmt.Errorf("sheet %s, total row, column %q: %w", t.Name, col, err)
	}
	return v, nil
}

// ExtractOr is Extract with an explicit fallback: on any resolution
// failure it returns def and true. The bool makes the substitution
// auditable - it must never look like a value read from the sheet.
func ExtractOr(t *table.Table, rowMatcher, colMatcher Matcher, def float64) (float64, bool) {
	v, err := Extract(t, rowMatcher, colMatcher)
	if err != nil {
		return def, true
	}
	return v, false
}

// Band pairs a display name with the token used to locate its row.
type Band struct {
	Name  string // Display name, e.g. "6-11"
	Token string // Row-label token, e.g. "6-11"
}

// BandValue is one resolved per-band indicator.
type BandValue struct {
	Band  string
	Value float64
}

// EnsembleBand is the synthetic aggregate band appended after the
// declared bands, resolved from the Total/Ensemble row.
const EnsembleBand = "Ensemble"

// AgeBands are the fixed under-five age bands, in months, in report order.
var AgeBands = []Band{
	{Name: "<6", Token: "<6"},
	{Name: "6-11", Token: "6-11"},
	{Name: "12-23", Token: "12-23"},
	{Name: "24-35", Token: "24-35"},
	{Name: "36-47", Token: "36-47"},
	{Name: "48-59", Token: "48-59"},
}

// ExtractBanded resolves one value per band by token match on the row
// label, in the declared band order, then appends the Ensemble band from
// the Total row. A band whose row cannot be found is fatal: per-band
// records carry no default. Rows labelled "Weighted" are skipped so that
// weighted-count footer rows never shadow a band.
func ExtractBanded(t *table.Table, bands []Band, colMatcher Matcher) ([]BandValue, error) {
	col, err := FindColumn(t, colMatcher)
	if err != nil {
		return nil, err
	}

	out := make([]BandValue, 0, len(bands)+1)
	for _, band := range bands {
		row, err := findBandRow(t, band.Token)
		if err != nil {
			return nil, err
		}
		v, err := t.Numeric(row, col)
		if err != nil {
			return nil, fmt.Errorf("sheet %s, band %q, column %q: %w", t.Name, band.Name, col, err)
		}
		out = append(out, BandValue{Band: band.Name, Value: v})
	}

	totalRow, err := FindTotalRow(t)
	if err != nil {
		return nil, err
	}
	v, err := t.Numeric(totalRow, col)
	if err != nil {
		return nil, fmt.Errorf("sheet %s, total row, column %q: %w", t.Name, col, err)
	}
	out = append(out, BandValue{Band: EnsembleBand, Value: v})

	return out, nil
}

func findBandRow(t *table.Table, token string) (table.Row, error) {
	for _, r := range t.Rows {
		label := t.Label(r)
		if strings.Contains(strings.ToLower(label), "weighted") {
			continue
		}
		if strings.Contains(label, token) {
			return r, nil
		}
	}
	return nil, core.NewBandNotFoundError(token)
}
