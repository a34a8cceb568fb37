package indicator

import (
	"fmt"
	"strings"

	"dhsreport/domain/core"
	"dhsreport/domain/table"
)

// ExtractCategorical resolves one value per category band by
// case-insensitive token match on the row label, in the declared band
// order. Unlike ExtractBanded there is no synthetic Ensemble entry and
// no default: background-characteristic breakdowns either resolve fully
// or fail naming the missing band. Weighted-count rows are skipped.
func ExtractCategorical(t *table.Table, bands []Band, colMatcher Matcher) ([]BandValue, error) {
	col, err := FindColumn(t, colMatcher)
	if err != nil {
		return nil, err
	}

	out := make([]BandValue, 0, len(bands))
	for _, band := range bands {
		row, err := findCategoryRow(t, band.Token)
		if err != nil {
			return nil, err
		}
		v, err := t.Numeric(row, col)
		if err != nil {
			return nil, fmt.Errorf("sheet %s, category %q, column %q: %w", t.Name, band.Name, col, err)
		}
		out = append(out, BandValue{Band: band.Name, Value: v})
	}
	return out, nil
}

func findCategoryRow(t *table.Table, token string) (table.Row, error) {
	lowered := strings.ToLower(token)
	for _, r := range t.Rows {
		label := strings.ToLower(t.Label(r))
		if strings.Contains(label, "weighted") {
			continue
		}
		if strings.Contains(label, lowered) {
			return r, nil
		}
	}
	return nil, core.NewBandNotFoundError(token)
}
