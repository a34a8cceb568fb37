package indicator

import (
	"errors"
	"fmt"

	"dhsreport/domain/table"
)

// Spec declares one logical indicator: where its value lives in a sheet
// and whether a registered default may stand in when the layout has
// drifted. Specs are resolved once per loaded sheet, not inline at each
// use site, so every lookup outcome is recorded and auditable.
type Spec struct {
	Name     string   // Logical indicator name, e.g. "diarrhea_prevalence"
	Row      Matcher  // Row-label matcher; ignored when UseTotal is set
	UseTotal bool     // Resolve from the Total/Ensemble row
	Column   Matcher  // Column-header matcher
	Default  *float64
}

// WithDefault marks the spec recoverable: a failed match substitutes v
// with a warning instead of failing the run.
func (s Spec) WithDefault(v float64) Spec {
	s.Default = &v
	return s
}

// Resolution records the outcome of resolving one spec.
type Resolution struct {
	Name        string  `json:"name"`
	Sheet       string  `json:"sheet"`
	Column      string  `json:"column,omitempty"` // Matched header, empty when unresolved
	Value       float64 `json:"value"`
	UsedDefault bool    `json:"used_default"`
	Problem     string  `json:"problem,omitempty"` // Why the lookup failed, when it did
}

// Resolved holds the fixed name -> value mapping produced from a sheet,
// plus the per-entry records and the warnings for every default that was
// substituted.
type Resolved struct {
	Records  []Resolution
	Warnings []string

	values map[string]float64
}

// Value returns the resolved value for a logical name.
func (r *Resolved) Value(name string) (float64, bool) {
	v, ok := r.values[name]
	return v, ok
}

// MustValue returns the resolved value and panics when the name was
// never declared; use only for names known to be in the catalog.
func (r *Resolved) MustValue(name string) float64 {
	v, ok := r.values[name]
	if !ok {
		panic(fmt.Sprintf("indicator %q not resolved", name))
	}
	return v
}

// Resolve evaluates every spec against the table. Entries with a
// registered default degrade to that default with a warning; entries
// without one accumulate into the returned error, which names each
// pattern that failed so a human can adjust the matcher for a new
// survey release.
func Resolve(t *table.Table, specs []Spec) (*Resolved, error) {
	res := &Resolved{values: make(map[string]float64, len(specs))}
	var fatal []error

	for _, spec := range specs {
		rec := Resolution{Name: spec.Name, Sheet: t.Name}

		col, err := FindColumn(t, spec.Column)
		if err == nil {
			rec.Column = col
			var row table.Row
			if spec.UseTotal {
				row, err = FindTotalRow(t)
			} else {
				row, err = FindRow(t, spec.Row)
			}
			if err == nil {
				var v float64
				v, err = t.Numeric(row, col)
				if err == nil {
					rec.Value = v
				}
			}
		}

		if err != nil {
			rec.Problem = err.Error()
			if spec.Default != nil {
				rec.Value = *spec.Default
				rec.UsedDefault = true
				res.Warnings = append(res.Warnings,
					fmt.Sprintf("indicator %s: %v; using registered default %.1f", spec.Name, err, *spec.Default))
			} else {
				fatal = append(fatal, fmt.Errorf("indicator %s: %w", spec.Name, err))
			}
		}

		res.Records = append(res.Records, rec)
		if err == nil || spec.Default != nil {
			res.values[spec.Name] = rec.Value
		}
	}

	if len(fatal) > 0 {
		return res, errors.Join(fatal...)
	}
	return res, nil
}
