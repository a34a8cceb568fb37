package app

import (
	"fmt"

	"dhsreport/domain/health"
	"dhsreport/domain/indicator"
	"dhsreport/domain/run"
	"dhsreport/domain/table"
)

// sheets holds every loaded survey table for one run.
type sheets struct {
	diarrhea *table.Table
	feeding  *table.Table
	ors      *table.Table
	ari      *table.Table
	fever    *table.Table
	size     *table.Table // nil when the workbook is absent
}

// extractAll resolves the full indicator catalog against the loaded
// sheets. Aggregate indicators resolve through the declarative catalog
// so every outcome lands in the manifest; banded and categorical series
// resolve directly and fail fast, since they carry no defaults.
func extractAll(s sheets, manifest *run.Manifest) (*health.Results, error) {
	res := &health.Results{}

	diar, err := resolveRecorded(s.diarrhea, health.DiarrheaSpecs(), manifest)
	if err != nil {
		return nil, err
	}
	fever, err := resolveRecorded(s.fever, health.FeverSpecs(), manifest)
	if err != nil {
		return nil, err
	}
	ari, err := resolveRecorded(s.ari, health.ARISpecs(), manifest)
	if err != nil {
		return nil, err
	}
	ors, err := resolveRecorded(s.ors, health.ORSSpecs(), manifest)
	if err != nil {
		return nil, err
	}
	feeding, err := resolveRecorded(s.feeding, health.FeedingSpecs(), manifest)
	if err != nil {
		return nil, err
	}

	res.Diarrhea = health.Morbidity{
		Condition:  "Diarrhea",
		Prevalence: diar.MustValue(health.DiarrheaPrevalence),
		Treatment:  diar.MustValue(health.DiarrheaTreatment),
	}
	res.Fever = health.Morbidity{
		Condition:  "Fever",
		Prevalence: fever.MustValue(health.FeverPrevalence),
		Treatment:  fever.MustValue(health.FeverTreatment),
	}
	res.ARI = health.Morbidity{
		Condition:  "ARI Symptoms",
		Prevalence: ari.MustValue(health.ARIPrevalence),
		Treatment:  ari.MustValue(health.ARITreatment),
	}

	res.Treatment = treatmentBattery(res.Diarrhea.Treatment, ors)
	res.Feeding = feedingPractices(feeding)

	res.DiarrheaByAge, err = indicator.ExtractBanded(s.diarrhea, indicator.AgeBands, indicator.Contains(health.ColDiarrheaYes))
	if err != nil {
		return nil, fmt.Errorf("diarrhea by age: %w", err)
	}
	res.NoDiarrheaByAge, err = indicator.ExtractCategorical(s.diarrhea, indicator.AgeBands, indicator.Contains(health.ColDiarrheaNo))
	if err != nil {
		return nil, fmt.Errorf("diarrhea-free by age: %w", err)
	}
	res.ORSByWealth, err = indicator.ExtractCategorical(s.ors, health.WealthBands, indicator.Contains(health.ColORSYes))
	if err != nil {
		return nil, fmt.Errorf("ORS by wealth: %w", err)
	}
	res.CareByEducation, err = indicator.ExtractCategorical(s.fever, health.EducationBands, indicator.Contains(health.ColFeverCare))
	if err != nil {
		return nil, fmt.Errorf("care-seeking by education: %w", err)
	}

	res.Regional = regionalMorbidity(s, manifest)

	if s.size != nil {
		bw, err := birthweight(s.size, manifest)
		if err != nil {
			return nil, err
		}
		res.Birthweight = bw
	}

	return res, nil
}

func resolveRecorded(t *table.Table, specs []indicator.Spec, manifest *run.Manifest) (*indicator.Resolved, error) {
	res, err := indicator.Resolve(t, specs)
	if res != nil {
		manifest.Record(res)
	}
	if err != nil {
		return nil, fmt.Errorf("sheet %s: %w", t.Name, err)
	}
	return res, nil
}

// treatmentBattery assembles the diarrhea treatment chart series in
// report order. Display names follow the DHS chapter.
func treatmentBattery(careSeeking float64, ors *indicator.Resolved) []indicator.BandValue {
	return []indicator.BandValue{
		{Band: "Advice/treatment sought", Value: careSeeking},
		{Band: "ORS (sachet)", Value: ors.MustValue(health.ORSRate)},
		{Band: "Recommended homemade fluids", Value: ors.MustValue(health.RHFRate)},
		{Band: "ORS or RHF", Value: ors.MustValue(health.ORSOrRHF)},
		{Band: "Zinc", Value: ors.MustValue(health.ZincRate)},
		{Band: "ORS and zinc", Value: ors.MustValue(health.ORSAndZinc)},
		{Band: "ORS or increased fluids", Value: ors.MustValue(health.ORSOrMoreFluids)},
		{Band: "ORT", Value: ors.MustValue(health.ORTRate)},
		{Band: "Antibiotics", Value: ors.MustValue(health.AntibioticsRate)},
		{Band: "Home remedy/other", Value: ors.MustValue(health.HomeRemedyRate)},
		{Band: "No treatment", Value: ors.MustValue(health.NoTreatmentRate)},
	}
}

func feedingPractices(feeding *indicator.Resolved) health.FeedingPractices {
	return health.FeedingPractices{
		Liquids: health.Distribution{
			More:     feeding.MustValue(health.LiquidsMore),
			Same:     feeding.MustValue(health.LiquidsSame),
			Less:     feeding.MustValue(health.LiquidsLess),
			MuchLess: feeding.MustValue(health.LiquidsMuchLess),
			None:     feeding.MustValue(health.LiquidsNone),
		},
		Food: health.Distribution{
			More:     feeding.MustValue(health.FoodMore),
			Same:     feeding.MustValue(health.FoodSame),
			Less:     feeding.MustValue(health.FoodLess),
			MuchLess: feeding.MustValue(health.FoodMuchLess),
			None:     feeding.MustValue(health.FoodNone),
		},
	}
}

// regionalMorbidity joins the symptom-free rates across the three
// condition sheets. A region missing from any sheet is skipped with a
// warning; it is a cross-sheet join, not a single-indicator extraction.
func regionalMorbidity(s sheets, manifest *run.Manifest) []health.RegionalMorbidity {
	out := make([]health.RegionalMorbidity, 0, len(health.Regions))
	for _, region := range health.Regions {
		m := indicator.ContainsFold(region.Token)
		d, derr := indicator.Extract(s.diarrhea, m, indicator.Contains(health.ColDiarrheaNo))
		f, ferr := indicator.Extract(s.fever, m, indicator.Contains(health.ColFeverNo))
		a, aerr := indicator.Extract(s.ari, m, indicator.Contains(health.ColARINo))
		if derr != nil || ferr != nil || aerr != nil {
			manifest.Warn(fmt.Sprintf("region %s missing from one or more sheets; skipped", region.Name))
			continue
		}
		out = append(out, health.RegionalMorbidity{
			Region:     region.Name,
			NoDiarrhea: d,
			NoFever:    f,
			NoARI:      a,
		})
	}
	return out
}

// birthweight extracts the low-birth-weight breakdowns from the size
// sheet, after dropping metadata rows (weighted counts, footnotes).
func birthweight(size *table.Table, manifest *run.Manifest) (*health.Birthweight, error) {
	data := table.New(size.Name, size.Headers, size.DataRows())

	col, err := findBirthweightColumn(data)
	if err != nil {
		return nil, fmt.Errorf("birth weight: %w", err)
	}

	byRegion, err := indicator.ExtractCategorical(data, health.Regions, indicator.Contains(col))
	if err != nil {
		return nil, fmt.Errorf("birth weight by region: %w", err)
	}
	byAge, err := indicator.ExtractCategorical(data, health.MaternalAgeBands, indicator.Contains(col))
	if err != nil {
		return nil, fmt.Errorf("birth weight by maternal age: %w", err)
	}
	return &health.Birthweight{ByRegion: byRegion, ByMaternalAge: byAge}, nil
}

// findBirthweightColumn tries the known header spellings in order and
// returns the first that resolves.
func findBirthweightColumn(t *table.Table) (string, error) {
	var lastErr error
	for _, m := range health.BirthweightColumnMatchers() {
		col, err := indicator.FindColumn(t, m)
		if err == nil {
			return col, nil
		}
		lastErr = err
	}
	return "", lastErr
}
