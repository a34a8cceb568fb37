package app

import (
	"context"
	"sync"

	"dhsreport/domain/health"
	"dhsreport/ports"

	"golang.org/x/sync/errgroup"
)

// Chart file names referenced by the report body.
const (
	ChartMorbidityTreatment  = "fig_morbidity_treatment.png"
	ChartDiarrheaAge         = "fig_diarrhea_age.png"
	ChartDiarrheaAgeLine     = "fig_diarrhea_age_line.png"
	ChartDiarrheaTreatment   = "fig_diarrhea_treatment.png"
	ChartFeedingPractices    = "fig_feeding_practices.png"
	ChartFeedingGrouped      = "fig_feeding_grouped.png"
	ChartORSWealth           = "fig_ors_wealth.png"
	ChartCareEducation       = "fig_care_education.png"
	ChartRegionalMorbidity   = "fig_regional_morbidity.png"
	ChartBirthweightRegion   = "fig_birthweight_region.png"
	ChartBirthweightMaternal = "fig_birthweight_maternal_age.png"
)

// renderCharts draws every chart for the run. Each chart is a pure
// function of already-resolved values, so rendering fans out
// concurrently; the returned paths preserve no particular order.
func renderCharts(ctx context.Context, r ports.ChartRenderer, res *health.Results) ([]string, error) {
	var (
		mu    sync.Mutex
		paths []string
	)
	record := func(path string, err error) error {
		if err != nil {
			return err
		}
		mu.Lock()
		paths = append(paths, path)
		mu.Unlock()
		return nil
	}

	g, _ := errgroup.WithContext(ctx)

	g.Go(func() error {
		categories := []string{"Diarrhea", "Fever", "ARI Symptoms"}
		series := []ports.Series{
			{Name: "Prevalence", Values: []float64{res.Diarrhea.Prevalence, res.Fever.Prevalence, res.ARI.Prevalence}},
			{Name: "Treatment Sought", Values: []float64{res.Diarrhea.Treatment, res.Fever.Treatment, res.ARI.Treatment}},
		}
		return record(r.GroupedBarChart(ChartMorbidityTreatment,
			"Child Morbidity Prevalence and Treatment Seeking",
			"Health Condition", "Percentage (%)", categories, series))
	})

	g.Go(func() error {
		return record(r.BarChart(ChartDiarrheaAge,
			"Diarrhea Prevalence by Age",
			"Age in months", "Prevalence (%)", res.DiarrheaByAge))
	})

	g.Go(func() error {
		return record(r.LineChart(ChartDiarrheaAgeLine,
			"Diarrhea-Free Children by Age",
			"Age in months", "Percentage (%)", res.NoDiarrheaByAge))
	})

	g.Go(func() error {
		return record(r.HorizontalBarChart(ChartDiarrheaTreatment,
			"Treatment of Diarrhea",
			"Percentage (%)", res.Treatment))
	})

	g.Go(func() error {
		categories := []string{"Food given", "Liquids given"}
		fd := res.Feeding
		series := []ports.Series{
			{Name: "More", Values: []float64{fd.Food.More, fd.Liquids.More}},
			{Name: "Same", Values: []float64{fd.Food.Same, fd.Liquids.Same}},
			{Name: "Less", Values: []float64{fd.Food.Less + fd.Food.MuchLess, fd.Liquids.Less + fd.Liquids.MuchLess}},
			{Name: "None", Values: []float64{fd.Food.None, fd.Liquids.None}},
		}
		return record(r.StackedBarChart(ChartFeedingPractices,
			"Feeding Practices During Diarrhea", categories, series))
	})

	g.Go(func() error {
		categories := []string{"More", "Same", "Less", "Much Less", "None"}
		fd := res.Feeding
		series := []ports.Series{
			{Name: "Liquids", Values: []float64{fd.Liquids.More, fd.Liquids.Same, fd.Liquids.Less, fd.Liquids.MuchLess, fd.Liquids.None}},
			{Name: "Food", Values: []float64{fd.Food.More, fd.Food.Same, fd.Food.Less, fd.Food.MuchLess, fd.Food.None}},
		}
		return record(r.GroupedBarChart(ChartFeedingGrouped,
			"Amount Given During Diarrhea",
			"Amount", "Percentage of Children (%)", categories, series))
	})

	g.Go(func() error {
		return record(r.BarChart(ChartORSWealth,
			"ORS Treatment for Diarrhea by Wealth Quintile",
			"Wealth Quintile", "ORS Treatment Rate (%)", res.ORSByWealth))
	})

	g.Go(func() error {
		return record(r.BarChart(ChartCareEducation,
			"Care-Seeking for Fever by Mother's Education",
			"Mother's Education Level", "Care-Seeking Rate (%)", res.CareByEducation))
	})

	g.Go(func() error {
		categories := make([]string, len(res.Regional))
		noDiarrhea := make([]float64, len(res.Regional))
		noFever := make([]float64, len(res.Regional))
		noARI := make([]float64, len(res.Regional))
		for i, reg := range res.Regional {
			categories[i] = reg.Region
			noDiarrhea[i] = reg.NoDiarrhea
			noFever[i] = reg.NoFever
			noARI[i] = reg.NoARI
		}
		series := []ports.Series{
			{Name: "No Diarrhea", Values: noDiarrhea},
			{Name: "No Fever", Values: noFever},
			{Name: "No ARI", Values: noARI},
		}
		return record(r.GroupedBarChart(ChartRegionalMorbidity,
			"Regional Child Morbidity Indicators",
			"Region", "Symptom-Free (%)", categories, series))
	})

	if res.Birthweight != nil {
		g.Go(func() error {
			return record(r.HorizontalBarChart(ChartBirthweightRegion,
				"Low Birth Weight (<2.5 kg) by Region",
				"Percentage (%)", res.Birthweight.ByRegion))
		})
		g.Go(func() error {
			return record(r.BarChart(ChartBirthweightMaternal,
				"Low Birth Weight by Maternal Age",
				"Mother's Age at Birth", "Prevalence (%)", res.Birthweight.ByMaternalAge))
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return paths, nil
}
