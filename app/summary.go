package app

import (
	"dhsreport/domain/health"
	"dhsreport/domain/indicator"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"
)

// computeSummary derives the cross-indicator statistics quoted in the
// report prose: regional spread of the diarrhea-free rate, and rank
// correlations for the wealth and education gradients.
func computeSummary(res *health.Results) health.Summary {
	var s health.Summary

	regional := make([]float64, 0, len(res.Regional))
	for _, r := range res.Regional {
		regional = append(regional, r.NoDiarrhea)
	}
	if len(regional) > 0 {
		s.RegionalNoDiarrheaMean, _ = stats.Mean(regional)
		s.RegionalNoDiarrheaMedian, _ = stats.Median(regional)
		s.RegionalNoDiarrheaMin, _ = stats.Min(regional)
		s.RegionalNoDiarrheaMax, _ = stats.Max(regional)
	}

	s.WealthORSCorrelation = rankCorrelation(res.ORSByWealth)
	s.EducationCareCorrelation = rankCorrelation(res.CareByEducation)

	return s
}

// rankCorrelation correlates an ordered category's rank with its value.
// The bands are already in ascending order, so ranks are 0..n-1.
func rankCorrelation(values []indicator.BandValue) float64 {
	if len(values) < 2 {
		return 0
	}
	ranks := make([]float64, len(values))
	ys := make([]float64, len(values))
	for i, bv := range values {
		ranks[i] = float64(i)
		ys[i] = bv.Value
	}
	return stat.Correlation(ranks, ys, nil)
}
