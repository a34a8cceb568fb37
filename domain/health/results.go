package health

import "dhsreport/domain/indicator"

// Morbidity is one condition's aggregate prevalence and care-seeking rate.
type Morbidity struct {
	Condition  string
	Prevalence float64
	Treatment  float64
}

// Distribution is a feeding-amount breakdown, in percent.
type Distribution struct {
	More     float64
	Same     float64
	Less     float64
	MuchLess float64
	None     float64
}

// FeedingPractices holds the liquid and food distributions during diarrhea.
type FeedingPractices struct {
	Liquids Distribution
	Food    Distribution
}

// RegionalMorbidity carries one region's symptom-free rates, joined
// across the three condition sheets.
type RegionalMorbidity struct {
	Region     string
	NoDiarrhea float64
	NoFever    float64
	NoARI      float64
}

// Birthweight holds the low-birth-weight (<2.5 kg) breakdowns.
type Birthweight struct {
	ByRegion      []indicator.BandValue
	ByMaternalAge []indicator.BandValue
}

// Summary aggregates cross-indicator statistics for the report prose.
type Summary struct {
	RegionalNoDiarrheaMean   float64
	RegionalNoDiarrheaMedian float64
	RegionalNoDiarrheaMin    float64
	RegionalNoDiarrheaMax    float64
	WealthORSCorrelation     float64 // quintile rank vs ORS use
	EducationCareCorrelation float64 // education rank vs care-seeking
}

// Results is everything the extractor resolved for one run, in the
// shape the charts and the narrative report consume.
type Results struct {
	Diarrhea Morbidity
	Fever    Morbidity
	ARI      Morbidity

	DiarrheaByAge   []indicator.BandValue // "Yes" column, Ensemble appended
	NoDiarrheaByAge []indicator.BandValue // "No" column, declared bands only

	Treatment       []indicator.BandValue // Named treatment battery, report order
	Feeding         FeedingPractices
	ORSByWealth     []indicator.BandValue
	CareByEducation []indicator.BandValue
	Regional        []RegionalMorbidity
	Birthweight     *Birthweight // nil when the size workbook is absent

	Summary Summary
}

// Morbidities returns the three conditions in report order.
func (r *Results) Morbidities() []Morbidity {
	return []Morbidity{r.Diarrhea, r.Fever, r.ARI}
}
