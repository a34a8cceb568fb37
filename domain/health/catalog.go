// Package health declares the Cameroon DHS 2018 child-health indicator
// catalog: logical indicator names mapped to the row/column patterns
// that locate them inside the survey workbooks.
package health

import "dhsreport/domain/indicator"

// Sheet names inside the survey workbooks.
const (
	SheetDiarrhea    = "Diarrhea"
	SheetFeeding     = "Feeding"
	SheetORS         = "ORS"
	SheetARI         = "ARI"
	SheetFever       = "Fever"
	SheetBirthweight = "Size_birthweight"
)

// Logical indicator names. The report and charts address values by these
// names, never by spreadsheet column text.
const (
	DiarrheaPrevalence = "diarrhea_prevalence"
	DiarrheaTreatment  = "diarrhea_treatment"
	FeverPrevalence    = "fever_prevalence"
	FeverTreatment     = "fever_treatment"
	ARIPrevalence      = "ari_prevalence"
	ARITreatment       = "ari_treatment"

	ORSRate          = "ors_rate"
	RHFRate          = "rhf_rate"
	ORSOrRHF         = "ors_or_rhf"
	ZincRate         = "zinc_rate"
	ORSAndZinc       = "ors_and_zinc"
	ORSOrMoreFluids  = "ors_or_increased_fluids"
	ORTRate          = "ort_rate"
	AntibioticsRate  = "antibiotics_rate"
	HomeRemedyRate   = "home_remedy_rate"
	NoTreatmentRate  = "no_treatment_rate"

	LiquidsMore     = "liquids_more"
	LiquidsSame     = "liquids_same"
	LiquidsLess     = "liquids_less"
	LiquidsMuchLess = "liquids_much_less"
	LiquidsNone     = "liquids_none"
	FoodMore        = "food_more"
	FoodSame        = "food_same"
	FoodLess        = "food_less"
	FoodMuchLess    = "food_much_less"
	FoodNone        = "food_none"
)

// DiarrheaSpecs locates the aggregate diarrhea indicators on the
// Diarrhea sheet. No defaults: a failed match aborts the run.
func DiarrheaSpecs() []indicator.Spec {
	return []indicator.Spec{
		{Name: DiarrheaPrevalence, UseTotal: true, Column: indicator.Contains("Diarrhea in the 2 weeks before the survey|Yes")},
		{Name: DiarrheaTreatment, UseTotal: true, Column: indicator.Contains("Advice or treatment sought for diarrhea|Yes")},
	}
}

// FeverSpecs locates the aggregate fever indicators on the Fever sheet.
func FeverSpecs() []indicator.Spec {
	return []indicator.Spec{
		{Name: FeverPrevalence, UseTotal: true, Column: indicator.Contains("Fever symptoms in the 2 weeks before the survey|Yes")},
		{Name: FeverTreatment, UseTotal: true, Column: indicator.Contains("Advice or treatment sought for fever symptoms|Yes")},
	}
}

// ARISpecs locates the aggregate ARI indicators on the ARI sheet.
func ARISpecs() []indicator.Spec {
	return []indicator.Spec{
		{Name: ARIPrevalence, UseTotal: true, Column: indicator.Contains("ARI symptoms in the 2 weeks before the survey|Yes")},
		{Name: ARITreatment, UseTotal: true, Column: indicator.Contains("Advice or treatment sought for ARI symptoms|Yes")},
	}
}

// ORSSpecs is the diarrhea treatment battery on the ORS sheet.
func ORSSpecs() []indicator.Spec {
	return []indicator.Spec{
		{Name: ORSRate, UseTotal: true, Column: indicator.Contains("Given oral rehydration salts for diarrhea|Yes")},
		{Name: RHFRate, UseTotal: true, Column: indicator.Contains("Given recommended homemade fluids for diarrhea|Yes")},
		{Name: ORSOrRHF, UseTotal: true, Column: indicator.Contains("Given either ORS or RHF for diarrhea|Yes")},
		{Name: ZincRate, UseTotal: true, Column: indicator.Contains("Given zinc for diarrhea|Yes")},
		{Name: ORSAndZinc, UseTotal: true, Column: indicator.Contains("Given zinc and ORS for diarrhea|Yes")},
		{Name: ORSOrMoreFluids, UseTotal: true, Column: indicator.Contains("Given ORS or increased fluids for diarrhea|Yes")},
		{Name: ORTRate, UseTotal: true, Column: indicator.Contains("Given oral rehydration treatment or increased liquids for diarrhea|Yes")},
		{Name: AntibioticsRate, UseTotal: true, Column: indicator.Contains("Given antibiotic drugs for diarrhea|Yes")},
		{Name: HomeRemedyRate, UseTotal: true, Column: indicator.Contains("Given home remedy or other treatment for diarrhea|Yes")},
		{Name: NoTreatmentRate, UseTotal: true, Column: indicator.Contains("No treatment for diarrhea|Yes")},
	}
}

// FeedingSpecs locates the feeding-practice distribution on the Feeding
// sheet. Column wording on this sheet drifts between releases
// ("liquids" vs "fluids", trailing qualifier text), so every entry uses
// a wildcard matcher and carries a registered default: the published
// EDS-MICS 2018 chapter figure. A substituted default is always logged
// and recorded in the run manifest.
func FeedingSpecs() []indicator.Spec {
	return []indicator.Spec{
		indicator.Spec{Name: LiquidsMore, UseTotal: true, Column: indicator.ContainsFold("amount of liquids.*more")}.WithDefault(12.6),
		indicator.Spec{Name: LiquidsSame, UseTotal: true, Column: indicator.ContainsFold("amount of liquids.*same")}.WithDefault(35.9),
		indicator.Spec{Name: LiquidsLess, UseTotal: true, Column: indicator.ContainsFold("amount of liquids.*somewhat less")}.WithDefault(26.1),
		indicator.Spec{Name: LiquidsMuchLess, UseTotal: true, Column: indicator.ContainsFold("amount of liquids.*much less")}.WithDefault(17.6),
		indicator.Spec{Name: LiquidsNone, UseTotal: true, Column: indicator.ContainsFold("amount of liquids.*none")}.WithDefault(7.0),
		indicator.Spec{Name: FoodMore, UseTotal: true, Column: indicator.ContainsFold("amount of food.*more")}.WithDefault(5.8),
		indicator.Spec{Name: FoodSame, UseTotal: true, Column: indicator.ContainsFold("amount of food.*same")}.WithDefault(34.5),
		indicator.Spec{Name: FoodLess, UseTotal: true, Column: indicator.ContainsFold("amount of food.*somewhat less")}.WithDefault(31.4),
		indicator.Spec{Name: FoodMuchLess, UseTotal: true, Column: indicator.ContainsFold("amount of food.*much less")}.WithDefault(17.9),
		indicator.Spec{Name: FoodNone, UseTotal: true, Column: indicator.ContainsFold("amount of food.*none")}.WithDefault(6.6),
	}
}

// Value columns reused by banded and categorical extractions.
const (
	ColDiarrheaYes = "Diarrhea in the 2 weeks before the survey|Yes"
	ColDiarrheaNo  = "Diarrhea in the 2 weeks before the survey|No"
	ColFeverNo     = "Fever symptoms in the 2 weeks before the survey|No"
	ColARINo       = "ARI symptoms in the 2 weeks before the survey|No"
	ColORSYes      = "Given oral rehydration salts for diarrhea|Yes"
	ColFeverCare   = "Advice or treatment sought for fever symptoms|Yes"
)

// WealthBands are the DHS wealth quintiles in ascending order.
var WealthBands = []indicator.Band{
	{Name: "Poorest", Token: "poorest"},
	{Name: "Poorer", Token: "poorer"},
	{Name: "Middle", Token: "middle"},
	{Name: "Richer", Token: "richer"},
	{Name: "Richest", Token: "richest"},
}

// EducationBands are the mother's-education levels in ascending order.
var EducationBands = []indicator.Band{
	{Name: "No Education", Token: "no education"},
	{Name: "Primary", Token: "primary"},
	{Name: "Secondary", Token: "secondary"},
	{Name: "Higher", Token: "higher"},
}

// MaternalAgeBands are the mother's-age-at-birth groups used by the
// birth-weight tabulation.
var MaternalAgeBands = []indicator.Band{
	{Name: "< 20", Token: "< 20"},
	{Name: "20-34", Token: "20-34"},
	{Name: "35-49", Token: "35-49"},
}

// Regions are the twelve DHS survey regions. Tokens match the
// lower-case row labels in the tabulation sheets.
var Regions = []indicator.Band{
	{Name: "Adamawa", Token: "adamawa"},
	{Name: "Centre (Without Yaounde)", Token: "centre (without yaounde)"},
	{Name: "Douala", Token: "douala"},
	{Name: "East", Token: "east"},
	{Name: "Far-North", Token: "far-north"},
	{Name: "Littoral (Without Douala)", Token: "littoral (without douala)"},
	{Name: "North", Token: "north"},
	{Name: "North-West", Token: "north-west"},
	{Name: "West", Token: "west"},
	{Name: "South", Token: "south"},
	{Name: "South-West", Token: "south-west"},
	{Name: "Yaounde", Token: "yaounde"},
}

// BirthweightColumnMatchers are tried in order against the birth-weight
// sheet to find the "less than 2.5 kg" percentage column.
func BirthweightColumnMatchers() []indicator.Matcher {
	return []indicator.Matcher{
		indicator.ContainsFold("2.5"),
		indicator.ContainsFold("less than"),
		indicator.ContainsFold("yes"),
	}
}
