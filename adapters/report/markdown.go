// Package report assembles the narrative report from resolved
// indicator values.
package report

import (
	"fmt"
	"os"
	"strings"
	"time"

	"dhsreport/domain/health"
)

// Writer renders the Markdown report and its HTML companion.
type Writer struct {
	title string
}

// NewWriter creates a report writer.
func NewWriter() *Writer {
	return &Writer{title: "Child Health Analysis Report"}
}

// Markdown builds the full report body.
func (w *Writer) Markdown(res *health.Results, generatedAt time.Time) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n## Cameroon Demographic and Health Survey 2018\n\n", w.title)
	fmt.Fprintf(&b, "**Generated:** %s\n\n---\n\n", generatedAt.Format("2006-01-02"))

	b.WriteString("## Executive Summary\n\n")
	b.WriteString("This report presents child health indicators for Cameroon based on the 2018 Demographic and Health Survey (DHS): childhood morbidity (diarrhea, fever, acute respiratory infection), treatment-seeking behavior, feeding practices during illness, and birth weight.\n\n")

	b.WriteString("### Key Findings\n\n")
	b.WriteString("| Indicator | Prevalence | Treatment Seeking |\n|-----------|------------|-------------------|\n")
	for _, m := range res.Morbidities() {
		fmt.Fprintf(&b, "| %s | %.1f%% | %.1f%% |\n", m.Condition, m.Prevalence, m.Treatment)
	}
	b.WriteString("\n---\n\n")

	b.WriteString("## 1. Childhood Morbidity Overview\n\n")
	fmt.Fprintf(&b, "Among children under 5, two-week prevalence was %.1f%% for fever, %.1f%% for diarrhea and %.1f%% for ARI symptoms. Care was sought for %.1f%% of fever episodes, %.1f%% of ARI episodes and %.1f%% of diarrhea episodes.\n\n",
		res.Fever.Prevalence, res.Diarrhea.Prevalence, res.ARI.Prevalence,
		res.Fever.Treatment, res.ARI.Treatment, res.Diarrhea.Treatment)
	b.WriteString("![Prevalence and Treatment](fig_morbidity_treatment.png)\n\n")

	b.WriteString("## 2. Diarrhea\n\n### 2.1 Prevalence by Age\n\n")
	b.WriteString("| Age Group (months) | Prevalence |\n|--------------------|------------|\n")
	for _, bv := range res.DiarrheaByAge {
		fmt.Fprintf(&b, "| %s | %.1f%% |\n", bv.Band, bv.Value)
	}
	b.WriteString("\n![Diarrhea by Age](fig_diarrhea_age.png)\n\n")
	b.WriteString("![Diarrhea-Free by Age](fig_diarrhea_age_line.png)\n\n")

	b.WriteString("### 2.2 Treatment Patterns\n\n")
	b.WriteString("| Treatment | Percentage |\n|-----------|------------|\n")
	for _, bv := range res.Treatment {
		fmt.Fprintf(&b, "| %s | %.1f%% |\n", bv.Band, bv.Value)
	}
	b.WriteString("\n![Diarrhea Treatment](fig_diarrhea_treatment.png)\n\n")

	b.WriteString("## 3. Socio-Economic Determinants\n\n### 3.1 ORS Use by Wealth Quintile\n\n")
	b.WriteString("| Wealth Quintile | ORS Rate |\n|-----------------|----------|\n")
	for _, bv := range res.ORSByWealth {
		fmt.Fprintf(&b, "| %s | %.1f%% |\n", bv.Band, bv.Value)
	}
	fmt.Fprintf(&b, "\nRank correlation between wealth quintile and ORS use: %.2f.\n\n", res.Summary.WealthORSCorrelation)
	b.WriteString("![ORS by Wealth](fig_ors_wealth.png)\n\n")

	b.WriteString("### 3.2 Care-Seeking by Mother's Education\n\n")
	b.WriteString("| Education Level | Care-Seeking Rate |\n|-----------------|-------------------|\n")
	for _, bv := range res.CareByEducation {
		fmt.Fprintf(&b, "| %s | %.1f%% |\n", bv.Band, bv.Value)
	}
	fmt.Fprintf(&b, "\nRank correlation between education level and care-seeking: %.2f.\n\n", res.Summary.EducationCareCorrelation)
	b.WriteString("![Care-Seeking by Education](fig_care_education.png)\n\n")

	b.WriteString("## 4. Feeding Practices During Diarrhea\n\n")
	b.WriteString("WHO recommends increasing fluids and maintaining food intake during diarrhea.\n\n")
	b.WriteString("| Amount Given | Liquids | Food |\n|--------------|---------|------|\n")
	fd := res.Feeding
	fmt.Fprintf(&b, "| More | %.1f%% | %.1f%% |\n", fd.Liquids.More, fd.Food.More)
	fmt.Fprintf(&b, "| Same as usual | %.1f%% | %.1f%% |\n", fd.Liquids.Same, fd.Food.Same)
	fmt.Fprintf(&b, "| Somewhat less | %.1f%% | %.1f%% |\n", fd.Liquids.Less, fd.Food.Less)
	fmt.Fprintf(&b, "| Much less | %.1f%% | %.1f%% |\n", fd.Liquids.MuchLess, fd.Food.MuchLess)
	fmt.Fprintf(&b, "| None | %.1f%% | %.1f%% |\n", fd.Liquids.None, fd.Food.None)
	b.WriteString("\n![Feeding Practices](fig_feeding_practices.png)\n\n")
	b.WriteString("![Feeding Practices Grouped](fig_feeding_grouped.png)\n\n")

	b.WriteString("## 5. Regional Analysis\n\n")
	b.WriteString("Symptom-free rates by region (two weeks preceding the survey):\n\n")
	b.WriteString("| Region | No Diarrhea | No Fever | No ARI |\n|--------|-------------|----------|--------|\n")
	for _, r := range res.Regional {
		fmt.Fprintf(&b, "| %s | %.1f%% | %.1f%% | %.1f%% |\n", r.Region, r.NoDiarrhea, r.NoFever, r.NoARI)
	}
	s := res.Summary
	fmt.Fprintf(&b, "\nAcross regions, the diarrhea-free rate averages %.1f%% (median %.1f%%), ranging from %.1f%% to %.1f%%.\n\n",
		s.RegionalNoDiarrheaMean, s.RegionalNoDiarrheaMedian, s.RegionalNoDiarrheaMin, s.RegionalNoDiarrheaMax)
	b.WriteString("![Regional Morbidity](fig_regional_morbidity.png)\n\n")

	if res.Birthweight != nil {
		b.WriteString("## 6. Birth Weight\n\n")
		b.WriteString("Prevalence of low birth weight (<2.5 kg):\n\n")
		b.WriteString("| Region | Low Birth Weight |\n|--------|------------------|\n")
		for _, bv := range res.Birthweight.ByRegion {
			fmt.Fprintf(&b, "| %s | %.1f%% |\n", bv.Band, bv.Value)
		}
		b.WriteString("\n| Mother's Age | Low Birth Weight |\n|--------------|------------------|\n")
		for _, bv := range res.Birthweight.ByMaternalAge {
			fmt.Fprintf(&b, "| %s | %.1f%% |\n", bv.Band, bv.Value)
		}
		b.WriteString("\n![Birth Weight by Region](fig_birthweight_region.png)\n\n")
		b.WriteString("![Birth Weight by Maternal Age](fig_birthweight_maternal_age.png)\n\n")
	}

	b.WriteString("---\n\n## Data Sources\n\n")
	b.WriteString("Cameroon Demographic and Health Survey 2018, Institut National de la Statistique (INS) and ICF. All indicator values extracted programmatically from the pre-tabulated survey workbooks.\n")

	return b.String()
}

// WriteMarkdown writes the Markdown report to path.
func (w *Writer) WriteMarkdown(res *health.Results, generatedAt time.Time, path string) error {
	md := w.Markdown(res, generatedAt)
	if err := os.WriteFile(path, []byte(md), 0o644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
