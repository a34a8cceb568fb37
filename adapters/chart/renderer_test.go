package chart

import (
	"os"
	"path/filepath"
	"testing"

	"dhsreport/domain/indicator"
	"dhsreport/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRenderer(t *testing.T) (*Renderer, string) {
	t.Helper()
	dir := t.TempDir()
	return NewRenderer(dir, DefaultPalette(), 8, 5), dir
}

func assertPNGWritten(t *testing.T, path string, err error, dir, filename string) {
	t.Helper()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, filename), path)
	info, statErr := os.Stat(path)
	require.NoError(t, statErr)
	assert.Greater(t, info.Size(), int64(0))
}

var ageValues = []indicator.BandValue{
	{Band: "<6", Value: 5.0},
	{Band: "6-11", Value: 20.4},
	{Band: "12-23", Value: 21.1},
	{Band: "Ensemble", Value: 11.9},
}

func TestBarChart(t *testing.T) {
	r, dir := testRenderer(t)
	path, err := r.BarChart("bar.png", "Diarrhea Prevalence by Age", "Age in months", "Prevalence (%)", ageValues)
	assertPNGWritten(t, path, err, dir, "bar.png")
}

func TestHorizontalBarChart(t *testing.T) {
	r, dir := testRenderer(t)
	path, err := r.HorizontalBarChart("hbar.png", "Treatment of Diarrhea", "Percentage (%)", ageValues)
	assertPNGWritten(t, path, err, dir, "hbar.png")
}

func TestGroupedBarChart(t *testing.T) {
	r, dir := testRenderer(t)
	categories := []string{"Diarrhea", "Fever", "ARI Symptoms"}
	series := []ports.Series{
		{Name: "Prevalence", Values: []float64{11.9, 25.8, 4.5}},
		{Name: "Treatment Sought", Values: []float64{40.5, 29.7, 33.3}},
	}
	path, err := r.GroupedBarChart("grouped.png", "Prevalence and Treatment", "Condition", "Percentage (%)", categories, series)
	assertPNGWritten(t, path, err, dir, "grouped.png")
}

func TestStackedBarChart(t *testing.T) {
	r, dir := testRenderer(t)
	categories := []string{"Food given", "Liquids given"}
	series := []ports.Series{
		{Name: "More", Values: []float64{5.8, 12.6}},
		{Name: "Same", Values: []float64{34.5, 35.9}},
		{Name: "Less", Values: []float64{49.3, 43.7}},
		{Name: "None", Values: []float64{6.6, 7.0}},
	}
	path, err := r.StackedBarChart("stacked.png", "Feeding Practices During Diarrhea", categories, series)
	assertPNGWritten(t, path, err, dir, "stacked.png")
}

func TestLineChart(t *testing.T) {
	r, dir := testRenderer(t)
	path, err := r.LineChart("line.png", "Diarrhea-Free Children by Age", "Age in months", "Percentage (%)", ageValues)
	assertPNGWritten(t, path, err, dir, "line.png")
}

func TestSeriesColorCycles(t *testing.T) {
	p := DefaultPalette()
	n := len(p.Series)
	require.Greater(t, n, 0)
	assert.Equal(t, p.SeriesColor(0), p.SeriesColor(n))
}
