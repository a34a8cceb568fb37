package ports

import "dhsreport/domain/indicator"

// Series is one named sequence of values sharing category labels.
type Series struct {
	Name   string
	Values []float64
}

// ChartRenderer draws the fixed chart shapes the report uses. Each call
// writes one image file under the renderer's output directory and
// returns its path.
type ChartRenderer interface {
	BarChart(filename, title, xLabel, yLabel string, values []indicator.BandValue) (string, error)
	HorizontalBarChart(filename, title, xLabel string, values []indicator.BandValue) (string, error)
	GroupedBarChart(filename, title, xLabel, yLabel string, categories []string, series []Series) (string, error)
	StackedBarChart(filename, title string, categories []string, series []Series) (string, error)
	LineChart(filename, title, xLabel, yLabel string, values []indicator.BandValue) (string, error)
}
