// Package chart renders the report's static charts with gonum/plot.
// Chart content is a pure function of the resolved indicator values and
// the palette; nothing here touches the spreadsheets.
package chart

import (
	"fmt"
	"path/filepath"

	"dhsreport/domain/indicator"
	"dhsreport/ports"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Renderer draws charts into a fixed output directory.
type Renderer struct {
	outDir  string
	palette Palette
	width   vg.Length
	height  vg.Length
}

// NewRenderer creates a renderer writing PNG files under outDir.
func NewRenderer(outDir string, palette Palette, widthInches, heightInches float64) *Renderer {
	return &Renderer{
		outDir:  outDir,
		palette: palette,
		width:   vg.Length(widthInches) * vg.Inch,
		height:  vg.Length(heightInches) * vg.Inch,
	}
}

var _ ports.ChartRenderer = (*Renderer)(nil)

// BarChart draws one vertical bar per band value.
func (r *Renderer) BarChart(filename, title, xLabel, yLabel string, values []indicator.BandValue) (string, error) {
	p := plot.New()
	p.Title.Text = title
	p.Title.TextStyle.Font.Size = vg.Points(13)
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel

	vals := make(plotter.Values, len(values))
	labels := make([]string, len(values))
	for i, bv := range values {
		vals[i] = bv.Value
		labels[i] = bv.Band
	}

	bars, err := plotter.NewBarChart(vals, vg.Points(30))
	if err != nil {
		return "", fmt.Errorf("bar chart %s: %w", filename, err)
	}
	bars.Color = r.palette.Quaternary
	bars.LineStyle.Width = vg.Length(0)
	p.Add(bars)
	p.NominalX(labels...)
	p.Y.Min = 0

	if err := r.addValueLabels(p, vals); err != nil {
		return "", err
	}
	return r.save(p, filename)
}

// HorizontalBarChart draws one horizontal bar per band value, first
// value on top.
func (r *Renderer) HorizontalBarChart(filename, title, xLabel string, values []indicator.BandValue) (string, error) {
	p := plot.New()
	p.Title.Text = title
	p.Title.TextStyle.Font.Size = vg.Points(13)
	p.X.Label.Text = xLabel

	// Reverse so the first entry renders at the top of the axis.
	n := len(values)
	vals := make(plotter.Values, n)
	labels := make([]string, n)
	for i, bv := range values {
		vals[n-1-i] = bv.Value
		labels[n-1-i] = bv.Band
	}

	bars, err := plotter.NewBarChart(vals, vg.Points(14))
	if err != nil {
		return "", fmt.Errorf("horizontal bar chart %s: %w", filename, err)
	}
	bars.Horizontal = true
	bars.Color = r.palette.Tertiary
	bars.LineStyle.Width = vg.Length(0)
	p.Add(bars)
	p.NominalY(labels...)
	p.X.Min = 0

	return r.save(p, filename)
}

// GroupedBarChart draws side-by-side bars per category, one bar per
// series, with a legend.
func (r *Renderer) GroupedBarChart(filename, title, xLabel, yLabel string, categories []string, series []ports.Series) (string, error) {
	p := plot.New()
	p.Title.Text = title
	p.Title.TextStyle.Font.Size = vg.Points(13)
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel

	barWidth := vg.Points(18)
	groupWidth := barWidth * vg.Length(len(series))
	for i, s := range series {
		vals := make(plotter.Values, len(s.Values))
		copy(vals, s.Values)
		bars, err := plotter.NewBarChart(vals, barWidth)
		if err != nil {
			return "", fmt.Errorf("grouped bar chart %s: %w", filename, err)
		}
		bars.Color = r.palette.SeriesColor(i)
		bars.LineStyle.Width = vg.Length(0)
		bars.Offset = vg.Length(i)*barWidth - groupWidth/2 + barWidth/2
		p.Add(bars)
		p.Legend.Add(s.Name, bars)
	}

	p.NominalX(categories...)
	p.Y.Min = 0
	p.Legend.Top = true

	return r.save(p, filename)
}

// StackedBarChart draws one horizontal stack per category; series are
// stacked in declaration order.
func (r *Renderer) StackedBarChart(filename, title string, categories []string, series []ports.Series) (string, error) {
	p := plot.New()
	p.Title.Text = title
	p.Title.TextStyle.Font.Size = vg.Points(13)
	p.X.Label.Text = "Percentage (%)"

	var prev *plotter.BarChart
	for i, s := range series {
		vals := make(plotter.Values, len(s.Values))
		copy(vals, s.Values)
		bars, err := plotter.NewBarChart(vals, vg.Points(28))
		if err != nil {
			return "", fmt.Errorf("stacked bar chart %s: %w", filename, err)
		}
		bars.Horizontal = true
		bars.Color = r.palette.SeriesColor(i)
		bars.LineStyle.Width = vg.Length(0)
		if prev != nil {
			bars.StackOn(prev)
		}
		p.Add(bars)
		p.Legend.Add(s.Name, bars)
		prev = bars
	}

	p.NominalY(categories...)
	p.X.Min = 0
	p.X.Max = 100
	p.Legend.Top = true

	return r.save(p, filename)
}

// LineChart draws a marked line across the band values in order.
func (r *Renderer) LineChart(filename, title, xLabel, yLabel string, values []indicator.BandValue) (string, error) {
	p := plot.New()
	p.Title.Text = title
	p.Title.TextStyle.Font.Size = vg.Points(13)
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel

	pts := make(plotter.XYs, len(values))
	labels := make([]string, len(values))
	for i, bv := range values {
		pts[i].X = float64(i)
		pts[i].Y = bv.Value
		labels[i] = bv.Band
	}

	line, points, err := plotter.NewLinePoints(pts)
	if err != nil {
		return "", fmt.Errorf("line chart %s: %w", filename, err)
	}
	line.Color = r.palette.Secondary
	line.Width = vg.Points(2)
	points.Color = r.palette.Primary
	points.GlyphStyle.Shape = draw.CircleGlyph{}
	points.GlyphStyle.Radius = vg.Points(3)
	p.Add(line, points, plotter.NewGrid())
	p.NominalX(labels...)

	return r.save(p, filename)
}

// addValueLabels prints each bar's value just above it.
func (r *Renderer) addValueLabels(p *plot.Plot, vals plotter.Values) error {
	max := 0.0
	for _, v := range vals {
		if v > max {
			max = v
		}
	}
	xys := make(plotter.XYs, len(vals))
	texts := make([]string, len(vals))
	for i, v := range vals {
		xys[i] = plotter.XY{X: float64(i), Y: v + max*0.02}
		texts[i] = fmt.Sprintf("%.1f%%", v)
	}
	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: texts})
	if err != nil {
		return err
	}
	p.Add(labels)
	return nil
}

func (r *Renderer) save(p *plot.Plot, filename string) (string, error) {
	path := filepath.Join(r.outDir, filename)
	if err := p.Save(r.width, r.height, path); err != nil {
		return "", fmt.Errorf("failed to save chart %s: %w", filename, err)
	}
	return path, nil
}
