// Package app orchestrates the end-to-end analysis pipeline:
// load sheets, extract indicators, render artifacts.
package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"dhsreport/adapters/report"
	"dhsreport/domain/health"
	"dhsreport/domain/run"
	"dhsreport/internal"
	"dhsreport/internal/config"
	apperrors "dhsreport/internal/errors"
	"dhsreport/ports"
)

// Output file names.
const (
	ReportMarkdownFile = "Child_Health_Report_Cameroon_DHS2018.md"
	ReportHTMLFile     = "Child_Health_Report_Cameroon_DHS2018.html"
	ManifestFile       = "run_manifest.json"
)

// Pipeline runs one full analysis: load sheets, extract indicators,
// compute summaries, render charts, write the report and run manifest.
type Pipeline struct {
	cfg    *config.Config
	source ports.SheetSource
	charts ports.ChartRenderer
	report *report.Writer
	log    *internal.Logger
}

// NewPipeline wires a pipeline from its collaborators.
func NewPipeline(cfg *config.Config, source ports.SheetSource, charts ports.ChartRenderer, log *internal.Logger) *Pipeline {
	return &Pipeline{
		cfg:    cfg,
		source: source,
		charts: charts,
		report: report.NewWriter(),
		log:    log,
	}
}

// Run executes the pipeline once. A missing required workbook or a
// failed extraction without a registered default aborts before any
// artifact is written; there is no partial output.
func (p *Pipeline) Run(ctx context.Context) (*run.Manifest, error) {
	manifest := run.NewManifest()
	paths := p.cfg.Paths

	// Required inputs are checked up front so a missing workbook can
	// never leave a half-written output directory behind.
	for _, f := range []string{paths.DiarrheaPath(), paths.ARIFeverPath()} {
		if _, err := os.Stat(f); err != nil {
			return nil, apperrors.Wrapf(err, "required input file missing: %s", f)
		}
	}
	manifest.Inputs = append(manifest.Inputs, paths.DiarrheaFile, paths.ARIFeverFile)

	s, err := p.loadSheets(manifest)
	if err != nil {
		return nil, err
	}

	p.log.Info("[Pipeline] extracting indicators (run %s)", manifest.RunID)
	results, err := extractAll(s, manifest)
	if err != nil {
		return nil, apperrors.Wrap(err, "indicator extraction failed")
	}
	results.Summary = computeSummary(results)
	p.logKeyIndicators(results)

	if err := os.MkdirAll(paths.OutputDir, 0o755); err != nil {
		return nil, apperrors.Wrap(err, "failed to create output directory")
	}

	p.log.Info("[Pipeline] rendering charts")
	chartPaths, err := renderCharts(ctx, p.charts, results)
	if err != nil {
		return nil, apperrors.Wrap(err, "chart rendering failed")
	}
	for _, cp := range chartPaths {
		manifest.AddArtifact(cp)
	}

	p.log.Info("[Pipeline] writing report")
	mdPath := filepath.Join(paths.OutputDir, ReportMarkdownFile)
	md := p.report.Markdown(results, time.Now())
	if err := os.WriteFile(mdPath, []byte(md), 0o644); err != nil {
		return nil, apperrors.Wrap(err, "failed to write report")
	}
	manifest.AddArtifact(mdPath)

	htmlPath := filepath.Join(paths.OutputDir, ReportHTMLFile)
	if err := p.report.WriteHTML(md, htmlPath); err != nil {
		return nil, apperrors.Wrap(err, "failed to write HTML report")
	}
	manifest.AddArtifact(htmlPath)

	for _, w := range manifest.Warnings {
		p.log.Warn("[Pipeline] %s", w)
	}
	if defaults := manifest.DefaultsUsed(); len(defaults) > 0 {
		p.log.Warn("[Pipeline] registered defaults substituted for: %v", defaults)
	}

	manifestPath := filepath.Join(paths.OutputDir, ManifestFile)
	if err := manifest.Write(manifestPath); err != nil {
		return nil, apperrors.Wrap(err, "failed to write run manifest")
	}

	p.log.Info("[Pipeline] run %s complete (%d artifacts)", manifest.RunID, len(manifest.Artifacts))
	return manifest, nil
}

// loadSheets reads every survey table. The birth-size workbook is
// optional: when absent the birth-weight section is skipped with a
// warning, matching how the survey releases ship.
func (p *Pipeline) loadSheets(manifest *run.Manifest) (sheets, error) {
	paths := p.cfg.Paths
	var s sheets
	var err error

	if s.diarrhea, err = p.source.LoadSheet(paths.DiarrheaPath(), health.SheetDiarrhea); err != nil {
		return s, apperrors.Wrap(err, "failed to load Diarrhea sheet")
	}
	if s.feeding, err = p.source.LoadSheet(paths.DiarrheaPath(), health.SheetFeeding); err != nil {
		return s, apperrors.Wrap(err, "failed to load Feeding sheet")
	}
	if s.ors, err = p.source.LoadSheet(paths.DiarrheaPath(), health.SheetORS); err != nil {
		return s, apperrors.Wrap(err, "failed to load ORS sheet")
	}
	if s.ari, err = p.source.LoadSheet(paths.ARIFeverPath(), health.SheetARI); err != nil {
		return s, apperrors.Wrap(err, "failed to load ARI sheet")
	}
	if s.fever, err = p.source.LoadSheet(paths.ARIFeverPath(), health.SheetFever); err != nil {
		return s, apperrors.Wrap(err, "failed to load Fever sheet")
	}

	if _, statErr := os.Stat(paths.SizePath()); statErr == nil {
		if s.size, err = p.source.LoadSheet(paths.SizePath(), health.SheetBirthweight); err != nil {
			manifest.Warn(fmt.Sprintf("could not load birth weight sheet: %v", err))
			s.size = nil
		} else {
			manifest.Inputs = append(manifest.Inputs, paths.SizeFile)
		}
	} else {
		manifest.Warn(fmt.Sprintf("birth weight workbook not found: %s", paths.SizePath()))
	}

	return s, nil
}

func (p *Pipeline) logKeyIndicators(res *health.Results) {
	for _, m := range res.Morbidities() {
		p.log.Info("[Extract] %s: %.1f%% prevalence, %.1f%% treatment", m.Condition, m.Prevalence, m.Treatment)
	}
	p.log.Debug("[Extract] regional rows: %d, age bands: %d", len(res.Regional), len(res.DiarrheaByAge))
}
