package run

import (
	"encoding/json"
	"os"
	"path/filepath"

	"dhsreport/domain/core"
	"dhsreport/domain/indicator"
)

// Manifest is the audit record of one pipeline invocation: which
// indicator lookups resolved against real sheet data, which degraded to
// registered defaults, and which artifacts were written. Tests and
// reviewers use it to tell real data from placeholder data.
type Manifest struct {
	RunID       core.RunID             `json:"run_id"`
	StartedAt   core.Timestamp         `json:"started_at"`
	FinishedAt  core.Timestamp         `json:"finished_at"`
	Inputs      []string               `json:"inputs"`
	Resolutions []indicator.Resolution `json:"resolutions"`
	Warnings    []string               `json:"warnings"`
	Artifacts   []string               `json:"artifacts"`
}

// NewManifest starts a manifest for a fresh run.
func NewManifest() *Manifest {
	return &Manifest{
		RunID:     core.NewRunID(),
		StartedAt: core.Now(),
	}
}

// Record appends the outcome of one sheet's resolution pass.
func (m *Manifest) Record(res *indicator.Resolved) {
	m.Resolutions = append(m.Resolutions, res.Records...)
	m.Warnings = append(m.Warnings, res.Warnings...)
}

// Warn appends a free-form warning.
func (m *Manifest) Warn(msg string) {
	m.Warnings = append(m.Warnings, msg)
}

// AddArtifact registers an output file written by the run.
func (m *Manifest) AddArtifact(path string) {
	m.Artifacts = append(m.Artifacts, filepath.Base(path))
}

// DefaultsUsed lists the logical names whose value is a registered
// default rather than a cell read from a sheet.
func (m *Manifest) DefaultsUsed() []string {
	var names []string
	for _, r := range m.Resolutions {
		if r.UsedDefault {
			names = append(names, r.Name)
		}
	}
	return names
}

// Write finalizes the manifest and writes it as JSON.
func (m *Manifest) Write(path string) error {
	m.FinishedAt = core.Now()
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
