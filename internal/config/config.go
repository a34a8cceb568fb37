package config

import (
	"os"
	"path/filepath"
)

// Config represents the complete application configuration. It is built
// once in main and passed to each stage; no stage reads process-wide
// state.
type Config struct {
	Paths  PathConfig
	Charts ChartConfig
}

// PathConfig holds input and output locations
type PathConfig struct {
	InputDir     string
	OutputDir    string
	DiarrheaFile string // Diarrhea, Feeding, ORS sheets
	ARIFeverFile string // ARI, Fever sheets
	SizeFile     string // Size_birthweight sheet
}

// ChartConfig holds the visual style shared by every chart
type ChartConfig struct {
	WidthInches  float64
	HeightInches float64
}

// Load reads configuration from environment variables, applying the
// survey-release defaults for anything unset.
func Load() *Config {
	cfg := &Config{
		Paths: PathConfig{
			InputDir:     envOr("DHS_INPUT_DIR", "user_input_files"),
			OutputDir:    envOr("DHS_OUTPUT_DIR", "output"),
			DiarrheaFile: envOr("DHS_DIARRHEA_FILE", "Tables_DIAR.xlsx"),
			ARIFeverFile: envOr("DHS_ARI_FEVER_FILE", "Tables_ARI_FV.xlsx"),
			SizeFile:     envOr("DHS_SIZE_FILE", "Tables_Size.xlsx"),
		},
		Charts: ChartConfig{
			WidthInches:  10,
			HeightInches: 6,
		},
	}
	return cfg
}

// DiarrheaPath returns the full path to the diarrhea workbook.
func (p PathConfig) DiarrheaPath() string {
	return filepath.Join(p.InputDir, p.DiarrheaFile)
}

// ARIFeverPath returns the full path to the ARI/fever workbook.
func (p PathConfig) ARIFeverPath() string {
	return filepath.Join(p.InputDir, p.ARIFeverFile)
}

// SizePath returns the full path to the birth-size workbook.
func (p PathConfig) SizePath() string {
	return filepath.Join(p.InputDir, p.SizeFile)
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
