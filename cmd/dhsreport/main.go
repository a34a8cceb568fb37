package main

import (
	"fmt"
	"os"

	"dhsreport/adapters/chart"
	"dhsreport/adapters/excel"
	"dhsreport/app"
	"dhsreport/internal"
	"dhsreport/internal/config"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	// .env is optional; environment variables win either way.
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "dhsreport",
		Short: "Cameroon DHS 2018 child health analysis pipeline",
		Long: `Reads the pre-tabulated DHS 2018 survey workbooks, extracts the
child health indicators (morbidity, treatment-seeking, feeding
practices, birth weight), and writes charts, a narrative report and a
run manifest to the output directory.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPipeline(cmd)
		},
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runPipeline(cmd *cobra.Command) error {
	cfg := config.Load()
	log := internal.NewDefaultLogger()

	source := excel.NewWorkbookReader()
	renderer := chart.NewRenderer(cfg.Paths.OutputDir, chart.DefaultPalette(),
		cfg.Charts.WidthInches, cfg.Charts.HeightInches)

	pipeline := app.NewPipeline(cfg, source, renderer, log)
	manifest, err := pipeline.Run(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Printf("Run %s complete: %d artifacts in %s\n",
		manifest.RunID, len(manifest.Artifacts), cfg.Paths.OutputDir)
	return nil
}
