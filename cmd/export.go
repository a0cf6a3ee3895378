package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/glitchlab/faultdeck/internal"
	"github.com/glitchlab/faultdeck/logging"
)

var (
	exportFormat    string
	exportOutput    string
	exportOverwrite bool
	exportCount     int
)

var exportCmd = &cobra.Command{
	Use:   "export [output-file]",
	Short: "Generate errors headless and export the history",
	Long: `Populate the engine with generated errors without opening the TUI,
then write the history snapshot to a file. By default the built-in demo
script is replayed; --count replaces it with N random errors.

Examples:
  faultdeck export                          # demo script, JSON, timestamped file
  faultdeck export history.csv -f csv       # CSV to an explicit path
  faultdeck export --count 50 --seed 7      # 50 reproducible random errors`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfiguration(cmd)
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		logging.InitLogger(cfg.App.LogLevel, cfg.App.LogFile)

		if len(args) > 0 {
			exportOutput = args[0]
		}

		coordinator := newHeadlessCoordinator(cfg.Engine.Seed, true)
		if exportCount > 0 {
			for i := 0; i < exportCount; i++ {
				coordinator.GenerateAndDisplayRandomError()
			}
			coordinator.DismissCurrentError()
		} else {
			coordinator.RunDemo(context.Background(), 0)
		}

		exporter, err := internal.NewExporter(cfg)
		if err != nil {
			return err
		}

		result, err := exporter.Export(coordinator.Export(), internal.ExportOptions{
			Format:     exportFormat,
			OutputFile: exportOutput,
			Overwrite:  exportOverwrite,
		})
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		fmt.Printf("Export completed successfully:\n")
		fmt.Printf("  File: %s\n", result.OutputFile)
		fmt.Printf("  Format: %s\n", result.Format)
		fmt.Printf("  Records: %d\n", result.RecordCount)
		fmt.Printf("  Size: %d bytes\n", result.FileSize)
		fmt.Printf("  Duration: %v\n", result.Duration)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "", "export format (json, csv, yaml)")
	exportCmd.Flags().BoolVar(&exportOverwrite, "overwrite", false, "overwrite the output file if it exists")
	exportCmd.Flags().IntVar(&exportCount, "count", 0, "generate N random errors instead of the demo script")

	rootCmd.AddCommand(exportCmd)
}
