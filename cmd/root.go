package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/glitchlab/faultdeck/config"
	"github.com/glitchlab/faultdeck/internal"
	"github.com/glitchlab/faultdeck/logging"
)

var (
	cfgFile    string
	logLevel   string
	noColor    bool
	debug      bool
	verbose    bool
	uiTheme    string
	uiRefresh  time.Duration
	engineSeed int64
	noLatency  bool
	scenario   string
	background bool
)

var rootCmd = &cobra.Command{
	Use:   "faultdeck",
	Short: "Mock error simulation and recovery TUI",
	Long: `faultdeck is a terminal playground for error-handling flows.

It generates realistic mock errors across categories like network,
validation and permission failures, walks multi-step recovery flows with
probabilistic outcomes, and tracks statistics and insights over the
session. Use it to demo, exercise, or screenshot error-handling UX
without breaking anything real.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfiguration(cmd)
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		if background {
			cfg.UI.CompactMode = true
		}

		logging.InitLogger(cfg.App.LogLevel, cfg.App.LogFile)

		app, err := internal.NewApplication(cfg)
		if err != nil {
			return fmt.Errorf("failed to create application: %w", err)
		}

		if path := resolveConfigPath(); path != "" {
			app.WatchConfig(path)
		}

		if verbose {
			fmt.Fprintf(os.Stderr, "Starting faultdeck...\n")
		}

		return app.Run()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./faultdeck.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug mode")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().Int64Var(&engineSeed, "seed", 0, "fixed random seed for reproducible runs (0 = random)")
	rootCmd.PersistentFlags().BoolVar(&noLatency, "no-latency", false, "disable simulated recovery latency")

	// Root command flags
	rootCmd.Flags().StringVarP(&uiTheme, "theme", "t", "", "UI theme (dark, light, high-contrast)")
	rootCmd.Flags().DurationVarP(&uiRefresh, "refresh", "r", 0, "UI refresh interval (e.g. 1s, 500ms)")
	rootCmd.Flags().StringVar(&scenario, "scenario", "", "scenario to autostart (network_outage, permission_storm, validation_flood, mixed_chaos)")
	rootCmd.Flags().BoolVar(&background, "background", false, "run headless (no TUI)")
}

// loadConfiguration builds the effective config from defaults, file,
// environment and command line flags, in ascending precedence.
func loadConfiguration(cmd *cobra.Command) (*config.Config, error) {
	loader := config.NewLoader()

	if path := resolveConfigPath(); path != "" {
		loader.AddSource(config.NewFileSource(path))
	}

	loader.AddSource(config.NewEnvSource("FAULTDECK"))
	loader.AddSource(config.NewFlagSource(cmd.Flags()))
	loader.AddValidator(config.NewStandardValidator())

	cfg, err := loader.LoadWithDefaults()
	if err != nil {
		return nil, err
	}

	if debug {
		cfg.Debug.Enabled = true
		cfg.App.LogLevel = "debug"
	}

	return cfg, nil
}

// resolveConfigPath returns the config file in effect: the --config flag
// when set, otherwise the first standard location that exists.
func resolveConfigPath() string {
	if cfgFile != "" {
		return cfgFile
	}
	for _, path := range config.ConfigPaths() {
		if _, err := os.Stat(os.ExpandEnv(path)); err == nil {
			return path
		}
	}
	return ""
}
