package cmd

import (
	"github.com/spf13/cobra"

	"github.com/gostrap/cli/internal/config"
	"github.com/gostrap/cli/internal/output"
)

var (
	// Global flags
	configFlag     string
	verboseFlag    bool
	timestampsFlag bool

	// Loaded configuration (populated during PersistentPreRunE)
	loadedConfig *config.Config
)

// NewRootCmd creates the root command for the gostrap CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "gostrap",
		Short:         "Scaffold Go backend services",
		Long:          `gostrap scaffolds a new Go backend service: directory skeleton, health endpoint stubs, environment template, container files, and build automation.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initializeGlobals(cmd)
		},
	}

	// Add global flags
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Path to config file (env: GOSTRAP_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&timestampsFlag, "timestamps", false, "Show timestamps in log output")

	// Add subcommands
	rootCmd.AddCommand(NewNewCmd())
	rootCmd.AddCommand(NewTemplatesCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// initializeGlobals loads configuration and sets up logging.
func initializeGlobals(cmd *cobra.Command) error {
	cfg, err := config.NewLoader().LoadWithDefaults(configFlag)
	if err != nil {
		// Commands that don't need config still work; fall back to defaults.
		output.Debug("config load error", "error", err)
		cfg = (&config.Config{}).WithDefaults()
	}
	loadedConfig = cfg

	// Timestamps precedence: flag (if explicitly set) > config > default (false)
	logCfg := output.LogConfig{
		Verbose: verboseFlag,
	}
	if cmd.Flags().Changed("timestamps") {
		logCfg.Timestamps = output.BoolPtr(timestampsFlag)
	} else if cfg.Log.Timestamps != nil {
		logCfg.Timestamps = cfg.Log.Timestamps
	}

	output.SetupLogging(logCfg)

	if verboseFlag {
		output.Debug("initializing CLI",
			"config", configFlag,
			"modulePrefix", cfg.ModulePrefix,
			"template", cfg.Template,
			"skipTools", cfg.SkipTools,
			"toolTimeout", cfg.ToolTimeout,
		)
	}

	return nil
}

// GetConfig returns the loaded configuration, falling back to defaults when a
// command is executed outside the root (tests do this).
func GetConfig() *config.Config {
	if loadedConfig != nil {
		return loadedConfig
	}
	return (&config.Config{}).WithDefaults()
}
