// Package cli implements the mocktool command line.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mocktool/mocktool/pkg/cli/internal/output"
	"github.com/mocktool/mocktool/pkg/cliconfig"
	"github.com/mocktool/mocktool/pkg/logging"
)

var (
	// Persistent flags available to all subcommands
	jsonOutput    bool
	configPath    string
	logLevelFlag  string
	logFormatFlag string

	// Resolved by PersistentPreRunE before any subcommand runs
	cfg    = cliconfig.NewDefault()
	logger = logging.Nop()

	// Version is injected during build
	Version = "dev"
	// Commit is injected during build
	Commit = "none"
	// BuildDate is injected during build
	BuildDate = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "mocktool",
	Short: "mocktool turns .proto files into JSON mock templates",
	Long: `mocktool reads Protocol Buffers schema files and produces a sample JSON
document for every message, ready to paste into a mock API definition.

Configuration can be provided via flags, MOCKTOOL_* environment variables,
a local .mocktoolrc.yaml, or $XDG_CONFIG_HOME/mocktool/config.yaml.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadRuntimeConfig,
}

// Execute runs the root command. It is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output command results in JSON format")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: ./.mocktoolrc.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFormatFlag, "log-format", "", "Log format: text, json")
}

// loadRuntimeConfig merges every config source, applies flag overrides and
// builds the logger shared by all commands.
func loadRuntimeConfig(cmd *cobra.Command, _ []string) error {
	loaded, err := cliconfig.LoadAll(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	cliconfig.MergeConfig(loaded, &cliconfig.Config{
		LogLevel:  logLevelFlag,
		LogFormat: logFormatFlag,
	}, cliconfig.SourceFlag)
	if err := loaded.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	cfg = loaded
	logger = logging.New(logging.Config{
		Level:  logging.ParseLevel(cfg.LogLevel),
		Format: logging.ParseFormat(cfg.LogFormat),
		Output: cmd.ErrOrStderr(),
	})
	logger.Debug("config loaded", "sources", cfg.Sources)
	return nil
}

// printResult writes data as JSON when --json is set, otherwise calls
// textFn. Only JSON goes to stdout in --json mode.
func printResult(cmd *cobra.Command, data any, textFn func(w io.Writer)) error {
	if jsonOutput {
		return output.JSON(cmd.OutOrStdout(), data)
	}
	textFn(cmd.OutOrStdout())
	return nil
}

// commandLogger returns the shared logger tagged with the command name.
func commandLogger(cmd *cobra.Command) *slog.Logger {
	return logging.Component(logger, cmd.Name())
}
