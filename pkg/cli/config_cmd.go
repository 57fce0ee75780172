package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mocktool/mocktool/pkg/cli/internal/output"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the resolved configuration",
	Long: `Print every configuration value together with where it came from:
default, global, local, env or flag. The API key is never printed.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

type configRow struct {
	key   string
	value string
}

func runConfig(cmd *cobra.Command, _ []string) error {
	apiKey := ""
	if cfg.APIKey != "" {
		apiKey = "(set)"
	}
	rows := []configRow{
		{"adminPort", strconv.Itoa(cfg.AdminPort)},
		{"backendUrl", cfg.BackendURL},
		{"apiKey", apiKey},
		{"maxUploadBytes", strconv.FormatInt(cfg.MaxUploadBytes, 10)},
		{"readTimeout", strconv.Itoa(cfg.ReadTimeout)},
		{"writeTimeout", strconv.Itoa(cfg.WriteTimeout)},
		{"logLevel", cfg.LogLevel},
		{"logFormat", cfg.LogFormat},
	}

	return printResult(cmd, cfg, func(w io.Writer) {
		tw := output.Table(w)
		_, _ = fmt.Fprintln(tw, "KEY\tVALUE\tSOURCE")
		for _, r := range rows {
			source := cfg.Sources[r.key]
			if source == "" {
				source = "-"
			}
			_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\n", r.key, r.value, source)
		}
		_ = tw.Flush()
	})
}
