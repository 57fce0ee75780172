package cli

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/mocktool/mocktool/pkg/admin"
	"github.com/mocktool/mocktool/pkg/cliconfig"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the template HTTP API (foreground)",
	Long: `Serve the proto template API so the mock tool UI and other services can
extract templates without shelling out. Stops gracefully on SIGINT or SIGTERM.

Routes are mounted under ` + admin.BasePath + `.`,
	Example: `  mocktool serve
  mocktool serve --port 5000 --log-format json`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "Listen port (overrides adminPort)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	if cmd.Flags().Changed("port") {
		cliconfig.MergeConfig(cfg, &cliconfig.Config{AdminPort: servePort}, cliconfig.SourceFlag)
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	api := admin.NewAPI(cfg.AdminPort,
		admin.WithLogger(commandLogger(cmd)),
		admin.WithMaxUploadBytes(cfg.MaxUploadBytes),
		admin.WithTimeouts(
			time.Duration(cfg.ReadTimeout)*time.Second,
			time.Duration(cfg.WriteTimeout)*time.Second,
		),
		admin.WithVersion(Version),
	)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return api.ListenAndServe(ctx)
}
