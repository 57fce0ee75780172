package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/mocktool/mocktool/pkg/cli/internal/parse"
	"github.com/mocktool/mocktool/pkg/mockapi"
	"github.com/mocktool/mocktool/pkg/prototemplate"
)

// publishFlags holds the flags of the publish command.
type publishFlags struct {
	input       string
	output      string
	feature     string
	scenario    string
	name        string
	description string
	path        string
	method      string
	headers     []string
	latency     int64
	inactive    bool
	dryRun      bool
	backendURL  string
	timeout     time.Duration
}

var publishFlagVals publishFlags

var publishCmd = &cobra.Command{
	Use:   "publish <file|glob>...",
	Short: "Create a mock API from selected message templates",
	Long: `Build a mock API definition whose input and output are the JSON templates of
the chosen messages, then submit it to the mock tool backend.

The templates are copied unchanged. Edit them afterwards in the mock tool
if the zero values are not what the mock should return.`,
	Example: `  mocktool publish user.proto --output GetUserResponse --input GetUserRequest \
    --feature users --scenario found --name get_user --path /users/1 --method GET

  # Print the request instead of sending it
  mocktool publish user.proto --output GetUserResponse --feature users \
    --scenario found --name get_user --path /users/1 --dry-run`,
	Args: cobra.MinimumNArgs(1),
	RunE: runPublish,
}

func init() {
	f := publishCmd.Flags()
	f.StringVar(&publishFlagVals.input, "input", "", "Message whose template becomes the request body")
	f.StringVar(&publishFlagVals.output, "output", "", "Message whose template becomes the response body (required)")
	f.StringVar(&publishFlagVals.feature, "feature", "", "Feature name (required)")
	f.StringVar(&publishFlagVals.scenario, "scenario", "", "Scenario name (required)")
	f.StringVar(&publishFlagVals.name, "name", "", "Mock API name (required)")
	f.StringVar(&publishFlagVals.description, "description", "", "Free-text description")
	f.StringVar(&publishFlagVals.path, "path", "", "Request path, e.g. /users/1 (required)")
	f.StringVar(&publishFlagVals.method, "method", "GET", "HTTP method")
	f.StringArrayVarP(&publishFlagVals.headers, "header", "H", nil, "Header to match, as 'Key: Value' (repeatable)")
	f.Int64Var(&publishFlagVals.latency, "latency", 0, "Artificial latency in milliseconds")
	f.BoolVar(&publishFlagVals.inactive, "inactive", false, "Create the mock API disabled")
	f.BoolVar(&publishFlagVals.dryRun, "dry-run", false, "Print the request without sending it")
	f.StringVar(&publishFlagVals.backendURL, "backend-url", "", "Backend base URL (overrides config)")
	f.DurationVar(&publishFlagVals.timeout, "timeout", 30*time.Second, "Backend request timeout")
	_ = publishCmd.MarkFlagRequired("output")
	rootCmd.AddCommand(publishCmd)
}

func runPublish(cmd *cobra.Command, args []string) error {
	log := commandLogger(cmd)
	fv := publishFlagVals

	files, err := prototemplate.LoadFiles(args)
	if err != nil {
		return err
	}

	sel := &mockapi.Selection{}
	for _, pick := range []struct {
		role    mockapi.Role
		message string
	}{{mockapi.RoleInput, fv.input}, {mockapi.RoleOutput, fv.output}} {
		if pick.message == "" {
			continue
		}
		schema, err := findSchema(files, pick.message)
		if err != nil {
			return fmt.Errorf("%s: %w", pick.role, err)
		}
		tmpl, err := schema.Template(pick.message)
		if err != nil {
			return err
		}
		if err := sel.Select(pick.role, tmpl); err != nil {
			return err
		}
	}

	req := &mockapi.Request{
		FeatureName:  fv.feature,
		ScenarioName: fv.scenario,
		Name:         fv.name,
		Description:  fv.description,
		Path:         fv.path,
		Method:       fv.method,
		IsActive:     !fv.inactive,
		Latency:      fv.latency,
	}
	if len(fv.headers) > 0 {
		headers, err := json.Marshal(parse.Headers(fv.headers))
		if err != nil {
			return err
		}
		req.Headers = headers
	}
	sel.Apply(req)

	if err := req.Validate(); err != nil {
		return err
	}

	if fv.dryRun {
		return printResult(cmd, req, func(w io.Writer) {
			data, _ := json.MarshalIndent(req, "", "  ")
			_, _ = fmt.Fprintln(w, string(data))
		})
	}

	backendURL := cfg.BackendURL
	if fv.backendURL != "" {
		backendURL = fv.backendURL
	}
	client := mockapi.NewClient(backendURL,
		mockapi.WithTimeout(fv.timeout),
		mockapi.WithToken(cfg.APIKey),
	)

	ctx, cancel := context.WithTimeout(cmd.Context(), fv.timeout)
	defer cancel()

	log.Info("publishing mock API", "backend", backendURL, "feature", req.FeatureName, "name", req.Name)
	resp, err := client.CreateMockAPI(ctx, req)
	if err != nil {
		return fmt.Errorf("publishing mock API: %w", err)
	}

	return printResult(cmd, resp, func(w io.Writer) {
		_, _ = fmt.Fprintf(w, "Created mock API %s/%s/%s (%s %s)\n",
			req.FeatureName, req.ScenarioName, req.Name, req.Method, req.Path)
	})
}
