package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mocktool/mocktool/pkg/cli/internal/output"
	"github.com/mocktool/mocktool/pkg/prototemplate"
)

// TemplateOutput is one template in --json output. JSON holds the template
// text exactly as generated.
type TemplateOutput struct {
	File string `json:"file"`
	Name string `json:"name"`
	JSON string `json:"json"`
}

var templatesMessage string

var templatesCmd = &cobra.Command{
	Use:   "templates <file|glob>...",
	Short: "Print a JSON template for every message in .proto files",
	Long: `Extract every message from the given .proto files and print a sample JSON
document for each one. Scalars get zero values, enums their lowest-numbered
value, repeated fields a one-element array and map fields a single "key"
entry. Recursive messages are expanded to a fixed depth.

Arguments may be files or doublestar globs such as 'protos/**/*.proto'.`,
	Example: `  # All templates in one file
  mocktool templates user.proto

  # A single message from a tree of files
  mocktool templates 'protos/**/*.proto' --message GetUserResponse

  # Machine-readable output
  mocktool templates user.proto --json`,
	Args: cobra.MinimumNArgs(1),
	RunE: runTemplates,
}

func init() {
	templatesCmd.Flags().StringVarP(&templatesMessage, "message", "m", "", "Only print the named message")
	rootCmd.AddCommand(templatesCmd)
}

func runTemplates(cmd *cobra.Command, args []string) error {
	log := commandLogger(cmd)

	files, err := prototemplate.LoadFiles(args)
	if err != nil {
		return err
	}

	results := make([]TemplateOutput, 0)
	for _, f := range files {
		schema := f.Parse()
		templates := schema.Templates()
		log.Debug("parsed file", "file", f.Path, "messages", len(templates))
		if len(templates) == 0 {
			output.Warn(cmd.ErrOrStderr(), "%s: no messages found", f.Path)
		}

		for _, tmpl := range templates {
			if templatesMessage != "" && tmpl.Name != templatesMessage {
				continue
			}
			results = append(results, TemplateOutput{
				File: f.Path,
				Name: tmpl.Name,
				JSON: tmpl.JSON,
			})
		}
	}

	if templatesMessage != "" && len(results) == 0 {
		return fmt.Errorf("%w: %s", prototemplate.ErrMessageNotFound, templatesMessage)
	}

	return printResult(cmd, results, func(w io.Writer) {
		if len(results) == 0 {
			_, _ = fmt.Fprintln(w, "No messages found.")
			return
		}
		for i, r := range results {
			if i > 0 {
				_, _ = fmt.Fprintln(w)
			}
			_, _ = fmt.Fprintf(w, "// %s (%s)\n%s\n", r.Name, r.File, r.JSON)
		}
	})
}
