package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mocktool/mocktool/pkg/prototemplate"
)

var (
	validateMessage string
	validatePayload string
)

var validateCmd = &cobra.Command{
	Use:   "validate <file|glob>",
	Short: "Check a JSON payload against a message in a .proto file",
	Long: `Validate a JSON document against the shape of a proto message. The check
follows proto3 JSON conventions: fields may use their declared or
lowerCamelCase names, any field may be null, enums may be names or numbers,
integers may be quoted, and unknown fields are rejected.

--payload takes literal JSON, @path to read a file, or - to read stdin.`,
	Example: `  mocktool validate user.proto --message User --payload '{"id":"u1"}'
  mocktool validate user.proto -m User --payload @fixtures/user.json
  cat user.json | mocktool validate user.proto -m User --payload -`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().StringVarP(&validateMessage, "message", "m", "", "Message to validate against (required)")
	validateCmd.Flags().StringVarP(&validatePayload, "payload", "p", "", "JSON payload, @file, or - for stdin (required)")
	_ = validateCmd.MarkFlagRequired("message")
	_ = validateCmd.MarkFlagRequired("payload")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	files, err := prototemplate.LoadFiles(args)
	if err != nil {
		return err
	}
	payload, err := readPayload(cmd.InOrStdin(), validatePayload)
	if err != nil {
		return err
	}

	schema, err := findSchema(files, validateMessage)
	if err != nil {
		return err
	}
	res, err := schema.ValidatePayload(validateMessage, payload)
	if err != nil {
		return err
	}

	if err := printResult(cmd, res, func(w io.Writer) {
		if res.Valid {
			_, _ = fmt.Fprintf(w, "valid %s\n", validateMessage)
			return
		}
		for _, e := range res.Errors {
			field := e.Field
			if field == "" {
				field = "(root)"
			}
			_, _ = fmt.Fprintf(w, "%s: %s\n", field, e.Message)
		}
	}); err != nil {
		return err
	}

	if !res.Valid {
		return fmt.Errorf("%w %s: %d errors", ErrPayloadInvalid, validateMessage, len(res.Errors))
	}
	return nil
}

// findSchema returns the parsed schema of the first file that declares
// message.
func findSchema(files []prototemplate.SourceFile, message string) (*prototemplate.Schema, error) {
	for _, f := range files {
		schema := f.Parse()
		if _, ok := schema.Message(message); ok {
			return schema, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", prototemplate.ErrMessageNotFound, message)
}

// readPayload resolves the --payload flag forms.
func readPayload(stdin io.Reader, value string) ([]byte, error) {
	switch {
	case value == "-":
		return io.ReadAll(stdin)
	case strings.HasPrefix(value, "@"):
		return os.ReadFile(strings.TrimPrefix(value, "@"))
	default:
		return []byte(value), nil
	}
}
