package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mocktool/mocktool/pkg/prototemplate"
)

// CheckOutput is one file's report in --json output.
type CheckOutput struct {
	File string `json:"file"`
	*prototemplate.CheckResult
	// LenientMessages lists what the template extractor found, for
	// comparison with the strict compiler.
	LenientMessages []string `json:"lenientMessages"`
}

var checkCmd = &cobra.Command{
	Use:   "check <file|glob>...",
	Short: "Compile .proto files strictly and report diagnostics",
	Long: `Compile each file with a full protobuf compiler and report every error and
warning with its position. Imports of google/protobuf/*.proto resolve; other
imports are reported as errors because each file is checked on its own.

The template extractor never depends on this check; it is a lint for files
that are meant to be valid protobuf. Exits non-zero when any file has errors.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	log := commandLogger(cmd)

	files, err := prototemplate.LoadFiles(args)
	if err != nil {
		return err
	}

	reports := make([]CheckOutput, 0, len(files))
	failed := 0
	for _, f := range files {
		res, err := prototemplate.Check(cmd.Context(), f.Path, f.Content)
		if err != nil {
			return err
		}
		if !res.Valid {
			failed++
		}
		log.Debug("checked file", "file", f.Path, "valid", res.Valid, "diagnostics", len(res.Diagnostics))
		reports = append(reports, CheckOutput{
			File:            f.Path,
			CheckResult:     res,
			LenientMessages: f.Parse().MessageNames(),
		})
	}

	if err := printResult(cmd, reports, func(w io.Writer) {
		for _, r := range reports {
			for _, d := range r.Diagnostics {
				_, _ = fmt.Fprintln(w, d.String())
			}
			if r.Valid {
				_, _ = fmt.Fprintf(w, "%s: ok (%d messages: %s)\n", r.File, len(r.Messages), strings.Join(r.Messages, ", "))
			}
		}
	}); err != nil {
		return err
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d files", ErrCheckFailed, failed, len(files))
	}
	return nil
}
