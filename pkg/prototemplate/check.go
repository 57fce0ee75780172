package prototemplate

import (
	"context"
	"errors"
	"fmt"

	"github.com/bufbuild/protocompile"
	"github.com/bufbuild/protocompile/reporter"
	"google.golang.org/protobuf/reflect/protoreflect"
)

// Severity classifies a Diagnostic.
type Severity string

// Diagnostic severities.
const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Diagnostic is one problem reported by the strict compiler.
type Diagnostic struct {
	Severity Severity `json:"severity"`
	File     string   `json:"file"`
	Line     int      `json:"line"`
	Column   int      `json:"column"`
	Message  string   `json:"message"`
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s:%d:%d: %s: %s", d.File, d.Line, d.Column, d.Severity, d.Message)
}

// CheckResult is the outcome of a strict compile.
type CheckResult struct {
	Valid       bool         `json:"valid"`
	Diagnostics []Diagnostic `json:"diagnostics,omitempty"`

	// Messages lists the fully-qualified message names the compiler
	// resolved. Empty when compilation failed.
	Messages []string `json:"messages,omitempty"`
}

// Check compiles src as a complete .proto file named filename. Imports of
// the standard google/protobuf files resolve; any other import fails.
// Source errors are reported in the result rather than returned.
func Check(ctx context.Context, filename, src string) (*CheckResult, error) {
	if filename == "" {
		filename = "input.proto"
	}

	result := &CheckResult{}
	rep := reporter.NewReporter(
		func(err reporter.ErrorWithPos) error {
			result.Diagnostics = append(result.Diagnostics, newDiagnostic(SeverityError, err))
			return nil
		},
		func(err reporter.ErrorWithPos) {
			result.Diagnostics = append(result.Diagnostics, newDiagnostic(SeverityWarning, err))
		},
	)

	compiler := protocompile.Compiler{
		Resolver: protocompile.WithStandardImports(&protocompile.SourceResolver{
			Accessor: protocompile.SourceAccessorFromMap(map[string]string{
				filename: src,
			}),
		}),
		Reporter: rep,
	}

	files, err := compiler.Compile(ctx, filename)
	if err != nil {
		if errors.Is(err, reporter.ErrInvalidSource) {
			return result, nil
		}
		return nil, fmt.Errorf("compile %s: %w", filename, err)
	}

	result.Valid = true
	for _, f := range files {
		collectMessageNames(f.Messages(), &result.Messages)
	}
	return result, nil
}

func newDiagnostic(sev Severity, err reporter.ErrorWithPos) Diagnostic {
	pos := err.GetPosition()
	msg := err.Error()
	if inner := err.Unwrap(); inner != nil {
		msg = inner.Error()
	}
	return Diagnostic{
		Severity: sev,
		File:     pos.Filename,
		Line:     pos.Line,
		Column:   pos.Col,
		Message:  msg,
	}
}

func collectMessageNames(msgs protoreflect.MessageDescriptors, out *[]string) {
	for i := 0; i < msgs.Len(); i++ {
		md := msgs.Get(i)
		if md.IsMapEntry() {
			continue
		}
		*out = append(*out, string(md.FullName()))
		collectMessageNames(md.Messages(), out)
	}
}
