package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/mocktool/mocktool/pkg/cliconfig"
	"github.com/mocktool/mocktool/pkg/logging"
)

const userProto = `syntax = "proto3";

package users.v1;

enum Role {
  ROLE_UNSPECIFIED = 0;
  ROLE_ADMIN = 1;
}

message GetUserRequest {
  string id = 1;
}

message GetUserResponse {
  string id = 1;
  Role role = 2;
  repeated string emails = 3;
}
`

type cliResult struct {
	stdout string
	stderr string
	err    error
}

// runCLI executes the root command in an isolated config environment.
func runCLI(t *testing.T, stdin string, args ...string) cliResult {
	t.Helper()

	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())
	for _, key := range []string{
		cliconfig.EnvAdminPort, cliconfig.EnvBackendURL, cliconfig.EnvAPIKey,
		cliconfig.EnvLogLevel, cliconfig.EnvLogFormat, cliconfig.EnvMaxUploadBytes,
	} {
		if _, set := os.LookupEnv(key); !set {
			t.Setenv(key, "")
		}
	}

	resetFlags(rootCmd)
	cfg = cliconfig.NewDefault()
	logger = logging.Nop()

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetIn(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return cliResult{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

// resetFlags restores every flag to its default so package-level flag
// variables do not leak between test runs.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func writeProto(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}
