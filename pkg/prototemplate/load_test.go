package prototemplate

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestLoadFiles_Globs(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.proto"), `message A { string a = 1; }`)
	writeFile(t, filepath.Join(dir, "nested", "deep", "b.proto"), `message B { int32 b = 1; }`)
	writeFile(t, filepath.Join(dir, "notes.txt"), `message Ignored {}`)

	files, err := LoadFiles([]string{
		filepath.Join(dir, "**", "*.proto"),
		filepath.Join(dir, "a.proto"),
	})
	require.NoError(t, err)
	require.Len(t, files, 2)

	assert.Equal(t, filepath.Join(dir, "a.proto"), files[0].Path)
	assert.Equal(t, filepath.Join(dir, "nested", "deep", "b.proto"), files[1].Path)
	assert.Equal(t, []string{"B"}, files[1].Parse().MessageNames())
}

func TestLoadFiles_NoMatches(t *testing.T) {
	dir := t.TempDir()
	_, err := LoadFiles([]string{filepath.Join(dir, "*.proto")})
	assert.ErrorIs(t, err, ErrNoProtoFiles)
}

func TestLoadFiles_MissingPlainPath(t *testing.T) {
	_, err := LoadFiles([]string{filepath.Join(t.TempDir(), "missing.proto")})
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
