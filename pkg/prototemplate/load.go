package prototemplate

import (
	"fmt"
	"os"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// SourceFile is a proto document read from disk.
type SourceFile struct {
	Path    string
	Content string
}

// Parse parses the file's content.
func (f SourceFile) Parse() *Schema {
	return Parse(f.Content)
}

// LoadFiles expands each pattern (plain paths, filepath globs, or ** globs)
// and reads the matching files. Paths are de-duplicated and sorted.
// A plain path that does not exist is an error; a glob that matches nothing
// is not, but ErrNoProtoFiles is returned if no pattern matched anything.
func LoadFiles(patterns []string) ([]SourceFile, error) {
	seen := make(map[string]bool)
	var paths []string

	for _, pattern := range patterns {
		matches, err := expandPattern(pattern)
		if err != nil {
			return nil, err
		}
		for _, m := range matches {
			if seen[m] {
				continue
			}
			seen[m] = true
			paths = append(paths, m)
		}
	}
	if len(paths) == 0 {
		return nil, ErrNoProtoFiles
	}
	sort.Strings(paths)

	files := make([]SourceFile, 0, len(paths))
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", p, err)
		}
		files = append(files, SourceFile{Path: p, Content: string(data)})
	}
	return files, nil
}

func expandPattern(pattern string) ([]string, error) {
	if !doublestar.ValidatePathPattern(pattern) {
		return nil, fmt.Errorf("invalid pattern %q", pattern)
	}
	matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("expanding %s: %w", pattern, err)
	}
	if len(matches) == 0 && !hasMeta(pattern) {
		if _, err := os.Stat(pattern); err != nil {
			return nil, fmt.Errorf("reading %s: %w", pattern, err)
		}
	}
	return matches, nil
}

func hasMeta(pattern string) bool {
	for i := 0; i < len(pattern); i++ {
		switch pattern[i] {
		case '*', '?', '[', '{':
			return true
		}
	}
	return false
}
