// Package parse provides string parsing utilities for CLI flags.
package parse

import "strings"

// KeyValue splits s at the first of the given delimiters (default ':').
func KeyValue(s string, delimiters ...rune) (key, value string, ok bool) {
	if len(delimiters) == 0 {
		delimiters = []rune{':'}
	}
	i := strings.IndexFunc(s, func(r rune) bool {
		for _, d := range delimiters {
			if r == d {
				return true
			}
		}
		return false
	})
	if i < 0 {
		return "", "", false
	}
	return s[:i], s[i+1:], true
}

// Headers parses "Key: Value" strings into a map. Keys and values are
// trimmed; entries without a colon or with an empty key are skipped.
func Headers(headers []string) map[string]string {
	result := make(map[string]string, len(headers))
	for _, h := range headers {
		key, value, ok := KeyValue(h, ':')
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			continue
		}
		result[key] = strings.TrimSpace(value)
	}
	return result
}
