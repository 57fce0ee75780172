package prototemplate

import (
	"regexp"
	"strings"
)

var (
	lineCommentPattern  = regexp.MustCompile(`//[^\n]*`)
	blockCommentPattern = regexp.MustCompile(`(?s)/\*.*?\*/`)

	// nestedBlockPattern matches a nested message or enum header anchored at
	// the current scan position.
	nestedBlockPattern = regexp.MustCompile(`^(?:message|enum)\s+\w+\s*\{`)
	oneofHeaderPattern = regexp.MustCompile(`^oneof\s+\w+\s*\{`)
)

// StripComments removes line comments and block comments from src.
// Line comments are removed first; the newline ending each one is kept.
func StripComments(src string) string {
	out := lineCommentPattern.ReplaceAllString(src, "")
	return blockCommentPattern.ReplaceAllString(out, "")
}

// matchBrace returns the index just past the '}' that closes the block
// whose opening '{' ends right before start. If the text runs out first,
// len(text) is returned.
func matchBrace(text string, start int) int {
	end, _ := scanBlock(text, start)
	return end
}

// scanBlock is matchBrace that also reports whether the block was closed.
func scanBlock(text string, start int) (int, bool) {
	depth := 1
	for i := start; i < len(text); i++ {
		switch text[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i + 1, true
			}
		}
	}
	return len(text), false
}

// blockBody returns the text between the opening brace ending before start
// and its matching close, together with the index just past the close.
// An unterminated block runs to the end of text.
func blockBody(text string, start int) (string, int) {
	end, closed := scanBlock(text, start)
	if closed {
		return text[start : end-1], end
	}
	return text[start:end], end
}

// topLevelContent flattens a message body into the field declarations that
// belong to the message itself. Nested message and enum blocks are dropped;
// oneof wrappers are removed while their members are kept in place.
func topLevelContent(body string) string {
	var sb strings.Builder
	sb.Grow(len(body))

	i := 0
	for i < len(body) {
		switch body[i] {
		case 'm', 'e':
			if loc := nestedBlockPattern.FindStringIndex(body[i:]); loc != nil {
				i = matchBrace(body, i+loc[1])
				continue
			}
		case 'o':
			if loc := oneofHeaderPattern.FindStringIndex(body[i:]); loc != nil {
				inner, end := blockBody(body, i+loc[1])
				sb.WriteString(inner)
				i = end
				continue
			}
		}
		sb.WriteByte(body[i])
		i++
	}
	return sb.String()
}
