package prototemplate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripComments(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "line comment keeps newline",
			in:   "string a = 1; // trailing\nint32 b = 2;",
			want: "string a = 1; \nint32 b = 2;",
		},
		{
			name: "block comment spanning lines",
			in:   "a /* one\ntwo */ b",
			want: "a  b",
		},
		{
			name: "block comments are non-greedy",
			in:   "/* x */ keep /* y */",
			want: " keep ",
		},
		{
			name: "no comments",
			in:   "message A { string x = 1; }",
			want: "message A { string x = 1; }",
		},
		{
			name: "not string literal aware",
			in:   `option go_package = "example.com//pkg"; int32 a = 1;`,
			want: `option go_package = "example.com`,
		},
		{
			name: "unterminated block comment is left alone",
			in:   "a /* open",
			want: "a /* open",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripComments(tt.in))
		})
	}
}

func TestMatchBrace(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		start int
		want  int
	}{
		{name: "flat", text: "{abc}def", start: 1, want: 5},
		{name: "nested", text: "{a{b}c}d", start: 1, want: 7},
		{name: "empty body", text: "{}", start: 1, want: 2},
		{name: "unbalanced runs to end", text: "{a{b}c", start: 1, want: 6},
		{name: "start at end", text: "{", start: 1, want: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, matchBrace(tt.text, tt.start))
		})
	}
}

func TestBlockBody(t *testing.T) {
	body, end := blockBody("{ a { b } }tail", 1)
	assert.Equal(t, " a { b } ", body)
	assert.Equal(t, 11, end)

	body, end = blockBody("{ a { b }", 1)
	assert.Equal(t, " a { b }", body, "unterminated block keeps everything")
	assert.Equal(t, 9, end)
}

func TestTopLevelContent(t *testing.T) {
	t.Run("drops nested message and enum", func(t *testing.T) {
		body := ` message Inner { string x = 1; } enum Kind { A = 0; } Inner inner = 1; Kind kind = 2; `
		got := topLevelContent(body)
		assert.NotContains(t, got, "string x")
		assert.NotContains(t, got, "A = 0")
		assert.Contains(t, got, "Inner inner = 1;")
		assert.Contains(t, got, "Kind kind = 2;")
	})

	t.Run("inlines oneof members", func(t *testing.T) {
		body := ` string id = 1; oneof choice { string a = 2; int32 b = 3; } bool c = 4; `
		got := topLevelContent(body)
		assert.NotContains(t, got, "oneof")
		assert.NotContains(t, got, "}")
		assert.Contains(t, got, "string a = 2; int32 b = 3;")
		assert.Contains(t, got, "bool c = 4;")
	})

	t.Run("deeply nested message dropped whole", func(t *testing.T) {
		body := `message A { message B { int32 z = 1; } B b = 1; } string keep = 2;`
		got := topLevelContent(body)
		assert.Equal(t, " string keep = 2;", got)
	})

	t.Run("field named like a keyword is kept", func(t *testing.T) {
		body := `string message = 1; Kind enum_kind = 2;`
		assert.Equal(t, body, topLevelContent(body))
	})

	t.Run("unterminated nested block swallows the rest", func(t *testing.T) {
		body := `string a = 1; message Broken { int32 b = 2;`
		assert.Equal(t, "string a = 1; ", topLevelContent(body))
	})
}
