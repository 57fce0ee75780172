// Package prototemplate extracts enum and message declarations from
// Protocol Buffer IDL text and synthesizes default JSON payloads for them.
//
// The extractor is deliberately lenient. It does not tokenize or validate
// the source against the protobuf grammar; it strips comments, scans the
// whole document for enum and message blocks with regular expressions and
// a brace matcher, and pulls field declarations out of each message body.
// Unparsable fragments are skipped, never reported.
//
// # Parsing
//
//	schema := prototemplate.Parse(src)
//	for _, t := range schema.Templates() {
//	    fmt.Println(t.Name)
//	    fmt.Println(t.JSON)
//	}
//
// Nested declarations are registered in the same flat namespace as top-level
// ones, so a message Outer.Inner is looked up simply as "Inner". When two
// declarations share a name the later one wins.
//
// # Templates
//
// Each message yields an object whose keys follow field declaration order:
//
//   - string and bytes become "", bool becomes false, numeric types become 0
//   - enums resolve to the name of their lowest-numbered value
//   - repeated fields become a one-element array
//   - map fields become {"key": <value default>}
//   - well-known types (google.protobuf.Timestamp, Duration, Struct, Value,
//     ListValue, Any) get fixed placeholders
//   - message fields are expanded recursively up to MaxDepth levels, after
//     which (and for unknown types) the value is {}
//
// # Strict checking
//
// Check compiles the same source with protocompile and returns diagnostics.
// It is advisory: Parse never consults it.
//
// # Limitations
//
// Comment stripping is not string-literal aware. A "//" or "/*" inside a
// quoted option value starts a comment.
package prototemplate
