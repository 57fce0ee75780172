package prototemplate

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// scalarSchemas maps scalar keywords to the JSON shapes the protobuf JSON
// mapping accepts for them. Integers may also arrive as decimal strings and
// floats as strings such as "NaN" or "1.5".
var scalarSchemas = map[string]map[string]any{
	"string":   {"type": "string"},
	"bytes":    {"type": "string"},
	"bool":     {"type": "boolean"},
	"int32":    signedIntSchema,
	"sint32":   signedIntSchema,
	"sfixed32": signedIntSchema,
	"int64":    signedIntSchema,
	"sint64":   signedIntSchema,
	"sfixed64": signedIntSchema,
	"uint32":   unsignedIntSchema,
	"fixed32":  unsignedIntSchema,
	"uint64":   unsignedIntSchema,
	"fixed64":  unsignedIntSchema,
	"float":    {"type": []any{"number", "string"}},
	"double":   {"type": []any{"number", "string"}},
}

var (
	signedIntSchema   = map[string]any{"type": []any{"integer", "string"}, "pattern": `^-?[0-9]+$`}
	unsignedIntSchema = map[string]any{"type": []any{"integer", "string"}, "pattern": `^[0-9]+$`}
)

var wellKnownSchemas = map[string]map[string]any{
	"google.protobuf.Timestamp": {"type": "string"},
	"google.protobuf.Duration":  {"type": "string"},
	"google.protobuf.Struct":    {"type": "object"},
	"google.protobuf.Value":     {},
	"google.protobuf.ListValue": {"type": "array"},
	"google.protobuf.Any":       {"type": "object"},
}

// FieldError is a single payload validation failure.
type FieldError struct {
	// Field is the dotted path of the offending value; empty for the root.
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// ValidationResult reports whether a payload conforms to a message.
type ValidationResult struct {
	Valid  bool         `json:"valid"`
	Errors []FieldError `json:"errors,omitempty"`
}

// JSONSchema derives a JSON Schema (draft 2020-12) for the named message.
// Expansion stops at MaxDepth, mirroring template synthesis.
func (s *Schema) JSONSchema(name string) (map[string]any, error) {
	m, ok := s.messages[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMessageNotFound, name)
	}
	out := s.messageSchema(m, 1)
	out["$schema"] = "https://json-schema.org/draft/2020-12/schema"
	out["title"] = name
	return out, nil
}

// messageSchema accepts each field under both its declared name and its
// lowerCamelCase JSON name, and accepts null for any field.
func (s *Schema) messageSchema(m *MessageDescriptor, depth int) map[string]any {
	props := make(map[string]any, len(m.Fields))
	for _, f := range m.Fields {
		var sch map[string]any
		switch {
		case f.IsMap():
			sch = map[string]any{
				"type":                 "object",
				"additionalProperties": s.typeSchema(f.MapValueType, depth),
			}
		case f.IsRepeated():
			sch = map[string]any{
				"type":  "array",
				"items": s.typeSchema(f.Type, depth),
			}
		default:
			sch = s.typeSchema(f.Type, depth)
		}
		sch = nullable(sch)
		props[f.Name] = sch
		if alias := jsonName(f.Name); alias != f.Name {
			if _, taken := props[alias]; !taken {
				props[alias] = sch
			}
		}
	}
	return map[string]any{
		"type":                 "object",
		"properties":           props,
		"additionalProperties": false,
	}
}

func (s *Schema) typeSchema(typ string, depth int) map[string]any {
	if sch, ok := scalarSchemas[typ]; ok {
		return copySchema(sch)
	}
	if sch, ok := wellKnownSchemas[strings.TrimPrefix(typ, ".")]; ok {
		return copySchema(sch)
	}
	if e, ok := s.enums[typ]; ok && len(e.Values) > 0 {
		allowed := make([]any, 0, len(e.Values)*2)
		for _, v := range e.Values {
			allowed = append(allowed, v.Name)
		}
		for _, v := range e.Values {
			allowed = append(allowed, v.Number)
		}
		return map[string]any{"enum": allowed}
	}
	if m, ok := s.messages[typ]; ok && depth < MaxDepth {
		return s.messageSchema(m, depth+1)
	}
	return map[string]any{}
}

// nullable widens a field schema to also accept JSON null.
func nullable(sch map[string]any) map[string]any {
	switch t := sch["type"].(type) {
	case string:
		sch["type"] = []any{t, "null"}
	case []any:
		sch["type"] = append(append([]any(nil), t...), "null")
	}
	if allowed, ok := sch["enum"].([]any); ok {
		sch["enum"] = append(append([]any(nil), allowed...), nil)
	}
	return sch
}

// jsonName converts a field name to the lowerCamelCase name protobuf JSON
// encoders emit by default.
func jsonName(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	upper := false
	for _, r := range name {
		if r == '_' {
			upper = true
			continue
		}
		if upper && r >= 'a' && r <= 'z' {
			r -= 'a' - 'A'
		}
		upper = false
		b.WriteRune(r)
	}
	return b.String()
}

func copySchema(in map[string]any) map[string]any {
	out := make(map[string]any, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

// ValidatePayload checks a JSON payload against the named message. The
// returned error is non-nil only when the message is unknown or the payload
// is not JSON; schema violations are reported in the result.
func (s *Schema) ValidatePayload(name string, payload []byte) (*ValidationResult, error) {
	sch, err := s.compileSchema(name)
	if err != nil {
		return nil, err
	}

	var doc any
	dec := json.NewDecoder(bytes.NewReader(payload))
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}

	result := &ValidationResult{Valid: true}
	if err := sch.Validate(doc); err != nil {
		result.Valid = false
		var verr *jsonschema.ValidationError
		if errors.As(err, &verr) {
			collectSchemaErrors(verr, result)
		} else {
			result.Errors = append(result.Errors, FieldError{Message: err.Error()})
		}
	}
	return result, nil
}

func (s *Schema) compileSchema(name string) (*jsonschema.Schema, error) {
	raw, err := s.JSONSchema(name)
	if err != nil {
		return nil, err
	}
	data, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	url := name + ".schema.json"
	if err := compiler.AddResource(url, bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("failed to add schema resource: %w", err)
	}
	return compiler.Compile(url)
}

// collectSchemaErrors flattens the leaf causes of a validation error.
func collectSchemaErrors(err *jsonschema.ValidationError, result *ValidationResult) {
	if len(err.Causes) == 0 {
		result.Errors = append(result.Errors, FieldError{
			Field:   pointerToPath(err.InstanceLocation),
			Message: err.Message,
		})
		return
	}
	for _, cause := range err.Causes {
		collectSchemaErrors(cause, result)
	}
}

func pointerToPath(ptr string) string {
	if ptr == "" || ptr == "/" {
		return ""
	}
	return strings.ReplaceAll(strings.TrimPrefix(ptr, "/"), "/", ".")
}
