package prototemplate

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/durationpb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// scalarDefaults maps protobuf scalar keywords to their template values.
var scalarDefaults = map[string]any{
	"string":   "",
	"bytes":    "",
	"bool":     false,
	"int32":    0,
	"int64":    0,
	"uint32":   0,
	"uint64":   0,
	"sint32":   0,
	"sint64":   0,
	"fixed32":  0,
	"fixed64":  0,
	"sfixed32": 0,
	"sfixed64": 0,
	"float":    0,
	"double":   0,
}

// wellKnownDefaults holds the JSON encoding of each well-known type's
// placeholder. Values are decoded afresh on every use so callers never
// share mutable state.
var wellKnownDefaults = mustRenderWellKnownDefaults()

// wellKnownPlaceholders are the messages whose protobuf JSON encoding
// becomes the template value.
func wellKnownPlaceholders() map[string]proto.Message {
	return map[string]proto.Message{
		"google.protobuf.Timestamp": timestamppb.New(time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)),
		"google.protobuf.Duration":  durationpb.New(time.Second),
		"google.protobuf.Struct":    &structpb.Struct{},
		"google.protobuf.Value":     structpb.NewNullValue(),
		"google.protobuf.ListValue": &structpb.ListValue{},
	}
}

// renderWellKnownDefaults encodes the placeholders with protojson. An Any
// without a type URL cannot be marshaled, so it keeps a literal.
func renderWellKnownDefaults() (map[string][]byte, error) {
	msgs := wellKnownPlaceholders()
	out := make(map[string][]byte, len(msgs)+1)
	for name, msg := range msgs {
		b, err := protojson.Marshal(msg)
		if err != nil {
			return nil, fmt.Errorf("failed to render %s placeholder: %w", name, err)
		}
		out[name] = b
	}
	out["google.protobuf.Any"] = []byte(`{"@type":""}`)
	return out, nil
}

func mustRenderWellKnownDefaults() map[string][]byte {
	out, err := renderWellKnownDefaults()
	if err != nil {
		panic(err)
	}
	return out
}

// wellKnownDefault returns the placeholder for a well-known type name.
func wellKnownDefault(typ string) (any, bool) {
	raw, ok := wellKnownDefaults[strings.TrimPrefix(typ, ".")]
	if !ok {
		return nil, false
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, false
	}
	return v, true
}

// IsWellKnownType reports whether typ names one of the well-known types
// that receive a fixed placeholder.
func IsWellKnownType(typ string) bool {
	_, ok := wellKnownDefaults[strings.TrimPrefix(typ, ".")]
	return ok
}

// resolve maps a field type to its template value. Message types recurse
// through synthesize until depth reaches MaxDepth.
func (s *Schema) resolve(typ string, depth int) any {
	if v, ok := scalarDefaults[typ]; ok {
		return v
	}
	if v, ok := wellKnownDefault(typ); ok {
		return v
	}
	if e, ok := s.enums[typ]; ok {
		if name, ok := e.Default(); ok {
			return name
		}
	}
	if m, ok := s.messages[typ]; ok && depth < MaxDepth {
		return s.synthesize(m.Fields, depth+1)
	}
	return NewObject()
}

// synthesize builds the template object for a field list.
func (s *Schema) synthesize(fields []FieldDescriptor, depth int) *Object {
	obj := NewObject()
	for _, f := range fields {
		switch {
		case f.IsMap():
			entry := NewObject()
			entry.Set("key", s.resolve(f.MapValueType, depth))
			obj.Set(f.Name, entry)
		case f.IsRepeated():
			obj.Set(f.Name, []any{s.resolve(f.Type, depth)})
		default:
			obj.Set(f.Name, s.resolve(f.Type, depth))
		}
	}
	return obj
}

// Synthesize returns the default payload for the named message.
func (s *Schema) Synthesize(name string) (*Object, error) {
	m, ok := s.messages[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMessageNotFound, name)
	}
	return s.synthesizeRoot(m), nil
}

// synthesizeRoot builds a top-level template. The message itself counts as
// resolved from depth 0, so its fields start at depth 1 and a
// self-referencing field nests MaxDepth times before becoming {}.
func (s *Schema) synthesizeRoot(m *MessageDescriptor) *Object {
	return s.synthesize(m.Fields, 1)
}

// Template returns the named message's template.
func (s *Schema) Template(name string) (Template, error) {
	obj, err := s.Synthesize(name)
	if err != nil {
		return Template{}, err
	}
	return Template{Name: name, JSON: render(obj)}, nil
}

// Templates returns one template per message in registration order.
// The result is recomputed on every call.
func (s *Schema) Templates() []Template {
	out := make([]Template, 0, len(s.messageOrder))
	for _, name := range s.messageOrder {
		obj := s.synthesizeRoot(s.messages[name])
		out = append(out, Template{Name: name, JSON: render(obj)})
	}
	return out
}

// render serializes a template with two-space indentation.
func render(obj *Object) string {
	b, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		return "{}"
	}
	return string(b)
}
