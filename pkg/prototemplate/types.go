package prototemplate

// MaxDepth bounds recursive message expansion during template synthesis.
// A message field resolved at depth MaxDepth or deeper becomes {}.
const MaxDepth = 3

// Modifier is the label preceding a field type.
type Modifier string

// Field modifiers.
const (
	ModifierNone     Modifier = ""
	ModifierRepeated Modifier = "repeated"
	ModifierOptional Modifier = "optional"
)

// FieldDescriptor describes one field declaration of a message.
type FieldDescriptor struct {
	Modifier Modifier `json:"modifier,omitempty"`

	// MapKeyType and MapValueType are set only for map fields, in which
	// case Type is empty.
	MapKeyType   string `json:"mapKeyType,omitempty"`
	MapValueType string `json:"mapValueType,omitempty"`

	// Type is a scalar keyword or a (possibly dotted) message/enum name.
	Type string `json:"type,omitempty"`

	Name string `json:"name"`

	// Number is the declared tag. It is informational only.
	Number int `json:"number"`
}

// IsMap reports whether the field was declared as map<K, V>.
func (f FieldDescriptor) IsMap() bool {
	return f.MapValueType != ""
}

// IsRepeated reports whether the field carries the repeated modifier.
func (f FieldDescriptor) IsRepeated() bool {
	return f.Modifier == ModifierRepeated
}

// EnumValue is a single NAME = NUMBER pair of an enum.
type EnumValue struct {
	Name   string `json:"name"`
	Number int    `json:"number"`
}

// EnumDescriptor describes an enum declaration. Values are sorted
// ascending by Number.
type EnumDescriptor struct {
	Name   string      `json:"name"`
	Values []EnumValue `json:"values"`
}

// Default returns the name of the lowest-numbered value.
func (e *EnumDescriptor) Default() (string, bool) {
	if e == nil || len(e.Values) == 0 {
		return "", false
	}
	return e.Values[0].Name, true
}

// MessageDescriptor describes a message declaration and its top-level
// fields (oneof members included) in declaration order.
type MessageDescriptor struct {
	Name   string            `json:"name"`
	Fields []FieldDescriptor `json:"fields"`
}

// Template is a message name paired with its synthesized default payload,
// serialized as two-space indented JSON.
type Template struct {
	Name string `json:"name"`
	JSON string `json:"json"`
}
