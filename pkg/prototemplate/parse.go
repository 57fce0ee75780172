package prototemplate

import (
	"regexp"
	"sort"
	"strconv"
)

var (
	enumHeaderPattern    = regexp.MustCompile(`\benum\s+(\w+)\s*\{`)
	messageHeaderPattern = regexp.MustCompile(`\bmessage\s+(\w+)\s*\{`)
	enumValuePattern     = regexp.MustCompile(`(\w+)\s*=\s*(-?\d+)`)

	// fieldPattern captures: 1 modifier, 2 map key, 3 map value, 4 type,
	// 5 name, 6 number.
	fieldPattern = regexp.MustCompile(
		`(?:(repeated|optional)\s+)?` +
			`(?:map\s*<\s*([\w.]+)\s*,\s*([\w.]+)\s*>|([\w.]+))` +
			`\s+(\w+)\s*=\s*(\d+)`)
)

// Schema holds the enums and messages found in one source document.
// Both mappings are flat and keep first-insertion order; a redeclared name
// keeps its original position but takes the later declaration's content.
type Schema struct {
	enums        map[string]*EnumDescriptor
	enumOrder    []string
	messages     map[string]*MessageDescriptor
	messageOrder []string
}

// Parse extracts every enum and message declared anywhere in src. It never
// fails; malformed input yields fewer (possibly zero) declarations.
func Parse(src string) *Schema {
	doc := StripComments(src)
	s := &Schema{
		enums:    make(map[string]*EnumDescriptor),
		messages: make(map[string]*MessageDescriptor),
	}
	s.extractEnums(doc)
	s.extractMessages(doc)
	return s
}

func (s *Schema) extractEnums(doc string) {
	for _, m := range enumHeaderPattern.FindAllStringSubmatchIndex(doc, -1) {
		name := doc[m[2]:m[3]]
		body, _ := blockBody(doc, m[1])

		values := parseEnumValues(body)
		if len(values) == 0 {
			continue
		}
		if _, exists := s.enums[name]; !exists {
			s.enumOrder = append(s.enumOrder, name)
		}
		s.enums[name] = &EnumDescriptor{Name: name, Values: values}
	}
}

func parseEnumValues(body string) []EnumValue {
	var values []EnumValue
	for _, m := range enumValuePattern.FindAllStringSubmatch(body, -1) {
		n, err := strconv.Atoi(m[2])
		if err != nil {
			continue
		}
		values = append(values, EnumValue{Name: m[1], Number: n})
	}
	sort.SliceStable(values, func(i, j int) bool {
		return values[i].Number < values[j].Number
	})
	return values
}

func (s *Schema) extractMessages(doc string) {
	for _, m := range messageHeaderPattern.FindAllStringSubmatchIndex(doc, -1) {
		name := doc[m[2]:m[3]]
		body, _ := blockBody(doc, m[1])

		if _, exists := s.messages[name]; !exists {
			s.messageOrder = append(s.messageOrder, name)
		}
		s.messages[name] = &MessageDescriptor{
			Name:   name,
			Fields: parseFields(topLevelContent(body)),
		}
	}
}

// parseFields returns the field declarations found in text, in order.
func parseFields(text string) []FieldDescriptor {
	var fields []FieldDescriptor
	for _, m := range fieldPattern.FindAllStringSubmatch(text, -1) {
		// The tag is informational; an out-of-range number is kept as 0.
		n, err := strconv.Atoi(m[6])
		if err != nil {
			n = 0
		}
		f := FieldDescriptor{
			Modifier: Modifier(m[1]),
			Name:     m[5],
			Number:   n,
		}
		if m[3] != "" {
			f.MapKeyType = m[2]
			f.MapValueType = m[3]
		} else {
			f.Type = m[4]
		}
		fields = append(fields, f)
	}
	return fields
}

// Enum returns the enum registered under name.
func (s *Schema) Enum(name string) (*EnumDescriptor, bool) {
	e, ok := s.enums[name]
	return e, ok
}

// Message returns the message registered under name.
func (s *Schema) Message(name string) (*MessageDescriptor, bool) {
	m, ok := s.messages[name]
	return m, ok
}

// Enums returns all enums in registration order.
func (s *Schema) Enums() []*EnumDescriptor {
	out := make([]*EnumDescriptor, 0, len(s.enumOrder))
	for _, name := range s.enumOrder {
		out = append(out, s.enums[name])
	}
	return out
}

// Messages returns all messages in registration order.
func (s *Schema) Messages() []*MessageDescriptor {
	out := make([]*MessageDescriptor, 0, len(s.messageOrder))
	for _, name := range s.messageOrder {
		out = append(out, s.messages[name])
	}
	return out
}

// MessageNames returns the registered message names in order.
func (s *Schema) MessageNames() []string {
	return append([]string(nil), s.messageOrder...)
}
