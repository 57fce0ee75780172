package prototemplate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const orderProto = `
syntax = "proto3";

enum OrderStatus {
  ORDER_STATUS_UNSPECIFIED = 0;
  ORDER_STATUS_PAID = 1;
}

message Money {
  string currency = 1;
  int64 units = 2;
}

message Order {
  string id = 1;
  OrderStatus status = 2;
  repeated string tags = 3;
  map<string, Money> totals = 4;
  google.protobuf.Timestamp created_at = 5;
  Order parent = 6;
  bool gift = 7;
}
`

func TestJSONSchema_Shape(t *testing.T) {
	s := Parse(orderProto)
	sch, err := s.JSONSchema("Order")
	require.NoError(t, err)

	assert.Equal(t, "Order", sch["title"])
	assert.Equal(t, "object", sch["type"])
	assert.Equal(t, false, sch["additionalProperties"])

	props, ok := sch["properties"].(map[string]any)
	require.True(t, ok)
	// created_at is also reachable as createdAt.
	assert.Len(t, props, 8)
	assert.Equal(t, props["created_at"], props["createdAt"])
	assert.Equal(t, map[string]any{"type": []any{"string", "null"}}, props["id"])
	assert.Equal(t, map[string]any{"type": []any{"boolean", "null"}}, props["gift"])
	assert.Equal(t, map[string]any{
		"enum": []any{"ORDER_STATUS_UNSPECIFIED", "ORDER_STATUS_PAID", 0, 1, nil},
	}, props["status"])

	tags := props["tags"].(map[string]any)
	assert.Equal(t, []any{"array", "null"}, tags["type"])

	totals := props["totals"].(map[string]any)
	assert.Equal(t, []any{"object", "null"}, totals["type"])
	money := totals["additionalProperties"].(map[string]any)
	assert.Contains(t, money["properties"], "currency")
}

func TestJSONSchema_NotFound(t *testing.T) {
	_, err := Parse(orderProto).JSONSchema("Nope")
	assert.ErrorIs(t, err, ErrMessageNotFound)
}

func TestValidatePayload_TemplatesAlwaysValidate(t *testing.T) {
	s := Parse(orderProto)
	for _, tmpl := range s.Templates() {
		t.Run(tmpl.Name, func(t *testing.T) {
			res, err := s.ValidatePayload(tmpl.Name, []byte(tmpl.JSON))
			require.NoError(t, err)
			assert.True(t, res.Valid, "errors: %v", res.Errors)
			assert.Empty(t, res.Errors)
		})
	}
}

func TestValidatePayload_Violations(t *testing.T) {
	s := Parse(orderProto)

	tests := []struct {
		name      string
		payload   string
		wantField string
	}{
		{name: "wrong scalar type", payload: `{"id": 5}`, wantField: "id"},
		{name: "unknown enum value", payload: `{"status": "SHIPPED"}`, wantField: "status"},
		{name: "unknown field", payload: `{"nope": true}`},
		{name: "nested message field", payload: `{"totals": {"eur": {"units": true}}}`, wantField: "totals.eur.units"},
		{name: "repeated must be array", payload: `{"tags": "a"}`, wantField: "tags"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := s.ValidatePayload("Order", []byte(tt.payload))
			require.NoError(t, err)
			assert.False(t, res.Valid)
			require.NotEmpty(t, res.Errors)
			if tt.wantField != "" {
				var fields []string
				for _, e := range res.Errors {
					fields = append(fields, e.Field)
				}
				assert.Contains(t, fields, tt.wantField)
			}
		})
	}
}

func TestValidatePayload_AcceptsProtoJSONForms(t *testing.T) {
	s := Parse(orderProto)
	res, err := s.ValidatePayload("Order", []byte(`{
		"status": 1,
		"totals": {"eur": {"currency": "EUR", "units": "1200"}},
		"created_at": "2025-06-01T10:00:00Z"
	}`))
	require.NoError(t, err)
	assert.True(t, res.Valid, "errors: %v", res.Errors)
}

func TestValidatePayload_ProtoJSONEncoderOutput(t *testing.T) {
	s := Parse(`
message Event {
  string created_at = 1;
  int32 count = 2;
  uint32 retries = 3;
  repeated string tags = 4;
  Event parent = 5;
}`)

	tests := []struct {
		name    string
		payload string
	}{
		{name: "lowerCamelCase name", payload: `{"createdAt": "x"}`},
		{name: "declared name", payload: `{"created_at": "x"}`},
		{name: "null scalar", payload: `{"created_at": null}`},
		{name: "null message", payload: `{"parent": null}`},
		{name: "null repeated", payload: `{"tags": null}`},
		{name: "quoted int32", payload: `{"count": "5"}`},
		{name: "quoted negative int32", payload: `{"count": "-5"}`},
		{name: "quoted uint32", payload: `{"retries": "7"}`},
		{name: "nested lowerCamelCase", payload: `{"parent": {"createdAt": "y", "count": 1}}`},
	}
	// null is a field value only, never a repeated element.
	res, err := s.ValidatePayload("Event", []byte(`{"tags": [null]}`))
	require.NoError(t, err)
	assert.False(t, res.Valid)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := s.ValidatePayload("Event", []byte(tt.payload))
			require.NoError(t, err)
			assert.True(t, res.Valid, "errors: %v", res.Errors)
		})
	}
}

func TestValidatePayload_QuotedIntegerMustBeNumeric(t *testing.T) {
	s := Parse(`message Event { int32 count = 1; uint64 size = 2; string label = 3; }`)

	tests := []struct {
		name    string
		payload string
	}{
		{name: "non-numeric string", payload: `{"count": "five"}`},
		{name: "fractional string", payload: `{"count": "1.5"}`},
		{name: "negative unsigned", payload: `{"size": "-1"}`},
		{name: "array for scalar field", payload: `{"label": [null]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := s.ValidatePayload("Event", []byte(tt.payload))
			require.NoError(t, err)
			assert.False(t, res.Valid)
		})
	}
}

func TestJSONName(t *testing.T) {
	assert.Equal(t, "createdAt", jsonName("created_at"))
	assert.Equal(t, "id", jsonName("id"))
	assert.Equal(t, "fooBarBaz", jsonName("foo_bar_baz"))
	assert.Equal(t, "field1Value", jsonName("field_1_value"))
}

func TestValidatePayload_Errors(t *testing.T) {
	s := Parse(orderProto)

	_, err := s.ValidatePayload("Missing", []byte(`{}`))
	assert.ErrorIs(t, err, ErrMessageNotFound)

	_, err = s.ValidatePayload("Order", []byte(`{not json`))
	assert.ErrorIs(t, err, ErrInvalidPayload)
}
