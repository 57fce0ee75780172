package prototemplate

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheck_Valid(t *testing.T) {
	src := `
syntax = "proto3";
package shop.v1;

import "google/protobuf/timestamp.proto";

message Order {
  message Line {
    string sku = 1;
  }
  repeated Line lines = 1;
  map<string, int32> counts = 2;
  google.protobuf.Timestamp created_at = 3;
}
`
	res, err := Check(context.Background(), "shop.proto", src)
	require.NoError(t, err)
	assert.True(t, res.Valid)
	assert.Equal(t, []string{"shop.v1.Order", "shop.v1.Order.Line"}, res.Messages)
	for _, d := range res.Diagnostics {
		assert.NotEqual(t, SeverityError, d.Severity, d.String())
	}
}

func TestCheck_ReportsErrorsWithPositions(t *testing.T) {
	src := `syntax = "proto3";

message Order {
  Missing thing = 1;
}
`
	res, err := Check(context.Background(), "bad.proto", src)
	require.NoError(t, err)
	assert.False(t, res.Valid)
	assert.Empty(t, res.Messages)
	require.NotEmpty(t, res.Diagnostics)

	d := res.Diagnostics[0]
	assert.Equal(t, SeverityError, d.Severity)
	assert.Equal(t, "bad.proto", d.File)
	assert.Equal(t, 4, d.Line)
	assert.Contains(t, d.Message, "Missing")
}

func TestCheck_SyntaxError(t *testing.T) {
	res, err := Check(context.Background(), "", `message { string = ; }`)
	require.NoError(t, err)
	assert.False(t, res.Valid)
	require.NotEmpty(t, res.Diagnostics)
	assert.Equal(t, "input.proto", res.Diagnostics[0].File)
}

func TestCheck_LenientParserStillWorksOnInvalidSource(t *testing.T) {
	src := `message Order { Missing thing = 1; string id = 2; }`

	res, err := Check(context.Background(), "x.proto", src)
	require.NoError(t, err)
	assert.False(t, res.Valid)

	tmpl, err := Parse(src).Template("Order")
	require.NoError(t, err)
	assert.JSONEq(t, `{"thing": {}, "id": ""}`, tmpl.JSON)
}

func TestDiagnostic_String(t *testing.T) {
	d := Diagnostic{Severity: SeverityWarning, File: "a.proto", Line: 3, Column: 7, Message: "careful"}
	assert.Equal(t, "a.proto:3:7: warning: careful", d.String())
}
