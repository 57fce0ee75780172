package admin

import (
	"encoding/json"

	"github.com/mocktool/mocktool/pkg/mockapi"
	"github.com/mocktool/mocktool/pkg/prototemplate"
)

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
	Uptime  int    `json:"uptime"`
}

// SourceRequest is the JSON form of a proto upload.
type SourceRequest struct {
	Source   string `json:"source"`
	Filename string `json:"filename,omitempty"`
}

// TemplatesResponse is returned by POST /templates.
type TemplatesResponse struct {
	Count     int                      `json:"count"`
	Templates []prototemplate.Template `json:"templates"`
}

// ValidateRequest is the body of POST /validate.
type ValidateRequest struct {
	Source  string          `json:"source"`
	Message string          `json:"message"`
	Payload json.RawMessage `json:"payload"`
}

// SelectionRequest is the body of POST /selection.
type SelectionRequest struct {
	Source  string           `json:"source"`
	Input   string           `json:"input,omitempty"`
	Output  string           `json:"output,omitempty"`
	Request *mockapi.Request `json:"request,omitempty"`
}

// SelectionResponse carries the request with templates applied. Ready is
// false, with Problem set, when the backend would reject the request as is.
type SelectionResponse struct {
	Request *mockapi.Request `json:"request"`
	Ready   bool             `json:"ready"`
	Problem string           `json:"problem,omitempty"`
}
