// Package mockapi builds mock API definitions from synthesized proto
// templates and submits them to the mock tool backend.
package mockapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/mocktool/mocktool/pkg/prototemplate"
)

// Role identifies which side of a mock API a template fills.
type Role string

// Template roles.
const (
	RoleInput  Role = "input"
	RoleOutput Role = "output"
)

// ParseRole parses "input" or "output".
func ParseRole(s string) (Role, error) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleInput:
		return RoleInput, nil
	case RoleOutput:
		return RoleOutput, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidRole, s)
	}
}

// Validation errors.
var (
	ErrInvalidRole    = errors.New("role must be input or output")
	ErrMissingField   = errors.New("required field is empty")
	ErrFieldHasSpaces = errors.New("field must not contain spaces")
	ErrMissingOutput  = errors.New("output is required")
)

// Request is the payload the backend expects when creating a mock API.
type Request struct {
	FeatureName  string          `json:"feature_name"`
	ScenarioName string          `json:"scenario_name"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Path         string          `json:"path"`
	Method       string          `json:"method"`
	Input        json.RawMessage `json:"input,omitempty"`
	Headers      json.RawMessage `json:"headers,omitempty"`
	Output       json.RawMessage `json:"output,omitempty"`
	IsActive     bool            `json:"is_active"`
	Latency      int64           `json:"latency"`
}

// Validate checks the fields the backend rejects: feature, scenario, name,
// path and method must be present and free of spaces, and an output must be
// set.
func (r *Request) Validate() error {
	required := []struct {
		name  string
		value string
	}{
		{"feature_name", r.FeatureName},
		{"scenario_name", r.ScenarioName},
		{"name", r.Name},
		{"path", r.Path},
		{"method", r.Method},
	}
	for _, f := range required {
		if f.value == "" {
			return fmt.Errorf("%w: %s", ErrMissingField, f.name)
		}
		if strings.ContainsAny(f.value, " \t\n") {
			return fmt.Errorf("%w: %s", ErrFieldHasSpaces, f.name)
		}
	}
	if len(r.Output) == 0 || string(r.Output) == "null" {
		return ErrMissingOutput
	}
	return nil
}

// Selection records which message template was picked for each role.
// At most one template is held per role; selecting again replaces it.
type Selection struct {
	Input  *prototemplate.Template `json:"input,omitempty"`
	Output *prototemplate.Template `json:"output,omitempty"`
}

// Select assigns tmpl to role.
func (s *Selection) Select(role Role, tmpl prototemplate.Template) error {
	switch role {
	case RoleInput:
		s.Input = &tmpl
	case RoleOutput:
		s.Output = &tmpl
	default:
		return fmt.Errorf("%w: %q", ErrInvalidRole, role)
	}
	return nil
}

// Clear removes the template held for role.
func (s *Selection) Clear(role Role) {
	switch role {
	case RoleInput:
		s.Input = nil
	case RoleOutput:
		s.Output = nil
	}
}

// Apply copies the selected templates' JSON text into req unchanged.
// Roles with no selection leave the corresponding field untouched.
func (s *Selection) Apply(req *Request) {
	if s.Input != nil {
		req.Input = json.RawMessage(s.Input.JSON)
	}
	if s.Output != nil {
		req.Output = json.RawMessage(s.Output.JSON)
	}
}

// SelectFromSchema looks up the named messages in schema and selects their
// templates. An empty name leaves that role unselected.
func SelectFromSchema(schema *prototemplate.Schema, input, output string) (*Selection, error) {
	sel := &Selection{}
	for _, pick := range []struct {
		role Role
		name string
	}{{RoleInput, input}, {RoleOutput, output}} {
		if pick.name == "" {
			continue
		}
		tmpl, err := schema.Template(pick.name)
		if err != nil {
			return nil, fmt.Errorf("%s template: %w", pick.role, err)
		}
		if err := sel.Select(pick.role, tmpl); err != nil {
			return nil, err
		}
	}
	return sel, nil
}
