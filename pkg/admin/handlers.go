package admin

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/mocktool/mocktool/pkg/mockapi"
	"github.com/mocktool/mocktool/pkg/prototemplate"
)

// handleHealth handles GET /health.
func (a *API) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:  "ok",
		Version: a.version,
		Uptime:  a.Uptime(),
	})
}

// handleTemplates handles POST /templates.
func (a *API) handleTemplates(w http.ResponseWriter, r *http.Request) {
	_, src, err := readSource(r)
	if err != nil {
		writeRequestError(w, r, a.log, err)
		return
	}

	templates := prototemplate.Parse(src).Templates()
	a.log.Debug("extracted templates", "count", len(templates))
	writeJSON(w, http.StatusOK, TemplatesResponse{
		Count:     len(templates),
		Templates: templates,
	})
}

// handleCheck handles POST /check.
func (a *API) handleCheck(w http.ResponseWriter, r *http.Request) {
	filename, src, err := readSource(r)
	if err != nil {
		writeRequestError(w, r, a.log, err)
		return
	}

	res, err := prototemplate.Check(r.Context(), filename, src)
	if err != nil {
		writeRequestError(w, r, a.log, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// handleValidate handles POST /validate.
func (a *API) handleValidate(w http.ResponseWriter, r *http.Request) {
	var req ValidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeRequestError(w, r, a.log, err)
		return
	}
	if strings.TrimSpace(req.Source) == "" {
		writeRequestError(w, r, a.log, errMissingSource)
		return
	}
	if req.Message == "" {
		writeError(w, r, http.StatusBadRequest, ErrCodeInvalidRequest, "message is required")
		return
	}
	if len(req.Payload) == 0 || string(req.Payload) == "null" {
		writeError(w, r, http.StatusBadRequest, ErrCodeInvalidRequest, "payload is required")
		return
	}

	res, err := prototemplate.Parse(req.Source).ValidatePayload(req.Message, req.Payload)
	if err != nil {
		writeRequestError(w, r, a.log, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// handleSelection handles POST /selection.
func (a *API) handleSelection(w http.ResponseWriter, r *http.Request) {
	var req SelectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeRequestError(w, r, a.log, err)
		return
	}
	if strings.TrimSpace(req.Source) == "" {
		writeRequestError(w, r, a.log, errMissingSource)
		return
	}

	sel, err := mockapi.SelectFromSchema(prototemplate.Parse(req.Source), req.Input, req.Output)
	if err != nil {
		writeRequestError(w, r, a.log, err)
		return
	}

	out := req.Request
	if out == nil {
		out = &mockapi.Request{IsActive: true}
	}
	sel.Apply(out)

	resp := SelectionResponse{Request: out, Ready: true}
	if err := out.Validate(); err != nil {
		resp.Ready = false
		resp.Problem = err.Error()
	}
	writeJSON(w, http.StatusOK, resp)
}

// readSource extracts proto text from a multipart upload, a JSON
// SourceRequest, or a raw body, chosen by Content-Type.
func readSource(r *http.Request) (filename, src string, err error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))

	switch mediaType {
	case "multipart/form-data":
		file, hdr, err := r.FormFile("file")
		if err != nil {
			return "", "", uploadError(err)
		}
		defer func() { _ = file.Close() }()
		data, err := io.ReadAll(file)
		if err != nil {
			return "", "", uploadError(err)
		}
		filename, src = hdr.Filename, string(data)
	case "application/json":
		var req SourceRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return "", "", err
		}
		filename, src = req.Filename, req.Source
	default:
		data, err := io.ReadAll(r.Body)
		if err != nil {
			return "", "", err
		}
		src = string(data)
	}

	if strings.TrimSpace(src) == "" {
		return "", "", errMissingSource
	}
	return filename, src, nil
}

// uploadError tags multipart parse failures as client errors. Missing file
// and size-limit errors keep their own identity.
func uploadError(err error) error {
	var maxErr *http.MaxBytesError
	switch {
	case errors.Is(err, http.ErrMissingFile),
		errors.Is(err, multipart.ErrMessageTooLarge),
		errors.As(err, &maxErr):
		return err
	}
	return fmt.Errorf("%w: %w", errMalformedUpload, err)
}
