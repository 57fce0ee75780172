package admin

import (
	"encoding/json"
	"errors"
	"log/slog"
	"mime/multipart"
	"net/http"

	"github.com/mocktool/mocktool/pkg/prototemplate"
)

// Error codes returned in ErrorResponse.Error.
const (
	ErrCodeInvalidRequest = "invalid_request"
	ErrCodeInvalidJSON    = "invalid_json"
	ErrCodeNotFound       = "not_found"
	ErrCodeTooLarge       = "payload_too_large"
	ErrCodeInternal       = "internal_error"
)

// Client-facing messages. Detail goes to the server log only.
const (
	ErrMsgInvalidJSON     = "Invalid JSON in request body"
	ErrMsgMissingSource   = "Request contained no proto source"
	ErrMsgMissingFile     = "Multipart request has no \"file\" field"
	ErrMsgMalformedUpload = "Malformed multipart request body"
	ErrMsgTooLarge        = "Request body exceeds the upload limit"
	ErrMsgInternalError   = "An internal error occurred"
	ErrMsgMessageNotFound = "Message not found in proto source"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error     string `json:"error"`
	Message   string `json:"message"`
	RequestID string `json:"requestId,omitempty"`
}

var (
	errMissingSource   = errors.New("missing proto source")
	errMalformedUpload = errors.New("malformed multipart upload")
)

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, errCode, message string) {
	writeJSON(w, status, ErrorResponse{
		Error:     errCode,
		Message:   message,
		RequestID: RequestIDFromContext(r.Context()),
	})
}

// writeRequestError maps errors from reading or decoding a request to a
// client response. Anything unrecognised is logged and reported as internal.
func writeRequestError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	var maxErr *http.MaxBytesError
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &maxErr), errors.Is(err, multipart.ErrMessageTooLarge):
		writeError(w, r, http.StatusRequestEntityTooLarge, ErrCodeTooLarge, ErrMsgTooLarge)
	case errors.Is(err, errMissingSource):
		writeError(w, r, http.StatusBadRequest, ErrCodeInvalidRequest, ErrMsgMissingSource)
	case errors.Is(err, http.ErrMissingFile):
		writeError(w, r, http.StatusBadRequest, ErrCodeInvalidRequest, ErrMsgMissingFile)
	case errors.Is(err, errMalformedUpload):
		log.Debug("multipart body rejected", "error", err)
		writeError(w, r, http.StatusBadRequest, ErrCodeInvalidRequest, ErrMsgMalformedUpload)
	case errors.As(err, &syntaxErr), errors.As(err, &typeErr), errors.Is(err, prototemplate.ErrInvalidPayload):
		log.Debug("request body rejected", "error", err)
		writeError(w, r, http.StatusBadRequest, ErrCodeInvalidJSON, ErrMsgInvalidJSON)
	case errors.Is(err, prototemplate.ErrMessageNotFound):
		writeError(w, r, http.StatusNotFound, ErrCodeNotFound, ErrMsgMessageNotFound)
	default:
		log.Error("request failed", "error", err, "requestId", RequestIDFromContext(r.Context()))
		writeError(w, r, http.StatusInternalServerError, ErrCodeInternal, ErrMsgInternalError)
	}
}
