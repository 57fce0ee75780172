package prototemplate

import "errors"

var (
	// ErrMessageNotFound is returned when a requested message is not declared
	// in the parsed source.
	ErrMessageNotFound = errors.New("message not found")

	// ErrNoProtoFiles is returned when no file matched the given patterns.
	ErrNoProtoFiles = errors.New("no proto files matched")

	// ErrInvalidPayload is returned when a payload is not well-formed JSON.
	ErrInvalidPayload = errors.New("payload is not valid JSON")
)
