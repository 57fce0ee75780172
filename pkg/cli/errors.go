package cli

import "errors"

// Errors that make the command exit non-zero after printing its report.
var (
	ErrCheckFailed    = errors.New("strict check reported errors")
	ErrPayloadInvalid = errors.New("payload does not match message")
)
