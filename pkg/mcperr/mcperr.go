// Package mcperr defines the stable error taxonomy surfaced to MCP clients
// and the translation from raw internal failures onto it.
package mcperr

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// Code identifies a class of protocol-level failure.
type Code string

const (
	// CodeUnknownTool is returned when a call references an unregistered tool name.
	CodeUnknownTool Code = "unknown_tool"

	// CodeUnknownResource is returned when a read matches no registered URI pattern.
	CodeUnknownResource Code = "unknown_resource"

	// CodeValidation is returned when arguments fail schema or type checks.
	CodeValidation Code = "validation_error"

	// CodeNotFound is returned when the upstream entity does not exist.
	CodeNotFound Code = "not_found"

	// CodeUnauthorized is returned when the upstream rejects the credentials.
	CodeUnauthorized Code = "unauthorized"

	// CodeUpstream is returned for any other upstream or transport failure.
	CodeUpstream Code = "upstream_error"
)

// Error is a classified protocol error. Callers only ever observe this shape;
// raw transport errors never cross the dispatch boundary.
type Error struct {
	Code    Code
	Message string
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// UnknownTool reports a call to a tool name not present in the registry.
func UnknownTool(name string) *Error {
	return &Error{Code: CodeUnknownTool, Message: fmt.Sprintf("unknown tool: %s", name)}
}

// UnknownResource reports a read of a URI matching no registered pattern.
func UnknownResource(uri string) *Error {
	return &Error{Code: CodeUnknownResource, Message: fmt.Sprintf("unknown resource: %s", uri)}
}

// Validation reports an argument schema or type violation.
func Validation(format string, args ...any) *Error {
	return &Error{Code: CodeValidation, Message: fmt.Sprintf(format, args...)}
}

// httpStatuser is implemented by upstream client errors carrying an HTTP status.
type httpStatuser interface {
	HTTPStatus() int
}

// Translate maps a raw failure onto the stable taxonomy. Already-classified
// errors pass through unchanged; upstream errors are classified by HTTP
// status; everything else becomes an upstream error.
func Translate(err error) *Error {
	if err == nil {
		return nil
	}

	var classified *Error
	if errors.As(err, &classified) {
		return classified
	}

	var statusErr httpStatuser
	if errors.As(err, &statusErr) {
		switch statusErr.HTTPStatus() {
		case http.StatusNotFound:
			return &Error{Code: CodeNotFound, Message: err.Error(), Err: err}
		case http.StatusUnauthorized, http.StatusForbidden:
			return &Error{Code: CodeUnauthorized, Message: err.Error(), Err: err}
		}
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return &Error{Code: CodeUpstream, Message: "upstream request timed out", Err: err}
	}

	return &Error{Code: CodeUpstream, Message: err.Error(), Err: err}
}
