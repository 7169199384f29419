package bookstack

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// APIError is a non-2xx response from the BookStack API.
type APIError struct {
	StatusCode int
	Message    string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("bookstack api error (status %d): %s", e.StatusCode, e.Message)
}

// HTTPStatus returns the upstream HTTP status code. The dispatch layer maps
// it onto the protocol error taxonomy without importing this package's types.
func (e *APIError) HTTPStatus() int {
	return e.StatusCode
}

// newAPIError builds an APIError from a response body. BookStack wraps errors
// as {"error": {"code": N, "message": "..."}}; anything else is used verbatim.
func newAPIError(statusCode int, body []byte) *APIError {
	var wrapped struct {
		Error struct {
			Code    int    `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}

	message := strings.TrimSpace(string(body))
	if err := json.Unmarshal(body, &wrapped); err == nil && wrapped.Error.Message != "" {
		message = wrapped.Error.Message
	}

	if message == "" {
		message = http.StatusText(statusCode)
	}

	return &APIError{
		StatusCode: statusCode,
		Message:    message,
	}
}
