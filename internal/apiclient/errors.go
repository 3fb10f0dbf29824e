package apiclient

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
)

// FallbackMessage is surfaced when no better message can be extracted
const FallbackMessage = "Something went wrong"

// APIError is a non-2xx response from the remote API
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// IsUnauthorized reports whether err is a 401 from the API
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized
}

// ExtractMessage normalizes any request failure to a human-readable message
func ExtractMessage(err error) string {
	if err == nil {
		return FallbackMessage
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return err.Error()
}

// extractBodyMessage pulls a message out of an error response body,
// inspecting in order: a string-typed body, a detail field, a message field
func extractBodyMessage(body []byte) string {
	var asString string
	if err := json.Unmarshal(body, &asString); err == nil && asString != "" {
		return asString
	}

	var asObject struct {
		Detail  string `json:"detail"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &asObject); err == nil {
		if asObject.Detail != "" {
			return asObject.Detail
		}
		if asObject.Message != "" {
			return asObject.Message
		}
	}

	if text := strings.TrimSpace(string(body)); text != "" {
		return text
	}
	return FallbackMessage
}
