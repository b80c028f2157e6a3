package supabase

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Postgres error code for a unique constraint violation.
const codeUniqueViolation = "23505"

// APIError is a non-2xx response from the remote service.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("supabase: %s (status %d)", e.Message, e.Status)
}

// IsConflict reports whether err is the service rejecting a write that
// violates a uniqueness constraint.
func IsConflict(err error) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	return apiErr.Status == http.StatusConflict || apiErr.Code == codeUniqueViolation
}

func parseAPIError(status int, raw []byte) *APIError {
	var body struct {
		Message string `json:"message"`
		Code    string `json:"code"`
		Error   string `json:"error"`
	}
	apiErr := &APIError{Status: status}
	if err := json.Unmarshal(raw, &body); err == nil {
		apiErr.Code = body.Code
		apiErr.Message = body.Message
		if apiErr.Message == "" {
			apiErr.Message = body.Error
		}
	}
	if apiErr.Message == "" {
		apiErr.Message = strings.TrimSpace(string(raw))
	}
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(status)
	}
	return apiErr
}
