package campussdk

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/aussiebroadwan/campus/pkg/httpx"
)

// ============================================================================
// Error Codes
// ============================================================================

const (
	ErrorCodeInvalidRequest    = "invalid_request"
	ErrorCodeValidation        = "validation_error"
	ErrorCodeUserExists        = "user_exists"
	ErrorCodeInvalidCredential = "invalid_credentials"
	ErrorCodeInvalidToken      = "invalid_token"
	ErrorCodeInsufficientScope = "insufficient_scope"
	ErrorCodeAccessDenied      = "access_denied"
	ErrorCodeNotFound          = "not_found"
	ErrorCodeConflict          = "conflict"
	ErrorCodePayloadTooLarge   = "payload_too_large"
	ErrorCodeRateLimited       = "rate_limit_exceeded"
	ErrorCodeServerError       = "server_error"
)

// ============================================================================
// APIError
// ============================================================================

// APIError is the error shape returned by every campus endpoint. It is used
// by handlers to write responses and by the SDK to report failures.
type APIError struct {
	// StatusCode is the HTTP status code for this error
	StatusCode int `json:"-"`

	// Code is the machine readable error code (e.g. "invalid_request")
	Code string `json:"error"`

	// Description is a human-readable description of the error
	Description string `json:"error_description"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

// WriteError writes the error as JSON. The description is repeated in
// "message" for clients of the original API.
func (e *APIError) WriteError(w http.ResponseWriter) {
	httpx.WriteJSON(w, e.StatusCode, httpx.ErrorBody{
		Error:            e.Code,
		ErrorDescription: e.Description,
		Message:          e.Description,
	})
}

// WithDescription returns a copy of e with a different description.
func (e *APIError) WithDescription(description string) *APIError {
	return &APIError{StatusCode: e.StatusCode, Code: e.Code, Description: description}
}

// ============================================================================
// Predefined Errors
// ============================================================================

var (
	ErrInvalidRequest = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeInvalidRequest,
		Description: "the request is malformed or missing required parameters",
	}

	// ErrUserExists is returned by registration when the email is taken.
	ErrUserExists = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeUserExists,
		Description: "User with this email already exists",
	}

	// ErrInvalidCredentials does not reveal whether the email exists.
	ErrInvalidCredentials = &APIError{
		StatusCode:  http.StatusUnauthorized,
		Code:        ErrorCodeInvalidCredential,
		Description: "Invalid credentials",
	}

	ErrInvalidToken = &APIError{
		StatusCode:  http.StatusUnauthorized,
		Code:        ErrorCodeInvalidToken,
		Description: "the access token is missing, invalid or expired",
	}

	ErrAccessDenied = &APIError{
		StatusCode:  http.StatusForbidden,
		Code:        ErrorCodeAccessDenied,
		Description: "access denied",
	}

	ErrNotFound = &APIError{
		StatusCode:  http.StatusNotFound,
		Code:        ErrorCodeNotFound,
		Description: "not found",
	}

	ErrConflict = &APIError{
		StatusCode:  http.StatusConflict,
		Code:        ErrorCodeConflict,
		Description: "resource already exists",
	}

	ErrPayloadTooLarge = &APIError{
		StatusCode:  http.StatusRequestEntityTooLarge,
		Code:        ErrorCodePayloadTooLarge,
		Description: "upload is too large",
	}

	ErrServerError = &APIError{
		StatusCode:  http.StatusInternalServerError,
		Code:        ErrorCodeServerError,
		Description: "internal server error",
	}
)

// NewAPIError creates an APIError with the given status, code and description.
func NewAPIError(statusCode int, code, description string) *APIError {
	return &APIError{
		StatusCode:  statusCode,
		Code:        code,
		Description: description,
	}
}

// ============================================================================
// Error Parsing Helpers
// ============================================================================

// parseErrorResponse turns a non-2xx response into an *APIError.
// Returns nil if the response indicates success.
func parseErrorResponse(resp *http.Response, body []byte) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	var errResp httpx.ErrorBody
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
		desc := errResp.ErrorDescription
		if desc == "" {
			desc = errResp.Message
		}
		return &APIError{
			StatusCode:  resp.StatusCode,
			Code:        errResp.Error,
			Description: desc,
		}
	}

	// Responses that only carry the legacy "message" field.
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Message != "" {
		return &APIError{
			StatusCode:  resp.StatusCode,
			Code:        codeForStatus(resp.StatusCode),
			Description: errResp.Message,
		}
	}

	return &APIError{
		StatusCode:  resp.StatusCode,
		Code:        codeForStatus(resp.StatusCode),
		Description: fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
	}
}

func codeForStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return ErrorCodeInvalidRequest
	case http.StatusUnauthorized:
		return ErrorCodeInvalidToken
	case http.StatusForbidden:
		return ErrorCodeAccessDenied
	case http.StatusNotFound:
		return ErrorCodeNotFound
	case http.StatusConflict:
		return ErrorCodeConflict
	case http.StatusRequestEntityTooLarge:
		return ErrorCodePayloadTooLarge
	case http.StatusTooManyRequests:
		return ErrorCodeRateLimited
	default:
		return ErrorCodeServerError
	}
}
