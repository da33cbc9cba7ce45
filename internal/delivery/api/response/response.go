package response

import (
	"net/http"

	deliverycontext "clinic/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// SuccessResponse defines the structure for successful responses
type SuccessResponse struct {
	Data     any       `json:"data"`
	Notice   string    `json:"notice,omitempty"`
	Redirect string    `json:"redirect,omitempty"`
	Meta     *MetaInfo `json:"meta"`
}

// ErrorResponse defines the structure for error responses
type ErrorResponse struct {
	Error    *ErrorInfo `json:"error"`
	Notice   string     `json:"notice,omitempty"`
	Redirect string     `json:"redirect,omitempty"`
	Meta     *MetaInfo  `json:"meta"`
}

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Machine-readable error code, e.g., "VALIDATION_FAILED"
	Message string `json:"message"`           // User-friendly error message
	Details any    `json:"details,omitempty"` // Additional error context (only for 4xx errors)
}

// MetaInfo represents response metadata
type MetaInfo struct {
	RequestID string `json:"request_id"` // Request tracking ID
}

// Outcome is what the page surface shows after an action: a one-line notice
// and where the browser should go next.
type Outcome struct {
	Notice   string
	Redirect string
}

// Success returns a successful response
func Success(c echo.Context, statusCode int, data any) error {
	return SuccessWithOutcome(c, statusCode, data, Outcome{})
}

// SuccessWithOutcome returns a successful response carrying a notice and redirect.
func SuccessWithOutcome(c echo.Context, statusCode int, data any, outcome Outcome) error {
	return c.JSON(statusCode, SuccessResponse{
		Data:     data,
		Notice:   outcome.Notice,
		Redirect: outcome.Redirect,
		Meta: &MetaInfo{
			RequestID: deliverycontext.GetRequestID(c),
		},
	})
}

// Error returns an error response. The message doubles as the notice.
func Error(c echo.Context, statusCode int, errorCode string, message string, details any, redirect string) error {
	// Details should not be included for 5xx errors or authentication/authorization errors
	if statusCode >= http.StatusInternalServerError || statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden {
		details = nil
	}

	return c.JSON(statusCode, ErrorResponse{
		Error: &ErrorInfo{
			Code:    errorCode,
			Message: message,
			Details: details,
		},
		Notice:   message,
		Redirect: redirect,
		Meta: &MetaInfo{
			RequestID: deliverycontext.GetRequestID(c),
		},
	})
}

// InternalServerError returns a 500 error
func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, nil, "")
}
