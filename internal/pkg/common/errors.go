package common

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the JSON body returned for failed requests.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// CustomError carries an error code and the HTTP status it maps to.
type CustomError struct {
	Code    string
	Message string
	Err     error
	Status  int
}

func (e *CustomError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewError creates a new CustomError.
func NewError(code string, message string, status int, err error) *CustomError {
	return &CustomError{
		Code:    code,
		Message: message,
		Status:  status,
		Err:     err,
	}
}

// WithErr returns a copy of e carrying err as its cause. The predefined
// errors stay untouched.
func (e *CustomError) WithErr(err error) *CustomError {
	return &CustomError{
		Code:    e.Code,
		Message: e.Message,
		Status:  e.Status,
		Err:     err,
	}
}

// RespondError writes e as the JSON error response for this request.
func RespondError(c *gin.Context, e *CustomError) {
	c.JSON(e.Status, ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	})
}

// Error codes.
const (
	ErrCodeInvalidRequest  = "INVALID_REQUEST"   // 400
	ErrCodeNotFound        = "NOT_FOUND"         // 404
	ErrCodeInternalError   = "INTERNAL_ERROR"    // 500
	ErrCodeAINotConfigured = "AI_NOT_CONFIGURED" // 500
	ErrCodeAIRequestFailed = "AI_REQUEST_FAILED" // 502
	ErrCodeUpstreamError   = "UPSTREAM_ERROR"    // 502
)

// Predefined errors.
var (
	ErrInvalidRequest  = NewError(ErrCodeInvalidRequest, "Missing query", http.StatusBadRequest, nil)
	ErrNotFound        = NewError(ErrCodeNotFound, "Not found", http.StatusNotFound, nil)
	ErrInternalError   = NewError(ErrCodeInternalError, "Internal server error", http.StatusInternalServerError, nil)
	ErrAINotConfigured = NewError(ErrCodeAINotConfigured, "AI not configured", http.StatusInternalServerError, nil)
	ErrAIRequestFailed = NewError(ErrCodeAIRequestFailed, "AI request failed", http.StatusBadGateway, nil)
	ErrUpstreamError   = NewError(ErrCodeUpstreamError, "Upstream request failed", http.StatusBadGateway, nil)
)
