package responses

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the uniform error envelope.
type ErrorResponse struct {
	Error *ErrorDetail `json:"error"`
}

// ErrorDetail carries the user-facing message and a machine-readable type.
type ErrorDetail struct {
	Message string `json:"message"`
	Type    string `json:"type"`
}

// WriteBadRequest writes a 400 validation error.
func WriteBadRequest(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{
		Error: &ErrorDetail{Message: message, Type: "validation_error"},
	})
}

// WriteNotFound writes a 404 error.
func WriteNotFound(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusNotFound, ErrorResponse{
		Error: &ErrorDetail{Message: message, Type: "not_found_error"},
	})
}

// WriteUnavailable writes a 503 for features disabled by configuration.
func WriteUnavailable(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusServiceUnavailable, ErrorResponse{
		Error: &ErrorDetail{Message: message, Type: "unavailable_error"},
	})
}

// WriteInternal writes a 500 error without leaking the cause.
func WriteInternal(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{
		Error: &ErrorDetail{Message: message, Type: "internal_error"},
	})
}
