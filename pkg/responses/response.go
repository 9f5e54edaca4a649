package responses

import (
	"math"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorCode is the stable, machine-checkable error taxonomy exposed to
// clients alongside the human-readable message.
type ErrorCode string

const (
	CodeValidationError ErrorCode = "validation_error"
	CodeUnauthorized    ErrorCode = "unauthorized"
	CodeForbidden       ErrorCode = "forbidden"
	CodeNotFound        ErrorCode = "not_found"
	CodeConflict        ErrorCode = "conflict"
	CodeInvalidState    ErrorCode = "invalid_state"
	CodeTooManyRequests ErrorCode = "too_many_requests"
	CodeInternalError   ErrorCode = "internal_error"
)

// ErrorResponse represents a standard error JSON response.
type ErrorResponse struct {
	Status    string    `json:"status"` // always "error"
	ErrorCode ErrorCode `json:"error_code"`
	Message   string    `json:"error"`
}

// Pagination mirrors the wire shape the mobile client expects on list
// endpoints: {page, limit, total, pages}.
type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

// NewPagination computes the page count for a result set.
func NewPagination(page, limit int, total int64) Pagination {
	if limit <= 0 {
		limit = 20
	}
	if page <= 0 {
		page = 1
	}
	pages := int(math.Ceil(float64(total) / float64(limit)))
	return Pagination{
		Page:  page,
		Limit: limit,
		Total: total,
		Pages: pages,
	}
}

// SendError sends a standardized error response and aborts the request.
func SendError(c *gin.Context, statusCode int, code ErrorCode, message string) {
	c.AbortWithStatusJSON(statusCode, ErrorResponse{
		Status:    "error",
		ErrorCode: code,
		Message:   message,
	})
}

// BadRequest sends a 400 validation error response.
func BadRequest(c *gin.Context, message string) {
	if message == "" {
		message = "Invalid request payload or parameters"
	}
	SendError(c, http.StatusBadRequest, CodeValidationError, message)
}

// Unauthorized sends a 401 Unauthorized error response.
func Unauthorized(c *gin.Context, message string) {
	if message == "" {
		message = "Unauthorized access"
	}
	SendError(c, http.StatusUnauthorized, CodeUnauthorized, message)
}

// Forbidden sends a 403 Forbidden error response.
func Forbidden(c *gin.Context, message string) {
	if message == "" {
		message = "Access to this resource is forbidden"
	}
	SendError(c, http.StatusForbidden, CodeForbidden, message)
}

// NotFound sends a 404 Not Found error response.
func NotFound(c *gin.Context, resourceName string) {
	SendError(c, http.StatusNotFound, CodeNotFound, resourceName+" not found")
}

// Conflict sends a 409 Conflict error response.
func Conflict(c *gin.Context, message string) {
	SendError(c, http.StatusConflict, CodeConflict, message)
}

// InvalidState sends a 400 response for an action not valid in the
// resource's current status.
func InvalidState(c *gin.Context, message string) {
	SendError(c, http.StatusBadRequest, CodeInvalidState, message)
}

// InternalServerError sends a 500 Internal Server Error response.
func InternalServerError(c *gin.Context, message string) {
	if message == "" {
		message = "An unexpected error occurred on the server"
	}
	SendError(c, http.StatusInternalServerError, CodeInternalError, message)
}
