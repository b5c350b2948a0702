package httputil

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/sanari/health-api/pkg/errors"
	"github.com/sanari/health-api/pkg/validate"
)

// Response wraps all API responses
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *Error      `json:"error,omitempty"`
}

// Error represents API error
type Error struct {
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// RespondWithSuccess sends a success response
func RespondWithSuccess(c *gin.Context, status int, data interface{}) {
	c.JSON(status, Response{
		Success: true,
		Data:    data,
	})
}

// RespondWithError maps an error to an HTTP status and sends it.
// Validation failures carry the offending field name so clients can show
// the error inline.
func RespondWithError(c *gin.Context, err error) {
	if field, ok := validate.IsFieldError(err); ok {
		c.JSON(http.StatusBadRequest, Response{
			Success: false,
			Error:   &Error{Message: err.Error(), Field: field},
		})
		return
	}

	status := http.StatusInternalServerError
	message := "internal server error"
	if appErr, ok := err.(*apperrors.AppError); ok {
		status = statusFor(appErr.Code)
		message = appErr.Message
	}

	c.JSON(status, Response{
		Success: false,
		Error:   &Error{Message: message},
	})
}

func statusFor(code apperrors.ErrorCode) int {
	switch code {
	case apperrors.ErrNotFound:
		return http.StatusNotFound
	case apperrors.ErrBadRequest:
		return http.StatusBadRequest
	case apperrors.ErrUnauthorized:
		return http.StatusUnauthorized
	case apperrors.ErrForbidden, apperrors.ErrLimitExceeded:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
