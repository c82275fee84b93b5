package httputil

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/marcos-nsantos/geoloc/internal/pkg/apperror"
)

const RequestIDKey = "request_id"

type ErrorResponse struct {
	Error     string `json:"error"`
	Code      string `json:"code,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

func ErrorWithCode(c *gin.Context, status int, code, message string) {
	c.JSON(status, ErrorResponse{
		Error:     message,
		Code:      code,
		RequestID: GetRequestID(c),
	})
}

func ValidationError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error:     err.Error(),
		Code:      "VALIDATION_ERROR",
		RequestID: GetRequestID(c),
	})
}

func InternalError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Error:     "internal server error",
		Code:      apperror.CodeInternal,
		RequestID: GetRequestID(c),
	})
}

// HandleError writes err using the status and code of its application
// error classification. Internal errors never leak their cause.
func HandleError(c *gin.Context, err error) {
	appErr := apperror.FromDomain(err)
	if appErr == nil || appErr.Code == apperror.CodeInternal {
		_ = c.Error(err)
		InternalError(c)
		return
	}

	if appErr.StatusCode >= http.StatusInternalServerError {
		_ = c.Error(err)
	}

	c.JSON(appErr.StatusCode, ErrorResponse{
		Error:     appErr.Message,
		Code:      appErr.Code,
		RequestID: GetRequestID(c),
	})
}

func GetRequestID(c *gin.Context) string {
	return c.GetString(RequestIDKey)
}
