package apperror

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/marcos-nsantos/geoloc/internal/domain"
)

const (
	CodeInvalidArgument = "INVALID_ARGUMENT"
	CodeNotFound        = "NOT_FOUND"
	CodeUpstream        = "UPSTREAM_ERROR"
	CodeRateLimited     = "RATE_LIMITED"
	CodeInternal        = "INTERNAL_ERROR"
)

type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Err        error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// WithCause attaches the error that produced e and returns e.
func (e *AppError) WithCause(err error) *AppError {
	e.Err = err
	return e
}

func New(code, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
	}
}

func NotFound(resource string) *AppError {
	return &AppError{
		Code:       CodeNotFound,
		Message:    fmt.Sprintf("%s not found", resource),
		StatusCode: http.StatusNotFound,
	}
}

func BadRequest(message string) *AppError {
	return &AppError{
		Code:       CodeInvalidArgument,
		Message:    message,
		StatusCode: http.StatusBadRequest,
	}
}

func BadGateway(err error) *AppError {
	return &AppError{
		Code:       CodeUpstream,
		Message:    "geocoding service unavailable",
		StatusCode: http.StatusBadGateway,
		Err:        err,
	}
}

func Internal(err error) *AppError {
	return &AppError{
		Code:       CodeInternal,
		Message:    "an internal error occurred",
		StatusCode: http.StatusInternalServerError,
		Err:        err,
	}
}

// FromDomain classifies err by the domain sentinel it wraps. An error that
// already is an AppError is returned unchanged.
func FromDomain(err error) *AppError {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	switch {
	case errors.Is(err, domain.ErrPlaceNotFound):
		return NotFound("place").WithCause(err)
	case errors.Is(err, domain.ErrInvalidArgument), errors.Is(err, domain.ErrInvalidLocation):
		return BadRequest(err.Error()).WithCause(err)
	case errors.Is(err, domain.ErrGeocoderUnavailable):
		return BadGateway(err)
	default:
		return Internal(err)
	}
}

// ExitCode maps err to a process exit status: 0 for nil, 2 for invalid
// input and 1 for everything else.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	if FromDomain(err).Code == CodeInvalidArgument {
		return 2
	}
	return 1
}
