package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"

	"teamdash/domain/team"
)

// AppError represents a structured application error
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// New creates a new AppError
func New(code, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an error with additional context, keeping the code of an
// underlying AppError when there is one.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return &AppError{
		Code:    GetCode(err),
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an error with formatted additional context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// GetCode returns the code of the outermost AppError in err's chain.
// Errors carrying a roster ErrorKind map onto NOT_FOUND, TIMEOUT or
// INTERNAL_ERROR; anything else is INTERNAL_ERROR.
func GetCode(err error) string {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Code
	}
	if kind, ok := team.KindOf(err); ok {
		switch kind {
		case team.PersonNotFound:
			return CodeNotFound
		case team.ConnectionTimeout:
			return CodeTimeout
		case team.PersonCreationFailure, team.PersonUpdateFailure:
			return CodeInvalidInput
		}
	}
	return CodeInternalError
}

// HTTPStatus maps an error onto the status code an HTTP handler should send
func HTTPStatus(err error) int {
	switch GetCode(err) {
	case CodeNotFound:
		return http.StatusNotFound
	case CodeInvalidInput:
		return http.StatusUnprocessableEntity
	case CodeTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// Predefined error codes
const (
	CodeConfigInvalid = "CONFIG_INVALID"
	CodeInvalidInput  = "INVALID_INPUT"
	CodeNotFound      = "NOT_FOUND"
	CodeTimeout       = "TIMEOUT"
	CodeRenderError   = "RENDER_ERROR"
	CodeImportError   = "IMPORT_ERROR"
	CodeInternalError = "INTERNAL_ERROR"
)

// Common error constructors
func ConfigInvalid(message string) *AppError {
	return New(CodeConfigInvalid, message)
}

func InvalidInput(message string) *AppError {
	return New(CodeInvalidInput, message)
}

func NotFound(resource string) *AppError {
	return New(CodeNotFound, fmt.Sprintf("%s not found", resource))
}

func RenderError(message string, cause error) *AppError {
	return &AppError{
		Code:    CodeRenderError,
		Message: message,
		Cause:   cause,
	}
}

func ImportError(source string, cause error) *AppError {
	return &AppError{
		Code:    CodeImportError,
		Message: fmt.Sprintf("failed to import roster from %s", source),
		Cause:   cause,
	}
}
