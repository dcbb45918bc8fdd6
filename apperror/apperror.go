package apperror

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Error kinds; every business-rule failure maps to exactly one of these.
const (
	CodeUnauthenticated    = "UNAUTHENTICATED"
	CodeForbidden          = "FORBIDDEN"
	CodeNotFound           = "NOT_FOUND"
	CodeConflict           = "CONFLICT"
	CodePreconditionFailed = "PRECONDITION_FAILED"
	CodeValidation         = "VALIDATION"
	CodeInternal           = "INTERNAL"
)

// Error is a business-rule failure carried as a value back to the HTTP layer.
// Only Internal wraps an unexpected underlying fault; everything else is an
// expected outcome with a user-presentable message.
type Error struct {
	Status  int    // HTTP status the controller should respond with
	Code    string
	Message string
	Err     error // underlying cause, set for Internal only
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsInternal reports whether the error is an unexpected fault rather than a
// business-rule outcome.
func (e *Error) IsInternal() bool {
	return e != nil && e.Code == CodeInternal
}

func Unauthenticated(message string) *Error {
	return &Error{Status: fiber.StatusUnauthorized, Code: CodeUnauthenticated, Message: message}
}

func Forbidden(message string) *Error {
	return &Error{Status: fiber.StatusForbidden, Code: CodeForbidden, Message: message}
}

func NotFound(message string) *Error {
	return &Error{Status: fiber.StatusNotFound, Code: CodeNotFound, Message: message}
}

func Conflict(message string) *Error {
	return &Error{Status: fiber.StatusConflict, Code: CodeConflict, Message: message}
}

func PreconditionFailed(message string) *Error {
	return &Error{Status: fiber.StatusUnprocessableEntity, Code: CodePreconditionFailed, Message: message}
}

func Validation(message string) *Error {
	return &Error{Status: fiber.StatusBadRequest, Code: CodeValidation, Message: message}
}

func Internal(message string, err error) *Error {
	return &Error{Status: fiber.StatusInternalServerError, Code: CodeInternal, Message: message, Err: err}
}
