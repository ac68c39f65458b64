package models

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Error codes used across the service and handler layers.
const (
	CodeInvalidArgument    = "INVALID_ARGUMENT"
	CodeValidationError    = "VALIDATION_ERROR"
	CodeNotFound           = "NOT_FOUND"
	CodeAssociationFailure = "ASSOCIATION_FAILURE"
	CodeInternalError      = "INTERNAL_ERROR"
)

// Envelope is the uniform response wrapper returned by every API endpoint.
type Envelope struct {
	Success bool     `json:"success"`
	Data    any      `json:"data,omitempty"`
	Message string   `json:"message,omitempty"`
	Error   string   `json:"error,omitempty"`
	Errors  []string `json:"errors,omitempty"`
}

// AppError is a typed application error carrying a machine code, a
// human-readable message and, for validation failures, per-field reasons.
type AppError struct {
	Code    string
	Message string
	Reasons []string
	Err     error
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

// NewInvalidArgumentError reports a malformed identifier, detected before
// any store access.
func NewInvalidArgumentError(label string) *AppError {
	return &AppError{
		Code:    CodeInvalidArgument,
		Message: "Invalid " + label,
	}
}

// NewNotFoundError reports a well-formed identifier with no matching record.
func NewNotFoundError(resource string, id any) *AppError {
	return &AppError{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s with ID %v not found", resource, id),
	}
}

// NewValidationError reports a single field-constraint violation.
func NewValidationError(message string) *AppError {
	return &AppError{
		Code:    CodeValidationError,
		Message: message,
		Reasons: []string{message},
	}
}

// NewValidationErrors reports a list of field-constraint violations.
func NewValidationErrors(reasons ...string) *AppError {
	msg := "Validation failed"
	if len(reasons) == 1 {
		msg = reasons[0]
	}
	return &AppError{
		Code:    CodeValidationError,
		Message: msg,
		Reasons: reasons,
	}
}

// NewAssociationError reports that a dependent write succeeded but a related
// linkage update failed.
func NewAssociationError(message string) *AppError {
	return &AppError{
		Code:    CodeAssociationFailure,
		Message: message,
	}
}

func NewInternalError(err error) *AppError {
	return &AppError{
		Code:    CodeInternalError,
		Message: "Internal server error",
		Err:     err,
	}
}

// StatusForError maps an error to the HTTP status of its code. Unknown
// errors are treated as internal.
func StatusForError(err error) int {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		return fiber.StatusInternalServerError
	}
	switch appErr.Code {
	case CodeInvalidArgument, CodeValidationError:
		return fiber.StatusBadRequest
	case CodeNotFound, CodeAssociationFailure:
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

// RespondWithError renders err as the standard envelope with the given
// status. Internal errors deliberately hide their cause from the client.
func RespondWithError(c *fiber.Ctx, status int, err error) error {
	env := Envelope{Success: false}

	var appErr *AppError
	if errors.As(err, &appErr) {
		switch appErr.Code {
		case CodeValidationError:
			env.Errors = appErr.Reasons
			env.Error = appErr.Message
		case CodeInternalError:
			env.Message = appErr.Message
		default:
			env.Error = appErr.Message
		}
	} else {
		env.Message = "Internal server error"
	}

	return c.Status(status).JSON(env)
}
