// Package errors is the coded error type shared by the rules engine. Codes
// let callers tell bad player input apart from broken content or storage.
package errors

import (
	"errors"
	"fmt"
	"maps"
)

// Code categorizes an error
type Code string

const (
	CodeUnknown         Code = "unknown"
	CodeInvalidArgument Code = "invalid_argument"
	CodeNotFound        Code = "not_found"
	CodeAlreadyExists   Code = "already_exists"
	CodeInternal        Code = "internal"
	CodeValidation      Code = "validation"

	// CodeUnknownClass means the actor's class has no class item
	CodeUnknownClass Code = "unknown_class"

	// CodeEmptySelection means a level-up was submitted with nothing picked
	CodeEmptySelection Code = "empty_selection"

	// CodeNotReady means the actor cannot level up yet
	CodeNotReady Code = "not_ready"

	// CodeInvalidFormula means a dice or settings formula did not parse or
	// evaluate
	CodeInvalidFormula Code = "invalid_formula"
)

// userInputCodes are shown to the player as warnings
var userInputCodes = map[Code]bool{
	CodeUnknownClass:    true,
	CodeEmptySelection:  true,
	CodeValidation:      true,
	CodeInvalidArgument: true,
	CodeNotReady:        true,
}

// Error carries a code, a message, an optional cause and metadata for logs
type Error struct {
	Code    Code
	Message string
	Cause   error
	Meta    map[string]any
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Cause)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// WithMeta attaches a key/value pair and returns e for chaining
func (e *Error) WithMeta(key string, value any) *Error {
	if e.Meta == nil {
		e.Meta = make(map[string]any, 1)
	}
	e.Meta[key] = value
	return e
}

// New creates an error with code
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Newf creates an error with code and a formatted message
func Newf(code Code, format string, args ...any) *Error {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap adds message to err. The code and metadata of a wrapped *Error carry
// over; anything else becomes CodeUnknown. A nil err gives nil.
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	wrapped := &Error{Code: CodeUnknown, Message: message, Cause: err}
	if inner := as(err); inner != nil {
		wrapped.Code = inner.Code
		wrapped.Meta = maps.Clone(inner.Meta)
	}
	return wrapped
}

// Wrapf is Wrap with a formatted message
func Wrapf(err error, format string, args ...any) *Error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WrapWithCode wraps err and overrides its code
func WrapWithCode(err error, code Code, message string) *Error {
	wrapped := Wrap(err, message)
	if wrapped != nil {
		wrapped.Code = code
	}
	return wrapped
}

func NotFound(message string) *Error { return New(CodeNotFound, message) }

func NotFoundf(format string, args ...any) *Error { return Newf(CodeNotFound, format, args...) }

func InvalidArgument(message string) *Error { return New(CodeInvalidArgument, message) }

func InvalidArgumentf(format string, args ...any) *Error {
	return Newf(CodeInvalidArgument, format, args...)
}

func AlreadyExistsf(format string, args ...any) *Error {
	return Newf(CodeAlreadyExists, format, args...)
}

func Internalf(format string, args ...any) *Error { return Newf(CodeInternal, format, args...) }

func Validation(message string) *Error { return New(CodeValidation, message) }

func Validationf(format string, args ...any) *Error { return Newf(CodeValidation, format, args...) }

func UnknownClassf(format string, args ...any) *Error {
	return Newf(CodeUnknownClass, format, args...)
}

func EmptySelection(message string) *Error { return New(CodeEmptySelection, message) }

func NotReadyf(format string, args ...any) *Error { return Newf(CodeNotReady, format, args...) }

func InvalidFormulaf(format string, args ...any) *Error {
	return Newf(CodeInvalidFormula, format, args...)
}

func as(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return nil
}

// GetCode returns the code of the outermost *Error in err's chain
func GetCode(err error) Code {
	if e := as(err); e != nil {
		return e.Code
	}
	return CodeUnknown
}

// GetMeta returns the metadata of the outermost *Error in err's chain
func GetMeta(err error) map[string]any {
	if e := as(err); e != nil {
		return e.Meta
	}
	return nil
}

// Is reports whether err carries code
func Is(err error, code Code) bool {
	return as(err) != nil && GetCode(err) == code
}

func IsNotFound(err error) bool        { return Is(err, CodeNotFound) }
func IsInvalidArgument(err error) bool { return Is(err, CodeInvalidArgument) }
func IsAlreadyExists(err error) bool   { return Is(err, CodeAlreadyExists) }
func IsValidation(err error) bool      { return Is(err, CodeValidation) }
func IsUnknownClass(err error) bool    { return Is(err, CodeUnknownClass) }
func IsInvalidFormula(err error) bool  { return Is(err, CodeInvalidFormula) }
func IsNotReady(err error) bool        { return Is(err, CodeNotReady) }

// IsUserInput reports whether err should reach the player as a warning
// instead of being treated as a failure
func IsUserInput(err error) bool {
	return userInputCodes[GetCode(err)]
}
