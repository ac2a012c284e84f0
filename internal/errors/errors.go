package errors

import (
	"errors"
	"fmt"
)

// Code represents an error code for categorizing errors
type Code string

const (
	// CodeUnknown indicates an unknown error
	CodeUnknown Code = "unknown"

	// CodeInvalidArgument indicates the caller specified an invalid argument
	CodeInvalidArgument Code = "invalid_argument"

	// CodeNotFound indicates a requested resource was not found
	CodeNotFound Code = "not_found"

	// CodeAlreadyExists indicates an attempt to create a resource that already exists
	CodeAlreadyExists Code = "already_exists"

	// CodeInternal indicates an internal system error
	CodeInternal Code = "internal"

	// CodeFormat indicates a malformed dice formula
	CodeFormat Code = "format_error"

	// CodeOverBudget indicates a purchase would exceed the shin cap
	CodeOverBudget Code = "over_budget"

	// CodeEmptyLedger indicates an undo on a ledger with no purchases
	CodeEmptyLedger Code = "empty_ledger"

	// CodeInvariant indicates a character-level rule was broken
	CodeInvariant Code = "invariant_violation"

	// CodeDuplicateID indicates two catalog entries share an identifier
	CodeDuplicateID Code = "duplicate_id"

	// CodeReferenceNotFound indicates a catalog reference does not resolve
	CodeReferenceNotFound Code = "reference_not_found"

	// CodeCorruptData indicates a persisted sheet could not be decoded
	CodeCorruptData Code = "corrupt_data"
)

// Error represents an application error with code and metadata
type Error struct {
	// Code is the error code
	Code Code

	// Message is the error message
	Message string

	// Cause is the wrapped error
	Cause error

	// Meta contains additional context
	Meta map[string]any
}

// Error returns the error message
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Cause
}

// WithMeta adds metadata to the error (builder pattern)
func (e *Error) WithMeta(key string, value any) *Error {
	if e.Meta == nil {
		e.Meta = make(map[string]any)
	}
	e.Meta[key] = value
	return e
}

// New creates a new error with the given code and message
func New(code Code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Newf creates a new error with formatted message
func Newf(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an error with additional context
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	// If it's already our error type, preserve the code
	var chErr *Error
	if errors.As(err, &chErr) {
		return &Error{
			Code:    chErr.Code,
			Message: message,
			Cause:   err,
			Meta:    copyMeta(chErr.Meta),
		}
	}

	return &Error{
		Code:    CodeUnknown,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an error with formatted message
func Wrapf(err error, format string, args ...any) *Error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WrapWithCode wraps an error with a specific code
func WrapWithCode(err error, code Code, message string) *Error {
	if err == nil {
		return nil
	}

	wrapped := Wrap(err, message)
	wrapped.Code = code
	return wrapped
}

// Helper constructors for common error types

// NotFoundf creates a formatted not found error
func NotFoundf(format string, args ...any) *Error {
	return Newf(CodeNotFound, format, args...)
}

// InvalidArgument creates an invalid argument error
func InvalidArgument(message string) *Error {
	return New(CodeInvalidArgument, message)
}

// InvalidArgumentf creates a formatted invalid argument error
func InvalidArgumentf(format string, args ...any) *Error {
	return Newf(CodeInvalidArgument, format, args...)
}

// AlreadyExistsf creates a formatted already exists error
func AlreadyExistsf(format string, args ...any) *Error {
	return Newf(CodeAlreadyExists, format, args...)
}

// Internalf creates a formatted internal error
func Internalf(format string, args ...any) *Error {
	return Newf(CodeInternal, format, args...)
}

// Formatf creates a formatted dice formula error
func Formatf(format string, args ...any) *Error {
	return Newf(CodeFormat, format, args...)
}

// OverBudgetf creates a formatted over budget error
func OverBudgetf(format string, args ...any) *Error {
	return Newf(CodeOverBudget, format, args...)
}

// EmptyLedger creates an empty ledger error
func EmptyLedger(message string) *Error {
	return New(CodeEmptyLedger, message)
}

// Invariantf creates a formatted invariant violation error
func Invariantf(format string, args ...any) *Error {
	return Newf(CodeInvariant, format, args...)
}

// CorruptDataf creates a formatted corrupt data error
func CorruptDataf(format string, args ...any) *Error {
	return Newf(CodeCorruptData, format, args...)
}

// Error checking functions

// Is checks if the error is of a specific code
func Is(err error, code Code) bool {
	var chErr *Error
	if errors.As(err, &chErr) {
		return chErr.Code == code
	}
	return false
}

// IsNotFound checks if the error is a not found error
func IsNotFound(err error) bool {
	return Is(err, CodeNotFound)
}

// IsFormat checks if the error is a dice formula error
func IsFormat(err error) bool {
	return Is(err, CodeFormat)
}

// IsOverBudget checks if the error is an over budget error
func IsOverBudget(err error) bool {
	return Is(err, CodeOverBudget)
}

// IsInvariant checks if the error is an invariant violation
func IsInvariant(err error) bool {
	return Is(err, CodeInvariant)
}

// IsCorruptData checks if the error is a corrupt data error
func IsCorruptData(err error) bool {
	return Is(err, CodeCorruptData)
}

// GetCode returns the error code
func GetCode(err error) Code {
	var chErr *Error
	if errors.As(err, &chErr) {
		return chErr.Code
	}
	return CodeUnknown
}

// GetMeta returns the error metadata
func GetMeta(err error) map[string]any {
	var chErr *Error
	if errors.As(err, &chErr) {
		return chErr.Meta
	}
	return nil
}

// copyMeta creates a copy of the metadata map
func copyMeta(meta map[string]any) map[string]any {
	if meta == nil {
		return nil
	}

	copied := make(map[string]any, len(meta))
	for k, v := range meta {
		copied[k] = v
	}
	return copied
}
