package errors

import "fmt"

// Category represents the type of error.
type Category string

const (
	CategoryBuild  Category = "build"
	CategoryRender Category = "render"
	CategoryConfig Category = "config"
	CategoryCLI    Category = "cli"
)

// Error is a structured error with a code, category, and optional
// suggestion for fixing the underlying problem.
type Error struct {
	// Code is a unique error identifier (e.g., "W001").
	Code string

	// Category is the error type (build, render, etc.).
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer, per-occurrence explanation.
	Detail string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Message
	if e.Code != "" {
		msg = fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *Error) Unwrap() error {
	return e.Wrapped
}

// WithDetail adds a per-occurrence explanation to the error.
func (e *Error) WithDetail(format string, args ...any) *Error {
	e.Detail = fmt.Sprintf(format, args...)
	return e
}

// WithSuggestion adds a fix suggestion to the error.
func (e *Error) WithSuggestion(s string) *Error {
	e.Suggestion = s
	return e
}

// Wrap wraps another error.
func (e *Error) Wrap(err error) *Error {
	e.Wrapped = err
	return e
}

// New creates an Error from a registered error code.
func New(code string) *Error {
	template, ok := registry[code]
	if !ok {
		return &Error{
			Code:    code,
			Message: "unknown error",
		}
	}
	return &Error{
		Code:     code,
		Category: template.Category,
		Message:  template.Message,
	}
}

// Newf creates a new Error with a formatted message and no code.
func Newf(category Category, format string, args ...any) *Error {
	return &Error{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}
