package apperr

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Code classifies an operation outcome. Every code is deterministic for a
// given input and store state; none of them warrant a retry.
type Code string

const (
	CodeNotFound   Code = "not_found"
	CodeValidation Code = "validation_failed"
	CodeConflict   Code = "conflict"
	CodeForbidden  Code = "forbidden"
)

// Error is the structured outcome returned by the service layer so callers
// can render field-level feedback instead of parsing message strings.
type Error struct {
	Code    Code
	Message string
	Fields  map[string][]string // field -> messages, populated for validation/conflict/forbidden-field outcomes
}

func (e *Error) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}

	names := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		names = append(names, field)
	}
	sort.Strings(names)

	return fmt.Sprintf("%s (%s)", e.Message, strings.Join(names, ", "))
}

// NotFound reports a lookup that resolved to nothing.
func NotFound(format string, args ...any) *Error {
	return &Error{Code: CodeNotFound, Message: fmt.Sprintf(format, args...)}
}

// Conflict reports a uniqueness violation on a single field.
func Conflict(field, message string) *Error {
	return &Error{
		Code:    CodeConflict,
		Message: message,
		Fields:  map[string][]string{field: {message}},
	}
}

// Forbidden reports an attempt to mutate a protected record.
func Forbidden(message string) *Error {
	return &Error{Code: CodeForbidden, Message: message}
}

// ForbiddenField is Forbidden keyed to the offending field.
func ForbiddenField(field, message string) *Error {
	return &Error{
		Code:    CodeForbidden,
		Message: message,
		Fields:  map[string][]string{field: {message}},
	}
}

// Validation wraps the collected field violations into a single error.
// The caller must only invoke it with a non-empty set.
func Validation(v Violations) *Error {
	return &Error{
		Code:    CodeValidation,
		Message: "validation failed",
		Fields:  map[string][]string(v),
	}
}

// Violations accumulates field-keyed validation messages. All rules are
// evaluated before reporting so a form renders every problem at once.
type Violations map[string][]string

// Add records one violation for a field.
func (v Violations) Add(field, message string) {
	v[field] = append(v[field], message)
}

// Empty reports whether no violations were recorded.
func (v Violations) Empty() bool {
	return len(v) == 0
}

// From extracts the structured error from an error chain, if present.
func From(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsCode reports whether err carries the given outcome code.
func IsCode(err error, code Code) bool {
	appErr, ok := From(err)
	return ok && appErr.Code == code
}
