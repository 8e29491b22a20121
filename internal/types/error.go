package types

import (
	"errors"
	"fmt"
)

type ErrorCategory string

func (c ErrorCategory) String() string {
	return string(c)
}

const (
	// TransportError covers network level failures reaching an upstream API.
	TransportError ErrorCategory = "transport"
	// HttpStatusError covers non-2xx responses from an upstream API.
	HttpStatusError ErrorCategory = "http_status"
	// ParseError covers response bodies that do not match the expected shape.
	ParseError ErrorCategory = "parse"
	// MalformedEntryError covers staker records missing required fields.
	MalformedEntryError ErrorCategory = "malformed_entry"
)

// Error is a classified error returned by the clients and the data
// processor. The category decides how a scrape cycle reacts to it.
type Error struct {
	Category ErrorCategory
	Err      error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Category, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func NewError(category ErrorCategory, err error) *Error {
	return &Error{Category: category, Err: err}
}

func NewErrorf(category ErrorCategory, format string, args ...any) *Error {
	return &Error{Category: category, Err: fmt.Errorf(format, args...)}
}

// CategoryOf extracts the category from a classified error chain.
// Unclassified errors report as transport failures.
func CategoryOf(err error) ErrorCategory {
	var typed *Error
	if errors.As(err, &typed) {
		return typed.Category
	}
	return TransportError
}

func IsMalformedEntryError(err error) bool {
	return CategoryOf(err) == MalformedEntryError
}
