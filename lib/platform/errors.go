// Copyright 2026 The Volttron TEC Authors
// SPDX-License-Identifier: Apache-2.0

package platform

import (
	"errors"
	"fmt"
)

// ErrorCategory classifies client errors so callers can decide how to
// present them without parsing message text.
type ErrorCategory string

const (
	// CategoryValidation indicates the caller provided invalid input
	// (a required field was empty). The request never reached the
	// network; the caller should fix the input and retry.
	CategoryValidation ErrorCategory = "validation"

	// CategoryTransport indicates the request could not complete:
	// network unreachable, connection refused, timeout. There is no
	// backend-supplied detail for these.
	CategoryTransport ErrorCategory = "transport"

	// CategoryBackend indicates the request completed and the backend
	// returned a structured failure. Detail carries the backend's
	// error text when the response body had one.
	CategoryBackend ErrorCategory = "backend"
)

// Error is a categorized failure from a backend operation. Backend
// failures carry the HTTP status code and the `detail` string from the
// response body; transport failures wrap the underlying error.
type Error struct {
	// Category classifies the error for presentation decisions.
	Category ErrorCategory

	// StatusCode is the HTTP status for backend errors, zero otherwise.
	StatusCode int

	// Detail is the backend-supplied error text, empty when the
	// response carried none (or never arrived).
	Detail string

	// Err is the underlying error, nil for backend errors that
	// originate purely from the response body.
	Err error
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("backend returned status %d", e.StatusCode)
}

// Unwrap returns the underlying error, allowing errors.Is and
// errors.As to walk the chain through the Error wrapper.
func (e *Error) Unwrap() error { return e.Err }

// UserMessage returns the text to surface to the operator: the backend
// detail verbatim when present, otherwise a generic fallback for
// transport failures.
func (e *Error) UserMessage() string {
	switch e.Category {
	case CategoryTransport:
		if e.Detail != "" {
			return e.Detail
		}
		return "request failed: backend unreachable"
	default:
		return e.Error()
	}
}

// Validation creates a validation error: a required field was missing
// or malformed. No request is issued for these.
func Validation(format string, args ...any) *Error {
	return &Error{Category: CategoryValidation, Err: fmt.Errorf(format, args...)}
}

// Transport creates a transport error wrapping the underlying cause.
func Transport(err error) *Error {
	return &Error{Category: CategoryTransport, Err: err}
}

// Backend creates a backend error from an HTTP status and the detail
// string extracted from the response body (may be empty).
func Backend(statusCode int, detail string) *Error {
	return &Error{Category: CategoryBackend, StatusCode: statusCode, Detail: detail}
}

// CategoryOf returns the category of err if it is (or wraps) an Error,
// and CategoryTransport otherwise — an uncategorized failure from the
// HTTP layer is by definition a transport problem.
func CategoryOf(err error) ErrorCategory {
	var clientErr *Error
	if errors.As(err, &clientErr) {
		return clientErr.Category
	}
	return CategoryTransport
}
