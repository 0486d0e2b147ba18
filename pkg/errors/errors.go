// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package errors provides the structured error taxonomy shared by the
// API client, the metadata mapper, and the wrapper layers.
//
// Every failure the engine surfaces carries one of the Kind codes below,
// so a caller can translate it into an HTTP status or CLI exit message
// without string matching. Errors wrap their cause and work with the
// standard errors.Is/errors.As machinery.
package errors

import (
	"errors"
	"fmt"
	"time"
)

// Kind is a machine-readable failure category.
type Kind string

const (
	// KindNotFound: the repository (or a user record) does not exist or is
	// inaccessible with the given credentials.
	KindNotFound Kind = "NOT_FOUND"

	// KindUnauthorized: the API token was rejected.
	KindUnauthorized Kind = "UNAUTHORIZED"

	// KindRateLimited: the platform signalled quota exhaustion and the
	// retry budget is spent. Carries the reset delay when known.
	KindRateLimited Kind = "RATE_LIMITED"

	// KindTransient: network failure, timeout, or 5xx after retries.
	KindTransient Kind = "TRANSIENT"

	// KindForkChainTooDeep: the parent chain exceeded the depth cap or
	// revisited an identity, evidence of cyclic or malformed API data.
	KindForkChainTooDeep Kind = "FORK_CHAIN_TOO_DEEP"

	// KindIncompleteForkChain: the root repository is fine but one of its
	// fork ancestors could not be resolved.
	KindIncompleteForkChain Kind = "INCOMPLETE_FORK_CHAIN"

	// KindSchemaViolation: the assembled document failed structural
	// validation before serialization. Always an internal defect.
	KindSchemaViolation Kind = "SCHEMA_VIOLATION"
)

// Error is a structured error with a kind and optional cause.
type Error struct {
	Kind    Kind   // machine-readable failure category
	Message string // human-readable message
	Cause   error  // underlying error (optional)

	// RetryAfter is the wait the platform asked for on rate limits.
	// Zero when unknown or not applicable.
	RetryAfter time.Duration
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates an Error with the given kind and formatted message.
func New(kind Kind, format string, args ...any) *Error {
	return &Error{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates an Error wrapping an existing error.
func Wrap(kind Kind, cause error, format string, args ...any) *Error {
	return &Error{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err carries the given kind anywhere in its chain.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// KindOf extracts the kind from an error. Returns the empty kind for
// errors that did not originate in this taxonomy.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// RetryAfterOf returns the rate-limit reset delay recorded in err, or
// zero when none is known.
func RetryAfterOf(err error) time.Duration {
	var e *Error
	if errors.As(err, &e) {
		return e.RetryAfter
	}
	return 0
}
