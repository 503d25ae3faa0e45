package dispatch

import (
	"errors"
	"fmt"
)

// Kind is the canonical failure category shared by every provider adapter.
// Callers branch on the kind, never on provider-specific error shapes.
type Kind string

const (
	// KindInvalidInput means the caller's request was malformed. Never retried.
	KindInvalidInput Kind = "invalid_input"
	// KindProviderRejected means the provider explicitly refused the request
	// (bad credentials, malformed envelope, business rule). Never retried.
	KindProviderRejected Kind = "provider_rejected"
	// KindProviderUnavailable means the provider could not be reached or timed
	// out. Safe to retry with backoff.
	KindProviderUnavailable Kind = "provider_unavailable"
	// KindInternal is an unclassified failure inside the gateway itself.
	KindInternal Kind = "internal"
)

// Error is the canonical error surfaced by the gateway. Message is safe to
// return to callers; Cause keeps provider diagnostics for server-side logs and
// must never be echoed back over the wire.
type Error struct {
	Kind    Kind
	Message string
	Cause   string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func Invalid(message string) *Error {
	return &Error{Kind: KindInvalidInput, Message: message}
}

func Rejected(provider, message, cause string) *Error {
	return &Error{
		Kind:    KindProviderRejected,
		Message: fmt.Sprintf("%s rejected the request: %s", provider, message),
		Cause:   cause,
	}
}

func Unavailable(provider, cause string) *Error {
	return &Error{
		Kind:    KindProviderUnavailable,
		Message: fmt.Sprintf("%s is unreachable", provider),
		Cause:   cause,
	}
}

func Internal(cause string) *Error {
	return &Error{
		Kind:    KindInternal,
		Message: "the gateway encountered a problem",
		Cause:   cause,
	}
}

// KindOf classifies any error. Errors that did not come out of this package
// are genuinely unrecognized and map to KindInternal.
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindInternal
}

// Retryable reports whether the failure is transient. Only unavailable
// providers qualify; rejections and bad input are non-transient by contract.
func Retryable(err error) bool {
	return KindOf(err) == KindProviderUnavailable
}
