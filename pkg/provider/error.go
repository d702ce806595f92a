package provider

import (
	"errors"
	"fmt"
	"net/http"
)

type ErrorKind string

const (
	ErrorAuth        ErrorKind = "auth"
	ErrorRateLimited ErrorKind = "rate_limited"
	ErrorBadRequest  ErrorKind = "bad_request"
	ErrorNetwork     ErrorKind = "network"
	ErrorUnsupported ErrorKind = "unsupported"
	ErrorCache       ErrorKind = "cache"
	ErrorUnknown     ErrorKind = "unknown"
)

// Error is the uniform error surface of every vendor client. The vendor's
// message is preserved for diagnostics.
type Error struct {
	Kind ErrorKind

	Provider string
	Message  string

	Status int

	cause error
}

func (e *Error) Error() string {
	msg := e.Message

	if msg == "" && e.cause != nil {
		msg = e.cause.Error()
	}

	if msg == "" {
		msg = string(e.Kind)
	}

	if e.Provider != "" {
		return e.Provider + ": " + msg
	}

	return msg
}

func (e *Error) Unwrap() error {
	return e.cause
}

func NewError(kind ErrorKind, provider, message string) *Error {
	return &Error{
		Kind: kind,

		Provider: provider,
		Message:  message,
	}
}

func WrapError(kind ErrorKind, provider string, cause error) *Error {
	return &Error{
		Kind: kind,

		Provider: provider,

		cause: cause,
	}
}

func Unsupported(provider string, capability Capability) *Error {
	return &Error{
		Kind: ErrorUnsupported,

		Provider: provider,
		Message:  fmt.Sprintf("capability %q is not offered by this provider", capability),
	}
}

// FromStatus maps a vendor HTTP status to an error kind. 401 is an auth
// failure, 429 a rate limit, other 4xx a bad request, everything else unknown.
func FromStatus(provider string, status int, message string) *Error {
	kind := ErrorUnknown

	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		kind = ErrorAuth

	case status == http.StatusTooManyRequests:
		kind = ErrorRateLimited

	case status >= 400 && status < 500:
		kind = ErrorBadRequest
	}

	if message == "" {
		message = http.StatusText(status)
	}

	return &Error{
		Kind: kind,

		Provider: provider,
		Message:  message,

		Status: status,
	}
}

func KindOf(err error) ErrorKind {
	var e *Error

	if errors.As(err, &e) {
		return e.Kind
	}

	return ErrorUnknown
}

func IsAuth(err error) bool {
	return KindOf(err) == ErrorAuth
}

func IsRateLimited(err error) bool {
	return KindOf(err) == ErrorRateLimited
}

func IsBadRequest(err error) bool {
	return KindOf(err) == ErrorBadRequest
}

func IsNetwork(err error) bool {
	return KindOf(err) == ErrorNetwork
}

func IsUnsupported(err error) bool {
	return KindOf(err) == ErrorUnsupported
}
