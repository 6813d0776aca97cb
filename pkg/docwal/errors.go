package docwal

import (
	"errors"
	"fmt"
)

// ErrorKind identifies the failure class of an API call. It is a closed set:
// every error surfaced by the SDK carries exactly one kind.
type ErrorKind string

const (
	// ErrorKindAuthentication indicates the API key was rejected (HTTP 401).
	ErrorKindAuthentication ErrorKind = "authentication"
	// ErrorKindPermission indicates the key is valid but not authorized (HTTP 403).
	ErrorKindPermission ErrorKind = "permission"
	// ErrorKindNotFound indicates the requested resource does not exist (HTTP 404).
	ErrorKindNotFound ErrorKind = "not_found"
	// ErrorKindRateLimit indicates the institution is being throttled (HTTP 429).
	ErrorKindRateLimit ErrorKind = "rate_limit"
	// ErrorKindValidation indicates the server rejected the request payload (HTTP 400).
	ErrorKindValidation ErrorKind = "validation"
	// ErrorKindGeneric covers all other server errors and transport-level faults.
	ErrorKindGeneric ErrorKind = "generic"
)

// Error is the error type returned for every failed API call.
//
// StatusCode is 0 and RawBody is nil for transport-level faults (connection
// failures, timeouts); for HTTP error responses both are populated so callers
// can inspect the raw response beyond the classified message.
type Error struct {
	Kind       ErrorKind
	Message    string
	StatusCode int
	RawBody    []byte
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s (status %d)", e.Message, e.StatusCode)
	}

	return e.Message
}

// Static errors for err113 compliance.
var (
	ErrConfigRequired = errors.New("config is required")
	ErrAPIKeyRequired = errors.New("API key is required")
)

// IsAuthentication reports whether err is an authentication failure.
func IsAuthentication(err error) bool {
	return hasKind(err, ErrorKindAuthentication)
}

// IsPermission reports whether err is an authorization failure.
func IsPermission(err error) bool {
	return hasKind(err, ErrorKindPermission)
}

// IsNotFound reports whether err is a missing-resource failure.
func IsNotFound(err error) bool {
	return hasKind(err, ErrorKindNotFound)
}

// IsRateLimit reports whether err is a rate-limit failure.
func IsRateLimit(err error) bool {
	return hasKind(err, ErrorKindRateLimit)
}

// IsValidation reports whether err is a request-validation failure.
func IsValidation(err error) bool {
	return hasKind(err, ErrorKindValidation)
}

func hasKind(err error, kind ErrorKind) bool {
	apiErr := &Error{}
	if errors.As(err, &apiErr) {
		return apiErr.Kind == kind
	}

	return false
}
