package medium

import "fmt"

// Kind classifies an upstream failure into a stable taxonomy.
// The tool layer formats these into the response prefix, so the literal
// values are part of the interface contract with calling assistants.
type Kind string

const (
	// KindNotFound indicates the requested resource does not exist upstream.
	KindNotFound Kind = "NotFound"

	// KindRateLimited indicates the upstream reported quota exhaustion.
	KindRateLimited Kind = "RateLimited"

	// KindInvalidInput indicates a caller-supplied parameter was rejected
	// before any upstream call was made.
	KindInvalidInput Kind = "InvalidInput"

	// KindNetworkError indicates a connection failure or timeout.
	KindNetworkError Kind = "NetworkError"

	// KindUpstreamUnknown indicates an unclassified upstream failure.
	// The raw upstream message is carried for diagnosability.
	KindUpstreamUnknown Kind = "UpstreamUnknown"
)

// Error is the domain error returned by the client adapter and the tool
// validation layer. Every upstream failure is classified exactly once;
// nothing in this server retries on any Kind.
type Error struct {
	Kind    Kind
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	return string(e.Kind) + ": " + e.Message
}

// Retryable reports whether a caller could reasonably retry the operation.
// Metadata only: the server itself never retries.
func (e *Error) Retryable() bool {
	return e.Kind == KindRateLimited || e.Kind == KindNetworkError
}

// Errorf builds an *Error with a formatted message.
func Errorf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}
