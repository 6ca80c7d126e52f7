package types

import (
	"errors"

	"github.com/arloliu/cqlresult/frame"
)

// Sentinel errors for the failure taxonomy of the response core.
var (
	// ErrServer indicates the server answered the request with an ERROR
	// response. The structured ServerError wrapping this sentinel carries
	// the server-reported code and message.
	ErrServer = errors.New("cqlresult: server returned an error response")

	// ErrUnexpectedResponse indicates the server replied with a response
	// kind that is invalid for the request that was issued. This signals a
	// protocol or version mismatch between driver and server, not a user
	// error.
	ErrUnexpectedResponse = errors.New("cqlresult: unexpected response kind for request")

	// ErrNonfinishedPagingState indicates an unpaged request path received
	// a continuation cursor. Accepting the result would silently truncate
	// the row set, so the conversion fails instead.
	ErrNonfinishedPagingState = errors.New("cqlresult: unpaged request received a nonfinished paging state")

	// ErrResponseConsumed indicates a response value was used again after a
	// consuming operation already took ownership of it.
	ErrResponseConsumed = errors.New("cqlresult: response has already been consumed")
)

// ServerError carries the error payload of an ERROR response, unchanged,
// for policy decisions (retry, fail the request) made outside this core.
type ServerError struct {
	// Code is the server-reported error code.
	Code frame.ErrorCode

	// Message is the server-reported, human-readable error message.
	Message string
}

// Error implements the error interface.
func (e *ServerError) Error() string {
	return "cqlresult: server error " + e.Code.String() + ": " + e.Message
}

// Unwrap returns ErrServer for errors.Is compatibility.
func (e *ServerError) Unwrap() error {
	return ErrServer
}

// UnexpectedResponseError reports the exact response kind the server sent
// in place of a valid reply.
type UnexpectedResponseError struct {
	// Kind is the observed response kind.
	Kind frame.Op
}

// Error implements the error interface.
func (e *UnexpectedResponseError) Error() string {
	return "cqlresult: unexpected response kind " + e.Kind.String()
}

// Unwrap returns ErrUnexpectedResponse for errors.Is compatibility.
func (e *UnexpectedResponseError) Unwrap() error {
	return ErrUnexpectedResponse
}

// Logger defines the leveled logging methods used by the response core.
//
// The variadic arguments are alternating key/value pairs, in the style of
// log/slog. Implementations must be safe for concurrent use.
type Logger interface {
	// Debug logs a message at debug level.
	Debug(msg string, args ...any)

	// Info logs a message at info level.
	Info(msg string, args ...any)

	// Warn logs a message at warn level.
	Warn(msg string, args ...any)

	// Error logs a message at error level.
	Error(msg string, args ...any)
}
