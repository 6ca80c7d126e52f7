package cqlresult

import (
	"github.com/google/uuid"

	"github.com/arloliu/cqlresult/frame"
)

// QueryResponse wraps a decoded response together with the request-scoped
// metadata the frame codec extracted from the frame header: tracing id,
// warnings and the opaque custom payload.
//
// A QueryResponse is owned by the single caller that received it from the
// codec. Classification consumes it; after Handler.Classify returns, the
// envelope is invalidated and further use fails with
// types.ErrResponseConsumed.
type QueryResponse struct {
	// Response is the decoded response body. Nil once the envelope has
	// been consumed.
	Response frame.Response

	// TracingID identifies the server-side trace session, when tracing
	// was requested.
	TracingID *uuid.UUID

	// Warnings are the server warnings attached to the response, in the
	// order the server sent them.
	Warnings []string

	// CustomPayload is the opaque key/value payload of the frame, if any.
	// Not interpreted by this library.
	CustomPayload map[string][]byte
}

// NonErrorQueryResponse is a QueryResponse whose response is guaranteed not
// to be an ERROR. Produced only by Handler.Classify.
type NonErrorQueryResponse struct {
	response  frame.Response
	tracingID *uuid.UUID
	warnings  []string
}

// Kind returns the response's frame opcode.
func (r *NonErrorQueryResponse) Kind() frame.Op {
	return r.response.Kind()
}

// TracingID returns the trace session id, or nil when tracing was not
// requested.
func (r *NonErrorQueryResponse) TracingID() *uuid.UUID {
	return r.tracingID
}

// Warnings returns the server warnings attached to the response.
func (r *NonErrorQueryResponse) Warnings() []string {
	return r.warnings
}

// SchemaChange returns the schema-change payload when the response is
// exactly a RESULT of kind SCHEMA_CHANGE. Every other variant, rows
// included, reports false. It never fails and does not consume the
// response.
func (r *NonErrorQueryResponse) SchemaChange() (*frame.SchemaChange, bool) {
	result, ok := r.response.(*frame.Result)
	if !ok {
		return nil, false
	}
	change, ok := result.Body.(*frame.SchemaChange)
	if !ok {
		return nil, false
	}

	return change, true
}

// SetKeyspace returns the set-keyspace payload when the response is exactly
// a RESULT of kind SET_KEYSPACE. Every other variant reports false. It
// never fails and does not consume the response.
func (r *NonErrorQueryResponse) SetKeyspace() (*frame.SetKeyspace, bool) {
	result, ok := r.response.(*frame.Result)
	if !ok {
		return nil, false
	}
	keyspace, ok := result.Body.(*frame.SetKeyspace)
	if !ok {
		return nil, false
	}

	return keyspace, true
}
