package cqlresult

import (
	"github.com/google/uuid"

	"github.com/arloliu/cqlresult/frame"
)

// Coordinator identifies the cluster node that served a request.
type Coordinator struct {
	// Addr is the node's address as the driver connected to it,
	// in host:port form.
	Addr string

	// HostID is the node's unique host id.
	HostID uuid.UUID

	// Datacenter and Rack locate the node in the cluster topology, when
	// known to the connection layer.
	Datacenter string
	Rack       string
}

// QueryResult is the final, immutable outcome of a single query request:
// the raw row set (absent for non-row results), the coordinator that served
// it, and the tracing id and warnings passed through from the response.
//
// QueryResult values are created only by the Handler's assemble operations.
// Row deserialization into application types is the caller's concern.
type QueryResult struct {
	rows        *frame.RawRows
	coordinator *Coordinator
	tracingID   *uuid.UUID
	warnings    []string
}

func newQueryResult(coordinator Coordinator, rows *frame.RawRows, tracingID *uuid.UUID, warnings []string) *QueryResult {
	return &QueryResult{
		rows:        rows,
		coordinator: &coordinator,
		tracingID:   tracingID,
		warnings:    warnings,
	}
}

// newQueryResultUnknownCoordinator builds a result with no coordinator.
// Reserved for results synthesized outside the context of a single-node
// request; ordinary execution always has a coordinator to record.
func newQueryResultUnknownCoordinator(rows *frame.RawRows, tracingID *uuid.UUID, warnings []string) *QueryResult {
	return &QueryResult{
		rows:      rows,
		tracingID: tracingID,
		warnings:  warnings,
	}
}

// Rows returns the raw row set and true when the response was a ROWS
// result; for every other result subtype it reports false.
func (r *QueryResult) Rows() (*frame.RawRows, bool) {
	if r.rows == nil {
		return nil, false
	}

	return r.rows, true
}

// Coordinator returns the node that served the request. It reports false
// only for results built through the unknown-coordinator path.
func (r *QueryResult) Coordinator() (Coordinator, bool) {
	if r.coordinator == nil {
		return Coordinator{}, false
	}

	return *r.coordinator, true
}

// TracingID returns the trace session id, or nil when tracing was not
// requested.
func (r *QueryResult) TracingID() *uuid.UUID {
	return r.tracingID
}

// Warnings returns the server warnings, in the order the server sent them.
func (r *QueryResult) Warnings() []string {
	return r.warnings
}
