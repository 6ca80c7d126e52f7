// Package types provides shared types and error definitions for the
// cqlresult library.
//
// Together with package frame it forms the leaf of the import graph: it
// imports nothing from cqlresult except frame, so every other package can
// import it without cycles.
//
// # Errors
//
// Sentinel errors classify every failure the response core can report:
//
//   - ErrServer: the server answered with an ERROR response
//   - ErrUnexpectedResponse: the response kind is invalid for the request
//   - ErrNonfinishedPagingState: an unpaged request received a continuation
//   - ErrResponseConsumed: a response was used again after being consumed
//
// ServerError and UnexpectedResponseError are structured errors wrapping
// the first two sentinels, so callers can branch either way:
//
//	var srvErr *types.ServerError
//	if errors.As(err, &srvErr) {
//	    log.Printf("server said %s: %s", srvErr.Code, srvErr.Message)
//	}
//	if errors.Is(err, types.ErrServer) {
//	    // same condition, without the payload
//	}
//
// # Interfaces
//
// Logger and MetricsCollector are the ambient contracts the Handler is
// configured with; the internal logging and metrics packages provide no-op
// defaults.
package types
