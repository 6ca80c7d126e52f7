// Package cqlresult is the response-handling core of a CQL driver: it
// converts a decoded wire-protocol response for a single request into a
// strongly-typed query result, enforcing the contract between the request's
// shape (paged vs. unpaged) and the response the server returned.
//
// It sits between the frame codec, which decodes frames into the typed
// bodies of package frame, and the execution orchestrator, which decides
// what to do with a result or a failure. Nothing here retries, paginates or
// reconnects.
//
// # Response Flow
//
// A response moves through the Handler in at most three steps, each
// consuming its input:
//
//	handler := cqlresult.New(
//	    cqlresult.WithLogger(logger),
//	    cqlresult.WithMetrics(collector),
//	)
//
//	// 1. Split into error / non-error.
//	resp, err := handler.Classify(envelope)
//	if err != nil {
//	    var srvErr *types.ServerError
//	    if errors.As(err, &srvErr) {
//	        // the server rejected the request; retry policy lives upstream
//	    }
//	    return err
//	}
//
//	// 2. Optionally project out result subtypes.
//	if change, ok := resp.SchemaChange(); ok {
//	    notifySchemaAgreement(change)
//	}
//
//	// 3. Assemble the final result.
//	result, paging, err := handler.Assemble(resp, coordinator)
//
// Call paths that issued an unpaged request use AssembleComplete instead,
// which refuses to drop a continuation cursor: receiving one there means
// rows would be silently truncated, so the violation is logged and
// types.ErrNonfinishedPagingState is returned.
//
// # Error Model
//
// Every failure is a synchronous return value from the taxonomy in package
// types: ServerError (the server said no), UnexpectedResponseError (the
// server replied with a kind invalid for the request — a protocol
// mismatch), ErrNonfinishedPagingState (unpaged contract violation) and
// ErrResponseConsumed (a moved-from value was reused). Nothing is masked or
// substituted with defaults; the orchestrator alone decides on recovery.
//
// # Handshake Shapes
//
// ClassifyStartup and ClassifyAuth match decoded responses against the two
// closed terminal-shape sets of the connection handshake (READY /
// AUTHENTICATE and AUTH_CHALLENGE / AUTH_SUCCESS) for the external
// handshake state machine to consume.
package cqlresult
