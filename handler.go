package cqlresult

import (
	"github.com/arloliu/cqlresult/frame"
	"github.com/arloliu/cqlresult/internal/logging"
	"github.com/arloliu/cqlresult/internal/metrics"
	"github.com/arloliu/cqlresult/types"
)

// Handler converts classified responses into query results, enforcing the
// contract between a request's shape (paged vs. unpaged) and the response
// the server actually returned.
//
// A Handler is stateless apart from its logger and metrics collector and is
// safe for concurrent use. Each response flows through it exactly once:
// Classify consumes the envelope, the assemble operations consume the
// non-error response. A consumed value fails fast with
// types.ErrResponseConsumed on reuse, so a partial result can never be
// observed twice.
//
// The Handler never decides whether to retry, paginate further or
// reconnect; it only reports, precisely, what the server said and whether
// that is consistent with what was asked.
type Handler struct {
	logger  types.Logger
	metrics types.MetricsCollector
}

// New creates a Handler.
//
// Parameters:
//   - opts: Optional configuration options (WithLogger, WithMetrics)
//
// Returns:
//   - *Handler: A new handler with no-op logging and metrics unless
//     configured otherwise
func New(opts ...Option) *Handler {
	h := &Handler{
		logger:  logging.NewNopLogger(),
		metrics: metrics.NewNopMetrics(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(h)
		}
	}

	return h
}

// Classify splits a response envelope into the error and non-error cases.
//
// When the response is an ERROR, the server-reported code and message are
// returned as a *types.ServerError, unchanged, for the orchestrator's
// policy decisions. Otherwise the envelope's response and metadata move
// into the returned NonErrorQueryResponse.
//
// Classify consumes the envelope: resp is invalidated and any further use
// fails with types.ErrResponseConsumed.
func (h *Handler) Classify(resp *QueryResponse) (*NonErrorQueryResponse, error) {
	if resp == nil || resp.Response == nil {
		return nil, types.ErrResponseConsumed
	}

	body := resp.Response
	resp.Response = nil
	h.metrics.IncResponseTotal(body.Kind())

	if errBody, ok := body.(*frame.Error); ok {
		h.metrics.IncServerError(errBody.Code)

		return nil, &types.ServerError{Code: errBody.Code, Message: errBody.Message}
	}

	return &NonErrorQueryResponse{
		response:  body,
		tracingID: resp.TracingID,
		warnings:  resp.Warnings,
	}, nil
}

// Assemble converts a non-error response into a QueryResult and the paging
// state that accompanied it.
//
//   - A ROWS result yields the row set and the cursor exactly as decoded.
//   - Any other RESULT subtype yields no rows and a finished cursor;
//     non-row results never carry a continuation.
//   - Any non-RESULT kind fails with *types.UnexpectedResponseError naming
//     the observed kind: the server replied with something invalid for a
//     query request.
//
// The tracing id and warnings pass through unchanged. Assemble consumes
// resp.
func (h *Handler) Assemble(resp *NonErrorQueryResponse, coordinator Coordinator) (*QueryResult, frame.PagingState, error) {
	return h.assemble(resp, &coordinator)
}

// AssembleUnknownCoordinator is Assemble for results synthesized outside
// the context of a single-node request: the result's coordinator is
// explicitly absent. Ordinary request execution should use Assemble.
func (h *Handler) AssembleUnknownCoordinator(resp *NonErrorQueryResponse) (*QueryResult, frame.PagingState, error) {
	return h.assemble(resp, nil)
}

// AssembleComplete converts a non-error response into a QueryResult for a
// call path that requested an unpaged (complete) result.
//
// It asserts that the paging state is finished: a continuation cursor here
// means rows would be silently truncated, so the violation is logged at
// error severity and the conversion fails with
// types.ErrNonfinishedPagingState instead.
func (h *Handler) AssembleComplete(resp *NonErrorQueryResponse, coordinator Coordinator) (*QueryResult, error) {
	return h.assembleComplete(resp, &coordinator)
}

// AssembleCompleteUnknownCoordinator is AssembleComplete via the
// unknown-coordinator path.
func (h *Handler) AssembleCompleteUnknownCoordinator(resp *NonErrorQueryResponse) (*QueryResult, error) {
	return h.assembleComplete(resp, nil)
}

func (h *Handler) assemble(resp *NonErrorQueryResponse, coordinator *Coordinator) (*QueryResult, frame.PagingState, error) {
	if resp == nil || resp.response == nil {
		return nil, frame.FinishedPagingState(), types.ErrResponseConsumed
	}

	body := resp.response
	resp.response = nil

	var (
		rows   *frame.RawRows
		paging = frame.FinishedPagingState()
	)
	switch r := body.(type) {
	case *frame.Result:
		if rowsBody, ok := r.Body.(*frame.Rows); ok {
			rows = &rowsBody.Content
			paging = rowsBody.Paging
		}
	default:
		kind := body.Kind()
		h.metrics.IncUnexpectedResponse(kind)

		return nil, frame.FinishedPagingState(), &types.UnexpectedResponseError{Kind: kind}
	}

	var result *QueryResult
	if coordinator != nil {
		result = newQueryResult(*coordinator, rows, resp.tracingID, resp.warnings)
	} else {
		result = newQueryResultUnknownCoordinator(rows, resp.tracingID, resp.warnings)
	}

	return result, paging, nil
}

func (h *Handler) assembleComplete(resp *NonErrorQueryResponse, coordinator *Coordinator) (*QueryResult, error) {
	result, paging, err := h.assemble(resp, coordinator)
	if err != nil {
		return nil, err
	}

	if !paging.Finished() {
		// Log, then fail: the diagnostic must reach the operator even if
		// the orchestrator later swallows the error.
		h.logger.Error("nonfinished paging state on an unpaged request; refusing to truncate rows",
			"cause", "driver misuse or server bug")
		h.metrics.IncPagingViolation()

		return nil, types.ErrNonfinishedPagingState
	}

	return result, nil
}
