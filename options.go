package cqlresult

import "github.com/arloliu/cqlresult/types"

// Option configures a Handler.
type Option func(*Handler)

// WithLogger sets the logger used for operator-visible diagnostics, such as
// the paging-state contract violation.
//
// Parameters:
//   - logger: The logger implementation
//
// Returns:
//   - Option: Configuration option
func WithLogger(logger types.Logger) Option {
	return func(h *Handler) {
		if logger != nil {
			h.logger = logger
		}
	}
}

// WithMetrics sets the metrics collector for response classification
// counters.
//
// Parameters:
//   - collector: The metrics collector implementation
//
// Returns:
//   - Option: Configuration option
func WithMetrics(collector types.MetricsCollector) Option {
	return func(h *Handler) {
		if collector != nil {
			h.metrics = collector
		}
	}
}
