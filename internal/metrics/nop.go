// Package metrics provides internal metrics utilities for cqlresult.
package metrics

import (
	"github.com/arloliu/cqlresult/frame"
	"github.com/arloliu/cqlresult/types"
)

// NopMetrics is a no-op metrics collector that discards all metrics.
//
// This is used as the default metrics collector when no collector is
// configured, avoiding nil checks throughout the codebase.
type NopMetrics struct{}

// Compile-time assertion that NopMetrics implements types.MetricsCollector.
var _ types.MetricsCollector = (*NopMetrics)(nil)

// NewNopMetrics creates a new no-op metrics collector.
//
// Returns:
//   - *NopMetrics: A collector that discards all metrics
func NewNopMetrics() *NopMetrics {
	return &NopMetrics{}
}

// IncResponseTotal discards the metric.
func (m *NopMetrics) IncResponseTotal(_ frame.Op) {}

// IncServerError discards the metric.
func (m *NopMetrics) IncServerError(_ frame.ErrorCode) {}

// IncUnexpectedResponse discards the metric.
func (m *NopMetrics) IncUnexpectedResponse(_ frame.Op) {}

// IncPagingViolation discards the metric.
func (m *NopMetrics) IncPagingViolation() {}
