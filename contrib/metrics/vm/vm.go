package vm

import (
	"net/http"

	"github.com/VictoriaMetrics/metrics"

	"github.com/arloliu/cqlresult/frame"
	"github.com/arloliu/cqlresult/types"
)

// Option configures a Collector.
type Option func(*Collector)

// WithPrefix sets the metric name prefix.
//
// Default: "cqlresult"
//
// Parameters:
//   - prefix: The prefix to use for all metric names
//
// Returns:
//   - Option: A configuration option
func WithPrefix(prefix string) Option {
	return func(c *Collector) {
		c.prefix = prefix
	}
}

// WithMetricsSet sets the metrics set to use.
//
// If provided, the collector registers its metrics with this set instead of
// creating a new one. The caller is then responsible for exposing the set
// (e.g. via metrics.WritePrometheus or a custom handler).
//
// Parameters:
//   - set: The metrics set to use
//
// Returns:
//   - Option: A configuration option
func WithMetricsSet(set *metrics.Set) Option {
	return func(c *Collector) {
		c.set = set
	}
}

// responseOps are the response kinds counters are pre-created for.
var responseOps = []frame.Op{
	frame.OpError,
	frame.OpReady,
	frame.OpAuthenticate,
	frame.OpSupported,
	frame.OpResult,
	frame.OpEvent,
	frame.OpAuthChallenge,
	frame.OpAuthSuccess,
}

// Collector implements types.MetricsCollector using VictoriaMetrics.
//
// Thread-safe for concurrent use.
type Collector struct {
	set    *metrics.Set
	prefix string

	responseTotal    map[frame.Op]*metrics.Counter
	unexpected       map[frame.Op]*metrics.Counter
	pagingViolations *metrics.Counter
}

// Compile-time assertion that Collector implements types.MetricsCollector.
var _ types.MetricsCollector = (*Collector)(nil)

// New creates a Collector.
//
// Parameters:
//   - opts: Optional configuration options
//
// Returns:
//   - *Collector: A new collector with its metrics registered
func New(opts ...Option) *Collector {
	c := &Collector{prefix: "cqlresult"}
	for _, opt := range opts {
		opt(c)
	}
	if c.set == nil {
		c.set = metrics.NewSet()
	}

	c.responseTotal = make(map[frame.Op]*metrics.Counter, len(responseOps))
	c.unexpected = make(map[frame.Op]*metrics.Counter, len(responseOps))
	for _, op := range responseOps {
		c.responseTotal[op] = c.set.NewCounter(c.name("responses_total", "kind", op.String()))
		c.unexpected[op] = c.set.NewCounter(c.name("unexpected_responses_total", "kind", op.String()))
	}
	c.pagingViolations = c.set.NewCounter(c.prefix + "_paging_violations_total")

	return c
}

// IncResponseTotal increments the classified-responses counter for the kind.
func (c *Collector) IncResponseTotal(kind frame.Op) {
	if counter, ok := c.responseTotal[kind]; ok {
		counter.Inc()
		return
	}
	c.set.GetOrCreateCounter(c.name("responses_total", "kind", kind.String())).Inc()
}

// IncServerError increments the server-error counter for the code.
func (c *Collector) IncServerError(code frame.ErrorCode) {
	c.set.GetOrCreateCounter(c.name("server_errors_total", "code", code.String())).Inc()
}

// IncUnexpectedResponse increments the unexpected-response counter for the
// kind.
func (c *Collector) IncUnexpectedResponse(kind frame.Op) {
	if counter, ok := c.unexpected[kind]; ok {
		counter.Inc()
		return
	}
	c.set.GetOrCreateCounter(c.name("unexpected_responses_total", "kind", kind.String())).Inc()
}

// IncPagingViolation increments the paging-violation counter.
func (c *Collector) IncPagingViolation() {
	c.pagingViolations.Inc()
}

// Handler writes the collector's metrics in Prometheus exposition format;
// it can be registered directly with net/http.
func (c *Collector) Handler(w http.ResponseWriter, _ *http.Request) {
	c.set.WritePrometheus(w)
}

func (c *Collector) name(metric, label, value string) string {
	return c.prefix + "_" + metric + `{` + label + `="` + value + `"}`
}
