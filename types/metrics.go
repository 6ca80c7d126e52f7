package types

import "github.com/arloliu/cqlresult/frame"

// MetricsCollector defines methods for collecting operational metrics of
// the response core.
//
// Implementations should be thread-safe as methods may be called
// concurrently, once per response flowing through the Handler.
//
// Example usage with VictoriaMetrics (via contrib/metrics/vm):
//
//	import vmmetrics "github.com/arloliu/cqlresult/contrib/metrics/vm"
//
//	collector := vmmetrics.New(vmmetrics.WithPrefix("myapp"))
//	handler := cqlresult.New(cqlresult.WithMetrics(collector))
//
//	// Expose metrics via HTTP
//	http.HandleFunc("/metrics", collector.Handler)
type MetricsCollector interface {
	// IncResponseTotal increments the counter of classified responses,
	// labeled by response kind.
	IncResponseTotal(kind frame.Op)

	// IncServerError increments the counter of ERROR responses, labeled by
	// the server-reported error code.
	IncServerError(code frame.ErrorCode)

	// IncUnexpectedResponse increments the counter of responses whose kind
	// was invalid for the request, labeled by the observed kind.
	IncUnexpectedResponse(kind frame.Op)

	// IncPagingViolation increments the counter of unpaged requests that
	// received a nonfinished paging state.
	IncPagingViolation()
}
