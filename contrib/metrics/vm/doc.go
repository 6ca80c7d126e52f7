// Package vm provides a VictoriaMetrics-backed implementation of
// types.MetricsCollector.
//
// Counters for the known response kinds are pre-created at initialization
// time; server error codes are registered lazily since the server decides
// which ones appear.
//
// Example:
//
//	collector := vm.New(vm.WithPrefix("myapp"))
//	handler := cqlresult.New(cqlresult.WithMetrics(collector))
//	http.HandleFunc("/metrics", collector.Handler)
package vm
