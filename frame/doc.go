// Package frame models decoded CQL native-protocol response bodies.
//
// This is a leaf package: it depends on nothing else in cqlresult, so any
// package (including the external frame codec that produces these values)
// can import it without cycles.
//
// The package deliberately models only the *decoded* side of the protocol.
// Reading bytes off the wire, decompression, and metadata deserialization
// belong to the frame codec; what arrives here is already a typed body
// tagged with its response kind.
//
// # Response Union
//
// Response is a closed union over the finite set of response kinds a server
// can send. Every variant is a distinct struct implementing Response, so a
// type switch over them is exhaustive and a missing case is visible in
// review rather than surfacing as a runtime surprise:
//
//	switch body := resp.(type) {
//	case *frame.Error:
//	    // server rejected the request
//	case *frame.Result:
//	    // query reply; inspect body.Body for the result subtype
//	default:
//	    // not valid for the request that was issued
//	}
//
// Result bodies form a second closed union (ResultBody) over the five
// result kinds of the protocol: Void, Rows, SetKeyspace, Prepared and
// SchemaChange.
package frame
