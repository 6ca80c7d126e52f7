// Package gocqlerr maps errors surfaced by the gocql driver onto the
// classified server-error shape of cqlresult.
//
// gocql reports server-side failures as error values implementing
// gocql.RequestError, carrying the wire error code and message. Callers
// embedding the response core behind gocql can funnel those through the
// same taxonomy as responses classified directly from frames:
//
//	if serverErr, ok := gocqlerr.ServerError(err); ok {
//	    // same *types.ServerError the Handler would have produced
//	}
package gocqlerr
