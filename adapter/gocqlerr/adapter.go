package gocqlerr

import (
	"errors"

	"github.com/gocql/gocql"

	"github.com/arloliu/cqlresult/frame"
	"github.com/arloliu/cqlresult/types"
)

// Classify converts an error returned by the gocql driver into the decoded
// ERROR payload it corresponds to.
//
// It reports false when err carries no server-reported error, e.g. for
// connection-level failures the server never answered.
//
// Parameters:
//   - err: An error returned by a gocql operation
//
// Returns:
//   - *frame.Error: The server-reported code and message
//   - bool: Whether err carried a server-reported error
func Classify(err error) (*frame.Error, bool) {
	var reqErr gocql.RequestError
	if !errors.As(err, &reqErr) {
		return nil, false
	}

	return &frame.Error{
		Code:    frame.ErrorCode(reqErr.Code()),
		Message: reqErr.Message(),
	}, true
}

// ServerError converts an error returned by the gocql driver into the
// *types.ServerError the Handler would have produced for the same ERROR
// response.
//
// Parameters:
//   - err: An error returned by a gocql operation
//
// Returns:
//   - *types.ServerError: The classified server error
//   - bool: Whether err carried a server-reported error
func ServerError(err error) (*types.ServerError, bool) {
	body, ok := Classify(err)
	if !ok {
		return nil, false
	}

	return &types.ServerError{Code: body.Code, Message: body.Message}, true
}
