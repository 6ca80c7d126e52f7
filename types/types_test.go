package types

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/cqlresult/frame"
)

func TestServerError(t *testing.T) {
	err := &ServerError{Code: frame.ErrCodeSyntax, Message: "line 1: no viable alternative"}

	require.Equal(t, "cqlresult: server error SYNTAX_ERROR: line 1: no viable alternative", err.Error())
	require.ErrorIs(t, err, ErrServer)

	var srvErr *ServerError
	require.ErrorAs(t, error(err), &srvErr)
	require.Equal(t, frame.ErrCodeSyntax, srvErr.Code)
}

func TestUnexpectedResponseError(t *testing.T) {
	err := &UnexpectedResponseError{Kind: frame.OpEvent}

	require.Equal(t, "cqlresult: unexpected response kind EVENT", err.Error())
	require.ErrorIs(t, err, ErrUnexpectedResponse)

	var unexpected *UnexpectedResponseError
	require.ErrorAs(t, error(err), &unexpected)
	require.Equal(t, frame.OpEvent, unexpected.Kind)
}

func TestSentinelErrorsAreDistinct(t *testing.T) {
	sentinels := []error{
		ErrServer,
		ErrUnexpectedResponse,
		ErrNonfinishedPagingState,
		ErrResponseConsumed,
	}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i == j {
				continue
			}
			require.False(t, errors.Is(a, b), "%v must not match %v", a, b)
		}
	}
}
