package gocqlerr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gocql/gocql"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/cqlresult/frame"
	"github.com/arloliu/cqlresult/types"
)

// fakeRequestError implements gocql.RequestError for testing; the concrete
// gocql error types embed unexported frames and cannot be built here.
type fakeRequestError struct {
	code    int
	message string
}

func (e *fakeRequestError) Code() int       { return e.code }
func (e *fakeRequestError) Message() string { return e.message }
func (e *fakeRequestError) Error() string   { return e.message }

var _ gocql.RequestError = (*fakeRequestError)(nil)

func TestClassifyRequestError(t *testing.T) {
	err := &fakeRequestError{code: 0x2200, message: "unconfigured table users"}

	body, ok := Classify(err)
	require.True(t, ok)
	require.Equal(t, frame.ErrCodeInvalid, body.Code)
	require.Equal(t, "unconfigured table users", body.Message)
}

func TestClassifyWrappedRequestError(t *testing.T) {
	cause := &fakeRequestError{code: 0x1200, message: "read timeout"}
	err := fmt.Errorf("query users: %w", cause)

	body, ok := Classify(err)
	require.True(t, ok)
	require.Equal(t, frame.ErrCodeReadTimeout, body.Code)
}

func TestClassifyNonServerError(t *testing.T) {
	_, ok := Classify(errors.New("connection refused"))
	require.False(t, ok)

	_, ok = Classify(nil)
	require.False(t, ok)
}

func TestServerError(t *testing.T) {
	cause := &fakeRequestError{code: 0x2000, message: "syntax error"}

	srvErr, ok := ServerError(cause)
	require.True(t, ok)
	require.ErrorIs(t, srvErr, types.ErrServer)
	require.Equal(t, frame.ErrCodeSyntax, srvErr.Code)
	require.Equal(t, "syntax error", srvErr.Message)
}

func TestServerErrorPassesThroughNonServerErrors(t *testing.T) {
	_, ok := ServerError(errors.New("no hosts available"))
	require.False(t, ok)
}
