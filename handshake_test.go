package cqlresult

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/cqlresult/frame"
	"github.com/arloliu/cqlresult/types"
)

func TestClassifyStartupReady(t *testing.T) {
	resp, err := ClassifyStartup(&frame.Ready{})
	require.NoError(t, err)
	require.IsType(t, &StartupReady{}, resp)
}

func TestClassifyStartupAuthenticate(t *testing.T) {
	resp, err := ClassifyStartup(&frame.Authenticate{Class: "org.apache.cassandra.auth.PasswordAuthenticator"})
	require.NoError(t, err)

	auth, ok := resp.(*StartupAuthenticate)
	require.True(t, ok)
	require.Equal(t, "org.apache.cassandra.auth.PasswordAuthenticator", auth.Class)
}

func TestClassifyStartupServerError(t *testing.T) {
	_, err := ClassifyStartup(&frame.Error{Code: frame.ErrCodeProtocol, Message: "unsupported version"})
	require.ErrorIs(t, err, types.ErrServer)

	var srvErr *types.ServerError
	require.ErrorAs(t, err, &srvErr)
	require.Equal(t, frame.ErrCodeProtocol, srvErr.Code)
}

func TestClassifyStartupUnexpectedKind(t *testing.T) {
	for _, resp := range []frame.Response{
		&frame.Result{Body: &frame.Void{}},
		&frame.Supported{},
		&frame.AuthChallenge{},
		&frame.AuthSuccess{},
	} {
		_, err := ClassifyStartup(resp)
		require.ErrorIs(t, err, types.ErrUnexpectedResponse, "kind %s", resp.Kind())

		var unexpected *types.UnexpectedResponseError
		require.ErrorAs(t, err, &unexpected)
		require.Equal(t, resp.Kind(), unexpected.Kind)
	}
}

func TestClassifyAuthChallenge(t *testing.T) {
	token := []byte("challenge-data")
	resp, err := ClassifyAuth(&frame.AuthChallenge{Token: token})
	require.NoError(t, err)

	challenge, ok := resp.(*AuthChallengeResponse)
	require.True(t, ok)
	require.Equal(t, token, challenge.Token)
}

func TestClassifyAuthSuccess(t *testing.T) {
	resp, err := ClassifyAuth(&frame.AuthSuccess{Token: []byte{0x01}})
	require.NoError(t, err)

	success, ok := resp.(*AuthSuccessResponse)
	require.True(t, ok)
	require.Equal(t, []byte{0x01}, success.Token)
}

func TestClassifyAuthServerError(t *testing.T) {
	_, err := ClassifyAuth(&frame.Error{Code: frame.ErrCodeCredentials, Message: "bad credentials"})
	require.ErrorIs(t, err, types.ErrServer)
}

func TestClassifyAuthUnexpectedKind(t *testing.T) {
	for _, resp := range []frame.Response{
		&frame.Ready{},
		&frame.Authenticate{},
		&frame.Result{Body: &frame.Void{}},
	} {
		_, err := ClassifyAuth(resp)
		require.ErrorIs(t, err, types.ErrUnexpectedResponse, "kind %s", resp.Kind())
	}
}
