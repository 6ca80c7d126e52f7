package cqlresult

import (
	"github.com/arloliu/cqlresult/frame"
	"github.com/arloliu/cqlresult/types"
)

// StartupResponse is the closed set of terminal responses to a STARTUP
// request: the connection is either ready, or the server demands
// authentication. Sequencing the handshake is the connection layer's job;
// this package only classifies the shapes.
//
// Implemented by *StartupReady and *StartupAuthenticate.
type StartupResponse interface {
	isStartupResponse()
}

// StartupReady means the connection is usable without authentication.
type StartupReady struct{}

func (*StartupReady) isStartupResponse() {}

// StartupAuthenticate means the server requires authentication with the
// named authenticator class.
type StartupAuthenticate struct {
	Class string
}

func (*StartupAuthenticate) isStartupResponse() {}

// AuthResponse is the closed set of terminal responses to an AUTH_RESPONSE
// request: another challenge, or success.
//
// Implemented by *AuthChallengeResponse and *AuthSuccessResponse.
type AuthResponse interface {
	isAuthResponse()
}

// AuthChallengeResponse carries authenticator-specific challenge data the
// client must answer.
type AuthChallengeResponse struct {
	Token []byte
}

func (*AuthChallengeResponse) isAuthResponse() {}

// AuthSuccessResponse means authentication completed, optionally with final
// authenticator data.
type AuthSuccessResponse struct {
	Token []byte
}

func (*AuthSuccessResponse) isAuthResponse() {}

// ClassifyStartup matches a decoded response against the closed set of
// terminal STARTUP replies.
//
// An ERROR response yields *types.ServerError; any kind outside
// {READY, AUTHENTICATE} yields *types.UnexpectedResponseError.
func ClassifyStartup(resp frame.Response) (StartupResponse, error) {
	switch r := resp.(type) {
	case *frame.Ready:
		return &StartupReady{}, nil
	case *frame.Authenticate:
		return &StartupAuthenticate{Class: r.Class}, nil
	case *frame.Error:
		return nil, &types.ServerError{Code: r.Code, Message: r.Message}
	default:
		return nil, &types.UnexpectedResponseError{Kind: resp.Kind()}
	}
}

// ClassifyAuth matches a decoded response against the closed set of
// terminal AUTH_RESPONSE replies.
//
// An ERROR response yields *types.ServerError; any kind outside
// {AUTH_CHALLENGE, AUTH_SUCCESS} yields *types.UnexpectedResponseError.
func ClassifyAuth(resp frame.Response) (AuthResponse, error) {
	switch r := resp.(type) {
	case *frame.AuthChallenge:
		return &AuthChallengeResponse{Token: r.Token}, nil
	case *frame.AuthSuccess:
		return &AuthSuccessResponse{Token: r.Token}, nil
	case *frame.Error:
		return nil, &types.ServerError{Code: r.Code, Message: r.Message}
	default:
		return nil, &types.UnexpectedResponseError{Kind: resp.Kind()}
	}
}
