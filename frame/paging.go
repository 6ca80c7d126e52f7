package frame

// PagingState reports whether more result pages remain beyond the current
// response, and if so carries the opaque continuation token the server
// expects back on the next request.
//
// The zero value means "no more pages". A state with more pages can only be
// built through NewPagingState, so an accidentally zero-valued state can
// never claim a continuation exists.
type PagingState struct {
	token []byte
	more  bool
}

// NewPagingState returns a paging state indicating that more pages remain,
// carrying the continuation token from the response.
//
// The token is opaque to the driver; an empty token is still a valid
// continuation if the server sent one.
func NewPagingState(token []byte) PagingState {
	return PagingState{token: token, more: true}
}

// FinishedPagingState returns the paging state for a response that has no
// further pages.
func FinishedPagingState() PagingState {
	return PagingState{}
}

// Finished reports whether the row set is complete, i.e. no continuation
// token remains.
func (p PagingState) Finished() bool {
	return !p.more
}

// Token returns the continuation token, or nil when the state is finished.
func (p PagingState) Token() []byte {
	if !p.more {
		return nil
	}
	return p.token
}
