package frame

// Response is the closed union over decoded response frame bodies. It is
// produced by the frame codec; this package only gives the decoded shapes a
// home.
//
// Implemented by *Error, *Ready, *Authenticate, *Supported, *Result,
// *Event, *AuthChallenge and *AuthSuccess.
type Response interface {
	// Kind returns the response's frame opcode.
	Kind() Op

	isResponse()
}

// Error is the body of an ERROR response: the server rejected or failed the
// request and reported why.
type Error struct {
	Code    ErrorCode
	Message string
}

func (*Error) Kind() Op { return OpError }
func (*Error) isResponse() {}

// Ready is the body of a READY response: the connection is usable without
// authentication.
type Ready struct{}

func (*Ready) Kind() Op { return OpReady }
func (*Ready) isResponse() {}

// Authenticate is the body of an AUTHENTICATE response: the server requires
// authentication and names the authenticator class to satisfy.
type Authenticate struct {
	Class string
}

func (*Authenticate) Kind() Op { return OpAuthenticate }
func (*Authenticate) isResponse() {}

// Supported is the body of a SUPPORTED response listing protocol options
// the server accepts.
type Supported struct {
	Options map[string][]string
}

func (*Supported) Kind() Op { return OpSupported }
func (*Supported) isResponse() {}

// Result is the body of a RESULT response, the only response kind valid as
// a query reply. The concrete subtype is in Body.
type Result struct {
	Body ResultBody
}

func (*Result) Kind() Op { return OpResult }
func (*Result) isResponse() {}

// Event types, as sent by the server for registered listeners.
const (
	EventTopologyChange = "TOPOLOGY_CHANGE"
	EventStatusChange   = "STATUS_CHANGE"
	EventSchemaChange   = "SCHEMA_CHANGE"
)

// Event is the body of an EVENT response. Events are pushed on the dedicated
// event stream and are never a reply to a request; the variant exists so the
// union covers every response kind the codec can produce.
type Event struct {
	// Type is one of the Event* constants.
	Type string

	// Change is the event-specific change name, e.g. NEW_NODE, UP or
	// CREATED.
	Change string
}

func (*Event) Kind() Op { return OpEvent }
func (*Event) isResponse() {}

// AuthChallenge is the body of an AUTH_CHALLENGE response carrying
// authenticator-specific challenge data.
type AuthChallenge struct {
	Token []byte
}

func (*AuthChallenge) Kind() Op { return OpAuthChallenge }
func (*AuthChallenge) isResponse() {}

// AuthSuccess is the body of an AUTH_SUCCESS response: authentication
// completed, optionally with final authenticator data.
type AuthSuccess struct {
	Token []byte
}

func (*AuthSuccess) Kind() Op { return OpAuthSuccess }
func (*AuthSuccess) isResponse() {}
