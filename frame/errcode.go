package frame

import "fmt"

// ErrorCode is the server-reported error code carried by an ERROR response.
// The values are defined by the CQL native protocol.
type ErrorCode int32

const (
	ErrCodeServer          ErrorCode = 0x0000
	ErrCodeProtocol        ErrorCode = 0x000A
	ErrCodeCredentials     ErrorCode = 0x0100
	ErrCodeUnavailable     ErrorCode = 0x1000
	ErrCodeOverloaded      ErrorCode = 0x1001
	ErrCodeBootstrapping   ErrorCode = 0x1002
	ErrCodeTruncate        ErrorCode = 0x1003
	ErrCodeWriteTimeout    ErrorCode = 0x1100
	ErrCodeReadTimeout     ErrorCode = 0x1200
	ErrCodeReadFailure     ErrorCode = 0x1300
	ErrCodeFunctionFailure ErrorCode = 0x1400
	ErrCodeWriteFailure    ErrorCode = 0x1500
	ErrCodeSyntax          ErrorCode = 0x2000
	ErrCodeUnauthorized    ErrorCode = 0x2100
	ErrCodeInvalid         ErrorCode = 0x2200
	ErrCodeConfig          ErrorCode = 0x2300
	ErrCodeAlreadyExists   ErrorCode = 0x2400
	ErrCodeUnprepared      ErrorCode = 0x2500
)

// String returns the protocol name of the error code.
func (c ErrorCode) String() string {
	switch c {
	case ErrCodeServer:
		return "SERVER_ERROR"
	case ErrCodeProtocol:
		return "PROTOCOL_ERROR"
	case ErrCodeCredentials:
		return "AUTH_ERROR"
	case ErrCodeUnavailable:
		return "UNAVAILABLE"
	case ErrCodeOverloaded:
		return "OVERLOADED"
	case ErrCodeBootstrapping:
		return "IS_BOOTSTRAPPING"
	case ErrCodeTruncate:
		return "TRUNCATE_ERROR"
	case ErrCodeWriteTimeout:
		return "WRITE_TIMEOUT"
	case ErrCodeReadTimeout:
		return "READ_TIMEOUT"
	case ErrCodeReadFailure:
		return "READ_FAILURE"
	case ErrCodeFunctionFailure:
		return "FUNCTION_FAILURE"
	case ErrCodeWriteFailure:
		return "WRITE_FAILURE"
	case ErrCodeSyntax:
		return "SYNTAX_ERROR"
	case ErrCodeUnauthorized:
		return "UNAUTHORIZED"
	case ErrCodeInvalid:
		return "INVALID"
	case ErrCodeConfig:
		return "CONFIG_ERROR"
	case ErrCodeAlreadyExists:
		return "ALREADY_EXISTS"
	case ErrCodeUnprepared:
		return "UNPREPARED"
	default:
		return fmt.Sprintf("UNKNOWN_ERROR_0x%04x", int32(c))
	}
}
