package krakenapi

import "fmt"

// CredentialFormatError reports a secret whose encoded length is not the 88
// characters the exchange issues. Raised before any network activity.
type CredentialFormatError struct {
	Length int
}

func (e *CredentialFormatError) Error() string {
	return fmt.Sprintf("credential format error: api secret must be 88 characters long, got %d", e.Length)
}

// SigningError reports a failed digest or mac computation, typically a secret
// that is not valid base64.
type SigningError struct {
	Msg   string
	Cause error
}

func (e *SigningError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("signing error: %s: %v", e.Msg, e.Cause)
	}
	return fmt.Sprintf("signing error: %s", e.Msg)
}

func (e *SigningError) Unwrap() error {
	return e.Cause
}

// TransportError reports a network layer failure. Exchange-side logical errors
// are not transport errors, they arrive inside a successful response body.
type TransportError struct {
	Cause error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error: %v", e.Cause)
}

func (e *TransportError) Unwrap() error {
	return e.Cause
}

// ArgumentError reports a caller-supplied enumerated value outside its closed set.
type ArgumentError struct {
	Name  string
	Value string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("argument error: invalid %s: %q", e.Name, e.Value)
}

type WSRestartError struct {
	Msg string
}

func (e *WSRestartError) Error() string {
	return fmt.Sprintf("websocket restart error: %s", e.Msg)
}

type WSStopError struct {
	Msg string
}

func (e *WSStopError) Error() string {
	return fmt.Sprintf("websocket stop error: %s", e.Msg)
}
