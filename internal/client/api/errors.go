package api

import "fmt"

// AuthenticationError reports an HTTP 401 or 403 response. The raw body is
// preserved so callers can run it through ParseErrorEnvelope.
type AuthenticationError struct {
	StatusCode int
	Body       string
}

func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("authentication failed (status %d)", e.StatusCode)
}

// RequestError reports any other non-2xx response.
type RequestError struct {
	StatusCode int
	Body       string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("request failed (status %d)", e.StatusCode)
}

// ProtocolError reports a success-status response whose body could not be
// decoded into the expected type. It indicates a client/server contract
// mismatch, not a user-correctable condition; the raw body stays inspectable.
type ProtocolError struct {
	Body string
	Err  error
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("malformed server response: %v", e.Err)
}

func (e *ProtocolError) Unwrap() error { return e.Err }
