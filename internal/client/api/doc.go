// Package api contains the HTTP building blocks for talking to the
// SportowyHub backend.
//
// # Overview
//
// The package provides:
//  1. A transport contract (see the RequestProvider interface) with typed
//     GET/POST/PUT/DELETE verbs over a base URL; request and response bodies
//     are JSON with snake_case field names.
//  2. A concrete net/http implementation (see Provider) that attaches an
//     optional bearer token, tags every request with an X-Request-Id header,
//     and classifies non-success responses into distinct error types.
//  3. The error-envelope decoder (see ParseErrorEnvelope) for the server's
//     standard {"error":{...}} failure shape.
//
// # Error Handling
//
// Failures are exposed as typed errors that callers match with errors.As:
//
//   - *AuthenticationError — HTTP 401/403, raw body and status preserved.
//   - *RequestError        — any other non-2xx, raw body and status preserved.
//   - *ProtocolError       — a 2xx response whose body could not be decoded.
//
// Transport faults (DNS, timeouts, cancellation) are returned wrapped, so
// errors.Is(err, context.Canceled) still works. The provider performs no
// retries; retry policy belongs to callers.
//
// Concurrency & Contexts
//
// Provider is safe for concurrent use. All operations accept context.Context
// and honor cancellation/timeouts.
package api
