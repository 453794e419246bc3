// Package api contains the transport layer for talking to the IqraNow
// backend.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface):
//     Login/Register, Me, Progress, Goals/CreateGoal, SubmitRecitation,
//     and a Ping liveness probe.
//  2. A concrete HTTP/JSON implementation (see HTTPClient) over the
//     backend's /api/* endpoints. The bearer credential is injected
//     explicitly per request from a TokenProvider; there is no global
//     default header, so a login/logout can never race an unrelated
//     in-flight request's credential.
//  3. Error mapping from transport and HTTP status conditions to sentinel
//     errors and typed API errors.
//
// # Error Handling
//
// Common conditions are exposed as sentinel errors that callers can match
// with errors.Is: ErrUnavailable (connection or timeout trouble) and
// ErrUnauthorized (rejected credential, HTTP 401/403). Other non-2xx
// responses surface as *Error carrying the HTTP status and the server's
// message field.
//
// Concurrency & Contexts
//
// HTTPClient is safe for concurrent use. All operations accept
// context.Context and honor cancellation/timeouts.
package api
