// Package client talks to the quickchat authentication backend.
//
// # Overview
//
// Client is the transport-agnostic contract (Register, Login). HTTPClient
// implements it with resty against the backend's local-auth endpoints:
//
//	POST /api/auth/local           {identifier, password}
//	POST /api/auth/local/register  {username, email, password}
//
// Both answer {jwt, user} on success.
//
// # Error Handling
//
// Failures are common.KindNetwork errors wrapping a sentinel from package
// common that callers can match with errors.Is: ErrUnauthorized for 400,
// 401 and 403 answers, ErrUnavailable for transport failures and 5xx. The
// backend's own message, when it sent one, is kept in the error text for
// logging only.
//
// Requests are never retried.
package client
