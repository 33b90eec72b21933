// Package relay is the client side of the real-time relay: a WebSocket
// carrying event-tagged JSON text frames of the form
//
//	{"event": "message", "data": {...}}
//
// Dialer opens one Conn per call. Every Conn owns a reader goroutine that
// decodes frames and hands them to the Handler given at dial time, in
// arrival order. Close stops the reader and waits for it, so once Close
// has returned the Handler is never called again for that Conn.
package relay
