// Package cli provides the interactive quickchat terminal client.
//
// It wires configuration, local storage, the auth API and the relay into
// an App, the root controller: it restores the signed-in user at startup,
// offers login and registration while signed out, and switches to chat
// commands (send, history, sessions, new, use, theme, whoami, logout)
// once a user is present.
//
// Inbound relay messages are printed as they arrive, between prompts.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits
// or input ends. See App and runREPL for details.
package cli
