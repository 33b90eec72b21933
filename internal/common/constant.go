// Package common contains shared constants and sentinel errors used across
// quickchat components.
package common

// Persisted state keys. Values stored under them are JSON documents.
const (
	KeyUser         = "user"
	KeyToken        = "token"
	KeyTheme        = "theme"
	KeyChatSessions = "chatSessions"
	KeyLastSession  = "lastSession"

	// chatMessagesPrefix is joined with a session name to address its log.
	chatMessagesPrefix = "chatMessages_"
)

// ChatMessagesKey returns the storage key holding the message log of session.
func ChatMessagesKey(session string) string {
	return chatMessagesPrefix + session
}

// Relay event tags.
const (
	EventMessage = "message"
	EventUserMsg = "user-msg"
)

// ServerSender is the sender tag written on every inbound relay message.
const ServerSender = "Server"

// DefaultSession is activated when no session was used before.
const DefaultSession = "default"

// AuthorizationHeaderName carries the bearer token on relay upgrade requests.
const AuthorizationHeaderName = "Authorization"
