package models

// Message is one entry of a session's message log. Sender is the author's
// username or common.ServerSender for relay messages. Timestamp is a
// formatted time of day and may be empty for relay messages.
type Message struct {
	Text      string `json:"text"`
	Sender    string `json:"sender"`
	Timestamp string `json:"timestamp,omitempty"`
}

// IsOwn reports whether m was written by username.
func (m Message) IsOwn(username string) bool {
	return username != "" && m.Sender == username
}
