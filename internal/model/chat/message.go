package chat

import "time"

// Message is one turn of the support-chat transcript. Messages are
// immutable once created; the log is only ever appended to or bulk-cleared.
type Message struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	IsUser    bool      `json:"isUser"`
	Timestamp time.Time `json:"timestamp"`
}

// OriginatorLabel is the transcript label used on export.
func (m Message) OriginatorLabel() string {
	if m.IsUser {
		return "You"
	}
	return "AI Assistant"
}

// StorageKey holds the whole conversation log under one document.
const StorageKey = "ai_chat_history"
