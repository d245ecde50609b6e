package domain

import "time"

// Message is one transcript entry, user- or bot-authored.
type Message struct {
	ID        string
	SessionID string
	Role      MessageRole
	Content   string
	CreatedAt time.Time
}
