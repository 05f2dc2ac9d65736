// Package chat implements Redis-backed conversation sessions for the
// assistant. Each session keeps a rolling window of recent messages with
// a retention TTL; replies flow through the assistant gateway.
package chat

import (
	"time"

	"github.com/navigatehome/waypoint/internal/gateway"
)

// Message is a single conversation turn.
type Message struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// Exchange pairs a user message with the assistant's reply.
type Exchange struct {
	SessionID string         `json:"session_id"`
	Reply     Message        `json:"reply"`
	Source    gateway.Source `json:"source"`
}

// SendRequest carries an inbound chat message.
type SendRequest struct {
	Message  string           `json:"message"`
	Language string           `json:"language,omitempty"`
	Profile  *gateway.Profile `json:"profile,omitempty"`
}
