package chat

import "context"

// System defines the public contract for chat session operations.
type System interface {
	Handler() *Handler

	Send(ctx context.Context, sessionID string, req SendRequest) (*Exchange, error)
	History(ctx context.Context, sessionID string) ([]Message, error)
	Clear(ctx context.Context, sessionID string) error
}
