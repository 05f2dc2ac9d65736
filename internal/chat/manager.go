package chat

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/navigatehome/waypoint/internal/gateway"
	"github.com/navigatehome/waypoint/pkg/sessions"
)

const sessionKeyPrefix = "session:"

// historyWindow caps how many stored messages are folded into an
// outgoing question as conversation context.
const historyWindow = 10

type manager struct {
	store  sessions.System
	gw     gateway.System
	logger *slog.Logger
}

// New creates a chat session manager implementing the System interface.
func New(store sessions.System, gw gateway.System, logger *slog.Logger) System {
	return &manager{
		store:  store,
		gw:     gw,
		logger: logger.With("system", "chat"),
	}
}

func (m *manager) Handler() *Handler {
	return NewHandler(m, m.logger)
}

func (m *manager) Send(ctx context.Context, sessionID string, req SendRequest) (*Exchange, error) {
	if req.Message == "" {
		return nil, ErrEmptyMessage
	}

	result, err := m.gw.Handle(ctx, gateway.ServiceRequest{
		Kind:     gateway.KindQuestionExplanation,
		Question: req.Message,
		Language: req.Language,
		History:  m.recentHistory(ctx, sessionID),
		Profile:  req.Profile,
	})
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	userMsg := Message{Role: "user", Content: req.Message, CreatedAt: now}
	reply := Message{Role: "assistant", Content: result.Answer, CreatedAt: now}

	if err := m.append(ctx, sessionID, userMsg, reply); err != nil {
		// The reply already exists; losing a history write should not
		// fail the exchange.
		m.logger.Warn("session history write failed",
			"session", sessionID,
			"error", err,
		)
	}

	return &Exchange{
		SessionID: sessionID,
		Reply:     reply,
		Source:    result.Source,
	}, nil
}

// recentHistory loads the tail of the session transcript so the gateway
// can answer in context. An unreadable store degrades to an uncontextual
// answer rather than failing the exchange.
func (m *manager) recentHistory(ctx context.Context, sessionID string) []string {
	messages, err := m.History(ctx, sessionID)
	if err != nil {
		m.logger.Warn("session history unavailable, sending without context",
			"session", sessionID,
			"error", err,
		)
		return nil
	}

	return historyLines(messages, historyWindow)
}

// historyLines renders the last window messages as "role: content" lines.
func historyLines(messages []Message, window int) []string {
	if len(messages) > window {
		messages = messages[len(messages)-window:]
	}

	lines := make([]string, 0, len(messages))
	for _, msg := range messages {
		lines = append(lines, msg.Role+": "+msg.Content)
	}
	return lines
}

func (m *manager) History(ctx context.Context, sessionID string) ([]Message, error) {
	raw, err := m.store.Client().LRange(ctx, key(sessionID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("load session history: %w", err)
	}

	messages := make([]Message, 0, len(raw))
	for _, entry := range raw {
		var msg Message
		if err := json.Unmarshal([]byte(entry), &msg); err != nil {
			m.logger.Warn("skipping undecodable session entry", "session", sessionID)
			continue
		}
		messages = append(messages, msg)
	}

	return messages, nil
}

func (m *manager) Clear(ctx context.Context, sessionID string) error {
	if err := m.store.Client().Del(ctx, key(sessionID)).Err(); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}

	m.logger.Info("session cleared", "session", sessionID)
	return nil
}

// append pushes messages onto the session list, trims it to the rolling
// window, and refreshes the retention TTL in one pipeline round trip.
func (m *manager) append(ctx context.Context, sessionID string, messages ...Message) error {
	encoded := make([]any, 0, len(messages))
	for _, msg := range messages {
		data, err := json.Marshal(msg)
		if err != nil {
			return fmt.Errorf("encode message: %w", err)
		}
		encoded = append(encoded, data)
	}

	k := key(sessionID)
	window := int64(m.store.MaxMessages())

	_, err := m.store.Client().Pipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.RPush(ctx, k, encoded...)
		pipe.LTrim(ctx, k, -window, -1)
		pipe.Expire(ctx, k, m.store.TTL())
		return nil
	})
	return err
}

func key(sessionID string) string {
	return sessionKeyPrefix + sessionID
}
