package chat_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/navigatehome/waypoint/internal/chat"
	"github.com/navigatehome/waypoint/internal/gateway"
	"github.com/navigatehome/waypoint/pkg/lifecycle"
)

type stubGateway struct {
	handleFn func(ctx context.Context, req gateway.ServiceRequest) (gateway.ServiceResult, error)
}

func (s *stubGateway) Handle(ctx context.Context, req gateway.ServiceRequest) (gateway.ServiceResult, error) {
	return s.handleFn(ctx, req)
}

func (s *stubGateway) Mode() gateway.Source { return gateway.SourceMock }

func (s *stubGateway) InvalidateDocument(string) {}

// stubStore satisfies sessions.System with a client pointed at a closed
// port, so history writes fail fast without a Redis instance.
type stubStore struct {
	client *redis.Client
}

func newStubStore() *stubStore {
	return &stubStore{
		client: redis.NewClient(&redis.Options{
			Addr:        "127.0.0.1:1",
			DialTimeout: 100 * time.Millisecond,
			MaxRetries:  -1,
		}),
	}
}

func (s *stubStore) Client() *redis.Client { return s.client }

func (s *stubStore) TTL() time.Duration { return 24 * time.Hour }

func (s *stubStore) MaxMessages() int { return 10 }

func (s *stubStore) Start(*lifecycle.Coordinator) error { return nil }

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

const testSession = "550e8400-e29b-41d4-a716-446655440000"

func TestManagerSend(t *testing.T) {
	t.Run("routes message through gateway", func(t *testing.T) {
		var captured gateway.ServiceRequest
		gw := &stubGateway{
			handleFn: func(_ context.Context, req gateway.ServiceRequest) (gateway.ServiceResult, error) {
				captured = req
				return gateway.ServiceResult{
					Kind:   gateway.KindQuestionExplanation,
					Answer: "Here is what that question means.",
					Source: gateway.SourceMock,
				}, nil
			},
		}
		mgr := chat.New(newStubStore(), gw, testLogger())

		exchange, err := mgr.Send(context.Background(), testSession, chat.SendRequest{
			Message:  "What does question 3 mean?",
			Language: "es",
			Profile:  &gateway.Profile{VisaStatus: "F-1"},
		})
		if err != nil {
			t.Fatalf("Send() error = %v", err)
		}

		if captured.Kind != gateway.KindQuestionExplanation {
			t.Errorf("kind = %q, want question_explanation", captured.Kind)
		}
		if captured.Question != "What does question 3 mean?" {
			t.Errorf("question = %q", captured.Question)
		}
		if captured.Language != "es" {
			t.Errorf("language = %q, want es", captured.Language)
		}
		if captured.Profile == nil || captured.Profile.VisaStatus != "F-1" {
			t.Errorf("profile = %+v", captured.Profile)
		}
		if len(captured.History) != 0 {
			t.Errorf("an unreadable store should send without context, got %v", captured.History)
		}

		if exchange.SessionID != testSession {
			t.Errorf("session = %q, want %q", exchange.SessionID, testSession)
		}
		if exchange.Reply.Role != "assistant" {
			t.Errorf("reply role = %q, want assistant", exchange.Reply.Role)
		}
		if exchange.Reply.Content != "Here is what that question means." {
			t.Errorf("reply = %q", exchange.Reply.Content)
		}
		if exchange.Source != gateway.SourceMock {
			t.Errorf("source = %q, want mock", exchange.Source)
		}
	})

	t.Run("empty message rejected", func(t *testing.T) {
		gw := &stubGateway{
			handleFn: func(_ context.Context, _ gateway.ServiceRequest) (gateway.ServiceResult, error) {
				t.Fatal("gateway should not be called for an empty message")
				return gateway.ServiceResult{}, nil
			},
		}
		mgr := chat.New(newStubStore(), gw, testLogger())

		_, err := mgr.Send(context.Background(), testSession, chat.SendRequest{})
		if !errors.Is(err, chat.ErrEmptyMessage) {
			t.Errorf("Send() = %v, want ErrEmptyMessage", err)
		}
	})

	t.Run("gateway error propagates", func(t *testing.T) {
		gw := &stubGateway{
			handleFn: func(_ context.Context, _ gateway.ServiceRequest) (gateway.ServiceResult, error) {
				return gateway.ServiceResult{}, gateway.ErrUnreachable
			},
		}
		mgr := chat.New(newStubStore(), gw, testLogger())

		_, err := mgr.Send(context.Background(), testSession, chat.SendRequest{Message: "hello"})
		if !errors.Is(err, gateway.ErrUnreachable) {
			t.Errorf("Send() = %v, want ErrUnreachable", err)
		}
	})

	t.Run("history write failure does not fail the exchange", func(t *testing.T) {
		gw := &stubGateway{
			handleFn: func(_ context.Context, _ gateway.ServiceRequest) (gateway.ServiceResult, error) {
				return gateway.ServiceResult{Answer: "reply", Source: gateway.SourceMock}, nil
			},
		}
		mgr := chat.New(newStubStore(), gw, testLogger())

		exchange, err := mgr.Send(context.Background(), testSession, chat.SendRequest{Message: "hello"})
		if err != nil {
			t.Fatalf("Send() error = %v, want exchange despite failed write", err)
		}
		if exchange.Reply.Content != "reply" {
			t.Errorf("reply = %q", exchange.Reply.Content)
		}
	})
}

func TestManagerHistoryUnavailableStore(t *testing.T) {
	gw := &stubGateway{}
	mgr := chat.New(newStubStore(), gw, testLogger())

	if _, err := mgr.History(context.Background(), testSession); err == nil {
		t.Error("History() should fail when the store is unreachable")
	}
}

func TestMapHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"empty message", chat.ErrEmptyMessage, http.StatusBadRequest},
		{"invalid session", chat.ErrInvalidSessionID, http.StatusBadRequest},
		{"gateway malformed request", gateway.ErrMalformedRequest, http.StatusBadRequest},
		{"gateway unreachable", gateway.ErrUnreachable, http.StatusBadGateway},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := chat.MapHTTPStatus(test.err); got != test.want {
				t.Errorf("MapHTTPStatus() = %d, want %d", got, test.want)
			}
		})
	}
}
