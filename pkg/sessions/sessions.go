// Package sessions provides Redis connection management with lifecycle coordination.
package sessions

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/navigatehome/waypoint/pkg/lifecycle"
)

// System manages the Redis client and lifecycle coordination.
type System interface {
	// Client returns the underlying Redis client.
	Client() *redis.Client
	// TTL returns the configured session retention window.
	TTL() time.Duration
	// MaxMessages returns the per-session history cap.
	MaxMessages() int
	// Start registers startup and shutdown hooks with the lifecycle coordinator.
	Start(lc *lifecycle.Coordinator) error
}

type sessions struct {
	client      *redis.Client
	logger      *slog.Logger
	ttl         time.Duration
	maxMessages int
	connTimeout time.Duration
}

// New creates a sessions system with the given configuration. The client
// does not connect until Start is called.
func New(cfg *Config, logger *slog.Logger) System {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	return &sessions{
		client:      client,
		logger:      logger.With("system", "sessions"),
		ttl:         cfg.TTLDuration(),
		maxMessages: cfg.MaxMessages,
		connTimeout: cfg.ConnTimeoutDuration(),
	}
}

func (s *sessions) Client() *redis.Client {
	return s.client
}

func (s *sessions) TTL() time.Duration {
	return s.ttl
}

func (s *sessions) MaxMessages() int {
	return s.maxMessages
}

func (s *sessions) Start(lc *lifecycle.Coordinator) error {
	s.logger.Info("starting session store connection")

	lc.OnStartup(func() {
		pingCtx, cancel := context.WithTimeout(lc.Context(), s.connTimeout)
		defer cancel()

		if err := s.client.Ping(pingCtx).Err(); err != nil {
			s.logger.Error("session store ping failed", "error", err)
			return
		}

		s.logger.Info("session store connection established")
	})

	lc.OnShutdown(func() {
		<-lc.Context().Done()
		s.logger.Info("closing session store connection")

		if err := s.client.Close(); err != nil {
			s.logger.Error("session store close failed", "error", err)
			return
		}

		s.logger.Info("session store connection closed")
	})

	return nil
}
