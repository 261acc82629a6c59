package session

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/reversi-backend/internal/entity"
)

type recorder interface {
	CreateOrUpdate(ctx context.Context, info *entity.SessionInfo) error
	DeleteByID(ctx context.Context, id string) error
}

// Manager - creates sessions for the transports. It holds no game state.
type Manager struct {
	logger   *slog.Logger
	size     entity.Size
	recorder recorder
	now      func() time.Time
}

// NewManager - recorder may be nil, in which case sessions are not published.
func NewManager(logger *slog.Logger, size entity.Size, recorder recorder) *Manager {
	if recorder == nil {
		recorder = noopRecorder{}
	}

	return &Manager{
		logger:   logger.With("component", "session"),
		size:     size,
		recorder: recorder,
		now:      time.Now,
	}
}

// Open - creates a fresh session for a new connection.
func (that *Manager) Open(ctx context.Context, transport, remoteAddr string) *Session {
	id := uuid.NewString()
	now := that.now()

	sess := &Session{
		logger:   that.logger.With("session_id", id, "transport", transport, "remote_addr", remoteAddr),
		size:     that.size,
		recorder: that.recorder,
		now:      that.now,
		info: entity.SessionInfo{
			ID:           id,
			Transport:    transport,
			RemoteAddr:   remoteAddr,
			StartedAt:    now,
			LastActivity: now,
		},
	}

	sess.logger.Info("session opened")
	sess.record(ctx)

	return sess
}

type noopRecorder struct{}

func (noopRecorder) CreateOrUpdate(context.Context, *entity.SessionInfo) error { return nil }

func (noopRecorder) DeleteByID(context.Context, string) error { return nil }
