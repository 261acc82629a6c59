package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/reversi-backend/internal/entity"
)

const (
	sessionKeyPrefix = "session:"
	sessionIndexKey  = "sessions"
)

var ErrSessionNotFound = errors.New("session not found")

type SessionRepository interface {
	CreateOrUpdate(ctx context.Context, info *entity.SessionInfo) error
	GetByID(ctx context.Context, id string) (*entity.SessionInfo, error)
	DeleteByID(ctx context.Context, id string) error
	List(ctx context.Context) ([]*entity.SessionInfo, error)
}

type dbSession struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSessionRepository - entries expire after ttl without an update; zero keeps them forever.
func NewSessionRepository(client *redis.Client, ttl time.Duration) SessionRepository {
	return &dbSession{
		client: client,
		ttl:    ttl,
	}
}

func (that *dbSession) CreateOrUpdate(ctx context.Context, info *entity.SessionInfo) error {
	sessionJSON, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("could not marshal session: %w", err)
	}

	pipe := that.client.TxPipeline()
	pipe.Set(ctx, sessionKeyPrefix+info.ID, sessionJSON, that.ttl)
	pipe.SAdd(ctx, sessionIndexKey, info.ID)

	if _, err = pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to set session: %w", err)
	}

	return nil
}

func (that *dbSession) GetByID(ctx context.Context, id string) (*entity.SessionInfo, error) {
	response, err := that.client.Get(ctx, sessionKeyPrefix+id).Result()

	if errors.Is(err, redis.Nil) {
		return &entity.SessionInfo{}, ErrSessionNotFound
	}

	if err != nil {
		return &entity.SessionInfo{}, fmt.Errorf("failed to get session by ID: %w", err)
	}

	var info entity.SessionInfo
	if err = json.Unmarshal([]byte(response), &info); err != nil {
		return &entity.SessionInfo{}, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	return &info, nil
}

func (that *dbSession) DeleteByID(ctx context.Context, id string) error {
	pipe := that.client.TxPipeline()
	deleted := pipe.Del(ctx, sessionKeyPrefix+id)
	pipe.SRem(ctx, sessionIndexKey, id)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete session by ID: %w", err)
	}

	if deleted.Val() == 0 {
		return ErrSessionNotFound
	}

	return nil
}

// List - all live sessions. Index entries whose session expired are dropped.
func (that *dbSession) List(ctx context.Context) ([]*entity.SessionInfo, error) {
	ids, err := that.client.SMembers(ctx, sessionIndexKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	sessions := make([]*entity.SessionInfo, 0, len(ids))

	for _, id := range ids {
		info, err := that.GetByID(ctx, id)
		if errors.Is(err, ErrSessionNotFound) {
			if err = that.client.SRem(ctx, sessionIndexKey, id).Err(); err != nil {
				return nil, fmt.Errorf("failed to drop expired session: %w", err)
			}
			continue
		}

		if err != nil {
			return nil, err
		}

		sessions = append(sessions, info)
	}

	return sessions, nil
}
