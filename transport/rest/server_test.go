package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/reversi-backend/internal/entity"
	"github.com/rocketscienceinc/reversi-backend/internal/repository"
)

type fakeLister struct {
	sessions map[string]*entity.SessionInfo
	err      error
}

func (that *fakeLister) GetByID(_ context.Context, id string) (*entity.SessionInfo, error) {
	if that.err != nil {
		return nil, that.err
	}

	info, ok := that.sessions[id]
	if !ok {
		return nil, repository.ErrSessionNotFound
	}

	return info, nil
}

func (that *fakeLister) List(context.Context) ([]*entity.SessionInfo, error) {
	if that.err != nil {
		return nil, that.err
	}

	var result []*entity.SessionInfo
	for _, info := range that.sessions {
		result = append(result, info)
	}

	return result, nil
}

func serve(t *testing.T, sessions sessionLister, path string) *httptest.ResponseRecorder {
	t.Helper()

	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	NewRouter(logger, sessions).ServeHTTP(rec, req)

	return rec
}

func TestRouter(t *testing.T) {
	started := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	lister := &fakeLister{sessions: map[string]*entity.SessionInfo{
		"abc": {
			ID:            "abc",
			Transport:     entity.TransportTCP,
			StartedAt:     started,
			LastActivity:  started,
			GamesStarted:  1,
			Turns:         3,
			CurrentPlayer: "white",
			Black:         4,
			White:         3,
		},
	}}

	t.Run("Ping", func(t *testing.T) {
		rec := serve(t, nil, "/ping")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "pong", rec.Body.String())
	})

	t.Run("List sessions", func(t *testing.T) {
		// When: requesting the list
		rec := serve(t, lister, "/sessions")

		// Then: every session is returned
		require.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			Sessions []entity.SessionInfo `json:"sessions"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.Len(t, body.Sessions, 1)
		assert.Equal(t, "abc", body.Sessions[0].ID)
		assert.Equal(t, 3, body.Sessions[0].Turns)
	})

	t.Run("Empty list is an empty array", func(t *testing.T) {
		rec := serve(t, &fakeLister{}, "/sessions")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"sessions":[]}`, rec.Body.String())
	})

	t.Run("Get session", func(t *testing.T) {
		rec := serve(t, lister, "/sessions/abc")

		require.Equal(t, http.StatusOK, rec.Code)

		var info entity.SessionInfo
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &info))
		assert.Equal(t, "abc", info.ID)
		assert.Equal(t, entity.TransportTCP, info.Transport)
		assert.True(t, started.Equal(info.StartedAt))
	})

	t.Run("Unknown session", func(t *testing.T) {
		rec := serve(t, lister, "/sessions/missing")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("Registry failure", func(t *testing.T) {
		failing := &fakeLister{err: errors.New("connection refused")}

		assert.Equal(t, http.StatusInternalServerError, serve(t, failing, "/sessions").Code)
		assert.Equal(t, http.StatusInternalServerError, serve(t, failing, "/sessions/abc").Code)
	})

	t.Run("Registry disabled", func(t *testing.T) {
		assert.Equal(t, http.StatusServiceUnavailable, serve(t, nil, "/sessions").Code)
		assert.Equal(t, http.StatusServiceUnavailable, serve(t, nil, "/sessions/abc").Code)
	})
}
