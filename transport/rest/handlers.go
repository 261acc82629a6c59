package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rocketscienceinc/reversi-backend/internal/entity"
	"github.com/rocketscienceinc/reversi-backend/internal/repository"
)

type sessionLister interface {
	GetByID(ctx context.Context, id string) (*entity.SessionInfo, error)
	List(ctx context.Context) ([]*entity.SessionInfo, error)
}

type handlers struct {
	logger   *slog.Logger
	sessions sessionLister
}

// PingHandler - liveness probe.
func (that *handlers) PingHandler(c *gin.Context) {
	c.String(http.StatusOK, "pong")
}

// ListSessionsHandler - returns every live session known to the registry.
func (that *handlers) ListSessionsHandler(c *gin.Context) {
	log := that.logger.With("method", "ListSessionsHandler")

	if that.sessions == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "session registry is disabled"})
		return
	}

	sessions, err := that.sessions.List(c.Request.Context())
	if err != nil {
		log.Error("failed to list sessions", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}

	if sessions == nil {
		sessions = []*entity.SessionInfo{}
	}

	c.JSON(http.StatusOK, gin.H{"sessions": sessions})
}

// GetSessionHandler - returns one live session.
func (that *handlers) GetSessionHandler(c *gin.Context) {
	log := that.logger.With("method", "GetSessionHandler")

	if that.sessions == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "session registry is disabled"})
		return
	}

	id := c.Param("id")

	info, err := that.sessions.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
			return
		}

		log.Error("failed to get session", "session_id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}

	c.JSON(http.StatusOK, info)
}
