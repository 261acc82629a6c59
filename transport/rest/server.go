package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 5 * time.Second

// NewRouter - sessions may be nil when the registry is disabled.
func NewRouter(logger *slog.Logger, sessions sessionLister) *gin.Engine {
	h := &handlers{
		logger:   logger.With("component", "rest"),
		sessions: sessions,
	}

	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/ping", h.PingHandler)

	r.GET("/sessions", h.ListSessionsHandler)
	r.GET("/sessions/:id", h.GetSessionHandler)

	return r
}

// Start - serves the HTTP API on port until ctx is canceled.
func Start(ctx context.Context, logger *slog.Logger, port string, sessions sessionLister) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      NewRouter(logger, sessions),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown HTTP server", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
