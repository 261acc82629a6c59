package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/rocketscienceinc/reversi-backend/internal/config"
	"github.com/rocketscienceinc/reversi-backend/internal/repository"
	"github.com/rocketscienceinc/reversi-backend/internal/repository/storage"
	"github.com/rocketscienceinc/reversi-backend/internal/session"
	"github.com/rocketscienceinc/reversi-backend/transport/rest"
	"github.com/rocketscienceinc/reversi-backend/transport/tcp"
	"github.com/rocketscienceinc/reversi-backend/transport/websocket"
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	var sessionRepo repository.SessionRepository

	if !conf.Redis.Disabled {
		redisStorage, err := storage.NewRedisStorage(ctx, conf.Redis.GetRedisAddr())
		if err != nil {
			return fmt.Errorf("could not connect to redis storage: %w", err)
		}

		defer func() {
			if err = redisStorage.Close(); err != nil {
				log.Error("could not close redis storage", "error", err)
			}
		}()

		sessionRepo = repository.NewSessionRepository(redisStorage, conf.Redis.SessionTTL)
	} else {
		log.Info("Session registry disabled")
	}

	// a nil repository stays a nil interface, so the manager and the API see it as disabled.
	manager := session.NewManager(logger, conf.Board.Size(), sessionRepo)

	// stop servers before closing redis; sessions delete their records on close.
	var servers sync.WaitGroup
	defer func() {
		cancel()
		servers.Wait()
	}()

	// run HTTP server
	httpErrCh := make(chan error, 1)
	servers.Add(1)
	go func() {
		defer servers.Done()
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		if httpErr := rest.Start(ctx, logger, conf.HTTPPort, sessionRepo); httpErr != nil {
			log.Error("HTTP server error", "error", httpErr)
			httpErrCh <- httpErr
		}
	}()

	// run Websocket server
	wsErrCh := make(chan error, 1)
	servers.Add(1)
	go func() {
		defer servers.Done()
		log.Info("Starting WebSocket server", "port", conf.SocketPort)
		wsServer := websocket.New(logger, manager)
		if wsErr := wsServer.Start(ctx, conf.SocketPort); wsErr != nil {
			log.Error("WebSocket server error", "error", wsErr)
			wsErrCh <- wsErr
		}
	}()

	// run TCP server
	tcpErrCh := make(chan error, 1)
	servers.Add(1)
	go func() {
		defer servers.Done()
		log.Info("Starting TCP server", "port", conf.TCPPort)
		tcpServer := tcp.New(logger, manager, tcp.Options{
			IdleTimeout:  conf.TCP.IdleTimeout,
			MaxLineBytes: conf.TCP.MaxLineBytes,
		})
		if tcpErr := tcpServer.Start(ctx, conf.TCPPort); tcpErr != nil {
			log.Error("TCP server error", "error", tcpErr)
			tcpErrCh <- tcpErr
		}
	}()

	select {
	case err := <-httpErrCh:
		return fmt.Errorf("HTTP server error: %w", err)
	case err := <-wsErrCh:
		return fmt.Errorf("WebSocket server error: %w", err)
	case err := <-tcpErrCh:
		return fmt.Errorf("TCP server error: %w", err)
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}
