package websocket

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/reversi-backend/internal/entity"
	"github.com/rocketscienceinc/reversi-backend/internal/session"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed between two messages from the peer.
	readWait = 5 * time.Minute

	maxMessageSize = 4096

	shutdownTimeout = 5 * time.Second
)

type sessionOpener interface {
	Open(ctx context.Context, transport, remoteAddr string) *session.Session
}

// Server - WebSocket transport. One text message carries one request line and
// one text message carries its response.
type Server struct {
	logger   *slog.Logger
	sessions sessionOpener
	upgrader websocket.Upgrader
}

func New(logger *slog.Logger, sessions sessionOpener) *Server {
	return &Server{
		logger:   logger.With("component", "websocket"),
		sessions: sessions,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(*http.Request) bool {
				return true
			},
		},
	}
}

// Handler - the http handler serving /ws.
func (that *Server) Handler(ctx context.Context) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		that.upgradeToWebSocket(ctx, w, r)
	})

	return mux
}

// Start - starts WebSocket server and shuts it down when ctx is canceled.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           that.Handler(ctx),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       30 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			that.logger.Error("failed to shutdown server", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// upgradeToWebSocket - upgrades the connection to WebSocket.
func (that *Server) upgradeToWebSocket(ctx context.Context, writer http.ResponseWriter, req *http.Request) {
	log := that.logger.With("method", "upgradeToWebSocket")

	conn, err := that.upgrader.Upgrade(writer, req, nil)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}

	defer conn.Close()

	stop := context.AfterFunc(ctx, func() {
		_ = conn.Close()
	})
	defer stop()

	log.Info("WebSocket connection established", "remote_addr", req.RemoteAddr)

	sess := that.sessions.Open(ctx, entity.TransportWebSocket, req.RemoteAddr)
	defer sess.Close(context.WithoutCancel(ctx))

	if err = that.handleMessages(ctx, conn, sess); err != nil {
		log.Error("error handling messages", "error", err)
	}
}

// handleMessages - processes messages from the client until it disconnects.
func (that *Server) handleMessages(ctx context.Context, conn *websocket.Conn, sess *session.Session) error {
	log := that.logger.With("method", "handleMessages", "session_id", sess.ID())

	conn.SetReadLimit(maxMessageSize)

	for {
		if err := conn.SetReadDeadline(time.Now().Add(readWait)); err != nil {
			return fmt.Errorf("failed to set read deadline: %w", err)
		}

		messageType, payload, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) || ctx.Err() != nil {
				log.Info("client disconnected")
				return nil
			}

			return fmt.Errorf("failed to read message: %w", err)
		}

		if messageType != websocket.TextMessage {
			log.Warn("ignoring non-text message", "type", messageType)
			continue
		}

		response := sess.HandleRaw(ctx, string(payload))

		if err = conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
			return fmt.Errorf("failed to set write deadline: %w", err)
		}

		if err = conn.WriteMessage(websocket.TextMessage, []byte(response)); err != nil {
			return fmt.Errorf("failed to write message: %w", err)
		}
	}
}
