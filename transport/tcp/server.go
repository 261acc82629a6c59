package tcp

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"strings"
	"sync"
	"time"

	"github.com/rocketscienceinc/reversi-backend/internal/entity"
	"github.com/rocketscienceinc/reversi-backend/internal/session"
)

const (
	lineTerminator      = '\n'
	defaultMaxLineBytes = 4096
)

type sessionOpener interface {
	Open(ctx context.Context, transport, remoteAddr string) *session.Session
}

type Options struct {
	// IdleTimeout closes a connection that sends nothing for that long; zero disables it.
	IdleTimeout  time.Duration
	MaxLineBytes int
}

// Server - newline-delimited text protocol over TCP. Every connection gets its
// own goroutine and its own session.
type Server struct {
	logger   *slog.Logger
	sessions sessionOpener
	options  Options

	wg sync.WaitGroup
}

func New(logger *slog.Logger, sessions sessionOpener, options Options) *Server {
	if options.MaxLineBytes <= 0 {
		options.MaxLineBytes = defaultMaxLineBytes
	}

	return &Server{
		logger:   logger.With("component", "tcp"),
		sessions: sessions,
		options:  options,
	}
}

// Start - listens on port until ctx is canceled.
func (that *Server) Start(ctx context.Context, port string) error {
	var lc net.ListenConfig

	listener, err := lc.Listen(ctx, "tcp", ":"+port)
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	return that.Serve(ctx, listener)
}

// Serve - accepts connections from listener until ctx is canceled, then waits
// for open connections to finish.
func (that *Server) Serve(ctx context.Context, listener net.Listener) error {
	log := that.logger.With("method", "Serve", "addr", listener.Addr().String())

	ctx, cancel := context.WithCancel(ctx)
	defer that.wg.Wait()
	defer cancel()

	go func() {
		<-ctx.Done()
		_ = listener.Close()
	}()

	log.Info("TCP server started")

	for {
		conn, err := listener.Accept()
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, net.ErrClosed) {
				log.Info("TCP server stopped")
				return nil
			}

			return fmt.Errorf("failed to accept connection: %w", err)
		}

		that.wg.Add(1)
		go func() {
			defer that.wg.Done()
			that.handleConn(ctx, conn)
		}()
	}
}

func (that *Server) handleConn(ctx context.Context, conn net.Conn) {
	remoteAddr := conn.RemoteAddr().String()
	log := that.logger.With("method", "handleConn", "remote_addr", remoteAddr)

	stop := context.AfterFunc(ctx, func() {
		_ = conn.Close()
	})
	defer stop()
	defer conn.Close()

	sess := that.sessions.Open(ctx, entity.TransportTCP, remoteAddr)
	defer sess.Close(context.WithoutCancel(ctx))

	scanner := bufio.NewScanner(conn)
	scanner.Buffer(make([]byte, 0, min(that.options.MaxLineBytes, bufio.MaxScanTokenSize)), that.options.MaxLineBytes)

	writer := bufio.NewWriter(conn)

	for {
		if that.options.IdleTimeout > 0 {
			if err := conn.SetReadDeadline(time.Now().Add(that.options.IdleTimeout)); err != nil {
				log.Error("failed to set read deadline", "error", err)
				return
			}
		}

		if !scanner.Scan() {
			if err := scanner.Err(); err != nil && ctx.Err() == nil {
				log.Error("error reading request", "error", err)
			}
			return
		}

		line := strings.TrimSuffix(scanner.Text(), "\r")
		response := sess.HandleRaw(ctx, line)

		if err := writeLine(writer, response); err != nil {
			log.Error("error writing response", "error", err)
			return
		}
	}
}

func writeLine(writer *bufio.Writer, line string) error {
	if _, err := writer.WriteString(line); err != nil {
		return fmt.Errorf("failed to write response: %w", err)
	}

	if err := writer.WriteByte(lineTerminator); err != nil {
		return fmt.Errorf("failed to write terminator: %w", err)
	}

	if err := writer.Flush(); err != nil {
		return fmt.Errorf("failed to flush buffer: %w", err)
	}

	return nil
}
