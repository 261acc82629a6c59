package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/rocketscienceinc/reversi-backend/internal/apperror"
	"github.com/rocketscienceinc/reversi-backend/internal/entity"
	"github.com/rocketscienceinc/reversi-backend/internal/protocol"
	"github.com/rocketscienceinc/reversi-backend/internal/reversi"
)

// Session - one player connection. It owns at most one game, created by the
// first Start request. A Session is not safe for concurrent use; each
// transport worker drives its own.
type Session struct {
	logger   *slog.Logger
	size     entity.Size
	recorder recorder
	now      func() time.Time

	game *reversi.Game
	info entity.SessionInfo

	closeOnce sync.Once
}

// ID - the unique identifier of the session.
func (that *Session) ID() string {
	return that.info.ID
}

// Info - a copy of the metadata published to the registry.
func (that *Session) Info() entity.SessionInfo {
	return that.info
}

// HandleRaw - decodes one request line, applies it and returns the encoded response.
func (that *Session) HandleRaw(ctx context.Context, raw string) string {
	log := that.logger.With("method", "HandleRaw")

	var response protocol.Response

	request, err := protocol.Decode(raw)
	if err != nil {
		log.Debug("failed to decode request", "raw", raw, "error", err)
		that.info.LastActivity = that.now()
		that.info.Rejections++
		response = protocol.Failure(err)
	} else {
		response = that.Handle(request)
	}

	that.record(ctx)

	return response.Encode()
}

// Handle - routes a decoded request to the game.
func (that *Session) Handle(request protocol.Request) protocol.Response {
	log := that.logger.With("method", "Handle", "request", request.Kind.String())

	that.info.LastActivity = that.now()

	changes, err := that.apply(request)
	if err != nil {
		that.info.Rejections++
		log.Info("request rejected", "error", err)

		return protocol.Failure(err)
	}

	if that.game != nil {
		that.info.CurrentPlayer = that.game.CurrentPlayer().String()
		that.info.Black, that.info.White = that.game.Score()
	}

	log.Debug("request applied", "changed_tiles", len(changes.Tiles), "player", changes.Player.String())

	return protocol.Update(changes)
}

func (that *Session) apply(request protocol.Request) (entity.ChangeSet, error) {
	if request.Kind == protocol.Start {
		if that.game == nil {
			that.game = reversi.NewGame(that.size)
		}
		that.info.GamesStarted++

		return that.game.Start(), nil
	}

	if that.game == nil {
		return entity.ChangeSet{}, apperror.ErrGameIsNotStarted
	}

	switch request.Kind {
	case protocol.DoTurn:
		changes, err := that.game.DoTurn(request.Position)
		if err == nil {
			that.info.Turns++
		}
		return changes, err
	case protocol.Cancel:
		changes, err := that.game.Cancel()
		if err == nil {
			that.info.Cancels++
		}
		return changes, err
	default:
		return entity.ChangeSet{}, protocol.ErrUnrecognizedRequest
	}
}

// record publishes the session metadata; failures never reach the player.
func (that *Session) record(ctx context.Context) {
	if err := that.recorder.CreateOrUpdate(ctx, &that.info); err != nil {
		that.logger.Warn("failed to record session", "error", err)
	}
}

// Close - removes the session from the registry. Safe to call more than once.
func (that *Session) Close(ctx context.Context) {
	that.closeOnce.Do(func() {
		if err := that.recorder.DeleteByID(ctx, that.info.ID); err != nil {
			that.logger.Warn("failed to remove session", "error", err)
		}

		that.logger.Info("session closed",
			"games_started", that.info.GamesStarted,
			"turns", that.info.Turns,
			"cancels", that.info.Cancels,
		)
	})
}
