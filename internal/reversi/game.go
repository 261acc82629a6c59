package reversi

import (
	"github.com/rocketscienceinc/reversi-backend/internal/apperror"
	"github.com/rocketscienceinc/reversi-backend/internal/entity"
)

const (
	DefaultWidth  = 10
	DefaultHeight = 10
)

// Game - the turn state machine of one session. It owns the board, the player
// to move and the change log; nothing else touches the board.
type Game struct {
	board   *entity.Board
	current entity.Color
	log     changeLog
}

// NewGame - creates a game with an empty board. Start must be called before playing.
func NewGame(size entity.Size) *Game {
	return &Game{
		board:   entity.NewBoard(size.Width, size.Height),
		current: entity.Black,
	}
}

func (that *Game) Size() entity.Size {
	return that.board.Size()
}

func (that *Game) CurrentPlayer() entity.Color {
	return that.current
}

func (that *Game) Tile(pos entity.Position) entity.Tile {
	return that.board.Get(pos)
}

// History - number of committed turns that can be canceled.
func (that *Game) History() int {
	return len(that.log.history)
}

// Score - number of black and white tiles on the board.
func (that *Game) Score() (int, int) {
	return that.board.Count(entity.Black), that.board.Count(entity.White)
}

// Start - resets the board to the opening position, black to move, and drops
// the undo history. The result covers every position of the board.
func (that *Game) Start() entity.ChangeSet {
	that.board.Clear()
	that.log.reset()

	size := that.board.Size()
	cx, cy := size.Width/2-1, size.Height/2-1

	that.board.Set(entity.Position{X: cx, Y: cy}, entity.White)
	that.board.Set(entity.Position{X: cx, Y: cy + 1}, entity.Black)
	that.board.Set(entity.Position{X: cx + 1, Y: cy}, entity.Black)
	that.board.Set(entity.Position{X: cx + 1, Y: cy + 1}, entity.White)

	that.current = entity.Black

	changes := entity.NewChangeSet(that.current)
	for pos := range that.board.Positions() {
		changes.Tiles[pos] = that.board.Get(pos)
	}

	return changes
}

// DoTurn - plays the current player at position. On success the returned
// ChangeSet holds the newly written tiles and the next player. On failure the
// board and history are left untouched.
func (that *Game) DoTurn(position entity.Position) (entity.ChangeSet, error) {
	if !that.board.Size().Contains(position) {
		that.log.discard()
		return entity.ChangeSet{}, apperror.ErrOutsideBoard
	}

	if that.board.Taken(position) {
		that.log.discard()
		return entity.ChangeSet{}, apperror.ErrPositionTaken
	}

	flips := that.flips(position)
	if len(flips) == 0 {
		that.log.discard()
		return entity.ChangeSet{}, apperror.ErrNoFlip
	}

	that.log.push(flips...)
	that.log.push(position)
	that.log.togglePlayer()

	return that.commit(), nil
}

// Cancel - undoes the last committed turn and returns the restored tiles with
// the restored player.
func (that *Game) Cancel() (entity.ChangeSet, error) {
	undo, ok := that.log.pop()
	if !ok {
		return entity.ChangeSet{}, apperror.ErrNothingToCancel
	}

	for pos, tile := range undo.Tiles {
		that.board.Put(pos, tile)
	}

	that.current = undo.Player

	return undo, nil
}

// flips - the opponent tiles bracketed by position, over all directions.
func (that *Game) flips(position entity.Position) []entity.Position {
	var flips []entity.Position

	for _, direction := range entity.AllDirections {
		flips = append(flips, that.bracket(position, direction)...)
	}

	return flips
}

// bracket - the run of opponent tiles from position in direction, if it ends
// on a tile of the current player. Edges and empty cells bracket nothing.
func (that *Game) bracket(position entity.Position, direction entity.Direction) []entity.Position {
	opponent := entity.Occupied(that.current.Opposite())
	own := entity.Occupied(that.current)

	var run []entity.Position

	for pos := range that.board.Size().Ray(position, direction) {
		switch that.board.Get(pos) {
		case opponent:
			run = append(run, pos)
		case own:
			return run
		default:
			return nil
		}
	}

	return nil
}

// commit - applies the pending changes, records the undo snapshot and clears the log.
func (that *Game) commit() entity.ChangeSet {
	undo := entity.NewChangeSet(that.current)
	mover := that.current

	for _, pos := range that.log.pending {
		if _, seen := undo.Tiles[pos]; !seen {
			undo.Tiles[pos] = that.board.Get(pos)
		}
		that.board.Set(pos, mover)
	}

	if that.log.flipPlayer {
		that.current = that.current.Opposite()
	}

	update := entity.NewChangeSet(that.current)
	for pos := range undo.Tiles {
		update.Tiles[pos] = entity.Occupied(mover)
	}

	that.log.record(undo)
	that.log.discard()

	return update
}
