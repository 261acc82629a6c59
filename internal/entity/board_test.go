package entity

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBoard(t *testing.T) {
	// When: creating a 3x2 board
	board := NewBoard(3, 2)

	// Then: every tile is empty
	require.Len(t, board.tiles, 6)
	for pos := range board.Positions() {
		assert.Equal(t, Empty, board.Get(pos))
		assert.False(t, board.Taken(pos))
	}
}

func TestBoard_Positions(t *testing.T) {
	t.Run("Row-major order without duplicates", func(t *testing.T) {
		// Given: a 4x3 board
		board := NewBoard(4, 3)

		// When: iterating all positions
		positions := slices.Collect(board.Positions())

		// Then: exactly width*height positions come y outer, x inner
		require.Len(t, positions, 12)
		for i, pos := range positions {
			assert.Equal(t, Position{X: i % 4, Y: i / 4}, pos)
		}
	})

	t.Run("Iteration can be stopped and restarted", func(t *testing.T) {
		board := NewBoard(10, 10)

		var firstRow []Position
		for pos := range board.Positions() {
			if pos.Y > 0 {
				break
			}
			firstRow = append(firstRow, pos)
		}

		assert.Len(t, firstRow, 10)
		assert.Len(t, slices.Collect(board.Positions()), 100)
	})
}

func TestBoard_SetGetUnset(t *testing.T) {
	// Given: an empty board
	board := NewBoard(4, 4)
	pos := Position{X: 2, Y: 1}

	// When: placing a black tile
	board.Set(pos, Black)

	// Then: the tile is taken by black and stored at y*width + x
	assert.Equal(t, BlackTile, board.Get(pos))
	assert.True(t, board.Taken(pos))
	assert.Equal(t, BlackTile, board.tiles[6])
	assert.Equal(t, 1, board.Count(Black))

	// When: unsetting it
	board.Unset(pos)

	// Then: the tile is empty again
	assert.Equal(t, Empty, board.Get(pos))
	assert.Equal(t, 0, board.Count(Black))
}

func TestBoard_OutOfRangePanics(t *testing.T) {
	board := NewBoard(4, 4)

	assert.Panics(t, func() { board.Get(Position{X: 4, Y: 0}) })
	assert.Panics(t, func() { board.Set(Position{X: 0, Y: -1}, White) })
	assert.Panics(t, func() { board.Unset(Position{X: 0, Y: 4}) })
}

func TestColor_Opposite(t *testing.T) {
	assert.Equal(t, Black, White.Opposite())
	assert.Equal(t, White, Black.Opposite())
	assert.Equal(t, White, White.Opposite().Opposite())
}

func TestTile_Color(t *testing.T) {
	color, ok := Occupied(White).Color()
	assert.True(t, ok)
	assert.Equal(t, White, color)

	color, ok = Occupied(Black).Color()
	assert.True(t, ok)
	assert.Equal(t, Black, color)

	_, ok = Empty.Color()
	assert.False(t, ok)
}

func TestChangeSet_SortedPositions(t *testing.T) {
	// Given: a change set filled out of order
	changes := NewChangeSet(Black)
	changes.Tiles[Position{X: 1, Y: 2}] = BlackTile
	changes.Tiles[Position{X: 3, Y: 0}] = WhiteTile
	changes.Tiles[Position{X: 0, Y: 2}] = Empty

	// Then: positions come back row-major
	assert.Equal(t, []Position{{X: 3, Y: 0}, {X: 0, Y: 2}, {X: 1, Y: 2}}, changes.SortedPositions())
}
