package entity

import (
	"fmt"
	"iter"
)

// Board - fixed size grid of tiles stored row-major (index = y*width + x).
// It knows nothing about the rules of the game.
type Board struct {
	size  Size
	tiles []Tile
}

// NewBoard - creates a board with every tile empty.
func NewBoard(width, height int) *Board {
	return &Board{
		size:  Size{Width: width, Height: height},
		tiles: make([]Tile, width*height),
	}
}

func (that *Board) Size() Size {
	return that.size
}

// index panics when pos is outside the board: callers validate positions first.
func (that *Board) index(pos Position) int {
	if !that.size.Contains(pos) {
		panic(fmt.Sprintf("position %s outside of %dx%d board", pos, that.size.Width, that.size.Height))
	}

	return pos.Y*that.size.Width + pos.X
}

func (that *Board) Get(pos Position) Tile {
	return that.tiles[that.index(pos)]
}

func (that *Board) Set(pos Position, color Color) {
	that.tiles[that.index(pos)] = Occupied(color)
}

func (that *Board) Unset(pos Position) {
	that.tiles[that.index(pos)] = Empty
}

// Put - writes a raw tile, used to restore snapshots.
func (that *Board) Put(pos Position, tile Tile) {
	that.tiles[that.index(pos)] = tile
}

// Taken - true if the tile at pos is not empty.
func (that *Board) Taken(pos Position) bool {
	return !that.Get(pos).IsEmpty()
}

// Positions - every position in row-major order.
func (that *Board) Positions() iter.Seq[Position] {
	return that.size.Positions()
}

// Clear - empties every tile.
func (that *Board) Clear() {
	for i := range that.tiles {
		that.tiles[i] = Empty
	}
}

// Count - number of tiles occupied by color.
func (that *Board) Count(color Color) int {
	want := Occupied(color)

	count := 0
	for _, tile := range that.tiles {
		if tile == want {
			count++
		}
	}

	return count
}
