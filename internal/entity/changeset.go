package entity

import (
	"maps"
	"slices"
)

// ChangeSet is read in two contexts:
//   - as an update sent to the client: Tiles hold the values just written and
//     Player is the player to move next;
//   - as an undo record kept in the game history: Tiles hold the values from
//     before the turn and Player is who was to move before it.
//
// In both cases writing Tiles back to the board and taking Player as the
// current player yields the state the ChangeSet describes.
type ChangeSet struct {
	Tiles  map[Position]Tile
	Player Color
}

func NewChangeSet(player Color) ChangeSet {
	return ChangeSet{
		Tiles:  make(map[Position]Tile),
		Player: player,
	}
}

// SortedPositions - the touched positions in row-major order.
func (that ChangeSet) SortedPositions() []Position {
	return slices.SortedFunc(maps.Keys(that.Tiles), func(a, b Position) int {
		if a.Y != b.Y {
			return a.Y - b.Y
		}

		return a.X - b.X
	})
}
