package entity

type Color uint8

const (
	White Color = iota
	Black
)

// Opposite - the other player's color.
func (that Color) Opposite() Color {
	if that == White {
		return Black
	}

	return White
}

func (that Color) String() string {
	if that == White {
		return "white"
	}

	return "black"
}

// Tile - state of one board cell: empty or occupied by a color.
type Tile uint8

const (
	Empty Tile = iota
	WhiteTile
	BlackTile
)

// Occupied - the tile holding color.
func Occupied(color Color) Tile {
	if color == White {
		return WhiteTile
	}

	return BlackTile
}

// Color - the occupying color; false for an empty tile.
func (that Tile) Color() (Color, bool) {
	switch that {
	case WhiteTile:
		return White, true
	case BlackTile:
		return Black, true
	default:
		return White, false
	}
}

func (that Tile) IsEmpty() bool {
	return that == Empty
}

func (that Tile) String() string {
	if color, ok := that.Color(); ok {
		return color.String()
	}

	return "empty"
}
