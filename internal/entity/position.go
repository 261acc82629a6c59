package entity

import (
	"fmt"
	"iter"
)

// Position - a cell of the board, x is the column and y the row.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (that Position) String() string {
	return fmt.Sprintf("(%d,%d)", that.X, that.Y)
}

// Size - board dimensions, fixed once a game is created.
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Contains - reports whether pos lies in [0,width)×[0,height).
func (that Size) Contains(pos Position) bool {
	return pos.X >= 0 && pos.Y >= 0 && pos.X < that.Width && pos.Y < that.Height
}

// Area - number of cells.
func (that Size) Area() int {
	return that.Width * that.Height
}

type Direction int

const (
	North Direction = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

// AllDirections is iterated in this order whenever flips are searched.
var AllDirections = [8]Direction{North, NorthEast, East, SouthEast, South, SouthWest, West, NorthWest}

var directionSteps = [8]struct{ dx, dy int }{
	North:     {0, -1},
	NorthEast: {1, -1},
	East:      {1, 0},
	SouthEast: {1, 1},
	South:     {0, 1},
	SouthWest: {-1, 1},
	West:      {-1, 0},
	NorthWest: {-1, -1},
}

var directionNames = [8]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

func (that Direction) String() string {
	if that < North || that > NorthWest {
		return fmt.Sprintf("Direction(%d)", int(that))
	}

	return directionNames[that]
}

// Advance - moves pos one step in direction. The second result is false when
// the step leaves the board; coordinates never wrap.
func (that Position) Advance(direction Direction, size Size) (Position, bool) {
	step := directionSteps[direction]
	next := Position{X: that.X + step.dx, Y: that.Y + step.dy}

	if !size.Contains(next) {
		return Position{}, false
	}

	return next, true
}

// Ray - the positions visited when stepping from `from` (excluded) in direction
// until the edge of the board. The sequence can be ranged over any number of times.
func (that Size) Ray(from Position, direction Direction) iter.Seq[Position] {
	return func(yield func(Position) bool) {
		pos := from
		for {
			next, ok := pos.Advance(direction, that)
			if !ok {
				return
			}

			if !yield(next) {
				return
			}

			pos = next
		}
	}
}

// Positions - every position of the board in row-major order (y outer, x inner).
func (that Size) Positions() iter.Seq[Position] {
	return func(yield func(Position) bool) {
		for y := range that.Height {
			for x := range that.Width {
				if !yield(Position{X: x, Y: y}) {
					return
				}
			}
		}
	}
}
