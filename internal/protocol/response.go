package protocol

import (
	"strconv"
	"strings"

	"github.com/rocketscienceinc/reversi-backend/internal/entity"
)

const (
	updatePrefix = "Update"
	errorPrefix  = "Error"

	tileSeparator = "|"

	rgbWhite = "255.255.255"
	rgbBlack = "0.0.0"
	rgbEmpty = "128.128.128"
)

// Response - either an update or an error, never both.
type Response struct {
	Changes entity.ChangeSet
	Err     error
}

func Update(changes entity.ChangeSet) Response {
	return Response{Changes: changes}
}

func Failure(err error) Response {
	return Response{Err: err}
}

func (that Response) IsError() bool {
	return that.Err != nil
}

// Encode - "Update;<player-rgb>,<x>.<y>:<tile-rgb>|..." or "Error;<message>".
// Tiles are written in row-major order.
func (that Response) Encode() string {
	if that.Err != nil {
		return errorPrefix + fieldSeparator + that.Err.Error()
	}

	var sb strings.Builder

	sb.WriteString(updatePrefix)
	sb.WriteString(fieldSeparator)
	sb.WriteString(colorRGB(that.Changes.Player))
	sb.WriteString(subFieldSeparator)

	for i, pos := range that.Changes.SortedPositions() {
		if i > 0 {
			sb.WriteString(tileSeparator)
		}

		sb.WriteString(strconv.Itoa(pos.X))
		sb.WriteByte('.')
		sb.WriteString(strconv.Itoa(pos.Y))
		sb.WriteByte(':')
		sb.WriteString(tileRGB(that.Changes.Tiles[pos]))
	}

	return sb.String()
}

func colorRGB(color entity.Color) string {
	if color == entity.White {
		return rgbWhite
	}

	return rgbBlack
}

func tileRGB(tile entity.Tile) string {
	color, ok := tile.Color()
	if !ok {
		return rgbEmpty
	}

	return colorRGB(color)
}
