package protocol

import (
	"strconv"
	"strings"

	"github.com/rocketscienceinc/reversi-backend/internal/entity"
)

const (
	fieldSeparator    = ";"
	subFieldSeparator = ","
)

type Kind int

const (
	Start Kind = iota
	DoTurn
	Cancel
)

var kindNames = map[Kind]string{
	Start:  "Start",
	DoTurn: "DoTurn",
	Cancel: "Cancel",
}

func (that Kind) String() string {
	if name, ok := kindNames[that]; ok {
		return name
	}

	return "Unknown"
}

// Request - a decoded client request. Position is only meaningful for DoTurn.
type Request struct {
	Kind     Kind
	Position entity.Position
}

// Decode - parses one request line: "Start", "DoTurn;<x>,<y>" or "Cancel".
// Fields after the ones a request needs are ignored.
func Decode(source string) (Request, error) {
	requestType, details, hasDetails := strings.Cut(source, fieldSeparator)

	switch requestType {
	case "Start":
		return Request{Kind: Start}, nil
	case "Cancel":
		return Request{Kind: Cancel}, nil
	case "DoTurn":
		if !hasDetails {
			return Request{}, missing(RolePosition, source)
		}

		details, _, _ = strings.Cut(details, fieldSeparator)

		position, err := decodePosition(details)
		if err != nil {
			return Request{}, err
		}

		return Request{Kind: DoTurn, Position: position}, nil
	default:
		return Request{}, unrecognizedRequest(requestType)
	}
}

func decodePosition(source string) (entity.Position, error) {
	fields := strings.Split(source, subFieldSeparator)

	x, err := decodeCoordinate(RoleX, fields[0])
	if err != nil {
		return entity.Position{}, err
	}

	if len(fields) < 2 {
		return entity.Position{}, missing(RoleY, source)
	}

	y, err := decodeCoordinate(RoleY, fields[1])
	if err != nil {
		return entity.Position{}, err
	}

	return entity.Position{X: x, Y: y}, nil
}

// decodeCoordinate accepts only unsigned decimal numbers that fit an int.
func decodeCoordinate(role, token string) (int, error) {
	value, err := strconv.ParseUint(token, 10, strconv.IntSize-1)
	if err != nil {
		return 0, invalidNumber(role, token)
	}

	return int(value), nil
}

// Encode - the wire form of the request, the inverse of Decode.
func (that Request) Encode() string {
	if that.Kind != DoTurn {
		return that.Kind.String()
	}

	return DoTurn.String() + fieldSeparator +
		strconv.Itoa(that.Position.X) + subFieldSeparator + strconv.Itoa(that.Position.Y)
}
