package entity

import "time"

const (
	TransportTCP       = "tcp"
	TransportWebSocket = "websocket"
)

// SessionInfo - live metadata about a connected player, published to the
// session registry. It is never used to restore a game.
type SessionInfo struct {
	ID            string    `json:"id"`
	Transport     string    `json:"transport"`
	RemoteAddr    string    `json:"remote_addr"`
	StartedAt     time.Time `json:"started_at"`
	LastActivity  time.Time `json:"last_activity"`
	GamesStarted  int       `json:"games_started"`
	Turns         int       `json:"turns"`
	Cancels       int       `json:"cancels"`
	Rejections    int       `json:"rejections"`
	CurrentPlayer string    `json:"current_player,omitempty"`
	Black         int       `json:"black"`
	White         int       `json:"white"`
}

// HasGame - true once the player started a game in this session.
func (that *SessionInfo) HasGame() bool {
	return that.GamesStarted > 0
}
