// Package room holds the room aggregate and the store contract it lives in.
package room

import (
	"time"

	"chess-relay/internal/engine"
)

// Player is one identity attached to a live connection.
type Player struct {
	ID    string
	Name  string
	Color engine.Color
	// Room is the code of the room the player currently occupies, empty
	// when unattached.
	Room string
}

// Room is a two-player session container keyed by a short code.
//
// Session and Turn are set exactly while both seats are taken; a room that
// loses a participant drops back to waiting and the next join starts a fresh
// game.
type Room struct {
	Code      string
	Players   []*Player // join order, at most two
	Turn      engine.Color
	Session   *engine.Session
	CreatedAt time.Time
}

// Full reports whether both seats are taken.
func (r *Room) Full() bool {
	return len(r.Players) == 2
}

// Store is the room registry. Implementations must be safe for concurrent
// use.
type Store interface {
	GetRoom(code string) (*Room, bool)
	SaveRoom(r *Room)
	DeleteRoom(code string)
	Len() int
}
