package session

import (
	"sync"

	"chess-relay/internal/room"
)

// Conn is the write side of a live connection. Implementations must never
// block: a send to a closed or stalled connection is dropped, not queued.
type Conn interface {
	Send(msg any)
}

// Directory maps connections to player identities and back. Last Set wins;
// re-joining overwrites the previous identity for that connection.
type Directory struct {
	mu      sync.RWMutex
	players map[Conn]*room.Player
	conns   map[*room.Player]Conn
}

func NewDirectory() *Directory {
	return &Directory{
		players: map[Conn]*room.Player{},
		conns:   map[*room.Player]Conn{},
	}
}

func (d *Directory) Set(c Conn, p *room.Player) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if old, ok := d.players[c]; ok {
		delete(d.conns, old)
	}
	d.players[c] = p
	d.conns[p] = c
}

func (d *Directory) Get(c Conn) (*room.Player, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	p, ok := d.players[c]
	return p, ok
}

// Conn returns the connection a player is attached to, if any.
func (d *Directory) Conn(p *room.Player) (Conn, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	c, ok := d.conns[p]
	return c, ok
}

func (d *Directory) Remove(c Conn) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if p, ok := d.players[c]; ok {
		delete(d.conns, p)
	}
	delete(d.players, c)
}
