// Package session implements the room and session lifecycle: joins, turn
// enforcement, move relay, termination detection, and cleanup.
package session

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"chess-relay/internal/engine"
	"chess-relay/internal/protocol"
	"chess-relay/internal/room"
)

var (
	ErrRoomNotFound = errors.New("Room not found")
	ErrRoomFull     = errors.New("Room is full")
)

// GameRecord is a finished game handed to the result saver.
type GameRecord struct {
	RoomCode   string
	FirstName  string
	SecondName string
	Result     string
	Moves      []string
}

// ResultSaver persists finished games. Saves are best effort; a failure is
// logged and never surfaced to the players.
type ResultSaver interface {
	SaveGame(rec GameRecord) error
}

// Manager orchestrates rooms, identities, and rule-engine sessions. One
// mutex serializes all operations, so two concurrent joins to the same room
// cannot both claim the second seat and a move cannot race a leave.
type Manager struct {
	mu      sync.Mutex
	rooms   room.Store
	players *Directory
	codeLen int
	saver   ResultSaver
	logger  *log.Logger
}

func NewManager(rooms room.Store, codeLen int, logger *log.Logger) *Manager {
	return &Manager{
		rooms:   rooms,
		players: NewDirectory(),
		codeLen: codeLen,
		logger:  logger,
	}
}

// SetResultSaver wires an optional archive for finished games.
func (m *Manager) SetResultSaver(saver ResultSaver) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saver = saver
}

// Join attaches a player identity to the connection and seats it in a room.
// An empty code creates a fresh room. Rejections (unknown code, full room)
// go to the requester only and leave the player unattached.
func (m *Manager) Join(c Conn, name, code string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	// A connection re-joining while seated gives up its old seat first,
	// so the old room cannot keep a participant no connection maps to.
	m.leaveLocked(c)

	p := &room.Player{ID: uuid.NewString(), Name: name}
	m.players.Set(c, p)

	if code == "" {
		code = m.freshCode()
		m.rooms.SaveRoom(&room.Room{Code: code, CreatedAt: time.Now()})
		m.logger.Info("room created", "room", code)
	}

	r, ok := m.rooms.GetRoom(code)
	if !ok {
		c.Send(protocol.NewError(ErrRoomNotFound.Error()))
		return
	}
	if r.Full() {
		c.Send(protocol.NewError(ErrRoomFull.Error()))
		return
	}

	p.Color = engine.First
	if len(r.Players) == 1 {
		p.Color = engine.Second
	}
	r.Players = append(r.Players, p)
	p.Room = code

	var opponent *string
	if r.Full() {
		opponent = &r.Players[0].Name
	}
	c.Send(protocol.NewRoomJoined(code, p.Color.String(), opponent))
	m.logger.Info("player joined", "room", code, "player", name, "color", p.Color)

	if r.Full() {
		first := r.Players[0]
		if fc, ok := m.players.Conn(first); ok {
			fc.Send(protocol.NewOpponentJoined(p.Name))
		}
		r.Session = engine.NewSession()
		r.Turn = engine.First
		m.rooms.SaveRoom(r)
		m.broadcast(r, protocol.NewGameStart(first.Name))
		m.logger.Info("game started", "room", code, "first", first.Name)
	}
}

// MakeMove relays a move if the sender is seated, the game is live, it is
// the sender's turn, and the rule engine accepts the descriptor. Everything
// else is dropped without a reply.
func (m *Manager) MakeMove(c Conn, move string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.players.Get(c)
	if !ok || p.Room == "" {
		return
	}
	r, ok := m.rooms.GetRoom(p.Room)
	if !ok || r.Session == nil {
		return
	}
	if r.Session.Status() != engine.Ongoing {
		// The room stays open for chat after game end, but the board
		// is frozen.
		return
	}
	if p.Color != r.Turn {
		m.logger.Debug("out-of-turn move dropped", "room", r.Code, "player", p.Name)
		return
	}
	if err := r.Session.ApplyMove(move); err != nil {
		m.logger.Debug("move rejected", "room", r.Code, "player", p.Name, "err", err)
		return
	}

	// The engine owns turn tracking; keep the room's mirror in sync for
	// the pre-check above.
	r.Turn = r.Session.Turn()
	m.rooms.SaveRoom(r)
	m.broadcast(r, protocol.NewMoveMade(p.Name, move))

	if status := r.Session.Status(); status != engine.Ongoing {
		result := resultString(status, p.Name)
		m.broadcast(r, protocol.NewGameOver(result))
		m.logger.Info("game over", "room", r.Code, "result", result)
		m.saveResult(r, result)
	}
}

// Chat mirrors a message to every participant in the sender's room,
// including the sender.
func (m *Manager) Chat(c Conn, text string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.players.Get(c)
	if !ok || p.Room == "" {
		return
	}
	r, ok := m.rooms.GetRoom(p.Room)
	if !ok {
		return
	}
	m.broadcast(r, protocol.NewChatMessage(p.Name, text))
}

// Leave removes the player from its room, notifying whoever stays behind.
func (m *Manager) Leave(c Conn) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.leaveLocked(c)
}

// Disconnect is Leave plus identity removal. The connection registry calls
// it when it detects closure.
func (m *Manager) Disconnect(c Conn) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.leaveLocked(c)
	m.players.Remove(c)
}

func (m *Manager) leaveLocked(c Conn) {
	p, ok := m.players.Get(c)
	if !ok || p.Room == "" {
		return
	}
	code := p.Room
	p.Room = ""

	r, ok := m.rooms.GetRoom(code)
	if !ok {
		return
	}
	for i, q := range r.Players {
		if q == p {
			r.Players = append(r.Players[:i], r.Players[i+1:]...)
			break
		}
	}
	if len(r.Players) == 0 {
		m.rooms.DeleteRoom(code)
		m.logger.Info("room deleted", "room", code)
		return
	}
	// Back to waiting: a future second join starts a fresh game. Color is
	// bound to seat order, so the survivor takes the first seat's color.
	r.Players[0].Color = engine.First
	r.Session = nil
	r.Turn = engine.First
	m.rooms.SaveRoom(r)
	m.broadcast(r, protocol.NewOpponentLeft())
	m.logger.Info("player left", "room", code, "player", p.Name)
}

// broadcast snapshots the recipients before sending so that a send can never
// observe a participants list mid-mutation.
func (m *Manager) broadcast(r *room.Room, msg any) {
	targets := make([]Conn, 0, len(r.Players))
	for _, p := range r.Players {
		if c, ok := m.players.Conn(p); ok {
			targets = append(targets, c)
		}
	}
	for _, c := range targets {
		c.Send(msg)
	}
}

func (m *Manager) freshCode() string {
	for {
		code := room.NewCode(m.codeLen)
		if _, exists := m.rooms.GetRoom(code); !exists {
			return code
		}
	}
}

func (m *Manager) saveResult(r *room.Room, result string) {
	if m.saver == nil {
		return
	}
	rec := GameRecord{
		RoomCode:   r.Code,
		FirstName:  r.Players[0].Name,
		SecondName: r.Players[1].Name,
		Result:     result,
		Moves:      r.Session.MoveHistory(),
	}
	// Best effort, off the hot path.
	go func() {
		if err := m.saver.SaveGame(rec); err != nil {
			m.logger.Warn("could not archive game", "room", rec.RoomCode, "err", err)
		}
	}()
}

func resultString(status engine.Status, mover string) string {
	switch status {
	case engine.Checkmate:
		return fmt.Sprintf("%s wins by checkmate!", mover)
	case engine.Stalemate:
		return "Draw by stalemate"
	case engine.Repetition:
		return "Draw by repetition"
	case engine.InsufficientMaterial:
		return "Draw by insufficient material"
	default:
		return "Draw"
	}
}
