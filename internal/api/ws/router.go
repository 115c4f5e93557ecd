package ws

import (
	"github.com/charmbracelet/log"

	"chess-relay/internal/protocol"
	"chess-relay/internal/session"
)

// Router decodes inbound frames and dispatches them to the session manager.
// Malformed frames and unknown types are dropped; neither tears down the
// connection.
type Router struct {
	sessions *session.Manager
	logger   *log.Logger
}

func NewRouter(sessions *session.Manager, logger *log.Logger) *Router {
	return &Router{sessions: sessions, logger: logger}
}

func (rt *Router) OnMessage(c *Client, frame []byte) {
	msg, err := protocol.Decode(frame)
	if err != nil {
		rt.logger.Debug("dropping malformed frame", "err", err)
		return
	}
	switch m := msg.(type) {
	case protocol.Join:
		rt.sessions.Join(c, m.PlayerName, m.RoomCode)
	case protocol.MakeMove:
		rt.sessions.MakeMove(c, m.Move)
	case protocol.Chat:
		rt.sessions.Chat(c, m.Message)
	case protocol.LeaveRoom:
		rt.sessions.Leave(c)
	case protocol.Unknown:
		rt.logger.Debug("ignoring unknown message type", "type", m.Type)
	}
}

func (rt *Router) OnDisconnect(c *Client) {
	rt.sessions.Disconnect(c)
}
