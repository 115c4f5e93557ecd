// Package ws hosts the connection registry (Hub), the per-connection pumps,
// and the router that turns inbound frames into session operations.
package ws

import (
	"net/http"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"chess-relay/internal/protocol"
)

// EventHandler receives decoded connection events. The Hub does not care
// about message content; it delegates everything to the handler.
type EventHandler interface {
	OnMessage(c *Client, frame []byte)
	OnDisconnect(c *Client)
}

// Hub tracks every live connection and broadcasts the online count whenever
// the set changes.
type Hub struct {
	mu      sync.Mutex
	clients map[*Client]struct{}

	handler  EventHandler
	upgrader websocket.Upgrader
	logger   *log.Logger
}

func NewHub(handler EventHandler, allowedOrigin string, logger *log.Logger) *Hub {
	return &Hub{
		clients: make(map[*Client]struct{}),
		handler: handler,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				if allowedOrigin == "" {
					return true
				}
				return r.Header.Get("Origin") == allowedOrigin
			},
		},
		logger: logger,
	}
}

// HandleWS upgrades the request and starts the connection's pumps.
func (h *Hub) HandleWS(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("upgrade failed", "remote", c.Request.RemoteAddr, "err", err)
		return
	}
	client := newClient(h, conn)
	h.register(client)
	go client.writeLoop()
	go client.readLoop()
}

func (h *Hub) register(c *Client) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	count := len(h.clients)
	targets := h.snapshotLocked()
	h.mu.Unlock()

	h.logger.Info("connection opened", "remote", c.conn.RemoteAddr(), "online", count)
	for _, t := range targets {
		t.Send(protocol.NewOnlineCount(count))
	}
}

// unregister removes the connection and fires the disconnect hook exactly
// once, even when both pumps tear down the same connection.
func (h *Hub) unregister(c *Client) {
	h.mu.Lock()
	if _, ok := h.clients[c]; !ok {
		h.mu.Unlock()
		return
	}
	delete(h.clients, c)
	count := len(h.clients)
	targets := h.snapshotLocked()
	h.mu.Unlock()

	c.close()
	h.handler.OnDisconnect(c)

	h.logger.Info("connection closed", "remote", c.conn.RemoteAddr(), "online", count)
	for _, t := range targets {
		t.Send(protocol.NewOnlineCount(count))
	}
}

// OnlineCount reports the current number of live connections.
func (h *Hub) OnlineCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

func (h *Hub) snapshotLocked() []*Client {
	out := make([]*Client, 0, len(h.clients))
	for c := range h.clients {
		out = append(out, c)
	}
	return out
}
