// Package http wires the gin router: the websocket upgrade endpoint and a
// small read-only REST surface.
package http

import (
	"github.com/gin-gonic/gin"

	"chess-relay/internal/api/ws"
	"chess-relay/internal/archive"
	"chess-relay/internal/room"
)

func NewRouter(hub *ws.Hub, rooms room.Store, games *archive.Store) *gin.Engine {
	r := gin.Default()

	r.GET("/ws", hub.HandleWS)
	r.GET("/healthz", HealthHandler())
	r.GET("/stats", StatsHandler(hub, rooms))
	r.GET("/games/recent", RecentGamesHandler(games))

	return r
}
