package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"chess-relay/internal/api/ws"
	"chess-relay/internal/archive"
	"chess-relay/internal/room"
)

func HealthHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

func StatsHandler(hub *ws.Hub, rooms room.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"online": hub.OnlineCount(),
			"rooms":  rooms.Len(),
		})
	}
}

// RecentGamesHandler serves finished games from the archive. With the
// archive disabled it serves an empty list rather than an error.
func RecentGamesHandler(games *archive.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if games == nil {
			c.JSON(http.StatusOK, gin.H{"games": []archive.Game{}})
			return
		}
		limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
		if err != nil || limit <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		list, err := games.RecentGames(limit)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "archive unavailable"})
			return
		}
		if list == nil {
			list = []archive.Game{}
		}
		c.JSON(http.StatusOK, gin.H{"games": list})
	}
}
