package ws

import (
	"net/http"

	"homepro_backend/internal/logger"
	"homepro_backend/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // продакшн: проверка origin
	},
}

type Handler struct {
	Manager *Manager
}

func NewHandler(manager *Manager) *Handler {
	return &Handler{Manager: manager}
}

// ServeWS апгрейдит соединение, userID берется из auth middleware
func (h *Handler) ServeWS(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.WithError(err).Warn("WebSocket upgrade failed", "user_id", userID)
		return
	}

	client := &Client{
		UserID:  userID,
		Conn:    conn,
		Send:    make(chan any, 256),
		Ctx:     c.Request.Context(),
		Manager: h.Manager,
	}

	h.Manager.register <- client

	go client.readPump()
	go client.writePump()
}
