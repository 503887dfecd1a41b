package ws

import (
	"context"
	"encoding/json"

	"homepro_backend/internal/logger"

	"github.com/gorilla/websocket"
)

// IncomingEvent - конверт входящих сообщений от клиента
type IncomingEvent struct {
	Action string          `json:"action"`
	Data   json.RawMessage `json:"data"`
}

type Client struct {
	UserID string
	Conn   *websocket.Conn
	Send   chan any
	Ctx    context.Context

	Manager *Manager
}

func (c *Client) readPump() {
	defer func() {
		c.Manager.unregister <- c
		c.Conn.Close()
	}()

	for {
		_, msgBytes, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Warn("WebSocket read error", "user_id", c.UserID, "error", err)
			}
			break
		}

		var event IncomingEvent
		if err := json.Unmarshal(msgBytes, &event); err != nil {
			logger.Warn("Failed to parse WebSocket message", "user_id", c.UserID, "error", err)
			continue
		}

		c.handleEvent(event)
	}
}

func (c *Client) writePump() {
	for msg := range c.Send {
		if err := c.Conn.WriteJSON(msg); err != nil {
			logger.Warn("WebSocket write error", "user_id", c.UserID, "error", err)
			break
		}
	}
}

// Сообщения создаются через REST, сокет нужен только для доставки.
// Из входящих событий поддерживается только ping.
func (c *Client) handleEvent(event IncomingEvent) {
	switch event.Action {
	case "ping":
		c.Send <- OutgoingEvent{Event: "pong"}
	default:
		logger.Debug("Unhandled WebSocket action", "user_id", c.UserID, "action", event.Action)
	}
}
