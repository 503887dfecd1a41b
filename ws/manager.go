package ws

import (
	"sync"

	"homepro_backend/internal/logger"
	"homepro_backend/internal/services/dto"
)

// OutgoingEvent - конверт для всех событий, уходящих клиенту
type OutgoingEvent struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

// Manager держит активные соединения, ключ - userID
type Manager struct {
	clients    map[string]*Client
	register   chan *Client
	unregister chan *Client
	broadcast  chan any
	mu         sync.RWMutex
}

func NewManager() *Manager {
	return &Manager{
		clients:    make(map[string]*Client),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan any),
	}
}

func (manager *Manager) Run() {
	for {
		select {
		case client := <-manager.register:
			manager.mu.Lock()
			manager.clients[client.UserID] = client
			total := len(manager.clients)
			manager.mu.Unlock()
			logger.Info("WebSocket client registered", "user_id", client.UserID, "total", total)

		case client := <-manager.unregister:
			manager.mu.Lock()
			if _, ok := manager.clients[client.UserID]; ok {
				close(client.Send)
				delete(manager.clients, client.UserID)
				logger.Info("WebSocket client unregistered", "user_id", client.UserID, "total", len(manager.clients))
			}
			manager.mu.Unlock()

		case message := <-manager.broadcast:
			manager.broadcastAll(message)
		}
	}
}

// NotifyNewMessage реализует services.MessageNotifier:
// доставляет новое сообщение получателю, если он онлайн.
func (manager *Manager) NotifyNewMessage(receiverID string, message *dto.MessageResponse) {
	manager.SendToUser(receiverID, OutgoingEvent{Event: "new_message", Data: message})
}

// SendToUser отправляет событие конкретному пользователю
func (manager *Manager) SendToUser(userID string, message any) {
	manager.mu.RLock()
	defer manager.mu.RUnlock()

	if client, ok := manager.clients[userID]; ok {
		select {
		case client.Send <- message:
		default:
			// Канал заполнен, клиент отключается
			go func() {
				manager.unregister <- client
			}()
		}
	}
}

func (manager *Manager) broadcastAll(message any) {
	manager.mu.RLock()
	defer manager.mu.RUnlock()

	for userID, client := range manager.clients {
		select {
		case client.Send <- message:
		default:
			go func(c *Client) {
				manager.unregister <- c
			}(client)
			logger.Warn("WebSocket client dropped, send channel full", "user_id", userID)
		}
	}
}

// ClientCount возвращает количество подключенных клиентов
func (manager *Manager) ClientCount() int {
	manager.mu.RLock()
	defer manager.mu.RUnlock()
	return len(manager.clients)
}

// IsConnected проверяет, подключен ли пользователь
func (manager *Manager) IsConnected(userID string) bool {
	manager.mu.RLock()
	defer manager.mu.RUnlock()
	_, exists := manager.clients[userID]
	return exists
}
