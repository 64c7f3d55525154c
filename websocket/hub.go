package websocket

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
	"github.com/yurayurastudio/studio_backend/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Message types sent over the socket
const (
	MessageTypeConnected    = "connected"
	MessageTypeAuthResponse = "auth_response"
	MessageTypeNotification = "notification"
)

const (
	writeWait    = 10 * time.Second
	pongWait     = 60 * time.Second
	pingPeriod   = (pongWait * 9) / 10
	sendBuffer   = 16
	authDeadline = 10 * time.Second
)

// Message represents a message sent over WebSocket
type Message struct {
	Type         string               `json:"type"`
	Message      string               `json:"message,omitempty"`
	Notification *models.Notification `json:"notification,omitempty"`
	UserID       string               `json:"userID,omitempty"`
	RequiresAuth bool                 `json:"requiresAuth,omitempty"`
}

// Client represents one authenticated connection. A user may hold several.
type Client struct {
	UserID primitive.ObjectID
	conn   *websocket.Conn
	send   chan Message
}

// Hub maintains the set of active clients per user
type Hub struct {
	clients    map[primitive.ObjectID]map[*Client]bool
	register   chan *Client
	unregister chan *Client
	done       chan struct{}
	mu         sync.RWMutex
	log        logrus.FieldLogger
}

// NewHub creates a new Hub instance
func NewHub(log logrus.FieldLogger) *Hub {
	return &Hub{
		clients:    make(map[primitive.ObjectID]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		log:        log,
	}
}

// Run starts the hub's event loop; it closes every connection when ctx ends
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			h.mu.Lock()
			for _, set := range h.clients {
				for client := range set {
					close(client.send)
				}
			}
			h.clients = make(map[primitive.ObjectID]map[*Client]bool)
			h.mu.Unlock()
			return
		case client := <-h.register:
			h.mu.Lock()
			set, ok := h.clients[client.UserID]
			if !ok {
				set = make(map[*Client]bool)
				h.clients[client.UserID] = set
			}
			set[client] = true
			h.mu.Unlock()
			h.log.WithField("userId", client.UserID.Hex()).Debug("WebSocket client registered")
		case client := <-h.unregister:
			h.remove(client)
		}
	}
}

// add registers a client; false once the hub has stopped
func (h *Hub) add(client *Client) bool {
	select {
	case h.register <- client:
		return true
	case <-h.done:
		return false
	}
}

func (h *Hub) remove(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	set, ok := h.clients[client.UserID]
	if !ok || !set[client] {
		return
	}
	delete(set, client)
	if len(set) == 0 {
		delete(h.clients, client.UserID)
	}
	close(client.send)
}

// Connected reports whether the user has at least one open connection
func (h *Hub) Connected(userID primitive.ObjectID) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[userID]) > 0
}

// Publish implements services.RealtimePublisher. Slow clients whose buffer is
// full miss the message rather than block the caller.
func (h *Hub) Publish(userID primitive.ObjectID, n *models.Notification) error {
	h.mu.RLock()
	defer h.mu.RUnlock()

	set := h.clients[userID]
	if len(set) == 0 {
		return fmt.Errorf("user %s not connected", userID.Hex())
	}

	msg := Message{Type: MessageTypeNotification, Notification: n}
	delivered := 0
	for client := range set {
		select {
		case client.send <- msg:
			delivered++
		default:
			h.log.WithField("userId", userID.Hex()).Warn("WebSocket send buffer full, dropping notification")
		}
	}
	if delivered == 0 {
		return fmt.Errorf("no connection of user %s accepted the notification", userID.Hex())
	}
	return nil
}

// writePump owns all writes to the connection
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteJSON(msg); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readPump discards client messages and detects disconnects
func (c *Client) readPump(h *Hub) {
	defer func() {
		select {
		case h.unregister <- c:
		case <-h.done:
		}
	}()

	c.conn.SetReadLimit(512)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}
