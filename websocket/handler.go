package websocket

import (
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/yurayurastudio/studio_backend/services"
)

// TokenParser validates an access token
type TokenParser interface {
	Parse(raw string) (services.Principal, error)
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Browsers cannot set an Authorization header on the upgrade request; the
	// token check below is the access control
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// HandleWebSocket upgrades the connection and registers it for the caller.
// The token comes from the ?token= query parameter or, failing that, from a
// first "AUTH:<token>" text message.
func HandleWebSocket(hub *Hub, tokens TokenParser) echo.HandlerFunc {
	return func(c echo.Context) error {
		conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
		if err != nil {
			return err
		}

		raw := c.QueryParam("token")
		if raw == "" {
			conn.WriteJSON(Message{
				Type:         MessageTypeConnected,
				Message:      "WebSocket connection established. Please authenticate to receive notifications.",
				RequiresAuth: true,
			})
			raw, err = readAuthMessage(conn)
			if err != nil {
				conn.Close()
				return nil
			}
		}

		principal, err := tokens.Parse(raw)
		if err != nil {
			hub.log.WithError(err).Debug("WebSocket authentication failed")
			conn.WriteJSON(Message{Type: MessageTypeAuthResponse, Message: "Invalid or expired token", RequiresAuth: true})
			conn.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.ClosePolicyViolation, "unauthorized"))
			conn.Close()
			return nil
		}

		client := &Client{
			UserID: principal.UserID,
			conn:   conn,
			send:   make(chan Message, sendBuffer),
		}
		client.send <- Message{
			Type:    MessageTypeConnected,
			Message: "WebSocket connection established",
			UserID:  principal.UserID.Hex(),
		}
		if !hub.add(client) {
			conn.Close()
			return nil
		}

		go client.writePump()
		go client.readPump(hub)
		return nil
	}
}

func readAuthMessage(conn *websocket.Conn) (string, error) {
	conn.SetReadDeadline(time.Now().Add(authDeadline))
	defer conn.SetReadDeadline(time.Time{})

	for {
		messageType, message, err := conn.ReadMessage()
		if err != nil {
			return "", err
		}
		if messageType != websocket.TextMessage {
			continue
		}
		if token, ok := strings.CutPrefix(string(message), "AUTH:"); ok {
			return strings.TrimSpace(token), nil
		}
	}
}
