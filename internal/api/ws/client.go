package ws

import (
	"sync"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/jobtrackr/jobtracker-api/internal/api/metrics"
	"github.com/jobtrackr/jobtracker-api/internal/core/domain"
)

const sendBuffer = 32

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// Client is one connected websocket subscriber.
type Client struct {
	hub   *Hub
	conn  *websocket.Conn
	send  chan []byte
	admin bool

	closeOnce sync.Once
}

// Serve returns the handler for GET /ws. The connection is upgraded after
// the auth middleware has run, so the role claim decides whether the client
// joins the admin audience.
func Serve(hub *Hub) echo.HandlerFunc {
	return func(c echo.Context) error {
		role, _ := c.Get("role").(string)

		conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
		if err != nil {
			return err
		}

		client := &Client{
			hub:   hub,
			conn:  conn,
			send:  make(chan []byte, sendBuffer),
			admin: role == domain.RoleAdmin,
		}

		select {
		case hub.register <- client:
		case <-hub.done:
			_ = conn.Close()
			return nil
		}
		metrics.WebsocketClientsConnected.WithLabelValues(client.audience()).Inc()

		go client.writePump()
		go client.readPump()

		return nil
	}
}

func (c *Client) audience() string {
	if c.admin {
		return string(domain.AudienceAdmin)
	}
	return string(domain.AudienceAll)
}

// readPump discards inbound frames; the stream is one-way. Its real job is
// detecting disconnects so the client gets unregistered.
func (c *Client) readPump() {
	defer func() {
		metrics.WebsocketClientsConnected.WithLabelValues(c.audience()).Dec()
		select {
		case c.hub.unregister <- c:
		case <-c.hub.done:
			c.close()
		}
	}()

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (c *Client) writePump() {
	for msg := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			return
		}
	}
	_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
}

// close shuts the send channel and the underlying connection. Safe to call
// from both the hub loop and ctx teardown.
func (c *Client) close() {
	c.closeOnce.Do(func() {
		close(c.send)
		_ = c.conn.Close()
	})
}
