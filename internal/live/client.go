package live

import (
	"encoding/json"
	"log/slog"

	"github.com/gorilla/websocket"
)

const sendBufferSize = 8

// Client sits between one websocket connection and the hub.
type Client struct {
	ID       string
	Username string

	hub  *Hub
	conn *websocket.Conn
	send chan []byte
}

// NewClient wraps a websocket connection for the hub.
func NewClient(hub *Hub, conn *websocket.Conn, id, username string) *Client {
	return &Client{
		ID:       id,
		Username: username,
		hub:      hub,
		conn:     conn,
		send:     make(chan []byte, sendBufferSize),
	}
}

// Start launches the read and write pumps for a registered client.
func (c *Client) Start() {
	go c.writePump()
	go c.readPump()
}

// readPump reads frames from the connection and turns them into hub events.
// It runs until the connection errors, then deregisters the client.
func (c *Client) readPump() {
	defer func() {
		c.hub.Disconnect(c)
		c.conn.Close()
	}()
	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				slog.Warn("websocket read failed", slog.String("conn_id", c.ID), slog.Any("error", err))
			}
			return
		}

		var env Envelope
		if err := json.Unmarshal(data, &env); err != nil {
			slog.Warn("discarding unparseable frame", slog.String("conn_id", c.ID), slog.Any("error", err))
			continue
		}

		switch env.Event {
		case EventStartLivePage:
			c.hub.GoLive(c.ID, env.Data)
		case EventQuitSession:
			c.hub.Quit()
		default:
			slog.Debug("ignoring unknown event", slog.String("conn_id", c.ID), slog.String("event", env.Event))
		}
	}
}

// writePump forwards hub broadcasts to the connection. It exits when the hub
// closes the send channel on disconnect.
func (c *Client) writePump() {
	defer c.conn.Close()
	for frame := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, frame); err != nil {
			slog.Warn("websocket write failed", slog.String("conn_id", c.ID), slog.Any("error", err))
			return
		}
	}
	c.conn.WriteMessage(websocket.CloseMessage, []byte{})
}
