package realtime

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingInterval   = (pongWait * 9) / 10
	maxMessageSize = 512
)

// Client is one websocket subscriber
type Client struct {
	hub      *Hub
	conn     *websocket.Conn
	logger   *zap.Logger
	userID   int
	send     chan *Event
	stop     chan struct{}
	stopOnce sync.Once
}

// Serve registers the connection with the hub and blocks until it closes
func (h *Hub) Serve(conn *websocket.Conn, userID int) {
	c := &Client{
		hub:    h,
		conn:   conn,
		logger: h.logger,
		userID: userID,
		send:   make(chan *Event, 64),
		stop:   make(chan struct{}),
	}

	select {
	case h.register <- c:
	case <-h.stop:
		_ = conn.Close()
		return
	}

	go c.write()
	c.read()
}

func (c *Client) write() {
	ticker := time.NewTicker(pingInterval)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case event := <-c.send:
			bytes, err := serializeEvent(event)
			if err != nil {
				c.logger.Error("Failed to serialize event", zap.Error(err))
				continue
			}
			if !c.sendMessage(websocket.TextMessage, bytes) {
				return
			}
		case <-c.stop:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			_ = c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			return
		case <-ticker.C:
			if !c.sendMessage(websocket.PingMessage, nil) {
				return
			}
		}
	}
}

// read drains incoming frames so pongs and close frames are handled.
// Subscribers never send application messages.
func (c *Client) read() {
	defer func() {
		select {
		case c.hub.unregister <- c:
		case <-c.hub.stop:
		}
		c.stopClient()
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure,
				websocket.CloseNormalClosure) {
				c.logger.Warn("Websocket read failed", zap.Error(err))
			}
			return
		}
	}
}

func (c *Client) queueEvent(e *Event) bool {
	select {
	case c.send <- e:
		return true
	default:
		return false
	}
}

func (c *Client) sendMessage(msgType int, msg []byte) bool {
	_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))

	if err := c.conn.WriteMessage(msgType, msg); err != nil {
		if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure,
			websocket.CloseNormalClosure) {
			c.logger.Warn("Websocket write failed", zap.Error(err))
		}
		return false
	}
	return true
}

func (c *Client) stopClient() {
	c.stopOnce.Do(func() { close(c.stop) })
}
