package realtime

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeTimeout  = 10 * time.Second
	sendQueueSize = 256
)

// wsConn is the subset of *websocket.Conn the client writes through.
type wsConn interface {
	WriteMessage(messageType int, data []byte) error
	SetWriteDeadline(t time.Time) error
	Close() error
}

// Client is one live authenticated connection. Outbound frames pass through
// a buffered queue drained by a single writer goroutine, so frames reach the
// wire in the order they were enqueued.
type Client struct {
	conn   wsConn
	userID int64
	out    chan []byte
	done   chan struct{}
	once   sync.Once
}

func NewClient(conn wsConn, userID int64) *Client {
	c := &Client{
		conn:   conn,
		userID: userID,
		out:    make(chan []byte, sendQueueSize),
		done:   make(chan struct{}),
	}
	go c.writeLoop()
	return c
}

func (c *Client) UserID() int64 { return c.userID }

// Send enqueues a frame without blocking. False means the client is closed
// or its queue is full; the frame is dropped either way.
func (c *Client) Send(data []byte) bool {
	select {
	case <-c.done:
		return false
	default:
	}

	select {
	case c.out <- data:
		return true
	default:
		return false
	}
}

func (c *Client) Close() {
	c.once.Do(func() {
		close(c.done)
		_ = c.conn.Close()
	})
}

func (c *Client) writeLoop() {
	for {
		select {
		case <-c.done:
			return
		case data := <-c.out:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				c.Close()
				return
			}
		}
	}
}
