package socket

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sourcegraph/conc"
)

const (
	heartbeatInterval = 10 * time.Second // 心跳检测间隔时间
	heartbeatTimeout  = 35 * time.Second // 心跳检测超时时间（超时时间是隔间检测时间的2.5倍以上）
	writeWait         = 5 * time.Second
	maxMessageSize    = 1024
)

var (
	ErrClientClosed = errors.New("socket: client closed")
	ErrBufferFull   = errors.New("socket: write buffer full")
)

var clientSeq atomic.Int64

// Client 一个 websocket 连接, 只向客户端下发消息, 客户端上行只有心跳
type Client struct {
	cid     int64
	uid     uint64
	conn    *websocket.Conn
	outChan chan []byte

	done      chan struct{}
	closeOnce sync.Once
}

func NewClient(conn *websocket.Conn, uid uint64, buffer int) *Client {
	if buffer <= 0 {
		buffer = 16
	}
	return &Client{
		cid:     clientSeq.Add(1),
		uid:     uid,
		conn:    conn,
		outChan: make(chan []byte, buffer),
		done:    make(chan struct{}),
	}
}

func (c *Client) Cid() int64 {
	return c.cid
}

func (c *Client) Uid() uint64 {
	return c.uid
}

func (c *Client) Closed() bool {
	select {
	case <-c.done:
		return true
	default:
		return false
	}
}

// Write 写入发送队列, 队列满时丢弃
func (c *Client) Write(data []byte) error {
	if c.Closed() {
		return ErrClientClosed
	}

	select {
	case c.outChan <- data:
		return nil
	case <-c.done:
		return ErrClientClosed
	default:
		return ErrBufferFull
	}
}

func (c *Client) Close(code int, text string) {
	c.closeOnce.Do(func() {
		close(c.done)
		msg := websocket.FormatCloseMessage(code, text)
		_ = c.conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(writeWait))
		_ = c.conn.Close()
	})
}

// Run 阻塞直到连接关闭或 ctx 结束
func (c *Client) Run(ctx context.Context) {
	var wg conc.WaitGroup
	wg.Go(c.loopWrite)
	wg.Go(c.loopRead)

	select {
	case <-ctx.Done():
		c.Close(websocket.CloseGoingAway, "server shutdown")
	case <-c.done:
	}
	wg.Wait()
}

func (c *Client) loopRead() {
	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(heartbeatTimeout))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(heartbeatTimeout))
	})

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			c.Close(websocket.CloseNormalClosure, "")
			return
		}
		_ = c.conn.SetReadDeadline(time.Now().Add(heartbeatTimeout))

		if string(message) == "ping" {
			_ = c.Write([]byte(`{"type":"pong"}`))
		}
	}
}

func (c *Client) loopWrite() {
	ticker := time.NewTicker(heartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-c.done:
			return
		case data := <-c.outChan:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				c.Close(websocket.CloseAbnormalClosure, "write error")
				return
			}
		case <-ticker.C:
			if err := c.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				c.Close(4000, "心跳检测超时")
				return
			}
		}
	}
}
