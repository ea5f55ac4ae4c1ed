package socket

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newServer 每个连接登记为 uid=7
func newServer(t *testing.T, m *Manager) *httptest.Server {
	t.Helper()

	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		c := NewClient(conn, 7, 4)
		m.Add(c)
		defer m.Remove(c)
		c.Run(context.Background())
	}))
	t.Cleanup(srv.Close)
	return srv
}

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func TestManager_SendToAllConnections(t *testing.T) {
	m := NewManager()
	srv := newServer(t, m)

	a := dial(t, srv)
	b := dial(t, srv)

	require.Eventually(t, func() bool { return m.Send(7, []byte("hello")) == 2 }, time.Second, 10*time.Millisecond)
	assert.Equal(t, []uint64{7}, m.Uids())
	assert.Equal(t, 0, m.Send(8, []byte("nobody")))

	for _, conn := range []*websocket.Conn{a, b} {
		_ = conn.SetReadDeadline(time.Now().Add(time.Second))
		_, msg, err := conn.ReadMessage()
		require.NoError(t, err)
		assert.Equal(t, "hello", string(msg))
	}

	_ = a.Close()
	_ = b.Close()
	assert.Eventually(t, func() bool { return !m.Online(7) }, time.Second, 10*time.Millisecond)
}

func TestClient_Ping(t *testing.T) {
	m := NewManager()
	conn := dial(t, newServer(t, m))

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("ping")))
	_ = conn.SetReadDeadline(time.Now().Add(time.Second))
	_, msg, err := conn.ReadMessage()
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"pong"}`, string(msg))
}

func TestManager_AddRemove(t *testing.T) {
	m := NewManager()
	c1 := &Client{cid: 1, uid: 9, done: make(chan struct{}), outChan: make(chan []byte, 1)}
	c2 := &Client{cid: 2, uid: 9, done: make(chan struct{}), outChan: make(chan []byte, 1)}

	assert.True(t, m.Add(c1))
	assert.False(t, m.Add(c2))
	assert.False(t, m.Remove(c1))
	assert.True(t, m.Online(9))
	assert.True(t, m.Remove(c2))
	assert.False(t, m.Online(9))

	// 缓冲区满时丢弃
	assert.True(t, m.Add(c1))
	assert.Equal(t, 1, m.Send(9, []byte("a")))
	assert.Equal(t, 0, m.Send(9, []byte("b")))
}
