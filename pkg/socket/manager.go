package socket

import (
	"strconv"
	"sync"

	cmap "github.com/orcaman/concurrent-map/v2"
)

type session struct {
	mu      sync.RWMutex
	clients map[int64]*Client
}

// Manager 当前节点上的连接, 按用户分组
type Manager struct {
	users cmap.ConcurrentMap[string, *session]
}

func NewManager() *Manager {
	return &Manager{users: cmap.New[*session]()}
}

// Add 登记连接, first 表示这是该用户在本节点上的第一个连接
func (m *Manager) Add(c *Client) (first bool) {
	m.users.Upsert(key(c.uid), nil, func(exist bool, old *session, _ *session) *session {
		if !exist || old == nil {
			old = &session{clients: make(map[int64]*Client)}
			first = true
		}
		old.mu.Lock()
		old.clients[c.cid] = c
		old.mu.Unlock()
		return old
	})
	return first
}

// Remove 注销连接, last 表示该用户在本节点上已没有连接
func (m *Manager) Remove(c *Client) (last bool) {
	m.users.RemoveCb(key(c.uid), func(_ string, s *session, exists bool) bool {
		if !exists {
			return false
		}
		s.mu.Lock()
		delete(s.clients, c.cid)
		last = len(s.clients) == 0
		s.mu.Unlock()
		return last
	})
	return last
}

// Send 发给用户在本节点上的全部连接, 返回写入成功的连接数
func (m *Manager) Send(uid uint64, data []byte) int {
	s, ok := m.users.Get(key(uid))
	if !ok {
		return 0
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, c := range s.clients {
		if err := c.Write(data); err == nil {
			n++
		}
	}
	return n
}

func (m *Manager) Online(uid uint64) bool {
	return m.users.Has(key(uid))
}

// Uids 本节点在线用户
func (m *Manager) Uids() []uint64 {
	keys := m.users.Keys()
	uids := make([]uint64, 0, len(keys))
	for _, k := range keys {
		if uid, err := strconv.ParseUint(k, 10, 64); err == nil {
			uids = append(uids, uid)
		}
	}
	return uids
}

func key(uid uint64) string {
	return strconv.FormatUint(uid, 10)
}
