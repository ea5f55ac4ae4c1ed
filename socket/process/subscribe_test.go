package process

import (
	"context"
	"testing"
	"time"

	"Learnhub/config"
	"Learnhub/dao/cache"
	"Learnhub/internal/testutil"
	"Learnhub/pkg/socket"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPushSubscribe(t *testing.T) (*PushSubscribe, *socket.Manager, *redis.Client) {
	t.Helper()
	_, rds := testutil.NewRedis(t)
	conf := &config.Config{Notify: &config.Notify{HashSalt: "salt"}}
	manager := socket.NewManager()
	sub := NewPushSubscribe(conf, rds, manager, cache.NewOnlineStorage(rds))
	t.Cleanup(func() { _ = sub.pubsub.Close() })
	return sub, manager, rds
}

func numSub(t *testing.T, rds *redis.Client, topic string) int64 {
	t.Helper()
	n, err := rds.PubSubNumSub(context.Background(), topic).Result()
	require.NoError(t, err)
	return n[topic]
}

func TestPushSubscribe_Sync(t *testing.T) {
	ctx := context.Background()
	sub, manager, rds := newPushSubscribe(t)
	topic := sub.topic(7)

	c := socket.NewClient(nil, 7, 1)
	require.True(t, manager.Add(c))
	require.NoError(t, sub.Sync(ctx, 7))
	require.NoError(t, sub.Sync(ctx, 7))
	assert.True(t, sub.Subscribed(7))
	assert.Eventually(t, func() bool { return numSub(t, rds, topic) == 1 }, time.Second, 10*time.Millisecond)

	require.True(t, manager.Remove(c))
	require.NoError(t, sub.Sync(ctx, 7))
	assert.False(t, sub.Subscribed(7))
	assert.Eventually(t, func() bool { return numSub(t, rds, topic) == 0 }, time.Second, 10*time.Millisecond)
}

// 页面刷新: 旧连接已注销, 新连接先完成订阅, 旧连接的退订随后才执行
func TestPushSubscribe_ReconnectBeforeLateUnsubscribe(t *testing.T) {
	ctx := context.Background()
	sub, manager, rds := newPushSubscribe(t)
	topic := sub.topic(7)

	old := socket.NewClient(nil, 7, 1)
	require.True(t, manager.Add(old))
	require.NoError(t, sub.Sync(ctx, 7))

	require.True(t, manager.Remove(old))
	fresh := socket.NewClient(nil, 7, 1)
	require.True(t, manager.Add(fresh))
	require.NoError(t, sub.Sync(ctx, 7)) // 新连接
	require.NoError(t, sub.Sync(ctx, 7)) // 旧连接迟到的退订

	assert.True(t, sub.Subscribed(7))
	assert.Eventually(t, func() bool { return numSub(t, rds, topic) == 1 }, time.Second, 10*time.Millisecond)
	assert.Never(t, func() bool { return numSub(t, rds, topic) == 0 }, 100*time.Millisecond, 10*time.Millisecond)
}
