package process

import (
	"Learnhub/config"
	"Learnhub/dao/cache"
	"Learnhub/pkg/log"
	"Learnhub/pkg/server"
	"Learnhub/pkg/socket"
	"Learnhub/pkg/utils"
	"context"
	"sync"
	"time"

	cmap "github.com/orcaman/concurrent-map/v2"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// PushSubscribe 订阅本节点在线用户的推送频道, 收到消息后转发给对应连接
type PushSubscribe struct {
	conf          *config.Config
	redis         *redis.Client
	manager       *socket.Manager
	onlineStorage *cache.OnlineStorage

	mu     sync.Mutex
	pubsub *redis.PubSub
	topics cmap.ConcurrentMap[string, uint64] // topic -> uid
}

func NewPushSubscribe(conf *config.Config, rds *redis.Client, manager *socket.Manager, online *cache.OnlineStorage) *PushSubscribe {
	return &PushSubscribe{
		conf:          conf,
		redis:         rds,
		manager:       manager,
		onlineStorage: online,
		pubsub:        rds.Subscribe(context.Background()),
		topics:        cmap.New[uint64](),
	}
}

func (s *PushSubscribe) topic(uid uint64) string {
	return utils.UserTopic(s.conf.Notify.GetTopicPrefix(), s.conf.Notify.HashSalt, uid)
}

// Sync 按本节点上该用户是否还有连接订阅或退订其频道
//
// 连接的登记与注销在 Manager 中完成, 这里加锁后按 Manager 的最新状态决定,
// 关闭旧连接与建立新连接交错执行时最后一次调用总能得到正确结果。
func (s *PushSubscribe) Sync(ctx context.Context, uid uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	topic := s.topic(uid)
	subscribed := s.topics.Has(topic)

	if s.manager.Online(uid) {
		if subscribed {
			return nil
		}
		s.topics.Set(topic, uid)
		return s.pubsub.Subscribe(ctx, topic)
	}

	if !subscribed {
		return nil
	}
	s.topics.Remove(topic)
	return s.pubsub.Unsubscribe(ctx, topic)
}

// Subscribed 本节点是否订阅了该用户的频道
func (s *PushSubscribe) Subscribed(uid uint64) bool {
	return s.topics.Has(s.topic(uid))
}

func (s *PushSubscribe) Setup(ctx context.Context) error {
	log.L.Info("[PubSub] push subscribe started", zap.String("server_id", server.GetServerId()))

	ch := s.pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			s.shutdown()
			return nil
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			uid, ok := s.topics.Get(msg.Channel)
			if !ok {
				continue
			}
			if n := s.manager.Send(uid, []byte(msg.Payload)); n == 0 {
				log.L.Debug("push dropped, no connection", zap.Uint64("user_id", uid))
			}
		}
	}
}

// shutdown 节点下线时清理在线登记
func (s *PushSubscribe) shutdown() {
	log.L.Info("[PubSub] 正在关闭推送订阅...")

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	s.onlineStorage.ClearServer(ctx, server.GetServerId(), s.manager.Uids())
	if err := s.pubsub.Close(); err != nil {
		log.L.Warn("close pubsub error", zap.Error(err))
	}
}
