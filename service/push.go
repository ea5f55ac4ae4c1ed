package service

import (
	"Learnhub/config"
	"Learnhub/dao/cache"
	"Learnhub/pkg/log"
	"Learnhub/pkg/utils"
	"Learnhub/types"
	"context"
	"encoding/json"
	"errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// ErrUserOffline 用户没有在线连接, 未发布
var ErrUserOffline = errors.New("push: user offline")

// Pusher 实时推送, 只保证尽力投递
type Pusher interface {
	Push(ctx context.Context, userID uint64, payload *types.PushPayload) error
}

var _ Pusher = (*PushService)(nil)

// PushService 发布到用户频道, 由 conn-server 订阅后转发给 websocket 连接
type PushService struct {
	Config        *config.Config
	Redis         *redis.Client
	OnlineStorage *cache.OnlineStorage
}

func (s *PushService) Push(ctx context.Context, userID uint64, payload *types.PushPayload) error {
	online, err := s.OnlineStorage.IsOnline(ctx, userID)
	if err != nil {
		// 在线状态未知时照常发布
		log.L.Warn("check online failed", zap.Uint64("user_id", userID), zap.Error(err))
	} else if !online {
		return ErrUserOffline
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return s.Redis.Publish(ctx, s.Topic(userID), body).Err()
}

// Topic 用户推送频道
func (s *PushService) Topic(userID uint64) string {
	return utils.UserTopic(s.Config.Notify.GetTopicPrefix(), s.Config.Notify.HashSalt, userID)
}
