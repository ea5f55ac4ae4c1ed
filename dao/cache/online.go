package cache

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// OnlineStorage 记录用户在各个推送节点上的连接数
type OnlineStorage struct {
	redis *redis.Client
}

func NewOnlineStorage(rds *redis.Client) *OnlineStorage {
	return &OnlineStorage{redis: rds}
}

// Bind 用户在节点 sid 上新建一个连接
func (o *OnlineStorage) Bind(ctx context.Context, sid string, uid uint64) error {
	return o.redis.HIncrBy(ctx, o.userLocationKey(uid), sid, 1).Err()
}

// UnBind 连接断开, 计数归零时删除该节点
func (o *OnlineStorage) UnBind(ctx context.Context, sid string, uid uint64) error {
	key := o.userLocationKey(uid)
	count, err := o.redis.HIncrBy(ctx, key, sid, -1).Result()
	if err != nil {
		return err
	}
	if count <= 0 {
		return o.redis.HDel(ctx, key, sid).Err()
	}
	return nil
}

// IsOnline 判断用户是否在线[所有部署机器]
func (o *OnlineStorage) IsOnline(ctx context.Context, uid uint64) (bool, error) {
	n, err := o.redis.HLen(ctx, o.userLocationKey(uid)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// ClearServer 节点退出时清理它登记过的用户
func (o *OnlineStorage) ClearServer(ctx context.Context, sid string, uids []uint64) {
	if len(uids) == 0 {
		return
	}
	_, _ = o.redis.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, uid := range uids {
			pipe.HDel(ctx, o.userLocationKey(uid), sid)
		}
		return nil
	})
}

func (o *OnlineStorage) userLocationKey(uid uint64) string {
	return fmt.Sprintf("ws:user:location:%d", uid)
}
