package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// 未读数缓存有效期, 写入通知/标记已读时主动失效
const unreadExpireAt = 5 * time.Minute

// ErrUnreadConflict 统计期间未读数被失效, 本次结果不回写缓存
var ErrUnreadConflict = errors.New("unread: invalidated while loading")

type UnreadStorage struct {
	redis *redis.Client
}

func NewUnreadStorage(rds *redis.Client) *UnreadStorage {
	return &UnreadStorage{rds}
}

// Load 读取未读数, 未命中时调用 load 统计后回写
//
// 回写以版本号为条件: 统计期间发生过 Invalidate 时放弃回写并返回
// ErrUnreadConflict, 此时返回的数值仍是 load 的结果。
// @params uid 用户ID
func (u *UnreadStorage) Load(ctx context.Context, uid uint64, load func(ctx context.Context) (int64, error)) (int64, error) {
	var n int64
	err := u.redis.Watch(ctx, func(tx *redis.Tx) error {
		cached, err := tx.Get(ctx, u.name(uid)).Int64()
		if err == nil {
			n = cached
			return nil
		}
		if !errors.Is(err, redis.Nil) {
			return err
		}

		if n, err = load(ctx); err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, u.name(uid), n, unreadExpireAt)
			return nil
		})
		return err
	}, u.version(uid))

	if errors.Is(err, redis.TxFailedErr) {
		return n, ErrUnreadConflict
	}
	return n, err
}

// Invalidate 数据库中的未读状态已变更: 版本号自增并删除缓存
// 正在进行中的 Load 因版本号变化而放弃回写
// @params uid 用户ID
func (u *UnreadStorage) Invalidate(ctx context.Context, uid uint64) error {
	_, err := u.redis.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, u.version(uid))
		pipe.Expire(ctx, u.version(uid), 2*unreadExpireAt)
		pipe.Del(ctx, u.name(uid))
		return nil
	})
	return err
}

// 未读数缓存
// notify:unread:uid
func (u *UnreadStorage) name(uid uint64) string {
	return fmt.Sprintf("notify:unread:%d", uid)
}

// 未读数版本号
// notify:unread:ver:uid
func (u *UnreadStorage) version(uid uint64) string {
	return fmt.Sprintf("notify:unread:ver:%d", uid)
}
