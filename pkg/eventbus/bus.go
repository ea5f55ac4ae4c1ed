package eventbus

import (
	"Learnhub/config"
	"Learnhub/types"
	"context"
	"errors"
)

var (
	ErrBusFull   = errors.New("eventbus: buffer full")
	ErrBusClosed = errors.New("eventbus: closed")
)

// Handler 处理一条评论事件, 返回 error 表示需要重新投递
type Handler func(ctx context.Context, event *types.CommentCreatedEvent) error

// Bus 评论事件总线
//
// Publish 在请求链路上调用, 不做任何扇出工作;
// Run 在后台消费, 阻塞直到 ctx 结束。
type Bus interface {
	Publish(ctx context.Context, event *types.CommentCreatedEvent) error
	Run(ctx context.Context, handler Handler) error
}

func NewBus(conf *config.Config) (Bus, error) {
	switch conf.Queue.Driver {
	case config.QueueRocketMQ:
		return NewRocketMQBus(conf.RocketMQ)
	default:
		return NewMemoryBus(conf.Queue), nil
	}
}
