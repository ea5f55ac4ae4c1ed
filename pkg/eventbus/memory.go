package eventbus

import (
	"Learnhub/config"
	"Learnhub/pkg/log"
	"Learnhub/pkg/utils"
	"Learnhub/types"
	"context"
	"sync"

	"github.com/sourcegraph/conc"
	"go.uber.org/zap"
)

// MemoryBus 进程内事件总线, 只适用于 api-server 与消费者同进程部署
//
// 事件不落盘, 进程退出时缓冲区中未消费的事件会丢失。
type MemoryBus struct {
	events    chan *types.CommentCreatedEvent
	consumers int
	done      chan struct{}
	once      sync.Once
}

var _ Bus = (*MemoryBus)(nil)

func NewMemoryBus(conf *config.Queue) *MemoryBus {
	return &MemoryBus{
		events:    make(chan *types.CommentCreatedEvent, conf.GetBuffer()),
		consumers: conf.GetConsumers(),
		done:      make(chan struct{}),
	}
}

// Publish 缓冲区满时立即返回 ErrBusFull, 不阻塞请求
func (b *MemoryBus) Publish(ctx context.Context, event *types.CommentCreatedEvent) error {
	select {
	case <-b.done:
		return ErrBusClosed
	default:
	}

	select {
	case b.events <- event:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	default:
		return ErrBusFull
	}
}

func (b *MemoryBus) Run(ctx context.Context, handler Handler) error {
	defer b.once.Do(func() { close(b.done) })

	var wg conc.WaitGroup
	for i := 0; i < b.consumers; i++ {
		wg.Go(func() {
			for {
				select {
				case <-ctx.Done():
					return
				case event := <-b.events:
					b.handle(ctx, handler, event)
				}
			}
		})
	}
	wg.Wait()

	return nil
}

// handle 内存总线没有重投能力, 失败只记录
func (b *MemoryBus) handle(ctx context.Context, handler Handler, event *types.CommentCreatedEvent) {
	defer func() {
		if err := recover(); err != nil {
			log.L.Error("eventbus handler panic", zap.String("trace", utils.PanicTrace(err)))
		}
	}()

	if err := handler(ctx, event); err != nil {
		log.L.Error("handle comment event failed",
			zap.String("event_id", event.EventID),
			zap.Uint64("comment_id", event.CommentID),
			zap.Error(err),
		)
	}
}
