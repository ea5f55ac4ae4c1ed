package service

import (
	"Learnhub/pkg/eventbus"
	"Learnhub/pkg/log"
	"Learnhub/types"
	"context"

	"go.uber.org/zap"
)

// FanoutWorker 消费评论事件并执行扇出
type FanoutWorker struct {
	Bus    eventbus.Bus
	Fanout IFanoutService
}

func (w *FanoutWorker) Run(ctx context.Context) error {
	log.L.Info("fanout worker started")
	defer log.L.Info("fanout worker stopped")

	return w.Bus.Run(ctx, w.handle)
}

func (w *FanoutWorker) handle(ctx context.Context, event *types.CommentCreatedEvent) error {
	_, err := w.Fanout.Fanout(ctx, event)
	if err != nil {
		log.L.Error("fanout failed", zap.String("event_id", event.EventID), zap.Error(err))
	}
	return err
}
