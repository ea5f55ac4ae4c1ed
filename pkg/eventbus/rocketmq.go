package eventbus

import (
	"Learnhub/config"
	mq "Learnhub/pkg/rocketmq"
	"Learnhub/pkg/log"
	"Learnhub/types"
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"sync"

	"github.com/apache/rocketmq-client-go/v2"
	"github.com/apache/rocketmq-client-go/v2/consumer"
	"github.com/apache/rocketmq-client-go/v2/primitive"
	"go.uber.org/zap"
)

const defaultTopic = "learnhub_comment_created"

// RocketMQBus 跨进程事件总线, 消费失败由 broker 重投
type RocketMQBus struct {
	conf *config.RocketMQConfig

	mu       sync.Mutex
	producer rocketmq.Producer
}

var _ Bus = (*RocketMQBus)(nil)

func NewRocketMQBus(conf *config.RocketMQConfig) (*RocketMQBus, error) {
	if len(conf.NameServer) == 0 {
		return nil, fmt.Errorf("rocketmq nameserver is empty")
	}
	return &RocketMQBus{conf: conf}, nil
}

func (b *RocketMQBus) topic() string {
	if b.conf.Topic == "" {
		return defaultTopic
	}
	return b.conf.Topic
}

// 生产者在第一次发布时创建, worker 进程不会启动生产者
func (b *RocketMQBus) getProducer() (rocketmq.Producer, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.producer != nil {
		return b.producer, nil
	}

	p, err := mq.InitProducer(b.conf)
	if err != nil {
		return nil, err
	}
	if err := p.Start(); err != nil {
		return nil, err
	}
	log.L.Info("init producer success", zap.String("topic", b.topic()))

	b.producer = p
	return p, nil
}

func (b *RocketMQBus) Publish(ctx context.Context, event *types.CommentCreatedEvent) error {
	p, err := b.getProducer()
	if err != nil {
		return err
	}

	body, err := json.Marshal(event)
	if err != nil {
		return err
	}

	msg := primitive.NewMessage(b.topic(), body)
	msg.WithKeys([]string{event.EventID})
	msg.WithShardingKey(strconv.FormatUint(event.DiscussionID, 10))

	res, err := p.SendSync(ctx, msg)
	if err != nil {
		return err
	}
	log.L.Debug("send message success", zap.String("msg_id", res.MsgID), zap.String("event_id", event.EventID))
	return nil
}

func (b *RocketMQBus) Run(ctx context.Context, handler Handler) error {
	c, err := mq.InitConsumer(b.conf)
	if err != nil {
		return err
	}

	err = c.Subscribe(b.topic(), consumer.MessageSelector{}, func(ctx context.Context, msgs ...*primitive.MessageExt) (consumer.ConsumeResult, error) {
		for _, msg := range msgs {
			var event types.CommentCreatedEvent
			if err := json.Unmarshal(msg.Body, &event); err != nil {
				// 格式错误的消息重投也无法处理
				log.L.Error("unmarshal comment event error", zap.String("msg_id", msg.MsgId), zap.Error(err))
				continue
			}

			if err := handler(ctx, &event); err != nil {
				log.L.Warn("handle comment event failed, retry later",
					zap.String("event_id", event.EventID),
					zap.Int32("reconsume_times", msg.ReconsumeTimes),
					zap.Error(err),
				)
				return consumer.ConsumeRetryLater, nil
			}
		}
		return consumer.ConsumeSuccess, nil
	})
	if err != nil {
		return fmt.Errorf("subscribe topic error: %w", err)
	}

	if err := c.Start(); err != nil {
		return fmt.Errorf("start consumer error: %w", err)
	}
	log.L.Info("[MQ] comment consumer started", zap.String("topic", b.topic()))

	<-ctx.Done()

	log.L.Info("[MQ] shutting down comment consumer")
	if err := c.Shutdown(); err != nil {
		log.L.Error("shutdown consumer error", zap.Error(err))
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.producer != nil {
		_ = b.producer.Shutdown()
		b.producer = nil
	}
	return nil
}
