package rocketmq

import (
	"Learnhub/config"

	"github.com/apache/rocketmq-client-go/v2"
	"github.com/apache/rocketmq-client-go/v2/consumer"
	"github.com/apache/rocketmq-client-go/v2/producer"
	"github.com/apache/rocketmq-client-go/v2/rlog"
)

func init() {
	rlog.SetLogLevel("error")
}

// InitProducer 创建生产者, Start 由使用方负责
func InitProducer(cfg *config.RocketMQConfig) (rocketmq.Producer, error) {
	retry := cfg.Producer.Retry
	if retry <= 0 {
		retry = 2
	}
	return rocketmq.NewProducer(
		producer.WithNameServer(cfg.NameServer),
		producer.WithGroupName(cfg.Producer.Group),
		producer.WithRetry(retry),
	)
}

// InitConsumer 集群消费, 同组内的多个实例分摊同一条消息
func InitConsumer(cfg *config.RocketMQConfig) (rocketmq.PushConsumer, error) {
	return rocketmq.NewPushConsumer(
		consumer.WithNameServer(cfg.NameServer),
		consumer.WithGroupName(cfg.Consumer.Group),
		consumer.WithConsumerModel(consumer.Clustering),
	)
}
