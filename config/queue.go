package config

const (
	QueueMemory   = "memory"
	QueueRocketMQ = "rocketmq"
)

// Queue 评论事件总线
type Queue struct {
	Driver    string `json:"driver" yaml:"driver"`       // memory | rocketmq
	Buffer    int    `json:"buffer" yaml:"buffer"`       // memory 通道容量
	Consumers int    `json:"consumers" yaml:"consumers"` // memory 消费协程数
}

func (q *Queue) GetBuffer() int {
	if q.Buffer <= 0 {
		return 1024
	}
	return q.Buffer
}

func (q *Queue) GetConsumers() int {
	if q.Consumers <= 0 {
		return 4
	}
	return q.Consumers
}
