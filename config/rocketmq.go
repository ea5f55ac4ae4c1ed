package config

type RocketMQConfig struct {
	NameServer []string `yaml:"nameserver"`

	// 评论事件 topic
	Topic string `yaml:"topic"`

	Producer Producer `yaml:"producer"`

	Consumer Consumer `yaml:"consumer"`
}

type Producer struct {
	Group string `yaml:"group"`
	Retry int    `yaml:"retry"`
}

type Consumer struct {
	Group string `yaml:"group"`
}
