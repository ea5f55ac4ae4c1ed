package config

import "time"

// Notify 评论通知扇出
type Notify struct {
	Workers        int    `json:"workers" yaml:"workers"`                 // 推送/邮件并发数
	PersistWorkers int    `json:"persist_workers" yaml:"persist_workers"` // 站内信写库并发数
	HashSalt       string `json:"hash_salt" yaml:"hash_salt"`
	TopicPrefix    string `json:"topic_prefix" yaml:"topic_prefix"`
	ExcerptLen     int    `json:"excerpt_len" yaml:"excerpt_len"`
	PushTimeout    int    `json:"push_timeout" yaml:"push_timeout"`   // 毫秒
	EmailTimeout   int    `json:"email_timeout" yaml:"email_timeout"` // 毫秒
}

func (n *Notify) GetWorkers() int {
	if n.Workers <= 0 {
		return 16
	}
	return n.Workers
}

func (n *Notify) GetPersistWorkers() int {
	if n.PersistWorkers <= 0 {
		return 8
	}
	return n.PersistWorkers
}

func (n *Notify) GetTopicPrefix() string {
	if n.TopicPrefix == "" {
		return "notify"
	}
	return n.TopicPrefix
}

func (n *Notify) GetExcerptLen() int {
	if n.ExcerptLen <= 0 {
		return 120
	}
	return n.ExcerptLen
}

func (n *Notify) GetPushTimeout() time.Duration {
	if n.PushTimeout <= 0 {
		return 3 * time.Second
	}
	return time.Duration(n.PushTimeout) * time.Millisecond
}

func (n *Notify) GetEmailTimeout() time.Duration {
	if n.EmailTimeout <= 0 {
		return 10 * time.Second
	}
	return time.Duration(n.EmailTimeout) * time.Millisecond
}
