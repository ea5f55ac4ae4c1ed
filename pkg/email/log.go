package email

import (
	"Learnhub/config"
	"Learnhub/pkg/log"
	"context"

	"go.uber.org/zap"
)

// logSender 开发环境使用, 只打印不投递
type logSender struct {
	from string
}

func NewLogSender(conf *config.Mail) Sender {
	return &logSender{from: conf.FromAddress}
}

func (s *logSender) Send(_ context.Context, msg *Message) error {
	if msg.To.Address == "" {
		return ErrNoRecipient
	}
	log.L.Info("email",
		zap.String("from", s.from),
		zap.String("to", msg.To.Address),
		zap.String("subject", msg.Subject),
		zap.String("text", msg.Text),
	)
	return nil
}
