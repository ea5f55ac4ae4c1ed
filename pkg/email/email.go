package email

import (
	"Learnhub/config"
	"context"
	"errors"
)

var ErrNoRecipient = errors.New("email: no recipient")

type Address struct {
	Name    string
	Address string
}

type Message struct {
	To      Address
	Subject string
	Text    string
	HTML    string
}

// Sender 邮件投递, 调用方只记录失败不重试
type Sender interface {
	Send(ctx context.Context, msg *Message) error
}

func NewSender(conf *config.Config) Sender {
	switch conf.Mail.Driver {
	case config.MailSendgrid:
		return NewSendgridSender(conf.Mail)
	default:
		return NewLogSender(conf.Mail)
	}
}
