// Package mailer 基于 SMTP 的邮件投递
// Package mailer delivers HTML mail over SMTP.
package mailer

import (
	"go.uber.org/zap"
	"gopkg.in/gomail.v2"

	"github.com/hellodata/notes-web/pkg/code"
	"github.com/hellodata/notes-web/pkg/errors"
	"github.com/hellodata/notes-web/pkg/logger"
)

// Config SMTP 连接参数
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	// From 发件人地址，如 "Notes <noreply@example.com>"
	From string
}

// Mailer SMTP 投递器，每次发送建立一次连接
type Mailer struct {
	dialer *gomail.Dialer
	from   string
	logger *zap.Logger
}

// NewMailer creates a Mailer from the SMTP config.
func NewMailer(cfg *Config, l *zap.Logger) *Mailer {
	return &Mailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
		logger: l,
	}
}

// Send 投递一封 HTML 邮件
func (m *Mailer) Send(to, subject, htmlBody string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return errors.NewAppError(code.ErrorMailSend, err)
	}
	m.logger.Debug("mail sent", zap.String(logger.FieldEmail, to), zap.String("subject", subject))
	return nil
}
