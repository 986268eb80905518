// Package email sends transactional mail over SMTP.
package email

import (
	"context"
	"fmt"

	"papermark-backend/internal/config"
	"papermark-backend/internal/logger"

	"gopkg.in/gomail.v2"
)

//go:generate mockgen -source=email.go -destination=../mocks/email_mocks.go -package=mocks

// Message is a rendered email
type Message struct {
	To      string
	Subject string
	HTML    string
}

// Sender delivers rendered emails
type Sender interface {
	Send(ctx context.Context, msg *Message) error
}

// NewSender returns an SMTP sender, or a no-op sender when SMTP_HOST is empty
func NewSender(cfg *config.Config) Sender {
	if cfg.SMTPHost == "" {
		return &NoopSender{}
	}
	return &SMTPSender{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
		from:   cfg.EmailFrom,
	}
}

// SMTPSender sends mail with gomail
type SMTPSender struct {
	dialer *gomail.Dialer
	from   string
}

// Send dials the SMTP server and sends one message
func (s *SMTPSender) Send(ctx context.Context, msg *Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/html", msg.HTML)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// NoopSender logs messages instead of sending them
type NoopSender struct{}

// Send logs the message at debug level
func (s *NoopSender) Send(ctx context.Context, msg *Message) error {
	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"to":      msg.To,
		"subject": msg.Subject,
	}).Debug("Email sending disabled, message dropped")
	return nil
}
