package mail

import (
	"context"

	"github.com/merza/backend/internal/application/contact"
	"github.com/merza/backend/internal/infrastructure/config"
	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

// SMTPSender delivers contact notifications over SMTP.
type SMTPSender struct {
	cfg config.MailConfig
	log *zap.Logger
}

// NewSMTPSender creates a new SMTPSender.
func NewSMTPSender(cfg config.MailConfig, log *zap.Logger) *SMTPSender {
	return &SMTPSender{cfg: cfg, log: log}
}

// Send composes and sends the message to the configured recipient. Delivery
// is skipped (and logged) when mail is disabled, so the contact endpoint
// still works in development.
func (s *SMTPSender) Send(ctx context.Context, msg contact.Message) error {
	if !s.cfg.Enabled {
		s.log.Info("mail disabled, skipping delivery",
			zap.String("subject", msg.Subject),
			zap.String("reply_to", msg.ReplyTo),
		)
		return nil
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.cfg.From)
	m.SetHeader("To", s.cfg.Recipient)
	m.SetHeader("Subject", msg.Subject)
	if msg.ReplyTo != "" {
		m.SetHeader("Reply-To", msg.ReplyTo)
	}
	m.SetBody("text/plain", msg.Body)

	d := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.Username, s.cfg.Password)

	done := make(chan error, 1)
	go func() {
		done <- d.DialAndSend(m)
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}
