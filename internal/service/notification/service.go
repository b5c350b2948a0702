// Package notification delivers reminder messages. Real SMS delivery does
// not exist in this system; the SMS sender is a logging stand-in and the
// email sender is a thin SMTP bridge for setups that want a visible
// notification.
package notification

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"gopkg.in/gomail.v2"
)

// Sender delivers a single notification to a recipient.
type Sender interface {
	Send(ctx context.Context, recipient, message string) error
}

// SMSSender mocks SMS delivery by logging the message.
type SMSSender struct {
	logger *zerolog.Logger
}

func NewSMSSender(logger *zerolog.Logger) *SMSSender {
	return &SMSSender{logger: logger}
}

func (s *SMSSender) Send(_ context.Context, recipient, message string) error {
	s.logger.Info().
		Str("phone_number", recipient).
		Str("message", message).
		Msg("sending SMS")
	return nil
}

// EmailSender delivers notifications over SMTP.
type EmailSender struct {
	dialer *gomail.Dialer
	from   string
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

func NewEmailSender(cfg SMTPConfig) *EmailSender {
	return &EmailSender{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
	}
}

func (s *EmailSender) Send(_ context.Context, recipient, message string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", recipient)
	m.SetHeader("Subject", "Medicine Reminder")
	m.SetBody("text/plain", message)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send notification email: %w", err)
	}
	return nil
}
