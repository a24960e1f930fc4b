// Package emailer delivers the daily vocabulary email.
package emailer

import (
	"context"
	"errors"
	"fmt"

	"github.com/mrlokans/wordmail/internal/config"
)

// ErrNotConfigured is returned when neither Gmail nor SendGrid credentials are present.
var ErrNotConfigured = errors.New("no email service configured")

// Message is a multipart email with plain text and HTML bodies.
type Message struct {
	To       string
	FromName string
	Subject  string
	Text     string
	HTML     string
}

// Sender delivers messages through one email backend.
type Sender interface {
	Send(ctx context.Context, msg Message) error
	TestConnection(ctx context.Context) error
	Name() string
}

// NewSender picks the backend the configuration asks for.
func NewSender(cfg *config.Config) (Sender, error) {
	switch cfg.EmailService() {
	case config.EmailServiceSendGrid:
		return NewSendGridSender(SendGridConfig{
			APIKey:    cfg.Email.SendGridAPIKey,
			FromEmail: cfg.Email.SendGridFrom,
			FromName:  cfg.Bot.Name,
		}), nil
	case config.EmailServiceGmail:
		return NewSMTPSender(SMTPConfig{
			Host:     cfg.Email.SMTPHost,
			Port:     cfg.Email.SMTPPort,
			Username: cfg.Email.GmailUser,
			Password: cfg.Email.GmailAppPassword,
			FromName: cfg.Bot.Name,
		}), nil
	default:
		return nil, fmt.Errorf("set GMAIL_USER/GMAIL_APP_PASSWORD or SENDGRID_API_KEY: %w", ErrNotConfigured)
	}
}
