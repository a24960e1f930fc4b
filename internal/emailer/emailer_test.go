package emailer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wneessen/go-mail"

	"github.com/mrlokans/wordmail/internal/config"
)

func TestNewSender(t *testing.T) {
	t.Run("sendgrid wins when api key set", func(t *testing.T) {
		cfg := &config.Config{}
		cfg.Email.SendGridAPIKey = "SG.key"
		cfg.Email.GmailUser = "me@gmail.com"
		cfg.Email.GmailAppPassword = "secret"

		sender, err := NewSender(cfg)
		require.NoError(t, err)
		assert.Equal(t, "sendgrid", sender.Name())
	})

	t.Run("gmail", func(t *testing.T) {
		cfg := &config.Config{}
		cfg.Email.GmailUser = "me@gmail.com"
		cfg.Email.GmailAppPassword = "secret"
		cfg.Email.SMTPHost = "smtp.gmail.com"

		sender, err := NewSender(cfg)
		require.NoError(t, err)
		assert.Equal(t, "smtp", sender.Name())
	})

	t.Run("none", func(t *testing.T) {
		_, err := NewSender(&config.Config{})
		assert.ErrorIs(t, err, ErrNotConfigured)
	})
}

func TestSMTPSender_BuildMessage(t *testing.T) {
	sender := NewSMTPSender(SMTPConfig{
		Host:      "localhost",
		Username:  "bot@example.com",
		FromName:  "Vocabulary Bot",
		TLSPolicy: mail.NoTLS,
	})

	m, err := sender.buildMessage(Message{To: "kid@example.com", Subject: "Hi", Text: "plain", HTML: "<p>x</p>"})
	require.NoError(t, err)

	to := m.GetTo()
	require.Len(t, to, 1)
	assert.Equal(t, "kid@example.com", to[0].Address)
	from := m.GetFromString()
	require.Len(t, from, 1)
	assert.Contains(t, from[0], "Vocabulary Bot")
	assert.Contains(t, from[0], "<bot@example.com>")

	_, err = sender.buildMessage(Message{To: "not an address"})
	assert.Error(t, err)
}
