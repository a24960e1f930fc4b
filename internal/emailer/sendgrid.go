package emailer

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const DefaultSendGridBaseURL = "https://api.sendgrid.com"

type SendGridConfig struct {
	APIKey    string
	FromEmail string
	FromName  string
	BaseURL   string
	Timeout   time.Duration
}

// SendGridSender sends mail through the SendGrid v3 REST API.
type SendGridSender struct {
	http *resty.Client
	cfg  SendGridConfig
}

func NewSendGridSender(cfg SendGridConfig) *SendGridSender {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultSendGridBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.FromEmail == "" {
		cfg.FromEmail = "noreply@vocabularybot.com"
	}

	client := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetAuthToken(cfg.APIKey).
		SetHeader("Content-Type", "application/json")

	return &SendGridSender{http: client, cfg: cfg}
}

func (s *SendGridSender) Name() string {
	return "sendgrid"
}

type sendGridAddress struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type sendGridContent struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

type sendGridPersonalization struct {
	To []sendGridAddress `json:"to"`
}

type sendGridRequest struct {
	Personalizations []sendGridPersonalization `json:"personalizations"`
	From             sendGridAddress           `json:"from"`
	Subject          string                    `json:"subject"`
	Content          []sendGridContent         `json:"content"`
}

func (s *SendGridSender) Send(ctx context.Context, msg Message) error {
	fromName := msg.FromName
	if fromName == "" {
		fromName = s.cfg.FromName
	}

	body := sendGridRequest{
		Personalizations: []sendGridPersonalization{{To: []sendGridAddress{{Email: msg.To}}}},
		From:             sendGridAddress{Email: s.cfg.FromEmail, Name: fromName},
		Subject:          msg.Subject,
		Content:          []sendGridContent{{Type: "text/plain", Value: msg.Text}},
	}
	if msg.HTML != "" {
		body.Content = append(body.Content, sendGridContent{Type: "text/html", Value: msg.HTML})
	}

	res, err := s.http.R().
		SetContext(ctx).
		SetBody(body).
		Post("/v3/mail/send")
	if err != nil {
		return fmt.Errorf("sendgrid request failed: %w", err)
	}
	if res.StatusCode() != http.StatusAccepted && res.StatusCode() != http.StatusOK {
		return fmt.Errorf("sendgrid returned status %d: %s", res.StatusCode(), string(res.Body()))
	}
	return nil
}

// TestConnection verifies the API key by reading its scopes.
func (s *SendGridSender) TestConnection(ctx context.Context) error {
	res, err := s.http.R().SetContext(ctx).Get("/v3/scopes")
	if err != nil {
		return fmt.Errorf("sendgrid request failed: %w", err)
	}
	if res.StatusCode() != http.StatusOK {
		return fmt.Errorf("sendgrid returned status %d", res.StatusCode())
	}
	return nil
}
