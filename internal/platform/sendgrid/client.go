package sendgrid

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/speakcoach/speakcoach-api/internal/config"
	"github.com/speakcoach/speakcoach-api/internal/mail"
)

// defaultBaseURL is the production SendGrid API endpoint. Tests override
// it through Config.BaseURL.
const defaultBaseURL = "https://api.sendgrid.com"

// defaultTimeout bounds a single mail/send request.
const defaultTimeout = 30 * time.Second

// Config holds the SendGrid transport settings.
type Config struct {
	APIKey      string
	FromAddress string
	FromName    string

	// BaseURL overrides the SendGrid endpoint, primarily for tests.
	BaseURL string

	// Timeout bounds each HTTP request. Zero selects the default.
	Timeout time.Duration
}

// ConfigFromMail builds a transport Config from the application mail
// configuration.
func ConfigFromMail(cfg config.MailConfig) Config {
	return Config{
		APIKey:      cfg.SendGridAPIKey,
		FromAddress: cfg.FromAddress,
		FromName:    cfg.FromName,
	}
}

// Client sends plain-text email through the SendGrid v3 API.
type Client struct {
	cfg        Config
	httpClient *http.Client
	logger     *slog.Logger
}

// Ensure Client implements mail.Mailer
var _ mail.Mailer = (*Client)(nil)

// New creates a SendGrid client. If logger is nil, a default logger will
// be used. Returns an error if the API key or sender address is missing.
func New(cfg Config, logger *slog.Logger) (*Client, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, fmt.Errorf("sendgrid: API key required")
	}
	if strings.TrimSpace(cfg.FromAddress) == "" {
		return nil, fmt.Errorf("sendgrid: sender address required")
	}

	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	cfg.BaseURL = strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")

	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     logger.With(slog.String("component", "sendgrid_client")),
	}, nil
}

// SendGrid mail/send wire types.

type emailAddress struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type personalization struct {
	To []emailAddress `json:"to"`
}

type mailContent struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

type mailSendRequest struct {
	Personalizations []personalization `json:"personalizations"`
	From             emailAddress      `json:"from"`
	Subject          string            `json:"subject"`
	Content          []mailContent     `json:"content"`
}

// Send implements mail.Mailer.Send
// It posts a single plain-text message to /v3/mail/send. Any non-2xx
// response is reported as mail.ErrSendFailed with the status and response
// body included.
func (c *Client) Send(ctx context.Context, to, subject, body string) error {
	to = strings.TrimSpace(to)
	if to == "" {
		return mail.ErrInvalidRecipient
	}

	wire := mailSendRequest{
		Personalizations: []personalization{
			{To: []emailAddress{{Email: to}}},
		},
		From: emailAddress{
			Email: c.cfg.FromAddress,
			Name:  c.cfg.FromName,
		},
		Subject: subject,
		Content: []mailContent{
			{Type: "text/plain", Value: body},
		},
	}

	payload, err := json.Marshal(wire)
	if err != nil {
		return fmt.Errorf("%w: encoding request: %v", mail.ErrSendFailed, err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.cfg.BaseURL+"/v3/mail/send",
		bytes.NewReader(payload),
	)
	if err != nil {
		return fmt.Errorf("%w: building request: %v", mail.ErrSendFailed, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("sendgrid request failed",
			slog.String("to", to),
			slog.String("error", err.Error()))
		return fmt.Errorf("%w: %v", mail.ErrSendFailed, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// SendGrid returns a JSON error body worth surfacing; cap it so a
		// misbehaving endpoint cannot flood the logs.
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		c.logger.Error("sendgrid rejected message",
			slog.String("to", to),
			slog.Int("status", resp.StatusCode),
			slog.String("body", string(detail)))
		return fmt.Errorf("%w: status %d: %s", mail.ErrSendFailed, resp.StatusCode, string(detail))
	}

	c.logger.Debug("email accepted by sendgrid",
		slog.String("to", to),
		slog.Int("status", resp.StatusCode))
	return nil
}
