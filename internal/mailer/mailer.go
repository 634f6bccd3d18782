// Package mailer sends transactional email through the provider's REST
// API. Delivery guarantees, bounces, and suppression lists belong to the
// provider; this is a thin boundary.
package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/daniel/recruiting-assistant/internal/config"
)

// DefaultTimeout is the HTTP request timeout for provider calls.
const DefaultTimeout = 15 * time.Second

// Message is one outbound transactional email.
type Message struct {
	From    string `json:"from" validate:"required,email"`
	To      string `json:"to" validate:"required,email"`
	Subject string `json:"subject" validate:"required"`
	Body    string `json:"body" validate:"required"`
}

// Validate checks the message before it is handed to the provider.
func (m *Message) Validate() error {
	validate := validator.New()
	return validate.Struct(m)
}

// Sender is the narrow delivery interface callers depend on.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// Client talks to the transactional email provider.
type Client struct {
	endpoint   string
	apiKey     string
	from       string
	httpClient *http.Client
}

// NewClient creates a mail client from configuration.
func NewClient(cfg config.Email) (*Client, error) {
	if cfg.Endpoint == "" {
		return nil, &config.MissingEnvError{Variable: "EMAIL_ENDPOINT"}
	}
	if cfg.APIKey == "" {
		return nil, &config.MissingEnvError{Variable: "EMAIL_API_KEY"}
	}
	if cfg.From == "" {
		return nil, &config.MissingEnvError{Variable: "EMAIL_FROM"}
	}

	return &Client{
		endpoint:   cfg.Endpoint,
		apiKey:     cfg.APIKey,
		from:       cfg.From,
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}, nil
}

// Send delivers one message. A message without an explicit From uses the
// configured sender address.
func (c *Client) Send(ctx context.Context, msg Message) error {
	if msg.From == "" {
		msg.From = c.from
	}
	if err := msg.Validate(); err != nil {
		return fmt.Errorf("invalid message: %w", err)
	}

	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to encode message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("email provider returned HTTP %d: %s", resp.StatusCode, string(snippet))
	}
	return nil
}

var _ Sender = (*Client)(nil)
