// Package email provides an email sending client.
//
// Messages are plain text and go out through either an SMTP relay
// (go-mail) or the Resend API, selected by configuration.
package email

import (
	"context"
	"net/http"

	"github.com/deppfellow/generic-tools/internal/config"
	"github.com/deppfellow/generic-tools/internal/upstream"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

const serviceName = "email"

// Message is one email addressed to one or more recipients.
type Message struct {
	To      []string
	Subject string
	Body    string
}

// Sender delivers a Message through a concrete provider.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// Client wraps the configured Sender and a logger.
type Client struct {
	// sender is nil when no provider is configured.
	sender Sender
	logger *zerolog.Logger
}

// NewClient creates an email Client for the configured provider.
//
// An incomplete configuration yields a Client whose SendEmail reports the
// integration as not configured.
func NewClient(cfg config.EmailConfig, httpClient *http.Client, logger *zerolog.Logger) *Client {
	c := &Client{logger: logger}
	if !cfg.Configured() {
		return c
	}

	switch cfg.Provider {
	case config.EmailProviderResend:
		c.sender = NewResendSender(cfg.ResendAPIKey, cfg.From, httpClient)
	default:
		c.sender = NewSMTPSender(cfg.SMTP, cfg.From)
	}
	return c
}

// NewClientWithSender creates a Client around an existing Sender.
func NewClientWithSender(sender Sender, logger *zerolog.Logger) *Client {
	return &Client{sender: sender, logger: logger}
}

// Configured reports whether a provider is available.
func (c *Client) Configured() bool {
	return c.sender != nil
}

// SendEmail sends msg to all of its recipients at once.
func (c *Client) SendEmail(ctx context.Context, msg Message) error {
	if c.sender == nil {
		return upstream.NotConfigured(serviceName)
	}
	if len(msg.To) == 0 {
		return errors.New("email has no recipients")
	}

	if err := c.sender.Send(ctx, msg); err != nil {
		return upstream.Wrap(serviceName, err)
	}

	c.logger.Debug().
		Int("recipients", len(msg.To)).
		Str("subject", msg.Subject).
		Msg("email sent")
	return nil
}
