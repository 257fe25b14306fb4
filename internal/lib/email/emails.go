package email

import (
	"context"
	"strings"
)

// SendNotification sends the same plain-text notification to every
// address in to.
func (c *Client) SendNotification(ctx context.Context, to []string, subject, body string) error {
	recipients := make([]string, 0, len(to))
	for _, addr := range to {
		if addr = strings.TrimSpace(addr); addr != "" {
			recipients = append(recipients, addr)
		}
	}

	return c.SendEmail(ctx, Message{
		To:      recipients,
		Subject: subject,
		Body:    body,
	})
}
