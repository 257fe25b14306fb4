package email

import (
	"context"
	"net/http"

	"github.com/pkg/errors"
	"github.com/resend/resend-go/v2"
)

// ResendSender delivers messages through the Resend API.
type ResendSender struct {
	client *resend.Client
	from   string
}

// NewResendSender creates a ResendSender. A nil httpClient uses the
// library default.
func NewResendSender(apiKey, from string, httpClient *http.Client) *ResendSender {
	client := resend.NewClient(apiKey)
	if httpClient != nil {
		client = resend.NewCustomClient(httpClient, apiKey)
	}
	return &ResendSender{client: client, from: from}
}

func (s *ResendSender) Send(ctx context.Context, msg Message) error {
	params := &resend.SendEmailRequest{
		From:    s.from,
		To:      msg.To,
		Subject: msg.Subject,
		Text:    msg.Body,
	}

	if _, err := s.client.Emails.SendWithContext(ctx, params); err != nil {
		return errors.Wrap(err, "failed to send email")
	}
	return nil
}
