package email

import (
	"context"

	"github.com/deppfellow/generic-tools/internal/config"
	"github.com/pkg/errors"
	"github.com/wneessen/go-mail"
)

// SMTPSender delivers messages through an SMTP relay.
//
// TLS is mandatory. PLAIN authentication is used when a username is set.
type SMTPSender struct {
	cfg  config.SMTPConfig
	from string
}

// NewSMTPSender creates an SMTPSender.
func NewSMTPSender(cfg config.SMTPConfig, from string) *SMTPSender {
	return &SMTPSender{cfg: cfg, from: from}
}

func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	m, err := buildMessage(s.from, msg)
	if err != nil {
		return err
	}

	opts := []mail.Option{
		mail.WithPort(s.cfg.Port),
		mail.WithTLSPolicy(mail.TLSMandatory),
	}
	if s.cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(s.cfg.Username),
			mail.WithPassword(s.cfg.Password),
		)
	}

	client, err := mail.NewClient(s.cfg.Host, opts...)
	if err != nil {
		return errors.Wrap(err, "failed to create smtp client")
	}

	if err := client.DialAndSendWithContext(ctx, m); err != nil {
		return errors.Wrap(err, "failed to send email")
	}
	return nil
}

func buildMessage(from string, msg Message) (*mail.Msg, error) {
	m := mail.NewMsg()
	if err := m.From(from); err != nil {
		return nil, errors.Wrapf(err, "invalid sender %q", from)
	}
	if err := m.To(msg.To...); err != nil {
		return nil, errors.Wrap(err, "invalid recipient")
	}
	m.Subject(msg.Subject)
	m.SetBodyString(mail.TypeTextPlain, msg.Body)
	return m, nil
}
