// Package sms sends SMS and WhatsApp messages through Twilio.
package sms

import (
	"strings"

	"github.com/deppfellow/generic-tools/internal/config"
	"github.com/deppfellow/generic-tools/internal/upstream"
	"github.com/pkg/errors"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

const (
	serviceName    = "twilio"
	whatsAppPrefix = "whatsapp:"
)

// Channel selects how Twilio delivers a message.
type Channel string

const (
	ChannelSMS      Channel = "sms"
	ChannelWhatsApp Channel = "whatsapp"
)

// MessageCreator is the part of the Twilio REST API used here.
type MessageCreator interface {
	CreateMessage(params *twilioApi.CreateMessageParams) (*twilioApi.ApiV2010Message, error)
}

// Client sends messages from one Twilio number.
type Client struct {
	api  MessageCreator
	from string
}

// NewClient creates a Client, or returns nil when Twilio is not configured.
func NewClient(cfg config.TwilioConfig) *Client {
	if !cfg.Configured() {
		return nil
	}

	rest := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: cfg.AccountSID,
		Password: cfg.AuthToken,
	})
	return NewClientWithAPI(rest.Api, cfg.FromNumber)
}

// NewClientWithAPI creates a Client around an existing MessageCreator.
func NewClientWithAPI(api MessageCreator, from string) *Client {
	return &Client{api: api, from: from}
}

// Send delivers body to the given number and returns the message SID.
func (c *Client) Send(channel Channel, to, body string) (string, error) {
	if c == nil {
		return "", upstream.NotConfigured(serviceName)
	}

	from := c.from
	if channel == ChannelWhatsApp {
		to = withWhatsAppPrefix(to)
		from = withWhatsAppPrefix(from)
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(from)
	params.SetBody(body)

	resp, err := c.api.CreateMessage(params)
	if err != nil {
		return "", upstream.Wrap(serviceName, err)
	}
	if resp == nil || resp.Sid == nil {
		return "", upstream.Wrap(serviceName, errors.New("response carried no message sid"))
	}

	return *resp.Sid, nil
}

func withWhatsAppPrefix(number string) string {
	if strings.HasPrefix(number, whatsAppPrefix) {
		return number
	}
	return whatsAppPrefix + number
}
