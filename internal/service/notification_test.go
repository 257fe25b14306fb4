package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/deppfellow/generic-tools/internal/config"
	"github.com/deppfellow/generic-tools/internal/lib/email"
	"github.com/deppfellow/generic-tools/internal/lib/sms"
	"github.com/deppfellow/generic-tools/internal/model"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

type recordingSender struct {
	messages []email.Message
}

func (r *recordingSender) Send(_ context.Context, msg email.Message) error {
	r.messages = append(r.messages, msg)
	return nil
}

type fakeTwilio struct {
	to, from string
}

func (f *fakeTwilio) CreateMessage(params *twilioApi.CreateMessageParams) (*twilioApi.ApiV2010Message, error) {
	f.to, f.from = *params.To, *params.From
	sid := "SM1"
	return &twilioApi.ApiV2010Message{Sid: &sid}, nil
}

func TestSendEmail(t *testing.T) {
	l := zerolog.Nop()
	sender := &recordingSender{}
	svc := NewNotificationService(email.NewClientWithSender(sender, &l), nil)

	got, err := svc.SendEmail(context.Background(), &model.EmailRequest{
		Subject: "Hi",
		Message: "Body",
		Emails:  []string{"a@example.com", "b@example.com"},
	})
	require.NoError(t, err)
	assert.Equal(t, "emails sent successfully", got.Message)
	require.Len(t, sender.messages, 1)
	assert.Equal(t, []string{"a@example.com", "b@example.com"}, sender.messages[0].To)
}

func TestSendEmail_NotConfigured(t *testing.T) {
	l := zerolog.Nop()
	svc := NewNotificationService(email.NewClient(config.EmailConfig{}, nil, &l), nil)

	_, err := svc.SendEmail(context.Background(), &model.EmailRequest{Emails: []string{"a@example.com"}})
	assert.Equal(t, http.StatusServiceUnavailable, httpStatus(t, err))
}

func TestSendWhatsApp(t *testing.T) {
	api := &fakeTwilio{}
	svc := NewNotificationService(nil, sms.NewClientWithAPI(api, "+15550000000"))

	got, err := svc.SendWhatsApp(context.Background(), &model.PhoneMessageRequest{To: "+5581999999999", Message: "hi"})
	require.NoError(t, err)
	assert.Equal(t, "SM1", got.SID)
	assert.Equal(t, "whatsapp:+5581999999999", api.to)
	assert.Equal(t, "whatsapp:+15550000000", api.from)
}

func TestSendSMS_NotConfigured(t *testing.T) {
	svc := NewNotificationService(nil, nil)

	_, err := svc.SendSMS(context.Background(), &model.PhoneMessageRequest{To: "+1", Message: "x"})
	assert.Equal(t, http.StatusServiceUnavailable, httpStatus(t, err))
}
