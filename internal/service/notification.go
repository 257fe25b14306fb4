package service

import (
	"context"

	"github.com/deppfellow/generic-tools/internal/lib/email"
	"github.com/deppfellow/generic-tools/internal/lib/sms"
	"github.com/deppfellow/generic-tools/internal/model"
	"github.com/deppfellow/generic-tools/internal/upstream"
)

type NotificationService struct {
	email *email.Client
	sms   *sms.Client
}

// NewNotificationService creates the service. A nil sms client marks
// Twilio as not configured.
func NewNotificationService(emailClient *email.Client, smsClient *sms.Client) *NotificationService {
	return &NotificationService{email: emailClient, sms: smsClient}
}

func (s *NotificationService) SendEmail(ctx context.Context, req *model.EmailRequest) (*model.MessageResponse, error) {
	if err := s.email.SendNotification(ctx, req.Emails, req.Subject, req.Message); err != nil {
		return nil, upstream.HandleError("failed to send email", err)
	}
	return &model.MessageResponse{Message: "emails sent successfully"}, nil
}

func (s *NotificationService) SendSMS(ctx context.Context, req *model.PhoneMessageRequest) (*model.PhoneMessageResponse, error) {
	sid, err := s.sms.Send(sms.ChannelSMS, req.To, req.Message)
	if err != nil {
		return nil, upstream.HandleError("failed to send SMS", err)
	}
	return &model.PhoneMessageResponse{Message: "SMS sent successfully", SID: sid}, nil
}

func (s *NotificationService) SendWhatsApp(ctx context.Context, req *model.PhoneMessageRequest) (*model.PhoneMessageResponse, error) {
	sid, err := s.sms.Send(sms.ChannelWhatsApp, req.To, req.Message)
	if err != nil {
		return nil, upstream.HandleError("failed to send WhatsApp message", err)
	}
	return &model.PhoneMessageResponse{Message: "WhatsApp message sent successfully", SID: sid}, nil
}
