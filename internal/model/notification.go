package model

import (
	"strings"

	"github.com/deppfellow/generic-tools/internal/validation"
)

// EmailRequest sends one plain-text email to every address in Emails.
type EmailRequest struct {
	Subject string   `json:"subject"`
	Message string   `json:"message"`
	Emails  []string `json:"emails" validate:"required,min=1,dive,email"`
}

func (r *EmailRequest) Validate() error {
	for i := range r.Emails {
		r.Emails[i] = strings.TrimSpace(r.Emails[i])
	}
	return validation.Struct(r)
}

// PhoneMessageRequest is an SMS or WhatsApp message to one number.
type PhoneMessageRequest struct {
	To      string `json:"to" validate:"required,notblank,e164"`
	Message string `json:"message" validate:"required,notblank"`
}

func (r *PhoneMessageRequest) Validate() error {
	trim(&r.To)
	return validation.Struct(r)
}

// PhoneMessageResponse acknowledges a queued Twilio message.
type PhoneMessageResponse struct {
	Message string `json:"message"`
	SID     string `json:"sid"`
}
