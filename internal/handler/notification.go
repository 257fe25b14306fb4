package handler

import (
	"github.com/deppfellow/generic-tools/internal/model"
	"github.com/deppfellow/generic-tools/internal/server"
	"github.com/deppfellow/generic-tools/internal/service"
	"github.com/labstack/echo/v4"
)

type NotificationHandler struct {
	Handler
	notification *service.NotificationService
}

func NewNotificationHandler(s *server.Server, notification *service.NotificationService) *NotificationHandler {
	return &NotificationHandler{
		Handler:      NewHandler(s),
		notification: notification,
	}
}

func (h *NotificationHandler) SendEmail(c echo.Context, req *model.EmailRequest) (*model.MessageResponse, error) {
	return h.notification.SendEmail(c.Request().Context(), req)
}

func (h *NotificationHandler) SendSMS(c echo.Context, req *model.PhoneMessageRequest) (*model.PhoneMessageResponse, error) {
	return h.notification.SendSMS(c.Request().Context(), req)
}

func (h *NotificationHandler) SendWhatsApp(c echo.Context, req *model.PhoneMessageRequest) (*model.PhoneMessageResponse, error) {
	return h.notification.SendWhatsApp(c.Request().Context(), req)
}
