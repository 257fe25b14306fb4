package handler

import (
	"github.com/deppfellow/generic-tools/internal/server"
	"github.com/deppfellow/generic-tools/internal/service"
)

// Handlers is a container that groups all HTTP handlers, so router setup
// receives one object instead of many.
type Handlers struct {
	Health       *HealthHandler       // Health serves the status endpoint.
	OpenAPI      *OpenAPIHandler      // OpenAPI serves the API documentation UI.
	Location     *LocationHandler     // Location relays geocoding and public IP lookups.
	Translation  *TranslationHandler  // Translation relays MyMemory and Google Translate.
	Notification *NotificationHandler // Notification sends email, SMS and WhatsApp messages.
	QRCode       *QRCodeHandler       // QRCode renders PNG QR codes.
	Converter    *ConverterHandler    // Converter turns spreadsheets into SQL and JSON into spreadsheets.
	Media        *MediaHandler        // Media searches and downloads YouTube videos.
}

// NewHandlers constructs the handler container.
func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:       NewHealthHandler(s),
		OpenAPI:      NewOpenAPIHandler(s),
		Location:     NewLocationHandler(s, services.Location),
		Translation:  NewTranslationHandler(s, services.Translation),
		Notification: NewNotificationHandler(s, services.Notification),
		QRCode:       NewQRCodeHandler(s, services.QRCode),
		Converter:    NewConverterHandler(s, services.Converter),
		Media:        NewMediaHandler(s, services.Media),
	}
}
