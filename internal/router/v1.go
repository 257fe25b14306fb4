package router

import (
	"net/http"

	"github.com/deppfellow/generic-tools/internal/handler"
	"github.com/deppfellow/generic-tools/internal/lib/sheet"
	"github.com/deppfellow/generic-tools/internal/model"
	"github.com/labstack/echo/v4"
)

func registerLocationRoutes(g *echo.Group, h *handler.Handlers) {
	location := h.Location
	r := g.Group("/location")

	r.POST("/geocode", handler.HandleRelay(location.Handler, location.Geocode, &model.GeocodeRequest{}))
	r.POST("/reverse", handler.HandleRelay(location.Handler, location.Reverse, &model.ReverseGeocodeRequest{}))
	r.POST("/city-bounds", handler.HandleRelay(location.Handler, location.CityBounds, &model.CityBoundsRequest{}))
	r.POST("/poi", handler.HandleRelay(location.Handler, location.PointsOfInterest, &model.POIRequest{}))
	r.GET("/public-ip", handler.HandleRelay(location.Handler, location.PublicIP, &model.PublicIPRequest{}))
}

func registerTranslationRoutes(g *echo.Group, h *handler.Handlers) {
	translation := h.Translation
	r := g.Group("/translation")

	r.POST("/mymemory", handler.HandleRelay(translation.Handler, translation.MyMemory, &model.MyMemoryRequest{}))
	r.POST("/google", handler.HandleRelay(translation.Handler, translation.Google, &model.GoogleTranslateRequest{}))
}

func registerNotificationRoutes(g *echo.Group, h *handler.Handlers) {
	notification := h.Notification
	r := g.Group("/notification")

	r.POST("/email", handler.Handle(notification.Handler, notification.SendEmail, http.StatusOK, &model.EmailRequest{}))
	r.POST("/sms", handler.Handle(notification.Handler, notification.SendSMS, http.StatusOK, &model.PhoneMessageRequest{}))
	r.POST("/whatsapp", handler.Handle(notification.Handler, notification.SendWhatsApp, http.StatusOK, &model.PhoneMessageRequest{}))
}

func registerQRCodeRoutes(g *echo.Group, h *handler.Handlers) {
	qr := h.QRCode

	g.GET("/qrcode", handler.HandleFile(qr.Handler, qr.Generate, http.StatusOK, &model.QRCodeRequest{}, "", handler.ContentTypePNG))
}

func registerConverterRoutes(g *echo.Group, h *handler.Handlers) {
	converter := h.Converter
	r := g.Group("/converter")

	r.POST("/excel-to-sql", handler.HandleText(converter.Handler, converter.ExcelToSQL, http.StatusOK, &model.ExcelToSQLRequest{}))
	r.POST("/json-to-excel", handler.HandleFile(converter.Handler, converter.JSONToExcel, http.StatusOK,
		&model.JSONToExcelRequest{}, handler.ExportFileName, sheet.ContentTypeXLSX))
}

func registerMediaRoutes(g *echo.Group, h *handler.Handlers) {
	m := h.Media
	r := g.Group("/media")

	r.GET("/videos/search", handler.Handle(m.Handler, m.SearchVideo, http.StatusOK, &model.VideoSearchRequest{}))
	r.POST("/videos/download/by-title", handler.Handle(m.Handler, m.DownloadVideoByTitle, http.StatusOK, &model.TitleRequest{}))
	r.POST("/videos/download/by-url", handler.Handle(m.Handler, m.DownloadVideoByURL, http.StatusOK, &model.URLRequest{}))
	r.POST("/music/download/by-url", handler.Handle(m.Handler, m.DownloadMusicByURL, http.StatusOK, &model.URLRequest{}))
	r.POST("/music/download/batch", handler.Handle(m.Handler, m.DownloadMusicBatch, http.StatusOK, &model.BatchMusicRequest{}))
}
