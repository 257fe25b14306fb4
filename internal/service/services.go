package service

import (
	"context"

	"github.com/deppfellow/generic-tools/internal/lib/email"
	"github.com/deppfellow/generic-tools/internal/lib/geo"
	"github.com/deppfellow/generic-tools/internal/lib/media"
	"github.com/deppfellow/generic-tools/internal/lib/sms"
	"github.com/deppfellow/generic-tools/internal/lib/translate"
	"github.com/deppfellow/generic-tools/internal/server"
	"github.com/kkdai/youtube/v2"
	"github.com/pkg/errors"
)

type Services struct {
	Location     *LocationService
	Translation  *TranslationService
	Notification *NotificationService
	QRCode       *QRCodeService
	Converter    *ConverterService
	Media        *MediaService
}

// NewServices builds every service from the shared server resources.
//
// Integrations without credentials are left unconfigured; their
// endpoints answer 503 instead of failing startup.
func NewServices(s *server.Server) (*Services, error) {
	integration := s.Config.Integration

	geoClient := geo.NewClient(s.HTTPClient, integration.Nominatim.BaseURL, integration.Ipify.BaseURL)
	translateClient := translate.NewClient(s.HTTPClient, integration.MyMemory.BaseURL,
		integration.Google.BaseURL, integration.Google.APIKey)

	emailClient := email.NewClient(integration.Email, s.HTTPClient, s.Logger)
	smsClient := sms.NewClient(integration.Twilio)

	var searcher media.Searcher
	if key := youTubeAPIKey(s); key != "" {
		yt, err := media.NewYouTubeSearcher(context.Background(), key, s.HTTPClient)
		if err != nil {
			return nil, errors.Wrap(err, "failed to initialize video search")
		}
		searcher = yt
	}

	var transcoder media.Transcoder
	if path := integration.Media.FFmpegPath; path != "" {
		transcoder = media.FFmpeg{Path: path}
	}

	downloader := media.NewDownloader(
		&youtube.Client{HTTPClient: s.HTTPClient},
		transcoder,
		integration.Media.OutputDir,
		s.Logger,
	)

	return &Services{
		Location:     NewLocationService(geoClient),
		Translation:  NewTranslationService(translateClient),
		Notification: NewNotificationService(emailClient, smsClient),
		QRCode:       NewQRCodeService(),
		Converter:    NewConverterService(),
		Media:        NewMediaService(searcher, downloader, s.Logger),
	}, nil
}

func youTubeAPIKey(s *server.Server) string {
	if key := s.Config.Integration.Media.YouTubeAPIKey; key != "" {
		return key
	}
	return s.Config.Integration.Google.APIKey
}
