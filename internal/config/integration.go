package config

// Email providers understood by the notification service.
const (
	EmailProviderSMTP   = "smtp"
	EmailProviderResend = "resend"
)

// IntegrationConfig groups the settings of every external collaborator.
//
// Only base URLs come with defaults. Credentials are optional at load time:
// an endpoint whose collaborator is not configured answers 503 instead of
// preventing the whole service from starting.
type IntegrationConfig struct {
	Nominatim NominatimConfig `koanf:"nominatim"`
	Ipify     IpifyConfig     `koanf:"ipify"`
	MyMemory  MyMemoryConfig  `koanf:"mymemory"`
	Google    GoogleConfig    `koanf:"google"`
	Twilio    TwilioConfig    `koanf:"twilio"`
	Email     EmailConfig     `koanf:"email"`
	Media     MediaConfig     `koanf:"media"`
}

// NominatimConfig points at an OpenStreetMap Nominatim instance.
type NominatimConfig struct {
	BaseURL string `koanf:"base_url" validate:"required,url"`
}

// IpifyConfig points at the ipify public IP API.
type IpifyConfig struct {
	BaseURL string `koanf:"base_url" validate:"required,url"`
}

// MyMemoryConfig points at the MyMemory translation API.
type MyMemoryConfig struct {
	BaseURL string `koanf:"base_url" validate:"required,url"`
}

// GoogleConfig holds the Google Translate REST endpoint and API key.
// The same key is used for YouTube search unless Media overrides it.
type GoogleConfig struct {
	BaseURL string `koanf:"base_url" validate:"required,url"`
	APIKey  string `koanf:"api_key"`
}

// Configured reports whether Google Translate calls can be made.
func (g GoogleConfig) Configured() bool {
	return g.APIKey != ""
}

// TwilioConfig stores the Twilio account used for SMS and WhatsApp.
type TwilioConfig struct {
	AccountSID string `koanf:"account_sid"`
	AuthToken  string `koanf:"auth_token"`
	FromNumber string `koanf:"from_number"`
}

// Configured reports whether all Twilio credentials are present.
func (t TwilioConfig) Configured() bool {
	return t.AccountSID != "" && t.AuthToken != "" && t.FromNumber != ""
}

// EmailConfig selects and configures the outgoing e-mail provider.
type EmailConfig struct {
	Provider     string     `koanf:"provider" validate:"oneof=smtp resend"`
	From         string     `koanf:"from" validate:"omitempty,email"`
	SMTP         SMTPConfig `koanf:"smtp"`
	ResendAPIKey string     `koanf:"resend_api_key"`
}

// SMTPConfig holds SMTP server coordinates and credentials.
type SMTPConfig struct {
	Host     string `koanf:"host"`
	Port     int    `koanf:"port" validate:"gte=0,lte=65535"`
	Username string `koanf:"username"`
	Password string `koanf:"password"`
}

// Configured reports whether the selected provider has what it needs.
func (e EmailConfig) Configured() bool {
	if e.From == "" {
		return false
	}
	switch e.Provider {
	case EmailProviderResend:
		return e.ResendAPIKey != ""
	default:
		return e.SMTP.Host != ""
	}
}

// MediaConfig configures video search and download.
//
// YouTubeAPIKey falls back to GoogleConfig.APIKey when empty.
// FFmpegPath enables transcoding audio downloads to mp3.
type MediaConfig struct {
	OutputDir     string `koanf:"output_dir" validate:"required"`
	YouTubeAPIKey string `koanf:"youtube_api_key"`
	FFmpegPath    string `koanf:"ffmpeg_path"`
}
