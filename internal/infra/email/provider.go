package email

import (
	"log/slog"
	"net/http"

	"go.uber.org/fx"

	"github.com/forcollegesake07/food-bridge/config"
	"github.com/forcollegesake07/food-bridge/internal/domain/constants"
	"github.com/forcollegesake07/food-bridge/internal/domain/service"
	"github.com/forcollegesake07/food-bridge/internal/errors"
	"github.com/forcollegesake07/food-bridge/internal/infra/metrics"
)

// Params holds dependencies for the email sender
type Params struct {
	fx.In

	Config  *config.Config
	Logger  *slog.Logger
	Metrics *metrics.Metrics `optional:"true"`
}

// NewEmailSender builds the configured email sender
func NewEmailSender(params Params) (service.EmailSender, error) {
	cfg := params.Config.Email

	switch cfg.Provider {
	case constants.EmailProviderBrevo:
		if cfg.APIKey == "" {
			return nil, errors.New("email api key must be provided for the brevo provider")
		}
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultHTTPTimeout
		}
		brevo := newBrevoSender(&http.Client{Timeout: timeout}, cfg.BaseURL, cfg.APIKey, cfg.SenderEmail, cfg.SenderName)

		return newResilientSender(brevo, cfg, params.Logger, params.Metrics), nil

	case constants.EmailProviderLog, "":
		params.Logger.Warn("Email provider not configured, emails will only be logged")

		return newLogSender(params.Logger), nil

	default:
		return nil, errors.Errorf("unknown email provider: %s", cfg.Provider)
	}
}
