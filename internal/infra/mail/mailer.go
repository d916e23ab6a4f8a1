// Package mail delivers outbound email through Mailgun, or only logs it when
// no provider is configured.
package mail

import (
	"log/slog"

	"postboard/config"
	"postboard/internal/domain/constants"
	"postboard/internal/domain/service"
	"postboard/internal/errors"

	"go.uber.org/fx"
)

// Params defines the dependencies of the mailer provider
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewMailer selects the mailer implementation from configuration.
func NewMailer(params Params) (service.Mailer, error) {
	cfg := params.Config.Mail
	if cfg == nil || cfg.Provider == "" || cfg.Provider == constants.MailProviderLog {
		params.Logger.Info("Mail provider not configured, emails will only be logged")

		return NewLogMailer(params.Logger), nil
	}

	switch cfg.Provider {
	case constants.MailProviderMailgun:
		if cfg.APIKey == "" {
			return nil, errors.New("mailgun api key is required for mailgun provider")
		}
		if cfg.Domain == "" {
			return nil, errors.New("mailgun domain is required for mailgun provider")
		}

		return NewMailgunMailer(cfg, params.Logger), nil
	default:
		return nil, errors.Errorf("unknown mail provider: %s", cfg.Provider)
	}
}
