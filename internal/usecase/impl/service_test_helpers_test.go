package impl

import (
	"io"
	"log/slog"

	"postboard/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(strictMailer bool) *config.Config {
	return &config.Config{
		Auth:    &config.AuthConfig{BcryptCost: 4},
		Mail:    &config.MailConfig{StrictMailerErrors: strictMailer},
		Storage: &config.StorageConfig{MaxUploadBytes: 16},
	}
}
