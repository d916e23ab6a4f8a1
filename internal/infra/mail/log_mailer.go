package mail

import (
	"context"
	"log/slog"

	"postboard/internal/domain/service"
)

type logMailer struct {
	logger *slog.Logger
}

// NewLogMailer writes messages to the log instead of sending them.
func NewLogMailer(logger *slog.Logger) service.Mailer {
	return &logMailer{logger: logger}
}

func (m *logMailer) Send(ctx context.Context, msg *service.MailMessage) error {
	m.logger.InfoContext(ctx, "Email not sent, no mail provider configured",
		slog.String("email", msg.To),
		slog.String("subject", msg.Subject),
		slog.String("text", msg.Text),
	)

	return nil
}
