package mail

import (
	"context"
	"log/slog"
	"time"

	"postboard/config"
	domainerrors "postboard/internal/domain/errors"
	"postboard/internal/domain/service"
	"postboard/internal/errors"

	"github.com/mailgun/mailgun-go/v4"
)

const sendTimeout = 10 * time.Second

type mailgunMailer struct {
	client *mailgun.MailgunImpl
	from   string
	logger *slog.Logger
}

// NewMailgunMailer sends mail through the Mailgun HTTP API.
func NewMailgunMailer(cfg *config.MailConfig, logger *slog.Logger) service.Mailer {
	client := mailgun.NewMailgun(cfg.Domain, cfg.APIKey)
	if cfg.APIBase != "" {
		client.SetAPIBase(cfg.APIBase)
	}

	from := cfg.From
	if from == "" {
		from = "noreply@" + cfg.Domain
	}

	return &mailgunMailer{client: client, from: from, logger: logger}
}

func (m *mailgunMailer) Send(ctx context.Context, msg *service.MailMessage) error {
	message := m.client.NewMessage(m.from, msg.Subject, msg.Text, msg.To)
	if msg.HTML != "" {
		message.SetHtml(msg.HTML)
	}

	sendCtx, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()

	status, id, err := m.client.Send(sendCtx, message)
	if err != nil {
		return errors.Wrap(domainerrors.ErrMailDeliveryFailed, err.Error())
	}

	m.logger.DebugContext(ctx, "Email accepted by Mailgun",
		slog.String("email", msg.To),
		slog.String("message_id", id),
		slog.String("status", status),
	)

	return nil
}
