package service

import "context"

// MailMessage is a single outbound email.
type MailMessage struct {
	To      string
	Subject string
	Text    string
	HTML    string
}

// Mailer delivers email through an external provider.
type Mailer interface {
	Send(ctx context.Context, msg *MailMessage) error
}
