package notifier

import (
	"context"
	"log/slog"

	"salon-booking/internal/pkg/config"
	"salon-booking/internal/pkg/errs"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

var ErrEmailRejected = errs.New("sendgrid rejected the message")

type SendGridSender struct {
	client *sendgrid.Client
	cfg    config.SendGridConfig
}

func NewSendGridSender(cfg config.SendGridConfig) *SendGridSender {
	s := &SendGridSender{cfg: cfg}
	if cfg.Enabled() {
		s.client = sendgrid.NewSendClient(cfg.APIKey)
	}
	return s
}

// Enabled reports whether an API key and sender address are configured.
func (s *SendGridSender) Enabled() bool {
	return s.client != nil
}

func (s *SendGridSender) SendEmail(ctx context.Context, toName, toEmail, subject, body string) error {
	if !s.Enabled() {
		return nil
	}

	resp, err := s.client.SendWithContext(ctx, s.newMessage(toName, toEmail, subject, body))
	if err != nil {
		return errs.Wrap(err, "sendgrid send")
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errs.Wrapf(ErrEmailRejected, "status %d: %s", resp.StatusCode, resp.Body)
	}

	slog.DebugContext(ctx, "email sent", "to", toEmail, "subject", subject, "status", resp.StatusCode)
	return nil
}

func (s *SendGridSender) newMessage(toName, toEmail, subject, body string) *mail.SGMailV3 {
	from := mail.NewEmail(s.cfg.FromName, s.cfg.FromEmail)
	to := mail.NewEmail(toName, toEmail)
	return mail.NewSingleEmail(from, subject, to, body, "<p>"+body+"</p>")
}
