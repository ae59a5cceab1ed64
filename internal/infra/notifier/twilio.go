package notifier

import (
	"context"
	"log/slog"
	"strings"

	"salon-booking/internal/pkg/config"
	"salon-booking/internal/pkg/errs"

	"github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
)

var ErrInvalidPhoneNumber = errs.New("phone number must be in E.164 format")

// messageCreator is the part of the Twilio REST API used for SMS.
type messageCreator interface {
	CreateMessage(params *openapi.CreateMessageParams) (*openapi.ApiV2010Message, error)
}

type TwilioSender struct {
	api  messageCreator
	from string
}

func NewTwilioSender(cfg config.TwilioConfig) *TwilioSender {
	s := &TwilioSender{from: cfg.FromNumber}
	if cfg.Enabled() {
		client := twilio.NewRestClientWithParams(twilio.ClientParams{
			Username:   cfg.AccountSID,
			Password:   cfg.AuthToken,
			AccountSid: cfg.AccountSID,
		})
		s.api = client.Api
	}
	return s
}

func (s *TwilioSender) Enabled() bool {
	return s.api != nil
}

func (s *TwilioSender) SendSMS(ctx context.Context, to, body string) error {
	if !s.Enabled() {
		return nil
	}
	if !strings.HasPrefix(to, "+") {
		return errs.Wrapf(ErrInvalidPhoneNumber, "to %q", to)
	}

	params := &openapi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(s.from)
	params.SetBody(body)

	resp, err := s.api.CreateMessage(params)
	if err != nil {
		return errs.Wrap(err, "twilio create message")
	}

	sid := ""
	if resp != nil && resp.Sid != nil {
		sid = *resp.Sid
	}
	slog.DebugContext(ctx, "sms sent", "to", to, "sid", sid)
	return nil
}
