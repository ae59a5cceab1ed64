//go:build unit

package notifier

import (
	"context"
	"errors"
	"testing"

	"salon-booking/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
)

type fakeMessageCreator struct {
	params *openapi.CreateMessageParams
	err    error
}

func (f *fakeMessageCreator) CreateMessage(params *openapi.CreateMessageParams) (*openapi.ApiV2010Message, error) {
	f.params = params
	if f.err != nil {
		return nil, f.err
	}
	sid := "SM123"
	return &openapi.ApiV2010Message{Sid: &sid}, nil
}

func TestTwilioSender(t *testing.T) {
	ctx := context.Background()

	t.Run("sends from the configured number", func(t *testing.T) {
		fake := &fakeMessageCreator{}
		s := &TwilioSender{api: fake, from: "+15005550006"}

		require.NoError(t, s.SendSMS(ctx, "+8613800000000", "Your appointment is booked."))
		assert.Equal(t, "+8613800000000", *fake.params.To)
		assert.Equal(t, "+15005550006", *fake.params.From)
		assert.Equal(t, "Your appointment is booked.", *fake.params.Body)
	})

	t.Run("rejects numbers without country code", func(t *testing.T) {
		s := &TwilioSender{api: &fakeMessageCreator{}, from: "+15005550006"}

		err := s.SendSMS(ctx, "13800000000", "hi")
		assert.ErrorIs(t, err, ErrInvalidPhoneNumber)
	})

	t.Run("api failure is returned", func(t *testing.T) {
		s := &TwilioSender{api: &fakeMessageCreator{err: errors.New("status: 401")}, from: "+15005550006"}

		assert.ErrorContains(t, s.SendSMS(ctx, "+8613800000000", "hi"), "status: 401")
	})

	t.Run("no-op when unconfigured", func(t *testing.T) {
		s := NewTwilioSender(config.TwilioConfig{})

		assert.False(t, s.Enabled())
		assert.NoError(t, s.SendSMS(ctx, "+8613800000000", "hi"))
	})
}

func TestSendGridSender(t *testing.T) {
	t.Run("disabled without api key", func(t *testing.T) {
		s := NewSendGridSender(config.SendGridConfig{FromEmail: "noreply@example.com"})

		assert.False(t, s.Enabled())
		assert.NoError(t, s.SendEmail(context.Background(), "Mei", "mei@example.com", "subject", "body"))
	})

	t.Run("builds a single recipient message", func(t *testing.T) {
		s := NewSendGridSender(config.SendGridConfig{APIKey: "SG.key", FromEmail: "noreply@example.com", FromName: "Salon Booking"})
		require.True(t, s.Enabled())

		msg := s.newMessage("Mei", "mei@example.com", "Appointment confirmed", "See you soon.")
		assert.Equal(t, "noreply@example.com", msg.From.Address)
		assert.Equal(t, "Appointment confirmed", msg.Subject)
		require.Len(t, msg.Personalizations, 1)
		assert.Equal(t, "mei@example.com", msg.Personalizations[0].To[0].Address)
		require.Len(t, msg.Content, 2)
		assert.Equal(t, "See you soon.", msg.Content[0].Value)
	})
}
