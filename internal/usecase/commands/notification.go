package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"salon-booking/internal/domain/settings"
	"salon-booking/internal/domain/user"
	"salon-booking/internal/infra"
	"salon-booking/internal/pkg/clock"
	"salon-booking/internal/pkg/config"
	"salon-booking/internal/pkg/errs"
	"salon-booking/internal/pkg/metrics"
	"salon-booking/internal/usecase/shared"
)

var errUnknownNotificationKind = errs.New("unknown notification kind")

type DispatchResult struct {
	Sent    int
	Skipped int
	Failed  int
}

type NotificationDispatcher interface {
	// Dispatch claims a batch of pending outbox jobs and delivers them.
	Dispatch(ctx context.Context) (DispatchResult, error)
}

type notificationDispatcherImpl struct {
	uow   shared.UnitOfWork
	email EmailSender
	sms   SMSSender
	clock clock.Clock
	cfg   config.NotifyConfig
}

func NewNotificationDispatcher(
	uow shared.UnitOfWork,
	email EmailSender,
	sms SMSSender,
	clk clock.Clock,
	cfg config.NotifyConfig,
) NotificationDispatcher {
	return &notificationDispatcherImpl{
		uow:   uow,
		email: email,
		sms:   sms,
		clock: clk,
		cfg:   cfg,
	}
}

func (d *notificationDispatcherImpl) Dispatch(ctx context.Context) (DispatchResult, error) {
	return shared.WithinResult(ctx, d.uow, func(ctx context.Context, tx shared.Tx) (DispatchResult, error) {
		var result DispatchResult

		jobs, err := tx.Notifications().ClaimPending(ctx, tx.DB(), d.cfg.BatchSize)
		if err != nil {
			return result, err
		}
		if len(jobs) == 0 {
			return result, nil
		}

		current, err := tx.Reads().Settings(ctx)
		if err != nil {
			return result, err
		}

		for _, job := range jobs {
			sent, sendErr := d.deliver(ctx, tx, current, job)
			if sendErr != nil {
				metrics.RecordNotification(job.Kind, sendErr)
				slog.WarnContext(ctx, "notification delivery failed",
					"job_id", job.ID, "kind", job.Kind, "attempts", job.Attempts+1, "error", sendErr)

				retryAt := d.clock.Now().Add(retryDelay(job.Attempts + 1))
				if err := tx.Notifications().MarkFailed(ctx, tx.DB(), job.ID, sendErr.Error(), d.cfg.MaxAttempts, retryAt); err != nil {
					return result, err
				}
				result.Failed++
				continue
			}

			if err := tx.Notifications().MarkSent(ctx, tx.DB(), job.ID); err != nil {
				return result, err
			}
			if sent {
				metrics.RecordNotification(job.Kind, nil)
				result.Sent++
			} else {
				result.Skipped++
			}
		}
		return result, nil
	})
}

// deliver reports false when the channel is switched off or the customer has no address for it.
func (d *notificationDispatcherImpl) deliver(ctx context.Context, tx shared.Tx, current settings.Settings, job shared.NotificationJob) (bool, error) {
	var notice shared.AppointmentNotice
	if err := json.Unmarshal(job.Payload, &notice); err != nil {
		return false, errs.Wrap(err, "invalid notification payload")
	}

	switch job.Kind {
	case shared.NotificationEmail:
		if !current.EmailNotifications || !d.email.Enabled() {
			return false, nil
		}
	case shared.NotificationSMS:
		if !current.SMSNotifications || !d.sms.Enabled() {
			return false, nil
		}
	default:
		return false, errs.Wrapf(errUnknownNotificationKind, "kind %q", job.Kind)
	}

	customer, err := tx.Reads().AccountByID(ctx, notice.CustomerID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return false, nil
		}
		return false, err
	}

	subject, body := composeNotice(job.Topic, notice)
	if job.Kind == shared.NotificationEmail {
		return true, d.email.SendEmail(ctx, customer.Name().Value(), customer.Email().Value(), subject, body)
	}
	return sendSMS(ctx, d.sms, customer, body)
}

func sendSMS(ctx context.Context, sender SMSSender, customer *user.User, body string) (bool, error) {
	if customer.Phone() == nil || *customer.Phone() == "" {
		return false, nil
	}
	return true, sender.SendSMS(ctx, *customer.Phone(), body)
}

func composeNotice(topic string, n shared.AppointmentNotice) (string, string) {
	where := ""
	if n.SalonName != "" {
		where = " at " + n.SalonName
	}
	switch topic {
	case shared.TopicAppointmentBooked:
		return "Appointment confirmed",
			fmt.Sprintf("Your appointment%s on %s at %s is booked.", where, n.Date, n.Time)
	default:
		return "Appointment " + n.Status,
			fmt.Sprintf("Your appointment%s on %s at %s is now %s.", where, n.Date, n.Time, n.Status)
	}
}

func retryDelay(attempt int32) time.Duration {
	return time.Duration(attempt*attempt) * time.Minute
}
