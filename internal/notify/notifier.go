// Package notify tells customers about their bookings over e-mail and SMS.
package notify

import (
	"context"
	"errors"
	"time"

	"car-rental/internal/data/entity"
	"car-rental/pkg/utils"

	"go.uber.org/zap"
)

// Notifier delivers a confirmation for a newly created booking.
type Notifier interface {
	BookingCreated(ctx context.Context, booking entity.Booking) error
}

// New builds a notifier for every configured channel. Without credentials it
// returns Nop.
func New(email utils.EmailConfig, sms utils.SMSConfig, loc *time.Location, log *zap.Logger) Notifier {
	var channels multi

	if email.SendGridAPIKey != "" && email.From != "" {
		channels = append(channels, NewEmailNotifier(newSendGridClient(email.SendGridAPIKey), email, loc, log))
	}
	if sms.TwilioAccountSID != "" && sms.TwilioAuthToken != "" && sms.FromNumber != "" {
		channels = append(channels, NewSMSNotifier(newTwilioClient(sms), sms.FromNumber, loc, log))
	}

	switch len(channels) {
	case 0:
		log.Info("Booking notifications disabled")
		return Nop{}
	case 1:
		return channels[0]
	}
	return channels
}

// Nop drops every notification.
type Nop struct{}

func (Nop) BookingCreated(context.Context, entity.Booking) error { return nil }

type multi []Notifier

func (m multi) BookingCreated(ctx context.Context, booking entity.Booking) error {
	var errs []error
	for _, n := range m {
		if err := n.BookingCreated(ctx, booking); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
