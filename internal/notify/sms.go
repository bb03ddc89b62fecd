package notify

import (
	"context"
	"fmt"
	"strings"
	"time"

	"car-rental/internal/data/entity"
	"car-rental/pkg/utils"

	"github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
	"go.uber.org/zap"
)

// MessageCreator is the part of the Twilio API the notifier uses.
type MessageCreator interface {
	CreateMessage(params *openapi.CreateMessageParams) (*openapi.ApiV2010Message, error)
}

func newTwilioClient(config utils.SMSConfig) MessageCreator {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username:   config.TwilioAccountSID,
		Password:   config.TwilioAuthToken,
		AccountSid: config.TwilioAccountSID,
	})
	return client.Api
}

type smsNotifier struct {
	client MessageCreator
	from   string
	loc    *time.Location
	log    *zap.Logger
}

func NewSMSNotifier(client MessageCreator, from string, loc *time.Location, log *zap.Logger) Notifier {
	if loc == nil {
		loc = time.UTC
	}
	return &smsNotifier{
		client: client,
		from:   from,
		loc:    loc,
		log:    log.With(zap.String("notifier", "sms")),
	}
}

func (n *smsNotifier) BookingCreated(ctx context.Context, b entity.Booking) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("send booking sms %s: %w", b.ID, err)
	}

	// Twilio only accepts E.164 numbers
	if !strings.HasPrefix(b.CustomerPhone, "+") {
		n.log.Warn("Skipping booking sms - phone not in E.164 format",
			zap.String("booking_id", b.ID),
		)
		return nil
	}

	params := &openapi.CreateMessageParams{}
	params.SetTo(b.CustomerPhone)
	params.SetFrom(n.from)
	params.SetBody(shortText(b, n.loc))

	resp, err := n.client.CreateMessage(params)
	if err != nil {
		return fmt.Errorf("send booking sms %s: %w", b.ID, err)
	}

	fields := []zap.Field{zap.String("booking_id", b.ID)}
	if resp != nil && resp.Sid != nil {
		fields = append(fields, zap.String("sid", *resp.Sid))
	}
	n.log.Info("Booking sms sent", fields...)
	return nil
}
