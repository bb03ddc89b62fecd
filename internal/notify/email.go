package notify

import (
	"context"
	"fmt"
	"time"

	"car-rental/internal/data/entity"
	"car-rental/pkg/utils"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/zap"
)

// MailSender is the part of the SendGrid client the notifier uses.
type MailSender interface {
	Send(email *mail.SGMailV3) (*rest.Response, error)
}

func newSendGridClient(apiKey string) MailSender {
	return sendgrid.NewSendClient(apiKey)
}

type emailNotifier struct {
	client   MailSender
	from     string
	fromName string
	loc      *time.Location
	log      *zap.Logger
}

func NewEmailNotifier(client MailSender, config utils.EmailConfig, loc *time.Location, log *zap.Logger) Notifier {
	if loc == nil {
		loc = time.UTC
	}
	return &emailNotifier{
		client:   client,
		from:     config.From,
		fromName: config.FromName,
		loc:      loc,
		log:      log.With(zap.String("notifier", "email")),
	}
}

func (n *emailNotifier) BookingCreated(ctx context.Context, b entity.Booking) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("send booking email %s: %w", b.ID, err)
	}

	message := mail.NewSingleEmail(
		mail.NewEmail(n.fromName, n.from),
		subject(b),
		mail.NewEmail(b.CustomerName, b.CustomerEmail),
		plainText(b, n.loc),
		htmlText(b, n.loc),
	)

	resp, err := n.client.Send(message)
	if err != nil {
		return fmt.Errorf("send booking email %s: %w", b.ID, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("send booking email %s: sendgrid status %d: %s", b.ID, resp.StatusCode, resp.Body)
	}

	n.log.Info("Booking email sent",
		zap.String("booking_id", b.ID),
		zap.Int("status", resp.StatusCode),
	)
	return nil
}
