package notify

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log/slog"
	"time"

	"github.com/hanksha/sports-club-backend/booking"
	"github.com/hanksha/sports-club-backend/payment"
	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

//go:generate mockgen -source=mailer.go -destination=mocks/mock_mailer.go

type Sender interface {
	SendWithContext(ctx context.Context, email *mail.SGMailV3) (*rest.Response, error)
}

const sendTimeout = 10 * time.Second

// Mailer sends transactional email about bookings and payments. Failures are
// logged and never returned.
type Mailer struct {
	sender Sender
	from   *mail.Email
	logger *slog.Logger
}

// NewMailer returns a disabled mailer, which only logs, when apiKey is empty.
func NewMailer(apiKey, fromEmail, fromName string) *Mailer {
	var sender Sender

	if len(apiKey) != 0 {
		sender = sendgrid.NewSendClient(apiKey)
	}

	return NewMailerWithSender(sender, fromEmail, fromName)
}

func NewMailerWithSender(sender Sender, fromEmail, fromName string) *Mailer {
	return &Mailer{
		sender: sender,
		from:   mail.NewEmail(fromName, fromEmail),
		logger: slog.Default().With("component", "mailer"),
	}
}

func (m *Mailer) Enabled() bool {
	return m.sender != nil
}

func (m *Mailer) BookingReceived(ctx context.Context, b booking.Booking) {
	m.send(ctx, b.UserName, b.UserEmail, "We received your booking", bookingReceivedTemplate, b)
}

func (m *Mailer) BookingApproved(ctx context.Context, b booking.Booking) {
	m.send(ctx, b.UserName, b.UserEmail, "Your booking was approved", bookingApprovedTemplate, b)
}

func (m *Mailer) BookingRejected(ctx context.Context, b booking.Booking, reason string) {
	data := struct {
		booking.Booking
		Reason string
	}{b, reason}

	m.send(ctx, b.UserName, b.UserEmail, "Your booking was rejected", bookingRejectedTemplate, data)
}

func (m *Mailer) PaymentReceived(ctx context.Context, p payment.Payment, b booking.Booking) {
	data := struct {
		booking.Booking
		Payment payment.Payment
	}{b, p}

	m.send(ctx, b.UserName, p.UserEmail, "Payment receipt", paymentReceiptTemplate, data)
}

func (m *Mailer) send(ctx context.Context, toName, toEmail, subject string, tmpl *template.Template, data any) {
	logger := m.logger.With("to", toEmail, "subject", subject)

	var body bytes.Buffer

	if err := tmpl.Execute(&body, data); err != nil {
		logger.Error("failed to render email", "err", err)
		return
	}

	if !m.Enabled() {
		logger.Info("email delivery disabled, skipping")
		return
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), sendTimeout)
	defer cancel()

	message := mail.NewSingleEmail(m.from, subject, mail.NewEmail(toName, toEmail), plainText(subject), body.String())
	response, err := m.sender.SendWithContext(ctx, message)

	if err != nil {
		logger.Error("failed to send email", "err", err)
		return
	}

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		logger.Error("email rejected by sendgrid", "status", response.StatusCode, "body", response.Body)
		return
	}

	logger.Debug("email sent", "status", response.StatusCode)
}

func plainText(subject string) string {
	return fmt.Sprintf("%v. Open the club app for the details.", subject)
}
