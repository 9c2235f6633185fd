package payment

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/hanksha/sports-club-backend/booking"
	"github.com/hanksha/sports-club-backend/coupon"
	"github.com/hanksha/sports-club-backend/identity"
	"github.com/hanksha/sports-club-backend/pricing"
)

//go:generate mockgen -source=payment_service.go -destination=mocks/mock_payment_service.go

type PaymentRepository interface {
	RecordPayment(ctx context.Context, p Payment) (Payment, bool, error)
	ListPayments(ctx context.Context, email string) ([]Payment, error)
	TotalRevenue(ctx context.Context) (pricing.Cents, error)
}

type Gateway interface {
	CreateIntent(ctx context.Context, p IntentParams) (IntentInfo, error)
	GetIntent(ctx context.Context, id string) (IntentInfo, error)
	ParseWebhook(payload []byte, signature string) (WebhookEvent, error)
}

type BookingFinder interface {
	FindBooking(ctx context.Context, id string) (booking.Booking, error)
}

type CouponValidator interface {
	ValidateCoupon(ctx context.Context, code string) (coupon.Coupon, error)
}

type Notifier interface {
	PaymentReceived(ctx context.Context, p Payment, b booking.Booking)
}

// idempotencyNamespace scopes the deterministic keys sent with new intents.
var idempotencyNamespace = uuid.MustParse("6f1c3f0e-8a4b-5d2e-9c71-3b0d5e7a9f12")

type Service struct {
	repo     PaymentRepository
	gateway  Gateway
	bookings BookingFinder
	coupons  CouponValidator
	notifier Notifier
	currency string
	logger   *slog.Logger
}

func NewService(repo PaymentRepository, gateway Gateway, bookings BookingFinder, coupons CouponValidator, notifier Notifier, currency string) *Service {
	return &Service{
		repo:     repo,
		gateway:  gateway,
		bookings: bookings,
		coupons:  coupons,
		notifier: notifier,
		currency: strings.ToLower(currency),
		logger:   slog.Default().With("component", "payment"),
	}
}

// CreatePaymentIntent starts a card payment for an approved booking. The
// amount is always recomputed here; the client's figure must agree with it.
func (s *Service) CreatePaymentIntent(ctx context.Context, session identity.Session, req IntentRequest) (Intent, error) {
	b, err := s.bookings.FindBooking(ctx, req.BookingID)

	if err != nil {
		return Intent{}, err
	}

	if !ownsBooking(b, session) {
		return Intent{}, booking.ErrNotAllowed
	}

	if email := strings.TrimSpace(req.UserEmail); len(email) != 0 && !strings.EqualFold(email, b.UserEmail) {
		return Intent{}, booking.ErrNotAllowed
	}

	if b.Status != booking.StatusApproved {
		return Intent{}, booking.ErrInvalidBookingState
	}

	due, couponCode, err := s.amountDue(ctx, b, req.CouponCode)

	if err != nil {
		return Intent{}, err
	}

	if pricing.Cents(req.AmountInCents) != due {
		if len(couponCode) == 0 && pricing.Cents(req.AmountInCents) < due {
			return Intent{}, fmt.Errorf("%w: expected %d cents, got %d (send the couponCode used at checkout)", ErrAmountMismatch, due, req.AmountInCents)
		}

		return Intent{}, fmt.Errorf("%w: expected %d cents, got %d", ErrAmountMismatch, due, req.AmountInCents)
	}

	key := uuid.NewSHA1(idempotencyNamespace, fmt.Appendf(nil, "%s:%d:%s", b.ID, due, couponCode))

	if due == 0 {
		return s.settleWithoutCharge(ctx, b, couponCode, key)
	}

	intent, err := s.gateway.CreateIntent(ctx, IntentParams{
		Amount:         due,
		Currency:       s.currency,
		BookingID:      b.ID,
		UserEmail:      b.UserEmail,
		CouponCode:     couponCode,
		IdempotencyKey: key.String(),
	})

	if err != nil {
		s.logger.Error("failed to create payment intent", "bookingID", b.ID, "err", err)
		return Intent{}, err
	}

	return Intent{
		ClientSecret:    intent.ClientSecret,
		PaymentIntentID: intent.ID,
		Amount:          intent.Amount,
		AmountInCents:   int64(intent.Amount),
	}, nil
}

// settleWithoutCharge confirms a booking whose coupon covers the whole
// total. The processor cannot charge zero, so the payment is recorded here.
func (s *Service) settleWithoutCharge(ctx context.Context, b booking.Booking, couponCode string, key uuid.UUID) (Intent, error) {
	p, err := s.record(ctx, b, IntentInfo{
		ID:         "free_" + key.String(),
		BookingID:  b.ID,
		UserEmail:  b.UserEmail,
		CouponCode: couponCode,
	}, MethodCoupon)

	if err != nil {
		return Intent{}, err
	}

	return Intent{Paid: true, PaymentID: p.ID}, nil
}

// amountDue applies a coupon given at payment time. A coupon picked when
// booking is already part of the stored total and wins over the request.
func (s *Service) amountDue(ctx context.Context, b booking.Booking, code string) (pricing.Cents, string, error) {
	if len(b.CouponCode) != 0 {
		return b.TotalPrice, b.CouponCode, nil
	}

	if len(strings.TrimSpace(code)) == 0 {
		return b.TotalPrice, "", nil
	}

	c, err := s.coupons.ValidateCoupon(ctx, code)

	if err != nil {
		return 0, "", err
	}

	return pricing.ApplyDiscount(b.TotalPrice, c.DiscountPercentage), c.Code, nil
}

// RecordPayment stores the payment for a succeeded intent and confirms the
// booking. Recording the same transaction again returns the stored payment.
func (s *Service) RecordPayment(ctx context.Context, session identity.Session, req RecordRequest) (Payment, error) {
	b, err := s.bookings.FindBooking(ctx, req.BookingID)

	if err != nil {
		return Payment{}, err
	}

	if !ownsBooking(b, session) {
		return Payment{}, booking.ErrNotAllowed
	}

	intent, err := s.gateway.GetIntent(ctx, strings.TrimSpace(req.TransactionID))

	if err != nil {
		return Payment{}, err
	}

	if intent.BookingID != b.ID {
		return Payment{}, ErrIntentMismatch
	}

	if !intent.Succeeded() {
		return Payment{}, fmt.Errorf("%w: status is %v", ErrPaymentNotSucceeded, intent.Status)
	}

	return s.record(ctx, b, intent, MethodCard)
}

func (s *Service) record(ctx context.Context, b booking.Booking, intent IntentInfo, method string) (Payment, error) {
	p, created, err := s.repo.RecordPayment(ctx, Payment{
		BookingID:     b.ID,
		UserEmail:     b.UserEmail,
		TransactionID: intent.ID,
		Amount:        intent.Amount,
		Method:        method,
		Status:        StatusPaid,
		CouponCode:    intent.CouponCode,
	})

	if err != nil {
		s.logger.Error("failed to record payment", "bookingID", b.ID, "transactionID", intent.ID, "err", err)
		return Payment{}, err
	}

	if created {
		s.logger.Info("payment recorded", "bookingID", b.ID, "transactionID", intent.ID, "amount", p.Amount)
		s.notifier.PaymentReceived(ctx, p, b)
	}

	return p, nil
}

// HandleWebhook confirms bookings from processor events so a client that
// never reports back still ends up confirmed.
func (s *Service) HandleWebhook(ctx context.Context, payload []byte, signature string) error {
	event, err := s.gateway.ParseWebhook(payload, signature)

	if err != nil {
		return err
	}

	switch event.Type {
	case EventIntentSucceeded:
		if len(event.Intent.BookingID) == 0 {
			s.logger.Warn("payment intent without booking", "eventID", event.ID, "intentID", event.Intent.ID)
			return nil
		}

		b, err := s.bookings.FindBooking(ctx, event.Intent.BookingID)

		if err != nil {
			return err
		}

		_, err = s.record(ctx, b, event.Intent, MethodCard)

		return err
	case EventIntentFailed:
		s.logger.Warn("payment failed", "intentID", event.Intent.ID, "bookingID", event.Intent.BookingID)
	default:
		s.logger.Debug("ignoring webhook event", "eventID", event.ID, "type", event.Type)
	}

	return nil
}

func (s *Service) ListPayments(ctx context.Context, session identity.Session, email string) ([]Payment, error) {
	if !session.IsAdmin() {
		email = session.Email
	}

	return s.repo.ListPayments(ctx, strings.TrimSpace(email))
}

func (s *Service) TotalRevenue(ctx context.Context) (pricing.Cents, error) {
	return s.repo.TotalRevenue(ctx)
}

func ownsBooking(b booking.Booking, session identity.Session) bool {
	return session.IsAdmin() || b.UserID == session.UserID || strings.EqualFold(b.UserEmail, session.Email)
}
