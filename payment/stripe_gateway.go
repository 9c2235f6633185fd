package payment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/hanksha/sports-club-backend/pricing"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/paymentintent"
	"github.com/stripe/stripe-go/v82/webhook"
)

const (
	metadataBookingID  = "booking_id"
	metadataUserEmail  = "user_email"
	metadataCouponCode = "coupon_code"
)

type StripeGateway struct {
	intents       *paymentintent.Client
	webhookSecret string
}

func NewStripeGateway(secretKey, webhookSecret string) *StripeGateway {
	return NewStripeGatewayWithBackend(stripe.GetBackend(stripe.APIBackend), secretKey, webhookSecret)
}

func NewStripeGatewayWithBackend(backend stripe.Backend, secretKey, webhookSecret string) *StripeGateway {
	return &StripeGateway{
		intents:       &paymentintent.Client{B: backend, Key: secretKey},
		webhookSecret: webhookSecret,
	}
}

func (g *StripeGateway) CreateIntent(ctx context.Context, p IntentParams) (IntentInfo, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(int64(p.Amount)),
		Currency:           stripe.String(p.Currency),
		PaymentMethodTypes: stripe.StringSlice([]string{MethodCard}),
		ReceiptEmail:       stripe.String(p.UserEmail),
	}
	params.Context = ctx
	params.AddMetadata(metadataBookingID, p.BookingID)
	params.AddMetadata(metadataUserEmail, p.UserEmail)

	if len(p.CouponCode) != 0 {
		params.AddMetadata(metadataCouponCode, p.CouponCode)
	}

	if len(p.IdempotencyKey) != 0 {
		params.SetIdempotencyKey(p.IdempotencyKey)
	}

	pi, err := g.intents.New(params)

	if err != nil {
		return IntentInfo{}, mapStripeError(err)
	}

	return intentInfo(pi), nil
}

func (g *StripeGateway) GetIntent(ctx context.Context, id string) (IntentInfo, error) {
	params := &stripe.PaymentIntentParams{}
	params.Context = ctx

	pi, err := g.intents.Get(id, params)

	if err != nil {
		return IntentInfo{}, mapStripeError(err)
	}

	return intentInfo(pi), nil
}

func (g *StripeGateway) ParseWebhook(payload []byte, signature string) (WebhookEvent, error) {
	event, err := webhook.ConstructEventWithOptions(payload, signature, g.webhookSecret, webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})

	if err != nil {
		return WebhookEvent{}, fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}

	parsed := WebhookEvent{ID: event.ID, Type: string(event.Type)}

	if event.Type != EventIntentSucceeded && event.Type != EventIntentFailed {
		return parsed, nil
	}

	var pi stripe.PaymentIntent

	if err := json.Unmarshal(event.Data.Raw, &pi); err != nil {
		return WebhookEvent{}, fmt.Errorf("failed to parse payment intent of event %v: %w", event.ID, err)
	}

	parsed.Intent = intentInfo(&pi)

	return parsed, nil
}

func intentInfo(pi *stripe.PaymentIntent) IntentInfo {
	return IntentInfo{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		Status:       string(pi.Status),
		Amount:       pricing.Cents(pi.Amount),
		Currency:     string(pi.Currency),
		BookingID:    pi.Metadata[metadataBookingID],
		UserEmail:    pi.Metadata[metadataUserEmail],
		CouponCode:   pi.Metadata[metadataCouponCode],
	}
}

func mapStripeError(err error) error {
	var stripeErr *stripe.Error

	if errors.As(err, &stripeErr) && stripeErr.Type == stripe.ErrorTypeCard {
		return &CardError{Code: string(stripeErr.Code), Message: stripeErr.Msg}
	}

	return fmt.Errorf("%w: %v", ErrGateway, err)
}
