package payment

import (
	"time"

	"github.com/hanksha/sports-club-backend/pricing"
)

type Status string

const (
	StatusPaid   Status = "paid"
	StatusFailed Status = "failed"
)

const (
	MethodCard = "card"
	// MethodCoupon marks bookings fully covered by a coupon.
	MethodCoupon = "coupon"
)

// Payment is written once, when a succeeded PaymentIntent is recorded.
type Payment struct {
	ID            string        `json:"id"`
	BookingID     string        `json:"bookingId"`
	UserEmail     string        `json:"userEmail"`
	TransactionID string        `json:"transactionId"`
	Amount        pricing.Cents `json:"amount"`
	Method        string        `json:"method"`
	Status        Status        `json:"status"`
	CouponCode    string        `json:"couponCode,omitempty"`
	CreatedAt     time.Time     `json:"createdAt"`
}

// IntentRequest carries the checkout coupon so the amount can be checked
// against the discounted total.
type IntentRequest struct {
	BookingID     string `json:"bookingId"`
	AmountInCents int64  `json:"amountInCents"`
	UserEmail     string `json:"userEmail"`
	CouponCode    string `json:"couponCode"`
}

type Intent struct {
	ClientSecret    string        `json:"clientSecret"`
	PaymentIntentID string        `json:"paymentIntentId"`
	Amount          pricing.Cents `json:"amount"`
	AmountInCents   int64         `json:"amountInCents"`
	// Paid is set when nothing was left to charge and the booking was
	// confirmed without the processor.
	Paid      bool   `json:"paid,omitempty"`
	PaymentID string `json:"paymentId,omitempty"`
}

type RecordRequest struct {
	BookingID     string `json:"bookingId"`
	TransactionID string `json:"transactionId"`
}

// IntentParams is what we ask the processor to charge.
type IntentParams struct {
	Amount         pricing.Cents
	Currency       string
	BookingID      string
	UserEmail      string
	CouponCode     string
	IdempotencyKey string
}

// IntentInfo is the processor's view of a PaymentIntent.
type IntentInfo struct {
	ID           string
	ClientSecret string
	Status       string
	Amount       pricing.Cents
	Currency     string
	BookingID    string
	UserEmail    string
	CouponCode   string
}

func (i IntentInfo) Succeeded() bool {
	return i.Status == "succeeded"
}

type WebhookEvent struct {
	ID     string
	Type   string
	Intent IntentInfo
}

const (
	EventIntentSucceeded = "payment_intent.succeeded"
	EventIntentFailed    = "payment_intent.payment_failed"
)
