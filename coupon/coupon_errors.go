package coupon

import "errors"

var ErrCodeRequired = errors.New("coupon code is required")

var ErrCouponNotFound = errors.New("coupon not found")

var ErrDuplicateCode = errors.New("coupon code already exists")

var ErrInvalidCoupon = errors.New("invalid coupon")

const (
	ReasonInvalidCode    = "invalid_code"
	ReasonExpired        = "expired"
	ReasonUsageExhausted = "usage_exhausted"
)

// RejectionError is returned when a code cannot be applied to a purchase.
type RejectionError struct {
	Reason  string
	Message string
}

func (e *RejectionError) Error() string {
	return e.Message
}

func rejection(reason string) *RejectionError {
	switch reason {
	case ReasonExpired:
		return &RejectionError{Reason: reason, Message: "coupon has expired"}
	case ReasonUsageExhausted:
		return &RejectionError{Reason: reason, Message: "coupon usage limit reached"}
	}

	return &RejectionError{Reason: ReasonInvalidCode, Message: "invalid coupon code"}
}
