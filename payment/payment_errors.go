package payment

import "errors"

var ErrAmountMismatch = errors.New("amount does not match the amount due")

var ErrPaymentNotSucceeded = errors.New("payment has not succeeded")

var ErrIntentMismatch = errors.New("payment does not belong to this booking")

var ErrInvalidSignature = errors.New("invalid webhook signature")

var ErrGateway = errors.New("payment processor unavailable")

var ErrPaymentNotFound = errors.New("payment not found")

// CardError carries the processor's message for a declined or invalid card.
type CardError struct {
	Code    string
	Message string
}

func (e *CardError) Error() string {
	return e.Message
}
