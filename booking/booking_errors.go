package booking

import "errors"

var ErrBookingNotFound = errors.New("booking not found")

var ErrInvalidBookingState = errors.New("invalid booking state")

var ErrNotAllowed = errors.New("not allowed to perform this operation")

var ErrCourtUnavailable = errors.New("court is not available for booking")

var ErrPriceMismatch = errors.New("total price does not match the court price")

var ErrSlotTaken = errors.New("time slot already booked")

var ErrDateRequired = errors.New("booking date is required")

var ErrInvalidDate = errors.New("booking date is not a valid date")

var ErrDateInPast = errors.New("booking date is in the past")

var ErrNoSlots = errors.New("at least one time slot must be selected")

var ErrUnknownSlot = errors.New("time slot is not offered by this court")
