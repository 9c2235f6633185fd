package booking

import (
	"time"

	"github.com/hanksha/sports-club-backend/court"
	"github.com/hanksha/sports-club-backend/pricing"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusConfirmed Status = "confirmed"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusConfirmed:
		return true
	}

	return false
}

type Booking struct {
	ID          string        `json:"id"`
	CourtID     string        `json:"courtId"`
	CourtName   string        `json:"courtName"`
	CourtType   court.Type    `json:"courtType"`
	UserID      string        `json:"userId"`
	UserEmail   string        `json:"userEmail"`
	UserName    string        `json:"userName"`
	BookingDate string        `json:"bookingDate"` // YYYY-MM-DD
	TimeSlots   []string      `json:"timeSlots"`
	TotalPrice  pricing.Cents `json:"totalPrice"`
	Status      Status        `json:"status"`
	CouponCode  string        `json:"couponCode,omitempty"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

// Request is what a user submits to book a court.
type Request struct {
	CourtID     string         `json:"courtId"`
	BookingDate string         `json:"bookingDate"`
	TimeSlots   []string       `json:"timeSlots"`
	TotalPrice  *pricing.Cents `json:"totalPrice"`
	CouponCode  string         `json:"couponCode"`
}

type Filter struct {
	Status Status
	Email  string
	Search string
}

type StatusCounts struct {
	Pending   int `json:"pending"`
	Approved  int `json:"approved"`
	Rejected  int `json:"rejected"`
	Confirmed int `json:"confirmed"`
}

type CourtTypeBookingCount struct {
	CourtType court.Type `json:"courtType"`
	Count     int        `json:"bookingCount"`
}

type WeekDayBookingCount struct {
	WeekDay string `json:"dayOfWeek"`
	Count   int    `json:"bookingCount"`
}
