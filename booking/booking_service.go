package booking

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/hanksha/sports-club-backend/coupon"
	"github.com/hanksha/sports-club-backend/court"
	"github.com/hanksha/sports-club-backend/identity"
	"github.com/hanksha/sports-club-backend/pricing"
)

//go:generate mockgen -source=booking_service.go -destination=mocks/mock_booking_service.go

type BookingRepository interface {
	GetBookingByID(ctx context.Context, id string) (Booking, error)
	ListBookings(ctx context.Context, filter Filter) ([]Booking, error)
	InsertBooking(ctx context.Context, b Booking) (Booking, error)
	ApproveBooking(ctx context.Context, id string) (Booking, bool, error)
	RejectBooking(ctx context.Context, id string) (Booking, error)
	DeleteBooking(ctx context.Context, id string) error
	DeleteStalePending(ctx context.Context, before time.Time) (int64, error)
	CountBookingsPerStatus(ctx context.Context) (StatusCounts, error)
	GetBookingCountPerCourtType(ctx context.Context) ([]CourtTypeBookingCount, error)
	GetBookingCountPerCourtTypeInPeriod(ctx context.Context, start time.Time, end time.Time) ([]CourtTypeBookingCount, error)
	GetBookingCountPerWeekDay(ctx context.Context) ([]WeekDayBookingCount, error)
}

type CourtFinder interface {
	GetCourt(ctx context.Context, id string) (court.Court, error)
}

type CouponValidator interface {
	ValidateCoupon(ctx context.Context, code string) (coupon.Coupon, error)
}

// Notifier is told about booking changes. Delivery is best effort and never
// fails the operation that triggered it.
type Notifier interface {
	BookingReceived(ctx context.Context, b Booking)
	BookingApproved(ctx context.Context, b Booking)
	BookingRejected(ctx context.Context, b Booking, reason string)
}

type Service struct {
	repo     BookingRepository
	courts   CourtFinder
	coupons  CouponValidator
	notifier Notifier
	now      func() time.Time
	loc      *time.Location
	logger   *slog.Logger
}

func NewService(repo BookingRepository, courts CourtFinder, coupons CouponValidator, notifier Notifier) *Service {
	return &Service{
		repo:     repo,
		courts:   courts,
		coupons:  coupons,
		notifier: notifier,
		now:      time.Now,
		loc:      time.Local,
		logger:   slog.Default().With("component", "booking"),
	}
}

// WithClock sets the time source and the club's time zone, which decides
// what "today" is for date validation.
func (s *Service) WithClock(now func() time.Time, loc *time.Location) *Service {
	s.now = now
	s.loc = loc
	return s
}

func (s *Service) today() time.Time {
	return s.now().In(s.loc)
}

func (s *Service) CreateBooking(ctx context.Context, session identity.Session, req Request) (Booking, error) {
	selection := NewSlotSelection(req.BookingDate, req.TimeSlots...)

	if err := selection.Check(s.today()); err != nil {
		return Booking{}, err
	}

	c, err := s.courts.GetCourt(ctx, req.CourtID)

	if err != nil {
		return Booking{}, err
	}

	if c.Status != court.StatusAvailable {
		return Booking{}, ErrCourtUnavailable
	}

	if err := selection.Validate(c, s.today()); err != nil {
		return Booking{}, err
	}

	date, _ := ParseDate(selection.Date, s.loc)
	total := selection.Total(c.PricePerHour)
	couponCode := ""

	if len(strings.TrimSpace(req.CouponCode)) != 0 {
		cp, err := s.coupons.ValidateCoupon(ctx, req.CouponCode)

		if err != nil {
			return Booking{}, err
		}

		total = pricing.ApplyDiscount(total, cp.DiscountPercentage)
		couponCode = cp.Code
	}

	if req.TotalPrice != nil && *req.TotalPrice != total {
		return Booking{}, fmt.Errorf("%w: expected %v, got %v", ErrPriceMismatch, total, *req.TotalPrice)
	}

	booking, err := s.repo.InsertBooking(ctx, Booking{
		CourtID:     c.ID,
		CourtName:   c.Name,
		CourtType:   c.Type,
		UserID:      session.UserID,
		UserEmail:   session.Email,
		UserName:    session.Name(),
		BookingDate: date,
		TimeSlots:   selection.Slots(c),
		TotalPrice:  total,
		Status:      StatusPending,
		CouponCode:  couponCode,
	})

	if err != nil {
		return Booking{}, err
	}

	s.logger.Info("booking created", "bookingID", booking.ID, "courtID", c.ID, "date", date)
	s.notifier.BookingReceived(ctx, booking)

	return booking, nil
}

// ApproveBooking moves a pending booking to approved and promotes its owner
// to member. Approving twice is a no-op.
func (s *Service) ApproveBooking(ctx context.Context, id string) (Booking, error) {
	booking, err := s.repo.GetBookingByID(ctx, id)

	if err != nil {
		return Booking{}, err
	}

	switch booking.Status {
	case StatusApproved:
		return booking, nil
	case StatusPending:
	default:
		return Booking{}, ErrInvalidBookingState
	}

	booking, changed, err := s.repo.ApproveBooking(ctx, id)

	if err != nil {
		return Booking{}, err
	}

	if changed {
		s.logger.Info("booking approved", "bookingID", id, "userID", booking.UserID)
		s.notifier.BookingApproved(ctx, booking)
	}

	return booking, nil
}

func (s *Service) RejectBooking(ctx context.Context, id, reason string) (Booking, error) {
	booking, err := s.repo.GetBookingByID(ctx, id)

	if err != nil {
		return Booking{}, err
	}

	if booking.Status != StatusPending {
		return Booking{}, ErrInvalidBookingState
	}

	booking, err = s.repo.RejectBooking(ctx, id)

	if err != nil {
		return Booking{}, err
	}

	s.logger.Info("booking rejected", "bookingID", id, "reason", reason)
	s.notifier.BookingRejected(ctx, booking, strings.TrimSpace(reason))

	return booking, nil
}

func (s *Service) CancelBooking(ctx context.Context, session identity.Session, id string) error {
	booking, err := s.repo.GetBookingByID(ctx, id)

	if err != nil {
		return err
	}

	if !checkUserAllowed(booking, session) {
		return ErrNotAllowed
	}

	if booking.Status != StatusPending && booking.Status != StatusApproved {
		return ErrInvalidBookingState
	}

	if err := s.repo.DeleteBooking(ctx, id); err != nil {
		return fmt.Errorf("failed to cancel booking: %w", err)
	}

	s.logger.Info("booking canceled", "bookingID", id, "by", session.UserID)

	return nil
}

func (s *Service) GetBooking(ctx context.Context, session identity.Session, id string) (Booking, error) {
	booking, err := s.repo.GetBookingByID(ctx, id)

	if err != nil {
		return Booking{}, err
	}

	if !checkUserAllowed(booking, session) {
		return Booking{}, ErrNotAllowed
	}

	return booking, nil
}

// FindBooking reads a booking without any ownership check.
func (s *Service) FindBooking(ctx context.Context, id string) (Booking, error) {
	return s.repo.GetBookingByID(ctx, id)
}

// ListBookings pins non-admin callers to their own bookings whatever email
// they asked for.
func (s *Service) ListBookings(ctx context.Context, session identity.Session, filter Filter) ([]Booking, error) {
	if len(filter.Status) != 0 && !filter.Status.Valid() {
		return nil, ErrInvalidBookingState
	}

	if !session.IsAdmin() {
		filter.Email = session.Email
	}

	filter.Email = strings.TrimSpace(filter.Email)
	filter.Search = ""

	return s.repo.ListBookings(ctx, filter)
}

func (s *Service) ListPendingBookings(ctx context.Context, search string) ([]Booking, error) {
	return s.repo.ListBookings(ctx, Filter{Status: StatusPending, Search: strings.TrimSpace(search)})
}

// PurgeStalePending drops pending bookings older than ttl and frees their
// slots.
func (s *Service) PurgeStalePending(ctx context.Context, ttl time.Duration) (int64, error) {
	purged, err := s.repo.DeleteStalePending(ctx, s.now().Add(-ttl))

	if err != nil {
		return 0, err
	}

	if purged != 0 {
		s.logger.Info("purged stale pending bookings", "count", purged, "ttl", ttl)
	}

	return purged, nil
}

func (s *Service) CountBookingsPerStatus(ctx context.Context) (StatusCounts, error) {
	return s.repo.CountBookingsPerStatus(ctx)
}

func (s *Service) GetBookingCountPerCourtType(ctx context.Context) ([]CourtTypeBookingCount, error) {
	return s.repo.GetBookingCountPerCourtType(ctx)
}

func (s *Service) GetBookingCountPerCourtTypeInPeriod(ctx context.Context, start, end time.Time) ([]CourtTypeBookingCount, error) {
	return s.repo.GetBookingCountPerCourtTypeInPeriod(ctx, start, end)
}

func (s *Service) GetBookingCountPerWeekDay(ctx context.Context) ([]WeekDayBookingCount, error) {
	return s.repo.GetBookingCountPerWeekDay(ctx)
}

func checkUserAllowed(booking Booking, session identity.Session) bool {
	if session.IsAdmin() {
		return true
	}

	return booking.UserID == session.UserID || strings.EqualFold(booking.UserEmail, session.Email)
}
