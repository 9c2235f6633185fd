package booking_test

import (
	"context"
	"errors"
	"testing"
	"time"

	bk "github.com/hanksha/sports-club-backend/booking"
	bk_mocks "github.com/hanksha/sports-club-backend/booking/mocks"
	"github.com/hanksha/sports-club-backend/coupon"
	"github.com/hanksha/sports-club-backend/court"
	"github.com/hanksha/sports-club-backend/identity"
	"github.com/hanksha/sports-club-backend/pricing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var member = identity.Session{UserID: "u1", Email: "ann@club.test", DisplayName: "Ann", Role: identity.RoleUser}

var admin = identity.Session{UserID: "a1", Email: "boss@club.test", Role: identity.RoleAdmin}

var pendingBooking = bk.Booking{
	ID:          "b1",
	CourtID:     "c1",
	CourtName:   "Court A",
	CourtType:   court.TypeTennis,
	UserID:      "u1",
	UserEmail:   "ann@club.test",
	UserName:    "Ann",
	BookingDate: "2025-06-12",
	TimeSlots:   []string{"09:00", "10:00"},
	TotalPrice:  4000,
	Status:      bk.StatusPending,
}

type testDeps struct {
	repo     *bk_mocks.MockBookingRepository
	courts   *bk_mocks.MockCourtFinder
	coupons  *bk_mocks.MockCouponValidator
	notifier *bk_mocks.MockNotifier
	service  *bk.Service
	ctx      context.Context
}

func newTestDeps(t *testing.T) (*gomock.Controller, testDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)

	repo := bk_mocks.NewMockBookingRepository(ctrl)
	courts := bk_mocks.NewMockCourtFinder(ctrl)
	coupons := bk_mocks.NewMockCouponValidator(ctrl)
	notifier := bk_mocks.NewMockNotifier(ctrl)
	svc := bk.NewService(repo, courts, coupons, notifier).WithClock(func() time.Time { return today }, time.UTC)

	return ctrl, testDeps{
		repo: repo, courts: courts, coupons: coupons, notifier: notifier, service: svc, ctx: context.Background(),
	}
}

func withStatus(b bk.Booking, status bk.Status) bk.Booking {
	b.Status = status
	return b
}

func TestCreateBooking(t *testing.T) {
	t.Run("two slots at twenty dollars cost forty", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		total := pricing.Cents(4000)
		req := bk.Request{CourtID: "c1", BookingDate: "2025-06-12", TimeSlots: []string{"10:00", "09:00"}, TotalPrice: &total}

		deps.courts.EXPECT().GetCourt(deps.ctx, "c1").Return(clubCourt, nil).Times(1)
		deps.coupons.EXPECT().ValidateCoupon(gomock.Any(), gomock.Any()).Times(0)
		deps.repo.EXPECT().InsertBooking(deps.ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, b bk.Booking) (bk.Booking, error) {
				assert.Equal(t, "Court A", b.CourtName)
				assert.Equal(t, court.TypeTennis, b.CourtType)
				assert.Equal(t, "u1", b.UserID)
				assert.Equal(t, "Ann", b.UserName)
				assert.Equal(t, []string{"09:00", "10:00"}, b.TimeSlots)
				assert.Equal(t, pricing.Cents(4000), b.TotalPrice)
				assert.Equal(t, bk.StatusPending, b.Status)
				b.ID = "b1"
				return b, nil
			}).Times(1)
		deps.notifier.EXPECT().BookingReceived(deps.ctx, gomock.Any()).Times(1)

		booking, err := deps.service.CreateBooking(deps.ctx, member, req)

		require.NoError(t, err)
		assert.Equal(t, "b1", booking.ID)
		assert.Equal(t, "40.00", booking.TotalPrice.String())
	})

	t.Run("coupon discount is applied", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		total := pricing.Cents(3200)
		req := bk.Request{CourtID: "c1", BookingDate: "2025-06-12", TimeSlots: []string{"09:00", "10:00"}, TotalPrice: &total, CouponCode: "summer20"}

		deps.courts.EXPECT().GetCourt(deps.ctx, "c1").Return(clubCourt, nil).Times(1)
		deps.coupons.EXPECT().ValidateCoupon(deps.ctx, "summer20").Return(coupon.Coupon{Code: "SUMMER20", DiscountPercentage: 20}, nil).Times(1)
		deps.repo.EXPECT().InsertBooking(deps.ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, b bk.Booking) (bk.Booking, error) {
				assert.Equal(t, pricing.Cents(3200), b.TotalPrice)
				assert.Equal(t, "SUMMER20", b.CouponCode)
				return b, nil
			}).Times(1)
		deps.notifier.EXPECT().BookingReceived(gomock.Any(), gomock.Any()).Times(1)

		booking, err := deps.service.CreateBooking(deps.ctx, member, req)

		require.NoError(t, err)
		assert.Equal(t, "32.00", booking.TotalPrice.String())
	})

	t.Run("rejected coupon stops the booking", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		rejection := &coupon.RejectionError{Reason: coupon.ReasonUsageExhausted, Message: "coupon usage limit reached"}
		req := bk.Request{CourtID: "c1", BookingDate: "2025-06-12", TimeSlots: []string{"09:00"}, CouponCode: "ONCE"}

		deps.courts.EXPECT().GetCourt(deps.ctx, "c1").Return(clubCourt, nil).Times(1)
		deps.coupons.EXPECT().ValidateCoupon(deps.ctx, "ONCE").Return(coupon.Coupon{}, rejection).Times(1)
		deps.repo.EXPECT().InsertBooking(gomock.Any(), gomock.Any()).Times(0)
		deps.notifier.EXPECT().BookingReceived(gomock.Any(), gomock.Any()).Times(0)

		_, err := deps.service.CreateBooking(deps.ctx, member, req)

		var got *coupon.RejectionError
		require.True(t, errors.As(err, &got))
		assert.Equal(t, coupon.ReasonUsageExhausted, got.Reason)
	})

	t.Run("price mismatch", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		total := pricing.Cents(2000)
		req := bk.Request{CourtID: "c1", BookingDate: "2025-06-12", TimeSlots: []string{"09:00", "10:00"}, TotalPrice: &total}

		deps.courts.EXPECT().GetCourt(deps.ctx, "c1").Return(clubCourt, nil).Times(1)
		deps.repo.EXPECT().InsertBooking(gomock.Any(), gomock.Any()).Times(0)

		_, err := deps.service.CreateBooking(deps.ctx, member, req)

		require.ErrorIs(t, err, bk.ErrPriceMismatch)
	})

	t.Run("invalid selection never reaches storage", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.courts.EXPECT().GetCourt(gomock.Any(), gomock.Any()).Times(0)
		deps.repo.EXPECT().InsertBooking(gomock.Any(), gomock.Any()).Times(0)

		_, err := deps.service.CreateBooking(deps.ctx, member, bk.Request{CourtID: "c1", BookingDate: "2025-06-12"})

		require.ErrorIs(t, err, bk.ErrNoSlots)
	})

	t.Run("unavailable court", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		closed := clubCourt
		closed.Status = court.StatusMaintenance

		deps.courts.EXPECT().GetCourt(deps.ctx, "c1").Return(closed, nil).Times(1)
		deps.repo.EXPECT().InsertBooking(gomock.Any(), gomock.Any()).Times(0)

		_, err := deps.service.CreateBooking(deps.ctx, member, bk.Request{CourtID: "c1", BookingDate: "2025-06-12", TimeSlots: []string{"09:00"}})

		require.ErrorIs(t, err, bk.ErrCourtUnavailable)
	})

	t.Run("slot already taken", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.courts.EXPECT().GetCourt(deps.ctx, "c1").Return(clubCourt, nil).Times(1)
		deps.repo.EXPECT().InsertBooking(deps.ctx, gomock.Any()).Return(bk.Booking{}, bk.ErrSlotTaken).Times(1)
		deps.notifier.EXPECT().BookingReceived(gomock.Any(), gomock.Any()).Times(0)

		_, err := deps.service.CreateBooking(deps.ctx, member, bk.Request{CourtID: "c1", BookingDate: "2025-06-12", TimeSlots: []string{"09:00"}})

		require.ErrorIs(t, err, bk.ErrSlotTaken)
	})
}

func TestApproveBooking(t *testing.T) {
	t.Run("pending booking is approved and owner promoted", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		approved := withStatus(pendingBooking, bk.StatusApproved)

		deps.repo.EXPECT().GetBookingByID(deps.ctx, "b1").Return(pendingBooking, nil).Times(1)
		deps.repo.EXPECT().ApproveBooking(deps.ctx, "b1").Return(approved, true, nil).Times(1)
		deps.notifier.EXPECT().BookingApproved(deps.ctx, approved).Times(1)

		booking, err := deps.service.ApproveBooking(deps.ctx, "b1")

		require.NoError(t, err)
		assert.Equal(t, bk.StatusApproved, booking.Status)
	})

	t.Run("approving twice is a no-op", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		approved := withStatus(pendingBooking, bk.StatusApproved)

		deps.repo.EXPECT().GetBookingByID(deps.ctx, "b1").Return(approved, nil).Times(1)
		deps.repo.EXPECT().ApproveBooking(gomock.Any(), gomock.Any()).Times(0)
		deps.notifier.EXPECT().BookingApproved(gomock.Any(), gomock.Any()).Times(0)

		booking, err := deps.service.ApproveBooking(deps.ctx, "b1")

		require.NoError(t, err)
		assert.Equal(t, approved, booking)
	})

	t.Run("lost race against another approval", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		approved := withStatus(pendingBooking, bk.StatusApproved)

		deps.repo.EXPECT().GetBookingByID(deps.ctx, "b1").Return(pendingBooking, nil).Times(1)
		deps.repo.EXPECT().ApproveBooking(deps.ctx, "b1").Return(approved, false, nil).Times(1)
		deps.notifier.EXPECT().BookingApproved(gomock.Any(), gomock.Any()).Times(0)

		_, err := deps.service.ApproveBooking(deps.ctx, "b1")

		require.NoError(t, err)
	})

	for _, status := range []bk.Status{bk.StatusRejected, bk.StatusConfirmed} {
		t.Run(string(status)+" cannot be approved", func(t *testing.T) {
			ctrl, deps := newTestDeps(t)
			defer ctrl.Finish()

			deps.repo.EXPECT().GetBookingByID(deps.ctx, "b1").Return(withStatus(pendingBooking, status), nil).Times(1)
			deps.repo.EXPECT().ApproveBooking(gomock.Any(), gomock.Any()).Times(0)

			_, err := deps.service.ApproveBooking(deps.ctx, "b1")

			require.ErrorIs(t, err, bk.ErrInvalidBookingState)
		})
	}

	t.Run("transaction failure", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.repo.EXPECT().GetBookingByID(deps.ctx, "b1").Return(pendingBooking, nil).Times(1)
		deps.repo.EXPECT().ApproveBooking(deps.ctx, "b1").Return(bk.Booking{}, false, assert.AnError).Times(1)
		deps.notifier.EXPECT().BookingApproved(gomock.Any(), gomock.Any()).Times(0)

		_, err := deps.service.ApproveBooking(deps.ctx, "b1")

		require.ErrorIs(t, err, assert.AnError)
	})
}

func TestRejectBooking(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		rejected := withStatus(pendingBooking, bk.StatusRejected)

		deps.repo.EXPECT().GetBookingByID(deps.ctx, "b1").Return(pendingBooking, nil).Times(1)
		deps.repo.EXPECT().RejectBooking(deps.ctx, "b1").Return(rejected, nil).Times(1)
		deps.notifier.EXPECT().BookingRejected(deps.ctx, rejected, "court closed").Times(1)

		booking, err := deps.service.RejectBooking(deps.ctx, "b1", " court closed ")

		require.NoError(t, err)
		assert.Equal(t, bk.StatusRejected, booking.Status)
	})

	t.Run("only pending bookings can be rejected", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.repo.EXPECT().GetBookingByID(deps.ctx, "b1").Return(withStatus(pendingBooking, bk.StatusApproved), nil).Times(1)
		deps.repo.EXPECT().RejectBooking(gomock.Any(), gomock.Any()).Times(0)

		_, err := deps.service.RejectBooking(deps.ctx, "b1", "")

		require.ErrorIs(t, err, bk.ErrInvalidBookingState)
	})

	t.Run("not found", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.repo.EXPECT().GetBookingByID(deps.ctx, "b1").Return(bk.Booking{}, bk.ErrBookingNotFound).Times(1)

		_, err := deps.service.RejectBooking(deps.ctx, "b1", "")

		require.ErrorIs(t, err, bk.ErrBookingNotFound)
	})
}

func TestCancelBooking(t *testing.T) {
	t.Run("owner cancels", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.repo.EXPECT().GetBookingByID(deps.ctx, "b1").Return(pendingBooking, nil).Times(1)
		deps.repo.EXPECT().DeleteBooking(deps.ctx, "b1").Return(nil).Times(1)

		require.NoError(t, deps.service.CancelBooking(deps.ctx, member, "b1"))
	})

	t.Run("someone else's booking", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		stranger := identity.Session{UserID: "u2", Email: "bob@club.test", Role: identity.RoleMember}

		deps.repo.EXPECT().GetBookingByID(deps.ctx, "b1").Return(pendingBooking, nil).Times(1)
		deps.repo.EXPECT().DeleteBooking(gomock.Any(), gomock.Any()).Times(0)

		require.ErrorIs(t, deps.service.CancelBooking(deps.ctx, stranger, "b1"), bk.ErrNotAllowed)
	})

	t.Run("confirmed bookings stay", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.repo.EXPECT().GetBookingByID(deps.ctx, "b1").Return(withStatus(pendingBooking, bk.StatusConfirmed), nil).Times(1)
		deps.repo.EXPECT().DeleteBooking(gomock.Any(), gomock.Any()).Times(0)

		require.ErrorIs(t, deps.service.CancelBooking(deps.ctx, admin, "b1"), bk.ErrInvalidBookingState)
	})
}

func TestListBookings(t *testing.T) {
	t.Run("non admins only see their own", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.repo.EXPECT().ListBookings(deps.ctx, bk.Filter{Status: bk.StatusApproved, Email: "ann@club.test"}).
			Return([]bk.Booking{pendingBooking}, nil).Times(1)

		bookings, err := deps.service.ListBookings(deps.ctx, member, bk.Filter{Status: bk.StatusApproved, Email: "bob@club.test"})

		require.NoError(t, err)
		assert.Len(t, bookings, 1)
	})

	t.Run("admins filter freely", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.repo.EXPECT().ListBookings(deps.ctx, bk.Filter{Email: "bob@club.test"}).Return([]bk.Booking{}, nil).Times(1)

		_, err := deps.service.ListBookings(deps.ctx, admin, bk.Filter{Email: "bob@club.test"})

		require.NoError(t, err)
	})

	t.Run("unknown status", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.repo.EXPECT().ListBookings(gomock.Any(), gomock.Any()).Times(0)

		_, err := deps.service.ListBookings(deps.ctx, admin, bk.Filter{Status: "paid"})

		require.ErrorIs(t, err, bk.ErrInvalidBookingState)
	})

	t.Run("pending search", func(t *testing.T) {
		ctrl, deps := newTestDeps(t)
		defer ctrl.Finish()

		deps.repo.EXPECT().ListBookings(deps.ctx, bk.Filter{Status: bk.StatusPending, Search: "tennis"}).Return([]bk.Booking{pendingBooking}, nil).Times(1)

		bookings, err := deps.service.ListPendingBookings(deps.ctx, " tennis ")

		require.NoError(t, err)
		assert.Equal(t, []bk.Booking{pendingBooking}, bookings)
	})
}

func TestGetBooking(t *testing.T) {
	ctrl, deps := newTestDeps(t)
	defer ctrl.Finish()

	deps.repo.EXPECT().GetBookingByID(deps.ctx, "b1").Return(pendingBooking, nil).Times(3)

	_, err := deps.service.GetBooking(deps.ctx, member, "b1")
	require.NoError(t, err)

	_, err = deps.service.GetBooking(deps.ctx, admin, "b1")
	require.NoError(t, err)

	_, err = deps.service.GetBooking(deps.ctx, identity.Session{UserID: "u9", Email: "x@club.test", Role: identity.RoleUser}, "b1")
	require.ErrorIs(t, err, bk.ErrNotAllowed)
}

func TestPurgeStalePending(t *testing.T) {
	ctrl, deps := newTestDeps(t)
	defer ctrl.Finish()

	deps.repo.EXPECT().DeleteStalePending(deps.ctx, today.Add(-72*time.Hour)).Return(int64(3), nil).Times(1)

	purged, err := deps.service.PurgeStalePending(deps.ctx, 72*time.Hour)

	require.NoError(t, err)
	assert.Equal(t, int64(3), purged)
}
