package payment_test

import (
	"context"
	"testing"
	"time"

	"github.com/hanksha/sports-club-backend/booking"
	"github.com/hanksha/sports-club-backend/court"
	"github.com/hanksha/sports-club-backend/payment"
	"github.com/hanksha/sports-club-backend/pricing"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var stamp = time.Date(2025, 6, 12, 10, 0, 0, 0, time.UTC)

var paymentCols = []string{"id", "booking_id", "user_email", "transaction_id", "amount", "method", "status", "coupon_code", "created_at"}

var bookingCols = []string{
	"id", "court_id", "court_name", "court_type", "user_id", "user_email", "user_name",
	"booking_date", "time_slots", "total_price", "status", "coupon_code", "created_at", "updated_at",
}

func paymentRow(coupon string) *pgxmock.Rows {
	return pgxmock.NewRows(paymentCols).AddRow(
		"p1", "b1", "ann@club.test", "pi_123", pricing.Cents(3200), payment.MethodCard, payment.StatusPaid, coupon, stamp,
	)
}

func bookingRow(status booking.Status) *pgxmock.Rows {
	return pgxmock.NewRows(bookingCols).AddRow(
		"b1", "c1", "Court A", court.TypeTennis, "u1", "ann@club.test", "Ann",
		"2025-06-12", []string{"09:00", "10:00"}, pricing.Cents(4000), status, "", stamp, stamp,
	)
}

func newMockRepository(t *testing.T) (*payment.Repository, pgxmock.PgxPoolIface) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	return payment.NewRepository(mock), mock
}

func paid(coupon string) payment.Payment {
	return payment.Payment{
		BookingID:     "b1",
		UserEmail:     "ann@club.test",
		TransactionID: "pi_123",
		Amount:        3200,
		Method:        payment.MethodCard,
		Status:        payment.StatusPaid,
		CouponCode:    coupon,
	}
}

func insertArgs(coupon string) []any {
	return []any{"b1", "ann@club.test", "pi_123", pricing.Cents(3200), payment.MethodCard, payment.StatusPaid, coupon}
}

func TestRepository_RecordPayment(t *testing.T) {
	t.Run("confirms the booking and redeems the coupon together", func(t *testing.T) {
		repo, mock := newMockRepository(t)

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO club\.payments`).WithArgs(insertArgs("SUMMER20")...).WillReturnRows(paymentRow("SUMMER20"))
		mock.ExpectQuery(`FOR UPDATE`).WithArgs("b1").WillReturnRows(bookingRow(booking.StatusApproved))
		mock.ExpectQuery(`UPDATE club\.bookings`).WithArgs(booking.StatusConfirmed, "b1").WillReturnRows(bookingRow(booking.StatusConfirmed))
		mock.ExpectExec(`UPDATE club\.coupons`).WithArgs("SUMMER20").WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectCommit()

		p, created, err := repo.RecordPayment(context.Background(), paid("SUMMER20"))

		require.NoError(t, err)
		assert.True(t, created)
		assert.Equal(t, "p1", p.ID)
		assert.Equal(t, pricing.Cents(3200), p.Amount)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("without coupon nothing is redeemed", func(t *testing.T) {
		repo, mock := newMockRepository(t)

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO club\.payments`).WithArgs(insertArgs("")...).WillReturnRows(paymentRow(""))
		mock.ExpectQuery(`FOR UPDATE`).WithArgs("b1").WillReturnRows(bookingRow(booking.StatusApproved))
		mock.ExpectQuery(`UPDATE club\.bookings`).WithArgs(booking.StatusConfirmed, "b1").WillReturnRows(bookingRow(booking.StatusConfirmed))
		mock.ExpectCommit()

		_, created, err := repo.RecordPayment(context.Background(), paid(""))

		require.NoError(t, err)
		assert.True(t, created)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("known transaction returns the stored payment", func(t *testing.T) {
		repo, mock := newMockRepository(t)

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO club\.payments`).WithArgs(insertArgs("SUMMER20")...).WillReturnRows(pgxmock.NewRows(paymentCols))
		mock.ExpectQuery(`FROM club\.payments WHERE transaction_id`).WithArgs("pi_123").WillReturnRows(paymentRow("SUMMER20"))
		mock.ExpectCommit()

		p, created, err := repo.RecordPayment(context.Background(), paid("SUMMER20"))

		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, "p1", p.ID)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("booking not approved rolls the payment back", func(t *testing.T) {
		repo, mock := newMockRepository(t)

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO club\.payments`).WithArgs(insertArgs("SUMMER20")...).WillReturnRows(paymentRow("SUMMER20"))
		mock.ExpectQuery(`FOR UPDATE`).WithArgs("b1").WillReturnRows(bookingRow(booking.StatusPending))
		mock.ExpectRollback()

		_, created, err := repo.RecordPayment(context.Background(), paid("SUMMER20"))

		require.ErrorIs(t, err, booking.ErrInvalidBookingState)
		assert.False(t, created)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("exhausted coupon still records the payment", func(t *testing.T) {
		repo, mock := newMockRepository(t)

		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO club\.payments`).WithArgs(insertArgs("SUMMER20")...).WillReturnRows(paymentRow("SUMMER20"))
		mock.ExpectQuery(`FOR UPDATE`).WithArgs("b1").WillReturnRows(bookingRow(booking.StatusApproved))
		mock.ExpectQuery(`UPDATE club\.bookings`).WithArgs(booking.StatusConfirmed, "b1").WillReturnRows(bookingRow(booking.StatusConfirmed))
		mock.ExpectExec(`UPDATE club\.coupons`).WithArgs("SUMMER20").WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		mock.ExpectCommit()

		_, created, err := repo.RecordPayment(context.Background(), paid("SUMMER20"))

		require.NoError(t, err)
		assert.True(t, created)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
