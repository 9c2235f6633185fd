package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hanksha/sports-club-backend/database"
	"github.com/hanksha/sports-club-backend/user"
	"github.com/jackc/pgx/v5"
)

type Repository struct{ db database.DB }

func NewRepository(db database.DB) *Repository {
	return &Repository{db: db}
}

const bookingColumns = `id, court_id, court_name, court_type, user_id, user_email, user_name,
	to_char(booking_date, 'YYYY-MM-DD'), time_slots, total_price, status, COALESCE(coupon_code, ''), created_at, updated_at`

func scanBooking(row pgx.Row) (Booking, error) {
	var booking Booking
	err := row.Scan(
		&booking.ID,
		&booking.CourtID,
		&booking.CourtName,
		&booking.CourtType,
		&booking.UserID,
		&booking.UserEmail,
		&booking.UserName,
		&booking.BookingDate,
		&booking.TimeSlots,
		&booking.TotalPrice,
		&booking.Status,
		&booking.CouponCode,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)

	return booking, err
}

func (r *Repository) GetBookingByID(ctx context.Context, id string) (Booking, error) {
	sql := `SELECT ` + bookingColumns + ` FROM club.bookings WHERE id::text = $1;`

	booking, err := scanBooking(r.db.QueryRow(ctx, sql, id))

	if errors.Is(err, pgx.ErrNoRows) {
		return Booking{}, ErrBookingNotFound
	}

	if err != nil {
		return Booking{}, fmt.Errorf("failed to fetch booking with id %v: %w", id, err)
	}

	return booking, nil
}

func (r *Repository) ListBookings(ctx context.Context, filter Filter) ([]Booking, error) {
	sql := `
		SELECT ` + bookingColumns + `
		FROM club.bookings
		WHERE ($1 = '' OR status = $1)
		AND ($2 = '' OR lower(user_email) = lower($2))
		AND ($3 = '' OR court_name ILIKE $4 OR court_type ILIKE $4 OR user_name ILIKE $4 OR user_email ILIKE $4)
		ORDER BY created_at DESC;
	`

	rows, err := r.db.Query(ctx, sql, filter.Status, filter.Email, filter.Search, database.ContainsPattern(filter.Search))

	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings: %w", err)
	}

	defer rows.Close()

	bookings := []Booking{}

	for rows.Next() {
		booking, err := scanBooking(rows)

		if err != nil {
			return nil, fmt.Errorf("error scanning booking row: %w", err)
		}

		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bookings rows: %w", err)
	}

	return bookings, nil
}

// InsertBooking stores the booking and reserves each of its slots. A slot
// already held by another booking fails the whole insert with ErrSlotTaken.
func (r *Repository) InsertBooking(ctx context.Context, b Booking) (Booking, error) {
	insertBooking := `
		INSERT INTO club.bookings(
		court_id, court_name, court_type, user_id, user_email, user_name, booking_date, time_slots, total_price, status, coupon_code)
		VALUES ($1::uuid, $2, $3, $4, $5, $6, $7::date, $8, $9, $10, NULLIF($11, ''))
		RETURNING ` + bookingColumns + `;
	`

	reserveSlots := `
		INSERT INTO club.booking_slots(court_id, booking_date, slot, booking_id)
		SELECT $1::uuid, $2::date, unnest($3::text[]), $4::uuid;
	`

	var inserted Booking

	err := database.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		var err error
		inserted, err = scanBooking(tx.QueryRow(ctx, insertBooking,
			b.CourtID,
			b.CourtName,
			b.CourtType,
			b.UserID,
			b.UserEmail,
			b.UserName,
			b.BookingDate,
			b.TimeSlots,
			b.TotalPrice,
			StatusPending,
			b.CouponCode,
		))

		if err != nil {
			return fmt.Errorf("failed to insert booking: %w", err)
		}

		_, err = tx.Exec(ctx, reserveSlots, b.CourtID, b.BookingDate, b.TimeSlots, inserted.ID)

		if database.IsUniqueViolation(err) {
			return ErrSlotTaken
		}

		if err != nil {
			return fmt.Errorf("failed to reserve slots: %w", err)
		}

		return nil
	})

	if err != nil {
		return Booking{}, err
	}

	return inserted, nil
}

func lockBooking(ctx context.Context, tx pgx.Tx, id string) (Booking, error) {
	sql := `SELECT ` + bookingColumns + ` FROM club.bookings WHERE id::text = $1 FOR UPDATE;`

	booking, err := scanBooking(tx.QueryRow(ctx, sql, id))

	if errors.Is(err, pgx.ErrNoRows) {
		return Booking{}, ErrBookingNotFound
	}

	if err != nil {
		return Booking{}, fmt.Errorf("failed to lock booking %v: %w", id, err)
	}

	return booking, nil
}

func setStatus(ctx context.Context, tx pgx.Tx, id string, status Status) (Booking, error) {
	sql := `
		UPDATE club.bookings
		SET status = $1, updated_at = now()
		WHERE id::text = $2
		RETURNING ` + bookingColumns + `;
	`

	booking, err := scanBooking(tx.QueryRow(ctx, sql, status, id))

	if err != nil {
		return Booking{}, fmt.Errorf("failed to update booking '%v' status: %w", id, err)
	}

	return booking, nil
}

// ApproveBooking approves a pending booking and promotes its owner in one
// transaction. The flag reports whether anything changed: an approved
// booking is returned untouched.
func (r *Repository) ApproveBooking(ctx context.Context, id string) (Booking, bool, error) {
	var approved Booking
	var changed bool

	err := database.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		booking, err := lockBooking(ctx, tx, id)

		if err != nil {
			return err
		}

		switch booking.Status {
		case StatusApproved:
			approved = booking
			return nil
		case StatusPending:
		default:
			return ErrInvalidBookingState
		}

		approved, err = setStatus(ctx, tx, id, StatusApproved)

		if err != nil {
			return err
		}

		if _, err := user.Promote(ctx, tx, booking.UserID); err != nil {
			return err
		}

		changed = true

		return nil
	})

	if err != nil {
		return Booking{}, false, err
	}

	return approved, changed, nil
}

// RejectBooking rejects a pending booking and releases its slots.
func (r *Repository) RejectBooking(ctx context.Context, id string) (Booking, error) {
	var rejected Booking

	err := database.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		booking, err := lockBooking(ctx, tx, id)

		if err != nil {
			return err
		}

		if booking.Status != StatusPending {
			return ErrInvalidBookingState
		}

		rejected, err = setStatus(ctx, tx, id, StatusRejected)

		if err != nil {
			return err
		}

		if _, err := tx.Exec(ctx, `DELETE FROM club.booking_slots WHERE booking_id::text = $1;`, id); err != nil {
			return fmt.Errorf("failed to release slots of booking '%v': %w", id, err)
		}

		return nil
	})

	if err != nil {
		return Booking{}, err
	}

	return rejected, nil
}

// DeleteBooking removes a pending or approved booking; its slots go with it.
func (r *Repository) DeleteBooking(ctx context.Context, id string) error {
	sql := `DELETE FROM club.bookings WHERE id::text = $1 AND status IN ('pending', 'approved');`

	tag, err := r.db.Exec(ctx, sql, id)

	if err != nil {
		return fmt.Errorf("failed to delete booking '%v': %w", id, err)
	}

	if tag.RowsAffected() == 0 {
		return ErrInvalidBookingState
	}

	return nil
}

func (r *Repository) DeleteStalePending(ctx context.Context, before time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM club.bookings WHERE status = 'pending' AND created_at < $1;`, before)

	if err != nil {
		return 0, fmt.Errorf("failed to purge pending bookings: %w", err)
	}

	return tag.RowsAffected(), nil
}

// Confirm marks an approved booking as paid inside tx.
func Confirm(ctx context.Context, tx pgx.Tx, id string) (Booking, error) {
	booking, err := lockBooking(ctx, tx, id)

	if err != nil {
		return Booking{}, err
	}

	if booking.Status != StatusApproved {
		return Booking{}, ErrInvalidBookingState
	}

	return setStatus(ctx, tx, id, StatusConfirmed)
}

func (r *Repository) CountBookingsPerStatus(ctx context.Context) (StatusCounts, error) {
	sql := `
		SELECT
			COUNT(*) FILTER (WHERE status = 'pending'),
			COUNT(*) FILTER (WHERE status = 'approved'),
			COUNT(*) FILTER (WHERE status = 'rejected'),
			COUNT(*) FILTER (WHERE status = 'confirmed')
		FROM club.bookings;
	`

	var counts StatusCounts
	err := r.db.QueryRow(ctx, sql).Scan(&counts.Pending, &counts.Approved, &counts.Rejected, &counts.Confirmed)

	if err != nil {
		return StatusCounts{}, fmt.Errorf("failed to count bookings per status: %w", err)
	}

	return counts, nil
}

func (r *Repository) GetBookingCountPerCourtType(ctx context.Context) ([]CourtTypeBookingCount, error) {
	sql := `
		SELECT court_type, COUNT(*) as booking_count FROM club.bookings
		WHERE status IN ('approved', 'confirmed')
		GROUP BY court_type
		ORDER BY booking_count DESC
	`

	return r.queryCourtTypeCounts(ctx, sql)
}

func (r *Repository) GetBookingCountPerCourtTypeInPeriod(ctx context.Context, start, end time.Time) ([]CourtTypeBookingCount, error) {
	sql := `
		SELECT court_type, COUNT(*) as booking_count FROM club.bookings
		WHERE booking_date BETWEEN $1::date AND $2::date
		AND status IN ('approved', 'confirmed')
		GROUP BY court_type
		ORDER BY booking_count DESC
	`

	return r.queryCourtTypeCounts(ctx, sql, start.Format(time.DateOnly), end.Format(time.DateOnly))
}

func (r *Repository) queryCourtTypeCounts(ctx context.Context, sql string, args ...any) ([]CourtTypeBookingCount, error) {
	rows, err := r.db.Query(ctx, sql, args...)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings count per court type: %w", err)
	}

	defer rows.Close()

	stats := []CourtTypeBookingCount{}

	for rows.Next() {
		var stat CourtTypeBookingCount

		if err := rows.Scan(&stat.CourtType, &stat.Count); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		stats = append(stats, stat)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bookings rows: %w", err)
	}

	return stats, nil
}

func (r *Repository) GetBookingCountPerWeekDay(ctx context.Context) ([]WeekDayBookingCount, error) {
	sql := `
		SELECT
			TRIM(TO_CHAR(booking_date, 'Day')) as day_of_week,
			COUNT(*) as booking_count
		FROM
			club.bookings
		WHERE status IN ('approved', 'confirmed')
		GROUP BY
			TRIM(TO_CHAR(booking_date, 'Day'))
		ORDER BY
			booking_count DESC;
	`

	rows, err := r.db.Query(ctx, sql)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings count per week day: %w", err)
	}

	defer rows.Close()

	stats := []WeekDayBookingCount{}

	for rows.Next() {
		var weekDay string
		var count int
		err := rows.Scan(&weekDay, &count)

		if err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		stats = append(stats, WeekDayBookingCount{WeekDay: weekDay, Count: count})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bookings rows: %w", err)
	}

	return stats, nil
}
