package payment

import (
	"context"
	"errors"
	"fmt"

	"github.com/hanksha/sports-club-backend/booking"
	"github.com/hanksha/sports-club-backend/coupon"
	"github.com/hanksha/sports-club-backend/database"
	"github.com/hanksha/sports-club-backend/pricing"
	"github.com/jackc/pgx/v5"
)

type Repository struct{ db database.DB }

func NewRepository(db database.DB) *Repository {
	return &Repository{db: db}
}

const paymentColumns = `id, booking_id, user_email, transaction_id, amount, method, status, COALESCE(coupon_code, ''), created_at`

func scanPayment(row pgx.Row) (Payment, error) {
	var p Payment
	err := row.Scan(
		&p.ID,
		&p.BookingID,
		&p.UserEmail,
		&p.TransactionID,
		&p.Amount,
		&p.Method,
		&p.Status,
		&p.CouponCode,
		&p.CreatedAt,
	)

	return p, err
}

// RecordPayment inserts the payment, confirms its booking and redeems its
// coupon in one transaction. When the transaction id is already known the
// stored payment is returned and nothing else happens.
func (r *Repository) RecordPayment(ctx context.Context, p Payment) (Payment, bool, error) {
	insert := `
		INSERT INTO club.payments(booking_id, user_email, transaction_id, amount, method, status, coupon_code)
		VALUES ($1::uuid, $2, $3, $4, $5, $6, NULLIF($7, ''))
		ON CONFLICT (transaction_id) DO NOTHING
		RETURNING ` + paymentColumns + `;
	`

	var recorded Payment
	var created bool

	err := database.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		var err error
		recorded, err = scanPayment(tx.QueryRow(ctx, insert,
			p.BookingID,
			p.UserEmail,
			p.TransactionID,
			p.Amount,
			p.Method,
			p.Status,
			p.CouponCode,
		))

		if errors.Is(err, pgx.ErrNoRows) {
			recorded, err = scanPayment(tx.QueryRow(ctx, `SELECT `+paymentColumns+` FROM club.payments WHERE transaction_id = $1;`, p.TransactionID))

			if err != nil {
				return fmt.Errorf("failed to fetch payment '%v': %w", p.TransactionID, err)
			}

			return nil
		}

		if err != nil {
			return fmt.Errorf("failed to insert payment: %w", err)
		}

		if _, err := booking.Confirm(ctx, tx, p.BookingID); err != nil {
			return err
		}

		if len(p.CouponCode) != 0 {
			// an exhausted coupon stays at its cap; the payment still goes through
			if _, err := coupon.Redeem(ctx, tx, p.CouponCode); err != nil {
				return err
			}
		}

		created = true

		return nil
	})

	if err != nil {
		return Payment{}, false, err
	}

	return recorded, created, nil
}

func (r *Repository) ListPayments(ctx context.Context, email string) ([]Payment, error) {
	sql := `
		SELECT ` + paymentColumns + ` FROM club.payments
		WHERE ($1 = '' OR lower(user_email) = lower($1))
		ORDER BY created_at DESC;
	`

	rows, err := r.db.Query(ctx, sql, email)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch payments: %w", err)
	}

	defer rows.Close()

	payments := []Payment{}

	for rows.Next() {
		p, err := scanPayment(rows)

		if err != nil {
			return nil, fmt.Errorf("error scanning payment row: %w", err)
		}

		payments = append(payments, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating payment rows: %w", err)
	}

	return payments, nil
}

func (r *Repository) TotalRevenue(ctx context.Context) (pricing.Cents, error) {
	var total pricing.Cents
	err := r.db.QueryRow(ctx, `SELECT COALESCE(SUM(amount), 0)::bigint FROM club.payments WHERE status = 'paid';`).Scan(&total)

	if err != nil {
		return 0, fmt.Errorf("failed to sum payments: %w", err)
	}

	return total, nil
}
