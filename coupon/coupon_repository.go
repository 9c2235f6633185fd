package coupon

import (
	"context"
	"errors"
	"fmt"

	"github.com/hanksha/sports-club-backend/database"
	"github.com/jackc/pgx/v5"
)

type Repository struct{ db database.DB }

func NewRepository(db database.DB) *Repository {
	return &Repository{db: db}
}

const couponColumns = `id, code, discount_percentage, expiry_date, usage_limit, used_count, created_at`

func scanCoupon(row pgx.Row) (Coupon, error) {
	var c Coupon
	err := row.Scan(
		&c.ID,
		&c.Code,
		&c.DiscountPercentage,
		&c.ExpiryDate,
		&c.UsageLimit,
		&c.UsedCount,
		&c.CreatedAt,
	)

	return c, err
}

func (r *Repository) GetCouponByCode(ctx context.Context, code string) (Coupon, error) {
	sql := `SELECT ` + couponColumns + ` FROM club.coupons WHERE code = $1;`

	c, err := scanCoupon(r.db.QueryRow(ctx, sql, code))

	if errors.Is(err, pgx.ErrNoRows) {
		return Coupon{}, ErrCouponNotFound
	}

	if err != nil {
		return Coupon{}, fmt.Errorf("failed to fetch coupon '%v': %w", code, err)
	}

	return c, nil
}

func (r *Repository) ListCoupons(ctx context.Context) ([]Coupon, error) {
	rows, err := r.db.Query(ctx, `SELECT `+couponColumns+` FROM club.coupons ORDER BY created_at DESC;`)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch coupons: %w", err)
	}

	defer rows.Close()

	coupons := []Coupon{}

	for rows.Next() {
		c, err := scanCoupon(rows)

		if err != nil {
			return nil, fmt.Errorf("error scanning coupon row: %w", err)
		}

		coupons = append(coupons, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating coupon rows: %w", err)
	}

	return coupons, nil
}

func (r *Repository) InsertCoupon(ctx context.Context, c Coupon) (Coupon, error) {
	sql := `
		INSERT INTO club.coupons(code, discount_percentage, expiry_date, usage_limit)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + couponColumns + `;
	`

	inserted, err := scanCoupon(r.db.QueryRow(ctx, sql, c.Code, c.DiscountPercentage, c.ExpiryDate, c.UsageLimit))

	if database.IsUniqueViolation(err) {
		return Coupon{}, ErrDuplicateCode
	}

	if err != nil {
		return Coupon{}, fmt.Errorf("failed to insert coupon: %w", err)
	}

	return inserted, nil
}

func (r *Repository) DeleteCoupon(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM club.coupons WHERE id::text = $1;`, id)

	if err != nil {
		return fmt.Errorf("failed to delete coupon '%v': %w", id, err)
	}

	if tag.RowsAffected() == 0 {
		return ErrCouponNotFound
	}

	return nil
}

// Redeem consumes one use of code inside tx. The increment is conditional
// so used_count never passes usage_limit; it reports whether a use was
// taken.
func Redeem(ctx context.Context, tx pgx.Tx, code string) (bool, error) {
	sql := `
		UPDATE club.coupons
		SET used_count = used_count + 1
		WHERE code = $1
		AND (usage_limit IS NULL OR used_count < usage_limit);
	`

	tag, err := tx.Exec(ctx, sql, NormalizeCode(code))

	if err != nil {
		return false, fmt.Errorf("failed to redeem coupon '%v': %w", code, err)
	}

	return tag.RowsAffected() == 1, nil
}
