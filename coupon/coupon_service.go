package coupon

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

//go:generate mockgen -source=coupon_service.go -destination=mocks/mock_coupon_service.go

type CouponRepository interface {
	GetCouponByCode(ctx context.Context, code string) (Coupon, error)
	ListCoupons(ctx context.Context) ([]Coupon, error)
	InsertCoupon(ctx context.Context, c Coupon) (Coupon, error)
	DeleteCoupon(ctx context.Context, id string) error
}

type Service struct {
	repo   CouponRepository
	now    func() time.Time
	logger *slog.Logger
}

func NewService(repo CouponRepository) *Service {
	return &Service{repo: repo, now: time.Now, logger: slog.Default().With("component", "coupon")}
}

// WithClock replaces the time source used for expiry checks.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// ValidateCoupon checks that code can be applied right now. It never
// consumes a use; redemption happens when the payment is recorded.
func (s *Service) ValidateCoupon(ctx context.Context, code string) (Coupon, error) {
	code = NormalizeCode(code)

	if len(code) == 0 {
		return Coupon{}, ErrCodeRequired
	}

	c, err := s.repo.GetCouponByCode(ctx, code)

	if errors.Is(err, ErrCouponNotFound) {
		return Coupon{}, rejection(ReasonInvalidCode)
	}

	if err != nil {
		return Coupon{}, err
	}

	if c.Expired(s.now()) {
		return Coupon{}, rejection(ReasonExpired)
	}

	if c.Exhausted() {
		return Coupon{}, rejection(ReasonUsageExhausted)
	}

	return c, nil
}

func (s *Service) CreateCoupon(ctx context.Context, c Coupon) (Coupon, error) {
	c.Code = NormalizeCode(c.Code)

	if len(c.Code) == 0 {
		return Coupon{}, ErrCodeRequired
	}

	if c.DiscountPercentage < 1 || c.DiscountPercentage > 100 {
		return Coupon{}, fmt.Errorf("%w: discount must be between 1 and 100", ErrInvalidCoupon)
	}

	if c.UsageLimit != nil && *c.UsageLimit < 1 {
		return Coupon{}, fmt.Errorf("%w: usage limit must be at least 1", ErrInvalidCoupon)
	}

	c.UsedCount = 0

	inserted, err := s.repo.InsertCoupon(ctx, c)

	if err == nil {
		s.logger.Info("coupon created", "code", inserted.Code, "discount", inserted.DiscountPercentage)
	}

	return inserted, err
}

func (s *Service) ListCoupons(ctx context.Context) ([]Coupon, error) {
	return s.repo.ListCoupons(ctx)
}

func (s *Service) DeleteCoupon(ctx context.Context, id string) error {
	return s.repo.DeleteCoupon(ctx, id)
}
