package coupon

import (
	"strings"
	"time"
)

type Coupon struct {
	ID                 string     `json:"id"`
	Code               string     `json:"code"`
	DiscountPercentage int        `json:"discountPercentage"`
	ExpiryDate         *time.Time `json:"expiryDate"`
	UsageLimit         *int       `json:"usageLimit"`
	UsedCount          int        `json:"usedCount"`
	CreatedAt          time.Time  `json:"createdAt"`
}

// NormalizeCode is the form codes are stored and looked up in.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func (c Coupon) Expired(now time.Time) bool {
	return c.ExpiryDate != nil && !now.Before(*c.ExpiryDate)
}

func (c Coupon) Exhausted() bool {
	return c.UsageLimit != nil && c.UsedCount >= *c.UsageLimit
}
