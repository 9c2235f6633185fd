package court

import (
	"slices"
	"time"

	"github.com/hanksha/sports-club-backend/pricing"
)

type Type string

const (
	TypeTennis     Type = "tennis"
	TypeBadminton  Type = "badminton"
	TypeBasketball Type = "basketball"
	TypeVolleyball Type = "volleyball"
	TypeSquash     Type = "squash"
	TypeOther      Type = "other"
)

type Status string

const (
	StatusAvailable   Status = "available"
	StatusUnavailable Status = "unavailable"
	StatusMaintenance Status = "maintenance"
)

type Court struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	Type         Type          `json:"type"`
	Image        string        `json:"image"`
	Location     string        `json:"location"`
	PricePerHour pricing.Cents `json:"pricePerHour"`
	SlotTimes    []string      `json:"slotTimes"`
	Description  string        `json:"description"`
	Features     []string      `json:"features"`
	Status       Status        `json:"status"`
	CreatedAt    time.Time     `json:"createdAt"`
	UpdatedAt    time.Time     `json:"updatedAt"`
}

// Patch carries the fields of a partial court update. Nil means unchanged.
type Patch struct {
	Name         *string        `json:"name"`
	Type         *Type          `json:"type"`
	Image        *string        `json:"image"`
	Location     *string        `json:"location"`
	PricePerHour *pricing.Cents `json:"pricePerHour"`
	SlotTimes    []string       `json:"slotTimes"`
	Description  *string        `json:"description"`
	Features     []string       `json:"features"`
	Status       *Status        `json:"status"`
}

type Filter struct {
	Search string
	Status Status
	Page   int
	Limit  int
}

const (
	DefaultPageSize = 6
	MaxPageSize     = 50
)

func (f Filter) Normalize() Filter {
	if f.Page < 1 {
		f.Page = 1
	}

	if f.Limit < 1 {
		f.Limit = DefaultPageSize
	}

	if f.Limit > MaxPageSize {
		f.Limit = MaxPageSize
	}

	return f
}

func (f Filter) Offset() int {
	return (f.Page - 1) * f.Limit
}

func (c Court) HasSlot(slot string) bool {
	return slices.Contains(c.SlotTimes, slot)
}
