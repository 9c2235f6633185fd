package pricing

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
)

// Cents is an amount of money in minor currency units.
type Cents int64

var ErrInvalidAmount = errors.New("invalid amount")

func FromDollars(dollars float64) (Cents, error) {
	if math.IsNaN(dollars) || math.IsInf(dollars, 0) {
		return 0, ErrInvalidAmount
	}

	return Cents(math.Round(dollars * 100)), nil
}

func (c Cents) Dollars() float64 {
	return float64(c) / 100
}

func (c Cents) String() string {
	return strconv.FormatFloat(c.Dollars(), 'f', 2, 64)
}

func (c Cents) MarshalJSON() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Cents) UnmarshalJSON(data []byte) error {
	var dollars float64

	if err := json.Unmarshal(data, &dollars); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidAmount, err)
	}

	parsed, err := FromDollars(dollars)

	if err != nil {
		return err
	}

	*c = parsed

	return nil
}

// SlotTotal is the undiscounted price of count one-hour slots.
func SlotTotal(count int, hourly Cents) Cents {
	return Cents(int64(count) * int64(hourly))
}

// ApplyDiscount removes pct percent from total, rounding half up to the cent.
func ApplyDiscount(total Cents, pct int) Cents {
	if pct <= 0 {
		return total
	}

	if pct >= 100 {
		return 0
	}

	return Cents((int64(total)*int64(100-pct) + 50) / 100)
}
