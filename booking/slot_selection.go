package booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/hanksha/sports-club-backend/court"
	"github.com/hanksha/sports-club-backend/pricing"
)

// SlotSelection is the set of slots a user picked for one date.
type SlotSelection struct {
	Date     string
	selected map[string]struct{}
}

func NewSlotSelection(date string, slots ...string) *SlotSelection {
	s := &SlotSelection{Date: strings.TrimSpace(date), selected: map[string]struct{}{}}

	for _, slot := range slots {
		if slot = strings.TrimSpace(slot); len(slot) != 0 {
			s.selected[slot] = struct{}{}
		}
	}

	return s
}

// Toggle adds slot to the selection, or removes it when already picked.
func (s *SlotSelection) Toggle(slot string) {
	if _, ok := s.selected[slot]; ok {
		delete(s.selected, slot)
		return
	}

	s.selected[slot] = struct{}{}
}

func (s *SlotSelection) Len() int {
	return len(s.selected)
}

// Slots returns the selected slots in the order the court lists them.
func (s *SlotSelection) Slots(c court.Court) []string {
	slots := []string{}

	for _, slot := range c.SlotTimes {
		if _, ok := s.selected[slot]; ok {
			slots = append(slots, slot)
		}
	}

	return slots
}

func (s *SlotSelection) Total(hourly pricing.Cents) pricing.Cents {
	return pricing.SlotTotal(s.Len(), hourly)
}

// Check validates what can be known without the court: a bookable date
// and a non-empty selection.
func (s *SlotSelection) Check(today time.Time) error {
	if len(s.Date) == 0 {
		return ErrDateRequired
	}

	date, err := ParseDate(s.Date, today.Location())

	if err != nil {
		return err
	}

	if date < today.Format(time.DateOnly) {
		return ErrDateInPast
	}

	if s.Len() == 0 {
		return ErrNoSlots
	}

	return nil
}

func (s *SlotSelection) Validate(c court.Court, today time.Time) error {
	if err := s.Check(today); err != nil {
		return err
	}

	for slot := range s.selected {
		if !c.HasSlot(slot) {
			return fmt.Errorf("%w: %v", ErrUnknownSlot, slot)
		}
	}

	return nil
}

// ParseDate accepts a plain YYYY-MM-DD date or an RFC 3339 timestamp, which
// is reduced to its calendar date in loc.
func ParseDate(value string, loc *time.Location) (string, error) {
	value = strings.TrimSpace(value)

	if date, err := time.ParseInLocation(time.DateOnly, value, loc); err == nil {
		return date.Format(time.DateOnly), nil
	}

	if ts, err := time.Parse(time.RFC3339, value); err == nil {
		return ts.In(loc).Format(time.DateOnly), nil
	}

	return "", fmt.Errorf("%w: '%v'", ErrInvalidDate, value)
}
