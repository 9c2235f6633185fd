package announcement

import (
	"slices"
	"time"
)

type Type string

const (
	TypeMaintenance Type = "maintenance"
	TypeEvent       Type = "event"
	TypeHoliday     Type = "holiday"
	TypeOffer       Type = "offer"
	TypeAchievement Type = "achievement"
	TypeNewService  Type = "new_service"
	TypeEmergency   Type = "emergency"
	TypeGeneral     Type = "general"
)

var types = []Type{TypeMaintenance, TypeEvent, TypeHoliday, TypeOffer, TypeAchievement, TypeNewService, TypeEmergency, TypeGeneral}

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
	StatusArchived Status = "archived"
)

var statuses = []Status{StatusActive, StatusInactive, StatusArchived}

type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

var priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical}

func (s Status) Valid() bool {
	return slices.Contains(statuses, s)
}

type Announcement struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Type      Type      `json:"type"`
	Status    Status    `json:"status"`
	Priority  Priority  `json:"priority"`
	StartDate string    `json:"startDate,omitempty"` // YYYY-MM-DD
	EndDate   string    `json:"endDate,omitempty"`
	IsPinned  bool      `json:"isPinned"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Patch struct {
	Title     *string   `json:"title"`
	Content   *string   `json:"content"`
	Type      *Type     `json:"type"`
	Status    *Status   `json:"status"`
	Priority  *Priority `json:"priority"`
	StartDate *string   `json:"startDate"`
	EndDate   *string   `json:"endDate"`
	IsPinned  *bool     `json:"isPinned"`
}

type Page struct {
	Announcements []Announcement `json:"announcements"`
	Total         int            `json:"total"`
	Page          int            `json:"page"`
	Limit         int            `json:"limit"`
}
