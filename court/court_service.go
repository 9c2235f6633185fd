package court

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"slices"
	"strings"
)

//go:generate mockgen -source=court_service.go -destination=mocks/mock_court_service.go

type CourtRepository interface {
	ListCourts(ctx context.Context, filter Filter) ([]Court, int, error)
	GetCourtByID(ctx context.Context, id string) (Court, error)
	InsertCourt(ctx context.Context, c Court) (Court, error)
	UpdateCourt(ctx context.Context, c Court) (Court, error)
	DeleteCourt(ctx context.Context, id string) error
	CountCourts(ctx context.Context) (int, error)
}

type Service struct {
	repo   CourtRepository
	logger *slog.Logger
}

func NewService(repo CourtRepository) *Service {
	return &Service{repo: repo, logger: slog.Default().With("component", "court")}
}

func (s *Service) ListCourts(ctx context.Context, filter Filter) ([]Court, int, error) {
	return s.repo.ListCourts(ctx, filter.Normalize())
}

// ListPublicCourts only shows courts that can currently be booked.
func (s *Service) ListPublicCourts(ctx context.Context, page, limit int) ([]Court, int, error) {
	return s.repo.ListCourts(ctx, Filter{Status: StatusAvailable, Page: page, Limit: limit}.Normalize())
}

func (s *Service) GetCourt(ctx context.Context, id string) (Court, error) {
	return s.repo.GetCourtByID(ctx, id)
}

func (s *Service) CreateCourt(ctx context.Context, court Court) (Court, error) {
	if len(court.Status) == 0 {
		court.Status = StatusAvailable
	}

	court, err := normalize(court)

	if err != nil {
		return Court{}, err
	}

	inserted, err := s.repo.InsertCourt(ctx, court)

	if err == nil {
		s.logger.Info("court created", "courtID", inserted.ID, "name", inserted.Name)
	}

	return inserted, err
}

func (s *Service) UpdateCourt(ctx context.Context, id string, patch Patch) (Court, error) {
	court, err := s.repo.GetCourtByID(ctx, id)

	if err != nil {
		return Court{}, err
	}

	if patch.Name != nil {
		court.Name = *patch.Name
	}
	if patch.Type != nil {
		court.Type = *patch.Type
	}
	if patch.Image != nil {
		court.Image = *patch.Image
	}
	if patch.Location != nil {
		court.Location = *patch.Location
	}
	if patch.PricePerHour != nil {
		court.PricePerHour = *patch.PricePerHour
	}
	if patch.SlotTimes != nil {
		court.SlotTimes = patch.SlotTimes
	}
	if patch.Description != nil {
		court.Description = *patch.Description
	}
	if patch.Features != nil {
		court.Features = patch.Features
	}
	if patch.Status != nil {
		court.Status = *patch.Status
	}

	court, err = normalize(court)

	if err != nil {
		return Court{}, err
	}

	return s.repo.UpdateCourt(ctx, court)
}

func (s *Service) DeleteCourt(ctx context.Context, id string) error {
	err := s.repo.DeleteCourt(ctx, id)

	if err == nil {
		s.logger.Info("court deleted", "courtID", id)
	}

	return err
}

func (s *Service) CountCourts(ctx context.Context) (int, error) {
	return s.repo.CountCourts(ctx)
}

var slotPattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

func normalize(court Court) (Court, error) {
	court.Name = strings.TrimSpace(court.Name)

	if len(court.Name) == 0 {
		return Court{}, fmt.Errorf("%w: name is required", ErrInvalidCourt)
	}

	if !slices.Contains([]Type{TypeTennis, TypeBadminton, TypeBasketball, TypeVolleyball, TypeSquash, TypeOther}, court.Type) {
		return Court{}, fmt.Errorf("%w: unknown court type '%v'", ErrInvalidCourt, court.Type)
	}

	if !slices.Contains([]Status{StatusAvailable, StatusUnavailable, StatusMaintenance}, court.Status) {
		return Court{}, fmt.Errorf("%w: unknown court status '%v'", ErrInvalidCourt, court.Status)
	}

	if court.PricePerHour <= 0 {
		return Court{}, fmt.Errorf("%w: price per hour must be positive", ErrInvalidCourt)
	}

	slots := []string{}

	for _, slot := range court.SlotTimes {
		slot = strings.TrimSpace(slot)

		if len(slot) == 0 || slices.Contains(slots, slot) {
			continue
		}

		if !slotPattern.MatchString(slot) {
			return Court{}, fmt.Errorf("%w: slot '%v' is not HH:MM", ErrInvalidCourt, slot)
		}

		slots = append(slots, slot)
	}

	if len(slots) == 0 {
		return Court{}, fmt.Errorf("%w: at least one time slot is required", ErrInvalidCourt)
	}

	court.SlotTimes = slots

	features := []string{}

	for _, feature := range court.Features {
		if feature = strings.TrimSpace(feature); len(feature) != 0 {
			features = append(features, feature)
		}
	}

	court.Features = features

	return court, nil
}
