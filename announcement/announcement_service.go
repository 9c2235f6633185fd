package announcement

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"
)

//go:generate mockgen -source=announcement_service.go -destination=mocks/mock_announcement_service.go

type AnnouncementRepository interface {
	ListAnnouncements(ctx context.Context, status Status, limit int, offset int) ([]Announcement, int, error)
	GetAnnouncementByID(ctx context.Context, id string) (Announcement, error)
	InsertAnnouncement(ctx context.Context, a Announcement) (Announcement, error)
	UpdateAnnouncement(ctx context.Context, a Announcement) (Announcement, error)
	DeleteAnnouncement(ctx context.Context, id string) error
}

const (
	defaultPageSize = 10
	maxPageSize     = 50
)

type Service struct {
	repo   AnnouncementRepository
	logger *slog.Logger
}

func NewService(repo AnnouncementRepository) *Service {
	return &Service{repo: repo, logger: slog.Default().With("component", "announcement")}
}

// List returns pinned announcements first, newest first within each group.
func (s *Service) List(ctx context.Context, page, limit int, status Status) (Page, error) {
	if len(status) != 0 && !status.Valid() {
		return Page{}, fmt.Errorf("%w: unknown status '%v'", ErrInvalidAnnouncement, status)
	}

	if page < 1 {
		page = 1
	}

	if limit < 1 {
		limit = defaultPageSize
	}

	limit = min(limit, maxPageSize)

	announcements, total, err := s.repo.ListAnnouncements(ctx, status, limit, (page-1)*limit)

	if err != nil {
		return Page{}, err
	}

	return Page{Announcements: announcements, Total: total, Page: page, Limit: limit}, nil
}

func (s *Service) Create(ctx context.Context, a Announcement) (Announcement, error) {
	if len(a.Type) == 0 {
		a.Type = TypeGeneral
	}
	if len(a.Status) == 0 {
		a.Status = StatusActive
	}
	if len(a.Priority) == 0 {
		a.Priority = PriorityMedium
	}

	a, err := validate(a)

	if err != nil {
		return Announcement{}, err
	}

	inserted, err := s.repo.InsertAnnouncement(ctx, a)

	if err == nil {
		s.logger.Info("announcement created", "announcementID", inserted.ID, "type", inserted.Type)
	}

	return inserted, err
}

func (s *Service) Update(ctx context.Context, id string, patch Patch) (Announcement, error) {
	a, err := s.repo.GetAnnouncementByID(ctx, id)

	if err != nil {
		return Announcement{}, err
	}

	if patch.Title != nil {
		a.Title = *patch.Title
	}
	if patch.Content != nil {
		a.Content = *patch.Content
	}
	if patch.Type != nil {
		a.Type = *patch.Type
	}
	if patch.Status != nil {
		a.Status = *patch.Status
	}
	if patch.Priority != nil {
		a.Priority = *patch.Priority
	}
	if patch.StartDate != nil {
		a.StartDate = *patch.StartDate
	}
	if patch.EndDate != nil {
		a.EndDate = *patch.EndDate
	}
	if patch.IsPinned != nil {
		a.IsPinned = *patch.IsPinned
	}

	a, err = validate(a)

	if err != nil {
		return Announcement{}, err
	}

	return s.repo.UpdateAnnouncement(ctx, a)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.DeleteAnnouncement(ctx, id)
}

func validate(a Announcement) (Announcement, error) {
	a.Title = strings.TrimSpace(a.Title)
	a.Content = strings.TrimSpace(a.Content)
	a.StartDate = strings.TrimSpace(a.StartDate)
	a.EndDate = strings.TrimSpace(a.EndDate)

	if len(a.Title) == 0 || len(a.Content) == 0 {
		return Announcement{}, fmt.Errorf("%w: title and content are required", ErrInvalidAnnouncement)
	}

	if !slices.Contains(types, a.Type) {
		return Announcement{}, fmt.Errorf("%w: unknown type '%v'", ErrInvalidAnnouncement, a.Type)
	}

	if !a.Status.Valid() {
		return Announcement{}, fmt.Errorf("%w: unknown status '%v'", ErrInvalidAnnouncement, a.Status)
	}

	if !slices.Contains(priorities, a.Priority) {
		return Announcement{}, fmt.Errorf("%w: unknown priority '%v'", ErrInvalidAnnouncement, a.Priority)
	}

	for _, date := range []string{a.StartDate, a.EndDate} {
		if _, err := time.Parse(time.DateOnly, date); len(date) != 0 && err != nil {
			return Announcement{}, fmt.Errorf("%w: '%v' is not a YYYY-MM-DD date", ErrInvalidAnnouncement, date)
		}
	}

	if len(a.StartDate) != 0 && len(a.EndDate) != 0 && a.EndDate < a.StartDate {
		return Announcement{}, fmt.Errorf("%w: end date is before start date", ErrInvalidAnnouncement)
	}

	return a, nil
}
