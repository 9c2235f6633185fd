package user

import (
	"context"
	"log/slog"
	"strings"

	"github.com/hanksha/sports-club-backend/identity"
)

//go:generate mockgen -source=user_service.go -destination=mocks/mock_user_service.go

type UserRepository interface {
	EnsureUser(ctx context.Context, account identity.Account) (User, error)
	RecordLogin(ctx context.Context, account identity.Account) (User, error)
	GetUserByID(ctx context.Context, id string) (User, error)
	GetUserByEmail(ctx context.Context, email string) (User, error)
	ListUsers(ctx context.Context, search string, role identity.Role) ([]User, error)
	SetRole(ctx context.Context, id string, role identity.Role) (User, error)
	CountUsers(ctx context.Context) (Counts, error)
}

type Service struct {
	repo   UserRepository
	logger *slog.Logger
}

func NewService(repo UserRepository) *Service {
	return &Service{repo: repo, logger: slog.Default().With("component", "user")}
}

// EnsureUser returns the stored user for a verified account, creating it
// with the plain user role on first sight.
func (s *Service) EnsureUser(ctx context.Context, account identity.Account) (User, error) {
	return s.repo.EnsureUser(ctx, account)
}

func (s *Service) RecordLogin(ctx context.Context, account identity.Account) (User, error) {
	return s.repo.RecordLogin(ctx, account)
}

func (s *Service) GetByEmail(ctx context.Context, email string) (User, error) {
	return s.repo.GetUserByEmail(ctx, strings.TrimSpace(email))
}

func (s *Service) GetRole(ctx context.Context, email string) (identity.Role, error) {
	u, err := s.GetByEmail(ctx, email)

	if err != nil {
		return "", err
	}

	return u.Role, nil
}

func (s *Service) ListUsers(ctx context.Context, search string) ([]User, error) {
	return s.repo.ListUsers(ctx, strings.TrimSpace(search), "")
}

func (s *Service) ListMembers(ctx context.Context, search string) ([]User, error) {
	return s.repo.ListUsers(ctx, strings.TrimSpace(search), identity.RoleMember)
}

// MakeMember promotes a plain user. Members and admins are returned as is.
func (s *Service) MakeMember(ctx context.Context, email string) (User, error) {
	u, err := s.GetByEmail(ctx, email)

	if err != nil {
		return User{}, err
	}

	if u.Role != identity.RoleUser {
		return u, nil
	}

	promoted, err := s.repo.SetRole(ctx, u.ID, identity.RoleMember)

	if err == nil {
		s.logger.Info("user promoted to member", "userID", u.ID)
	}

	return promoted, err
}

func (s *Service) SetRole(ctx context.Context, id string, role identity.Role) (User, error) {
	if !role.Valid() {
		return User{}, ErrInvalidRole
	}

	u, err := s.repo.SetRole(ctx, id, role)

	if err == nil {
		s.logger.Info("user role changed", "userID", id, "role", role)
	}

	return u, err
}

func (s *Service) RemoveMember(ctx context.Context, id string) (User, error) {
	u, err := s.repo.GetUserByID(ctx, id)

	if err != nil {
		return User{}, err
	}

	if u.Role != identity.RoleMember {
		return User{}, ErrNotMember
	}

	return s.repo.SetRole(ctx, id, identity.RoleUser)
}

func (s *Service) Counts(ctx context.Context) (Counts, error) {
	return s.repo.CountUsers(ctx)
}
