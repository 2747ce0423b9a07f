package user

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Service handles user lookups and role gating.
type Service struct {
	repo       Repository
	adminEmail string
	logger     *slog.Logger
}

// NewService creates a new user service. adminEmail identifies the
// platform administrator.
func NewService(repo Repository, adminEmail string, logger *slog.Logger) *Service {
	return &Service{repo: repo, adminEmail: adminEmail, logger: logger}
}

// Register creates a new user record.
func (s *Service) Register(ctx context.Context, email string, role Role) (*User, error) {
	if email == "" {
		return nil, ErrInvalidInput
	}
	if role == "" {
		role = RoleBuyer
	}
	u := &User{
		ID:        uuid.NewString(),
		Email:     email,
		Role:      Role(strings.ToLower(string(role))),
		CreatedAt: time.Now(),
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, fmt.Errorf("creating user: %w", err)
	}
	return u, nil
}

// Get performs a point read of a single user, used to gate which views
// and filters are offered to the caller.
func (s *Service) Get(ctx context.Context, id string) (*User, error) {
	return s.repo.Get(ctx, id)
}

// List returns all users.
func (s *Service) List(ctx context.Context) ([]User, error) {
	return s.repo.List(ctx)
}

// IsAdmin reports whether the given email belongs to the administrator.
func (s *Service) IsAdmin(email string) bool {
	return email != "" && strings.EqualFold(email, s.adminEmail)
}
