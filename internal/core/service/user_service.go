package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/eduplatform/education-api/internal/core/domain"
	"github.com/eduplatform/education-api/internal/core/ports"
)

// UserService manages user accounts. Passwords are hashed before they
// reach the repository, both on signup and on password change.
type UserService struct {
	repo   ports.UserRepository
	hasher ports.PasswordHasher
	cache  ports.IdentityCache
	log    zerolog.Logger
	now    func() time.Time
}

func NewUserService(repo ports.UserRepository, hasher ports.PasswordHasher, cache ports.IdentityCache, log zerolog.Logger) *UserService {
	return &UserService{repo: repo, hasher: hasher, cache: cache, log: log, now: time.Now}
}

func (s *UserService) Register(ctx context.Context, in ports.CreateUserInput) (*domain.User, error) {
	email := normalizeEmail(in.Email)
	if email == "" || in.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("register: hash password: %w", err)
	}

	now := s.now().UTC().Truncate(time.Millisecond)
	created, err := s.repo.Create(ctx, &domain.User{
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        email,
		PasswordHash: hash,
		Admin:        in.Admin,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", created.ID).Bool("admin", created.Admin).Msg("user registered")
	return created, nil
}

func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.repo.List(ctx)
}

// Update applies the non-nil fields of update. A new password replaces the
// stored hash wholesale.
func (s *UserService) Update(ctx context.Context, id string, update domain.UserUpdate) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if update.Empty() {
		return user, nil
	}

	if update.FirstName != nil {
		user.FirstName = *update.FirstName
	}
	if update.LastName != nil {
		user.LastName = *update.LastName
	}
	if update.Email != nil {
		user.Email = normalizeEmail(*update.Email)
	}
	if update.Admin != nil {
		user.Admin = *update.Admin
	}
	if update.Password != nil {
		hash, err := s.hasher.Hash(*update.Password)
		if err != nil {
			return nil, fmt.Errorf("update user: hash password: %w", err)
		}
		user.PasswordHash = hash
	}
	user.UpdatedAt = s.now().UTC().Truncate(time.Millisecond)

	updated, err := s.repo.Update(ctx, user)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, id)

	s.log.Info().Str("user_id", id).Msg("user updated")
	return updated, nil
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, id)

	s.log.Info().Str("user_id", id).Msg("user deleted")
	return nil
}

// invalidate drops a cached identity so the next request sees the change.
func (s *UserService) invalidate(ctx context.Context, id string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, id); err != nil {
		s.log.Warn().Err(err).Str("user_id", id).Msg("identity cache invalidation failed")
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
