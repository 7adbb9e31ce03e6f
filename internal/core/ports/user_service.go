package ports

import (
	"context"

	"github.com/eduplatform/education-api/internal/core/domain"
)

// CreateUserInput carries a signup request. Every field is required.
type CreateUserInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Admin     bool
}

// UserService defines use-case operations for user accounts.
type UserService interface {
	Register(ctx context.Context, input CreateUserInput) (*domain.User, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Update(ctx context.Context, id string, update domain.UserUpdate) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}
