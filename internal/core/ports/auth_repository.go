package ports

import (
	"context"

	"github.com/eduplatform/education-api/internal/core/domain"
)

// UserRepository is the user store the auth core and the user endpoints share.
// Lookups return domain.ErrUserNotFound when nothing matches.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) (*domain.User, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*domain.User, error)
}

// IdentityCache keeps recently resolved identities close to the request path.
type IdentityCache interface {
	Get(ctx context.Context, id string) (*domain.User, bool, error)
	Set(ctx context.Context, user *domain.User) error
	Invalidate(ctx context.Context, id string) error
}
