package ports

import (
	"context"

	"github.com/eduplatform/education-api/internal/core/domain"
)

// ArticleRepository defines persistence operations for articles.
type ArticleRepository interface {
	Create(ctx context.Context, a *domain.Article) (*domain.Article, error)
	FindByID(ctx context.Context, id string) (*domain.Article, error)
	List(ctx context.Context) ([]*domain.Article, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Article, error)
	Update(ctx context.Context, a *domain.Article) (*domain.Article, error)
	Delete(ctx context.Context, id string) error
}

// CourseRepository defines persistence operations for courses.
type CourseRepository interface {
	Create(ctx context.Context, c *domain.Course) (*domain.Course, error)
	FindByID(ctx context.Context, id string) (*domain.Course, error)
	List(ctx context.Context) ([]*domain.Course, error)
	Update(ctx context.Context, c *domain.Course) (*domain.Course, error)
	Delete(ctx context.Context, id string) error
}
