package ports

import (
	"context"

	"github.com/eduplatform/education-api/internal/core/domain"
)

// CreateArticleInput is the DTO passed from the transport layer to ArticleService.
type CreateArticleInput struct {
	Title       string
	Description string
	SourceURL   string
	AuthorID    string
}

// ArticleService defines use-case operations for articles. Mutations take
// the acting user, which becomes the article's owner.
type ArticleService interface {
	Create(ctx context.Context, input CreateArticleInput) (*domain.Article, error)
	Get(ctx context.Context, id string) (*domain.Article, error)
	List(ctx context.Context) ([]*domain.Article, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Article, error)
	Update(ctx context.Context, id string, actor *domain.User, update domain.ArticleUpdate) (*domain.Article, error)
	Delete(ctx context.Context, id string) error
}

// CourseService defines use-case operations for courses.
type CourseService interface {
	Create(ctx context.Context, c domain.Course) (*domain.Course, error)
	Get(ctx context.Context, id string) (*domain.Course, error)
	List(ctx context.Context) ([]*domain.Course, error)
	Update(ctx context.Context, id string, update domain.CourseUpdate) (*domain.Course, error)
	Delete(ctx context.Context, id string) error
}
