package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/eduplatform/education-api/internal/core/domain"
	"github.com/eduplatform/education-api/internal/core/ports"
)

type ArticleService struct {
	repo ports.ArticleRepository
	log  zerolog.Logger
	now  func() time.Time
}

func NewArticleService(repo ports.ArticleRepository, log zerolog.Logger) *ArticleService {
	return &ArticleService{repo: repo, log: log, now: time.Now}
}

func (s *ArticleService) Create(ctx context.Context, in ports.CreateArticleInput) (*domain.Article, error) {
	if in.AuthorID == "" {
		return nil, domain.ErrUnauthenticated
	}

	now := s.now().UTC().Truncate(time.Millisecond)
	created, err := s.repo.Create(ctx, &domain.Article{
		Title:       in.Title,
		Description: in.Description,
		SourceURL:   in.SourceURL,
		UserID:      in.AuthorID,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		s.log.Error().Err(err).Msg("failed to create article")
		return nil, err
	}

	s.log.Info().Str("article_id", created.ID).Str("user_id", in.AuthorID).Msg("article created")
	return created, nil
}

func (s *ArticleService) Get(ctx context.Context, id string) (*domain.Article, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ArticleService) List(ctx context.Context) ([]*domain.Article, error) {
	return s.repo.List(ctx)
}

func (s *ArticleService) ListByUser(ctx context.Context, userID string) ([]*domain.Article, error) {
	return s.repo.ListByUser(ctx, userID)
}

// Update applies the non-nil fields of update. The acting user becomes the
// owner of the article.
func (s *ArticleService) Update(ctx context.Context, id string, actor *domain.User, update domain.ArticleUpdate) (*domain.Article, error) {
	if actor == nil {
		return nil, domain.ErrUnauthenticated
	}

	article, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.Title != nil && *update.Title != "" {
		article.Title = *update.Title
	}
	if update.Description != nil && *update.Description != "" {
		article.Description = *update.Description
	}
	if update.SourceURL != nil && *update.SourceURL != "" {
		article.SourceURL = *update.SourceURL
	}
	article.UserID = actor.ID
	article.UpdatedAt = s.now().UTC().Truncate(time.Millisecond)

	return s.repo.Update(ctx, article)
}

func (s *ArticleService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("article_id", id).Msg("article deleted")
	return nil
}
