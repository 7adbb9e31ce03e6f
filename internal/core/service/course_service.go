package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/eduplatform/education-api/internal/core/domain"
	"github.com/eduplatform/education-api/internal/core/ports"
)

type CourseService struct {
	repo ports.CourseRepository
	log  zerolog.Logger
}

func NewCourseService(repo ports.CourseRepository, log zerolog.Logger) *CourseService {
	return &CourseService{repo: repo, log: log}
}

func (s *CourseService) Create(ctx context.Context, c domain.Course) (*domain.Course, error) {
	c.ID = ""
	created, err := s.repo.Create(ctx, &c)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("course_id", created.ID).Msg("course created")
	return created, nil
}

func (s *CourseService) Get(ctx context.Context, id string) (*domain.Course, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *CourseService) List(ctx context.Context) ([]*domain.Course, error) {
	return s.repo.List(ctx)
}

func (s *CourseService) Update(ctx context.Context, id string, update domain.CourseUpdate) (*domain.Course, error) {
	course, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.Title != nil {
		course.Title = *update.Title
	}
	if update.Lessons != nil {
		course.Lessons = *update.Lessons
	}
	if update.Hours != nil {
		course.Hours = *update.Hours
	}

	return s.repo.Update(ctx, course)
}

func (s *CourseService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("course_id", id).Msg("course deleted")
	return nil
}
