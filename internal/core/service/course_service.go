package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/edustack/course-platform/internal/core/domain"
	"github.com/edustack/course-platform/internal/core/ports"
)

// CourseService serves the catalog: list, lookup-by-id, append. Reads of the
// full list go through the cache; inserts invalidate it.
type CourseService struct {
	repo   ports.CourseRepository
	cache  ports.CourseCache
	logger zerolog.Logger
}

func NewCourseService(repo ports.CourseRepository, cache ports.CourseCache, logger zerolog.Logger) *CourseService {
	return &CourseService{repo: repo, cache: cache, logger: logger}
}

func (s *CourseService) ListCourses(ctx context.Context) ([]domain.Course, error) {
	if cached, err := s.cache.Get(ctx); err != nil {
		// A broken cache must not take the catalog down.
		s.logger.Warn().Err(err).Msg("course cache read failed")
	} else if cached != nil {
		return cached, nil
	}

	courses, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, courses); err != nil {
		s.logger.Warn().Err(err).Msg("course cache write failed")
	}
	return courses, nil
}

// GetCourse returns nil without error when no course matches the id.
func (s *CourseService) GetCourse(ctx context.Context, id int) (*domain.Course, error) {
	course, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrCourseNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return course, nil
}

func (s *CourseService) AddCourse(ctx context.Context, course domain.Course) error {
	if err := s.repo.Insert(ctx, course); err != nil {
		return err
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("course cache invalidation failed")
	}
	s.logger.Info().Int("course_id", course.CourseID).Str("course_name", course.CourseName).Msg("course added")
	return nil
}
