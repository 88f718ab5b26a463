package ports

import (
	"context"

	"github.com/edustack/course-platform/internal/core/domain"
)

// CourseRepository defines persistence operations for the course catalog.
type CourseRepository interface {
	List(ctx context.Context) ([]domain.Course, error)
	// FindByID scans for a course by id. Returns domain.ErrCourseNotFound
	// when absent.
	FindByID(ctx context.Context, id int) (*domain.Course, error)
	// Insert appends a course. Ids are not checked for uniqueness.
	Insert(ctx context.Context, course domain.Course) error
}

// CourseCache caches the full course list in front of the repository.
type CourseCache interface {
	// Get returns the cached list, or (nil, nil) on a miss.
	Get(ctx context.Context) ([]domain.Course, error)
	Set(ctx context.Context, courses []domain.Course) error
	Invalidate(ctx context.Context) error
}
