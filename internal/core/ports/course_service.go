package ports

import (
	"context"

	"github.com/edustack/course-platform/internal/core/domain"
)

// CourseService defines use-case operations for the course catalog.
type CourseService interface {
	ListCourses(ctx context.Context) ([]domain.Course, error)
	// GetCourse returns nil (not an error) when no course has the id,
	// matching the catalog's lookup-or-null contract.
	GetCourse(ctx context.Context, id int) (*domain.Course, error)
	AddCourse(ctx context.Context, course domain.Course) error
}
