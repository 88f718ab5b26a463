// Package memory holds the in-process stores: the seeded course catalog and
// the demo account list.
package memory

import (
	"context"
	"sync"

	"github.com/edustack/course-platform/internal/core/domain"
)

// CourseRepository is a mutex-guarded in-memory catalog. The original list
// had no synchronization; concurrent insert and list here are safe.
type CourseRepository struct {
	mu      sync.RWMutex
	courses []domain.Course
}

// NewCourseRepository returns a repository pre-populated with seed.
func NewCourseRepository(seed []domain.Course) *CourseRepository {
	return &CourseRepository{courses: append([]domain.Course(nil), seed...)}
}

func (r *CourseRepository) List(_ context.Context) ([]domain.Course, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]domain.Course(nil), r.courses...), nil
}

func (r *CourseRepository) FindByID(_ context.Context, id int) (*domain.Course, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.courses {
		if c.CourseID == id {
			clone := c
			return &clone, nil
		}
	}
	return nil, domain.ErrCourseNotFound
}

func (r *CourseRepository) Insert(_ context.Context, course domain.Course) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.courses = append(r.courses, course)
	return nil
}
