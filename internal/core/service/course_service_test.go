package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/edustack/course-platform/internal/core/domain"
)

type stubCourseRepo struct {
	courses   []domain.Course
	listCalls int
}

func (r *stubCourseRepo) List(_ context.Context) ([]domain.Course, error) {
	r.listCalls++
	return append([]domain.Course(nil), r.courses...), nil
}

func (r *stubCourseRepo) FindByID(_ context.Context, id int) (*domain.Course, error) {
	for _, c := range r.courses {
		if c.CourseID == id {
			clone := c
			return &clone, nil
		}
	}
	return nil, domain.ErrCourseNotFound
}

func (r *stubCourseRepo) Insert(_ context.Context, course domain.Course) error {
	r.courses = append(r.courses, course)
	return nil
}

type stubCourseCache struct {
	cached []domain.Course
	err    error
}

func (c *stubCourseCache) Get(_ context.Context) ([]domain.Course, error) {
	if c.err != nil {
		return nil, c.err
	}
	return c.cached, nil
}

func (c *stubCourseCache) Set(_ context.Context, courses []domain.Course) error {
	if c.err != nil {
		return c.err
	}
	c.cached = append([]domain.Course(nil), courses...)
	return nil
}

func (c *stubCourseCache) Invalidate(_ context.Context) error {
	if c.err != nil {
		return c.err
	}
	c.cached = nil
	return nil
}

func TestCourseService_ListCourses_CacheMissThenHit(t *testing.T) {
	repo := &stubCourseRepo{courses: []domain.Course{{CourseID: 1, CourseName: "Go"}}}
	cache := &stubCourseCache{}
	svc := NewCourseService(repo, cache, zerolog.Nop())

	first, err := svc.ListCourses(context.Background())
	if err != nil {
		t.Fatalf("ListCourses: %v", err)
	}
	if len(first) != 1 || repo.listCalls != 1 {
		t.Fatalf("expected one course via repository, got %d courses, %d calls", len(first), repo.listCalls)
	}

	second, err := svc.ListCourses(context.Background())
	if err != nil {
		t.Fatalf("ListCourses: %v", err)
	}
	if len(second) != 1 {
		t.Fatalf("expected one course from cache")
	}
	if repo.listCalls != 1 {
		t.Fatalf("expected cached read, repository called %d times", repo.listCalls)
	}
}

func TestCourseService_ListCourses_CacheFailureFallsThrough(t *testing.T) {
	repo := &stubCourseRepo{courses: []domain.Course{{CourseID: 1}}}
	cache := &stubCourseCache{err: errors.New("redis down")}
	svc := NewCourseService(repo, cache, zerolog.Nop())

	courses, err := svc.ListCourses(context.Background())
	if err != nil {
		t.Fatalf("ListCourses: %v", err)
	}
	if len(courses) != 1 {
		t.Fatalf("expected repository result despite cache failure")
	}
}

func TestCourseService_GetCourse_MissingIsNil(t *testing.T) {
	svc := NewCourseService(&stubCourseRepo{}, &stubCourseCache{}, zerolog.Nop())

	course, err := svc.GetCourse(context.Background(), 42)
	if err != nil {
		t.Fatalf("GetCourse: %v", err)
	}
	if course != nil {
		t.Fatalf("expected nil for a missing course, got %+v", course)
	}
}

func TestCourseService_AddCourse_InvalidatesCache(t *testing.T) {
	repo := &stubCourseRepo{}
	cache := &stubCourseCache{cached: []domain.Course{{CourseID: 1}}}
	svc := NewCourseService(repo, cache, zerolog.Nop())

	if err := svc.AddCourse(context.Background(), domain.Course{CourseID: 2, CourseName: "Mongo"}); err != nil {
		t.Fatalf("AddCourse: %v", err)
	}
	if len(repo.courses) != 1 {
		t.Fatalf("course not appended")
	}
	if cache.cached != nil {
		t.Fatalf("expected cache invalidation")
	}
}
