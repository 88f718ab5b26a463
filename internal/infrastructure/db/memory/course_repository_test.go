package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/edustack/course-platform/internal/core/domain"
)

func TestCourseRepository_SeededList(t *testing.T) {
	repo := NewCourseRepository(SeedCourses())

	courses, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(courses) != len(SeedCourses()) {
		t.Fatalf("expected %d seeded courses, got %d", len(SeedCourses()), len(courses))
	}
}

func TestCourseRepository_FindByID(t *testing.T) {
	repo := NewCourseRepository([]domain.Course{{CourseID: 7, CourseName: "Go"}})

	course, err := repo.FindByID(context.Background(), 7)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if course.CourseName != "Go" {
		t.Fatalf("unexpected course: %+v", course)
	}

	if _, err := repo.FindByID(context.Background(), 404); err != domain.ErrCourseNotFound {
		t.Fatalf("expected ErrCourseNotFound, got %v", err)
	}
}

func TestCourseRepository_InsertAppends(t *testing.T) {
	repo := NewCourseRepository(nil)

	if err := repo.Insert(context.Background(), domain.Course{CourseID: 1}); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	// Duplicate ids are not rejected; the catalog is append-only.
	if err := repo.Insert(context.Background(), domain.Course{CourseID: 1}); err != nil {
		t.Fatalf("Insert duplicate id: %v", err)
	}

	courses, _ := repo.List(context.Background())
	if len(courses) != 2 {
		t.Fatalf("expected 2 courses, got %d", len(courses))
	}
}

func TestCourseRepository_ConcurrentAccess(t *testing.T) {
	repo := NewCourseRepository(SeedCourses())

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(id int) {
			defer wg.Done()
			_ = repo.Insert(context.Background(), domain.Course{CourseID: id})
		}(i + 100)
		go func() {
			defer wg.Done()
			_, _ = repo.List(context.Background())
		}()
	}
	wg.Wait()

	courses, _ := repo.List(context.Background())
	if len(courses) != len(SeedCourses())+50 {
		t.Fatalf("expected %d courses, got %d", len(SeedCourses())+50, len(courses))
	}
}
