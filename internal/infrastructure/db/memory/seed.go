package memory

import "github.com/edustack/course-platform/internal/core/domain"

// SeedCourses returns the catalog entries loaded at startup.
func SeedCourses() []domain.Course {
	return []domain.Course{
		{CourseID: 1, CourseName: "Go Fundamentals", Description: "Syntax, tooling and idioms", Duration: "6 weeks", Price: 149.0},
		{CourseID: 2, CourseName: "Web APIs with Echo", Description: "REST services in Go", Duration: "4 weeks", Price: 129.0},
		{CourseID: 3, CourseName: "MongoDB for Developers", Description: "Schema design and drivers", Duration: "5 weeks", Price: 179.0},
		{CourseID: 4, CourseName: "Distributed Systems Primer", Description: "Consistency, consensus, queues", Duration: "8 weeks", Price: 249.0},
	}
}

// SeedDemoAccounts returns the static demo list served by the user-list
// endpoint. Not backed by the live credential store.
func SeedDemoAccounts() []domain.DemoAccount {
	return []domain.DemoAccount{
		{Username: "demo.admin", Email: "admin@edustack.dev", Password: "Admin1!"},
		{Username: "demo.student", Email: "student@edustack.dev", Password: "Student1!"},
		{Username: "demo.teacher", Email: "teacher@edustack.dev", Password: "Teacher1!"},
	}
}
