package handler

import "github.com/edustack/course-platform/internal/core/domain"

type courseRequest struct {
	CourseID    int     `json:"CourseId"    validate:"required"`
	CourseName  string  `json:"CourseName"  validate:"required"`
	Description string  `json:"Description"`
	Duration    string  `json:"Duration"`
	Price       float64 `json:"Price"`
}

func (r courseRequest) toDomain() domain.Course {
	return domain.Course{
		CourseID:    r.CourseID,
		CourseName:  r.CourseName,
		Description: r.Description,
		Duration:    r.Duration,
		Price:       r.Price,
	}
}
