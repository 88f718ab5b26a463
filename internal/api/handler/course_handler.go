package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/edustack/course-platform/internal/api/metrics"
	"github.com/edustack/course-platform/internal/core/ports"
)

// CourseHandler serves the course catalog endpoints.
type CourseHandler struct {
	service ports.CourseService
}

func NewCourseHandler(service ports.CourseService) *CourseHandler {
	return &CourseHandler{service: service}
}

// GetCourses returns the full catalog.
//
// @Summary      List all courses
// @Tags         courses
// @Produce      json
// @Success      200  {array}  domain.Course
// @Router       /api/authentication/GetCourses [get]
func (h *CourseHandler) GetCourses(c echo.Context) error {
	courses, err := h.service.ListCourses(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, courses)
}

// GetByID looks up a single course. A missing course yields a 200 with a
// null body, not a 404.
//
// @Summary      Get a course by id
// @Tags         courses
// @Produce      json
// @Param        CourseId  query     int  true  "Course id"
// @Success      200       {object}  domain.Course
// @Failure      400       {object}  map[string]string
// @Router       /api/authentication/GetByID [get]
func (h *CourseHandler) GetByID(c echo.Context) error {
	id, err := strconv.Atoi(c.QueryParam("CourseId"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "CourseId must be an integer"})
	}

	course, err := h.service.GetCourse(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, course)
}

// AddCourse appends a course to the catalog.
//
// @Summary      Add a course
// @Tags         courses
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  courseRequest  true  "Course"
// @Success      200
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /api/authentication/Add Courses [post]
func (h *CourseHandler) AddCourse(c echo.Context) error {
	var req courseRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	if err := h.service.AddCourse(c.Request().Context(), req.toDomain()); err != nil {
		return err
	}

	metrics.CoursesAddedTotal.Inc()
	return c.NoContent(http.StatusOK)
}
