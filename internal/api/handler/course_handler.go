package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eduplatform/education-api/internal/core/domain"
	"github.com/eduplatform/education-api/internal/core/ports"
)

// CourseHandler handles HTTP requests for the course catalogue.
type CourseHandler struct {
	service ports.CourseService
}

func NewCourseHandler(service ports.CourseService) *CourseHandler {
	return &CourseHandler{service: service}
}

// List handles GET /cursos.
//
// @Summary      List courses
// @Tags         cursos
// @Produce      json
// @Success      200  {array}  domain.Course
// @Router       /cursos [get]
func (h *CourseHandler) List(c echo.Context) error {
	courses, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	if courses == nil {
		courses = []*domain.Course{}
	}
	return c.JSON(http.StatusOK, courses)
}

// Get handles GET /cursos/:id.
//
// @Summary      Get a course
// @Tags         cursos
// @Produce      json
// @Param        id   path      string  true  "Course ID"
// @Success      200  {object}  domain.Course
// @Failure      404  {object}  errorResponse
// @Router       /cursos/{id} [get]
func (h *CourseHandler) Get(c echo.Context) error {
	course, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, course)
}

// Create handles POST /cursos.
//
// @Summary      Create a course
// @Tags         cursos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      courseRequest  true  "Course"
// @Success      201   {object}  domain.Course
// @Failure      403   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /cursos [post]
func (h *CourseHandler) Create(c echo.Context) error {
	var req courseRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	course, err := h.service.Create(c.Request().Context(), domain.Course{
		Title:   req.Title,
		Lessons: req.Lessons,
		Hours:   req.Hours,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, course)
}

// Update handles PUT /cursos/:id.
//
// @Summary      Update a course
// @Tags         cursos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string               true  "Course ID"
// @Param        body  body      updateCourseRequest  true  "Fields to change"
// @Success      202   {object}  domain.Course
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /cursos/{id} [put]
func (h *CourseHandler) Update(c echo.Context) error {
	var req updateCourseRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	course, err := h.service.Update(c.Request().Context(), c.Param("id"), req.toUpdate())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusAccepted, course)
}

// Delete handles DELETE /cursos/:id.
//
// @Summary      Delete a course
// @Tags         cursos
// @Security     BearerAuth
// @Param        id   path  string  true  "Course ID"
// @Success      204
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /cursos/{id} [delete]
func (h *CourseHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
