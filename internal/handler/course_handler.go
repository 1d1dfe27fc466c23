package handler

import (
	"net/http"

	"github.com/Baaaki/trainergo/internal/service"
	"github.com/gin-gonic/gin"
)

type CourseHandler struct {
	courseService *service.CourseService
}

func NewCourseHandler(courseService *service.CourseService) *CourseHandler {
	return &CourseHandler{courseService: courseService}
}

// CourseRequest has no coachId or id: ownership is taken from the token.
type CourseRequest struct {
	Name         string  `json:"name" binding:"required"`
	Instructor   string  `json:"instructor"`
	Schedule     string  `json:"schedule"`
	Description  string  `json:"description"`
	PriceMonthly float64 `json:"priceMonthly"`
	PriceType    string  `json:"priceType"`
}

func (r CourseRequest) input() service.CourseInput {
	return service.CourseInput{
		Name:         r.Name,
		Instructor:   r.Instructor,
		Schedule:     r.Schedule,
		Description:  r.Description,
		PriceMonthly: r.PriceMonthly,
		PriceType:    r.PriceType,
	}
}

// List handles GET /api/courses
func (h *CourseHandler) List(c *gin.Context) {
	caller, ok := mustCaller(c)
	if !ok {
		return
	}

	courses, err := h.courseService.List(c.Request.Context(), caller)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, courses)
}

// Create handles POST /api/courses
func (h *CourseHandler) Create(c *gin.Context) {
	caller, ok := mustCaller(c)
	if !ok {
		return
	}

	var req CourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	course, err := h.courseService.Create(c.Request.Context(), caller, req.input())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, course)
}

// Update handles PUT /api/courses/:id
func (h *CourseHandler) Update(c *gin.Context) {
	caller, ok := mustCaller(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	var req CourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	course, err := h.courseService.Update(c.Request.Context(), caller, id, req.input())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, course)
}

// Delete handles DELETE /api/courses/:id
func (h *CourseHandler) Delete(c *gin.Context) {
	caller, ok := mustCaller(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	if err := h.courseService.Delete(c.Request.Context(), caller, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
