package handler

import (
	"net/http"

	"github.com/Baaaki/trainergo/internal/service"
	"github.com/gin-gonic/gin"
)

type EnrollmentHandler struct {
	enrollmentService *service.EnrollmentService
}

func NewEnrollmentHandler(enrollmentService *service.EnrollmentService) *EnrollmentHandler {
	return &EnrollmentHandler{enrollmentService: enrollmentService}
}

type EnrollStudentRequest struct {
	Email string `json:"email" binding:"required"`
}

// Join handles POST /api/enrollments/join/:courseId
func (h *EnrollmentHandler) Join(c *gin.Context) {
	caller, ok := mustCaller(c)
	if !ok {
		return
	}
	courseID, ok := uuidParam(c, "courseId")
	if !ok {
		return
	}

	e, err := h.enrollmentService.Join(c.Request.Context(), caller, courseID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, e)
}

// Leave handles DELETE /api/enrollments/leave/:courseId
func (h *EnrollmentHandler) Leave(c *gin.Context) {
	caller, ok := mustCaller(c)
	if !ok {
		return
	}
	courseID, ok := uuidParam(c, "courseId")
	if !ok {
		return
	}

	if err := h.enrollmentService.Leave(c.Request.Context(), caller, courseID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Left course",
	})
}

// MyEnrollments handles GET /api/enrollments/my-enrollments
func (h *EnrollmentHandler) MyEnrollments(c *gin.Context) {
	caller, ok := mustCaller(c)
	if !ok {
		return
	}

	views, err := h.enrollmentService.MyEnrollments(c.Request.Context(), caller)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// Students handles GET /api/enrollments/course/:courseId/students
func (h *EnrollmentHandler) Students(c *gin.Context) {
	caller, ok := mustCaller(c)
	if !ok {
		return
	}
	courseID, ok := uuidParam(c, "courseId")
	if !ok {
		return
	}

	views, err := h.enrollmentService.Students(c.Request.Context(), caller, courseID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// EnrollStudent handles POST /api/enrollments/course/:courseId/enroll-student
func (h *EnrollmentHandler) EnrollStudent(c *gin.Context) {
	caller, ok := mustCaller(c)
	if !ok {
		return
	}
	courseID, ok := uuidParam(c, "courseId")
	if !ok {
		return
	}

	var req EnrollStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	e, err := h.enrollmentService.EnrollByEmail(c.Request.Context(), caller, courseID, req.Email)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, e)
}
