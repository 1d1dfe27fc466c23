package handler

import (
	"net/http"

	"github.com/Baaaki/trainergo/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type WorkoutPlanHandler struct {
	planService *service.WorkoutPlanService
}

func NewWorkoutPlanHandler(planService *service.WorkoutPlanService) *WorkoutPlanHandler {
	return &WorkoutPlanHandler{planService: planService}
}

// PlanRequest has no coachId: the author is the caller.
type PlanRequest struct {
	AthleteID   string `json:"athleteId"`
	Title       string `json:"title"`
	HTMLContent string `json:"htmlContent"`
}

// input leaves AthleteID nil when absent so the service reports it as missing.
func (r PlanRequest) input() (service.PlanInput, error) {
	in := service.PlanInput{Title: r.Title, HTMLContent: r.HTMLContent}
	if r.AthleteID == "" {
		return in, nil
	}
	id, err := uuid.Parse(r.AthleteID)
	if err != nil {
		return in, err
	}
	in.AthleteID = id
	return in, nil
}

// ForAthlete handles GET /api/workoutplans/athlete/:athleteUserId
func (h *WorkoutPlanHandler) ForAthlete(c *gin.Context) {
	caller, ok := mustCaller(c)
	if !ok {
		return
	}
	athleteID, ok := uuidParam(c, "athleteUserId")
	if !ok {
		return
	}

	plans, err := h.planService.ForAthlete(c.Request.Context(), caller, athleteID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, plans)
}

// MyPlans handles GET /api/workoutplans/my-plans
func (h *WorkoutPlanHandler) MyPlans(c *gin.Context) {
	caller, ok := mustCaller(c)
	if !ok {
		return
	}

	plans, err := h.planService.MyPlans(c.Request.Context(), caller)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, plans)
}

// Create handles POST /api/workoutplans
func (h *WorkoutPlanHandler) Create(c *gin.Context) {
	caller, ok := mustCaller(c)
	if !ok {
		return
	}

	var req PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	in, err := req.input()
	if err != nil {
		badRequest(c, "invalid athleteId")
		return
	}

	plan, err := h.planService.Create(c.Request.Context(), caller, in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, plan)
}

// Update handles PUT /api/workoutplans/:id
func (h *WorkoutPlanHandler) Update(c *gin.Context) {
	caller, ok := mustCaller(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	var req PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	in, err := req.input()
	if err != nil {
		badRequest(c, "invalid athleteId")
		return
	}

	plan, err := h.planService.Update(c.Request.Context(), caller, id, in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

// Delete handles DELETE /api/workoutplans/:id
func (h *WorkoutPlanHandler) Delete(c *gin.Context) {
	caller, ok := mustCaller(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	if err := h.planService.Delete(c.Request.Context(), caller, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
