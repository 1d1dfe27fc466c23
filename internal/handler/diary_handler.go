package handler

import (
	"net/http"

	"github.com/Baaaki/trainergo/internal/service"
	"github.com/gin-gonic/gin"
)

type DiaryHandler struct {
	diaryService *service.DiaryService
}

func NewDiaryHandler(diaryService *service.DiaryService) *DiaryHandler {
	return &DiaryHandler{diaryService: diaryService}
}

// Any athleteId or date in these bodies is ignored.
type WorkoutLogRequest struct {
	ExerciseName string  `json:"exerciseName"`
	Sets         int     `json:"sets"`
	Reps         int     `json:"reps"`
	WeightLifted float64 `json:"weightLifted"`
	EffortLevel  *int    `json:"effortLevel"`
}

type MeasurementRequest struct {
	Weight            float64  `json:"weight"`
	BodyFatPercentage *float64 `json:"bodyFatPercentage"`
	Notes             *string  `json:"notes"`
}

// LogWorkout handles POST /api/diary/workout
func (h *DiaryHandler) LogWorkout(c *gin.Context) {
	caller, ok := mustCaller(c)
	if !ok {
		return
	}

	var req WorkoutLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	entry, err := h.diaryService.LogWorkout(c.Request.Context(), caller, service.WorkoutInput{
		ExerciseName: req.ExerciseName,
		Sets:         req.Sets,
		Reps:         req.Reps,
		WeightLifted: req.WeightLifted,
		EffortLevel:  req.EffortLevel,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// Workouts handles GET /api/diary/workout/:athleteUserId
func (h *DiaryHandler) Workouts(c *gin.Context) {
	caller, ok := mustCaller(c)
	if !ok {
		return
	}
	athleteID, ok := uuidParam(c, "athleteUserId")
	if !ok {
		return
	}

	logs, err := h.diaryService.Workouts(c.Request.Context(), caller, athleteID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, logs)
}

// LogMeasurement handles POST /api/diary/measurement
func (h *DiaryHandler) LogMeasurement(c *gin.Context) {
	caller, ok := mustCaller(c)
	if !ok {
		return
	}

	var req MeasurementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	m, err := h.diaryService.LogMeasurement(c.Request.Context(), caller, service.MeasurementInput{
		Weight:            req.Weight,
		BodyFatPercentage: req.BodyFatPercentage,
		Notes:             req.Notes,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, m)
}

// Measurements handles GET /api/diary/measurement/:athleteUserId
func (h *DiaryHandler) Measurements(c *gin.Context) {
	caller, ok := mustCaller(c)
	if !ok {
		return
	}
	athleteID, ok := uuidParam(c, "athleteUserId")
	if !ok {
		return
	}

	out, err := h.diaryService.Measurements(c.Request.Context(), caller, athleteID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}
