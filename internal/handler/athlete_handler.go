package handler

import (
	"net/http"

	"github.com/Baaaki/trainergo/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AthleteHandler struct {
	athleteService *service.AthleteService
}

func NewAthleteHandler(athleteService *service.AthleteService) *AthleteHandler {
	return &AthleteHandler{athleteService: athleteService}
}

type AddAthleteRequest struct {
	Email string `json:"email" binding:"required"`
}

// UpdateProfileRequest mirrors the profile. CoachNotes is ignored for athletes.
type UpdateProfileRequest struct {
	ID             uuid.UUID `json:"id" binding:"required"`
	Weight         float64   `json:"weight"`
	Height         float64   `json:"height"`
	Goals          string    `json:"goals"`
	Equipment      string    `json:"equipment"`
	WeeklyWorkouts int       `json:"weeklyWorkouts"`
	CoachNotes     *string   `json:"coachNotes"`
}

// MyAthletes handles GET /api/athletes/my-athletes
func (h *AthleteHandler) MyAthletes(c *gin.Context) {
	caller, ok := mustCaller(c)
	if !ok {
		return
	}

	roster, err := h.athleteService.MyAthletes(c.Request.Context(), caller)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, roster)
}

// AddByEmail handles POST /api/athletes/add-by-email
func (h *AthleteHandler) AddByEmail(c *gin.Context) {
	caller, ok := mustCaller(c)
	if !ok {
		return
	}

	var req AddAthleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	summary, err := h.athleteService.AddByEmail(c.Request.Context(), caller, req.Email)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, summary)
}

// MyProfile handles GET /api/athletes/my-profile
func (h *AthleteHandler) MyProfile(c *gin.Context) {
	caller, ok := mustCaller(c)
	if !ok {
		return
	}

	profile, err := h.athleteService.MyProfile(c.Request.Context(), caller)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// MyProfiles handles GET /api/athletes/my-profiles
func (h *AthleteHandler) MyProfiles(c *gin.Context) {
	caller, ok := mustCaller(c)
	if !ok {
		return
	}

	profiles, err := h.athleteService.MyProfiles(c.Request.Context(), caller)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profiles)
}

// Detail handles GET /api/athletes/:userId
func (h *AthleteHandler) Detail(c *gin.Context) {
	caller, ok := mustCaller(c)
	if !ok {
		return
	}
	userID, ok := uuidParam(c, "userId")
	if !ok {
		return
	}

	profile, err := h.athleteService.Detail(c.Request.Context(), caller, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// Update handles PUT /api/athletes
func (h *AthleteHandler) Update(c *gin.Context) {
	caller, ok := mustCaller(c)
	if !ok {
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	view, err := h.athleteService.Update(c.Request.Context(), caller, service.ProfileInput{
		ID:             req.ID,
		Weight:         req.Weight,
		Height:         req.Height,
		Goals:          req.Goals,
		Equipment:      req.Equipment,
		WeeklyWorkouts: req.WeeklyWorkouts,
		CoachNotes:     req.CoachNotes,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}
