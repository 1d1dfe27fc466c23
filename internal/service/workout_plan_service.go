package service

import (
	"context"
	"strings"
	"time"

	"github.com/Baaaki/trainergo/internal/models"
	"github.com/Baaaki/trainergo/internal/repository"
	"github.com/Baaaki/trainergo/pkg/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type PlanInput struct {
	AthleteID   uuid.UUID
	Title       string
	HTMLContent string
}

type WorkoutPlanService struct {
	planRepo *repository.WorkoutPlanRepository
	userRepo *repository.UserRepository
}

func NewWorkoutPlanService(planRepo *repository.WorkoutPlanRepository, userRepo *repository.UserRepository) *WorkoutPlanService {
	return &WorkoutPlanService{
		planRepo: planRepo,
		userRepo: userRepo,
	}
}

func validateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return validationError("title is required")
	}
	if len(title) > 200 {
		return validationError("title too long")
	}
	return nil
}

// Create assigns a new plan to an existing User-role account. The author is always the caller.
func (s *WorkoutPlanService) Create(ctx context.Context, caller Caller, in PlanInput) (*models.WorkoutPlan, error) {
	if err := caller.requireRole(models.RoleCoach); err != nil {
		return nil, err
	}
	if in.AthleteID == uuid.Nil {
		return nil, ErrMissingAthlete
	}
	if err := validateTitle(in.Title); err != nil {
		return nil, err
	}

	athlete, err := s.userRepo.GetByID(ctx, in.AthleteID)
	if err != nil {
		return nil, err
	}
	if athlete == nil {
		return nil, ErrUserNotFound
	}
	if athlete.Role.Name != models.RoleUser {
		return nil, ErrNotAnAthlete
	}

	plan := &models.WorkoutPlan{
		ID:          uuid.New(),
		CoachID:     caller.UserID,
		AthleteID:   athlete.ID,
		Title:       strings.TrimSpace(in.Title),
		HTMLContent: in.HTMLContent,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.planRepo.Create(ctx, plan); err != nil {
		logger.Log.Error("Failed to create workout plan",
			zap.String("coach_id", caller.UserID.String()),
			zap.Error(err),
		)
		return nil, err
	}

	logger.Log.Info("Workout plan created",
		zap.String("plan_id", plan.ID.String()),
		zap.String("coach_id", caller.UserID.String()),
		zap.String("athlete_id", athlete.ID.String()),
	)
	return plan, nil
}

// Update changes title and content. The athlete a plan belongs to never changes.
func (s *WorkoutPlanService) Update(ctx context.Context, caller Caller, id uuid.UUID, in PlanInput) (*models.WorkoutPlan, error) {
	if err := validateTitle(in.Title); err != nil {
		return nil, err
	}

	plan, err := s.authored(ctx, caller, id)
	if err != nil {
		return nil, err
	}

	plan.Title = strings.TrimSpace(in.Title)
	plan.HTMLContent = in.HTMLContent
	if err := s.planRepo.Update(ctx, plan); err != nil {
		logger.Log.Error("Failed to update workout plan",
			zap.String("plan_id", id.String()),
			zap.Error(err),
		)
		return nil, err
	}
	return plan, nil
}

func (s *WorkoutPlanService) Delete(ctx context.Context, caller Caller, id uuid.UUID) error {
	if _, err := s.authored(ctx, caller, id); err != nil {
		return err
	}

	if err := s.planRepo.Delete(ctx, id); err != nil {
		logger.Log.Error("Failed to delete workout plan",
			zap.String("plan_id", id.String()),
			zap.Error(err),
		)
		return err
	}

	logger.Log.Info("Workout plan deleted",
		zap.String("plan_id", id.String()),
		zap.String("coach_id", caller.UserID.String()),
	)
	return nil
}

// ForAthlete lists plans for athleteID visible to the caller: the coach's own
// authored plans, or every plan when athletes ask about themselves.
func (s *WorkoutPlanService) ForAthlete(ctx context.Context, caller Caller, athleteID uuid.UUID) ([]models.WorkoutPlan, error) {
	switch {
	case caller.IsCoach():
		return s.planRepo.ListByCoachAndAthlete(ctx, caller.UserID, athleteID)
	case caller.UserID == athleteID:
		return s.planRepo.ListByAthlete(ctx, athleteID)
	default:
		return nil, ErrForbidden
	}
}

// MyPlans lists the plans assigned to the caller, newest first.
func (s *WorkoutPlanService) MyPlans(ctx context.Context, caller Caller) ([]models.WorkoutPlan, error) {
	return s.planRepo.ListByAthlete(ctx, caller.UserID)
}

func (s *WorkoutPlanService) authored(ctx context.Context, caller Caller, id uuid.UUID) (*models.WorkoutPlan, error) {
	plan, err := s.planRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, ErrPlanNotFound
	}
	if plan.CoachID != caller.UserID {
		logger.Log.Warn("Workout plan access denied",
			zap.String("plan_id", id.String()),
			zap.String("caller_id", caller.UserID.String()),
		)
		return nil, ErrForbidden
	}
	return plan, nil
}
