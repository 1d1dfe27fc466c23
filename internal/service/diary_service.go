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

type WorkoutInput struct {
	ExerciseName string
	Sets         int
	Reps         int
	WeightLifted float64
	EffortLevel  *int
}

func (in WorkoutInput) validate() error {
	if strings.TrimSpace(in.ExerciseName) == "" {
		return validationError("exerciseName is required")
	}
	if in.Sets < 0 || in.Reps < 0 || in.WeightLifted < 0 {
		return validationError("sets, reps and weightLifted must not be negative")
	}
	if in.EffortLevel != nil && (*in.EffortLevel < 1 || *in.EffortLevel > 10) {
		return validationError("effortLevel must be between 1 and 10")
	}
	return nil
}

type MeasurementInput struct {
	Weight            float64
	BodyFatPercentage *float64
	Notes             *string
}

func (in MeasurementInput) validate() error {
	if in.Weight <= 0 {
		return validationError("weight must be positive")
	}
	if in.BodyFatPercentage != nil && (*in.BodyFatPercentage < 0 || *in.BodyFatPercentage > 100) {
		return validationError("bodyFatPercentage must be between 0 and 100")
	}
	return nil
}

// DiaryService records athlete-authored training data. Only athletes write, and
// athlete and date always come from the token and the clock.
type DiaryService struct {
	diaryRepo   *repository.DiaryRepository
	athleteRepo *repository.AthleteRepository
	now         func() time.Time
}

func NewDiaryService(diaryRepo *repository.DiaryRepository, athleteRepo *repository.AthleteRepository) *DiaryService {
	return &DiaryService{
		diaryRepo:   diaryRepo,
		athleteRepo: athleteRepo,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

func (s *DiaryService) LogWorkout(ctx context.Context, caller Caller, in WorkoutInput) (*models.TrainingLog, error) {
	if err := caller.requireRole(models.RoleUser); err != nil {
		return nil, err
	}
	if err := in.validate(); err != nil {
		return nil, err
	}

	entry := &models.TrainingLog{
		ID:           uuid.New(),
		AthleteID:    caller.UserID,
		Date:         s.now(),
		ExerciseName: strings.TrimSpace(in.ExerciseName),
		Sets:         in.Sets,
		Reps:         in.Reps,
		WeightLifted: in.WeightLifted,
		EffortLevel:  in.EffortLevel,
	}
	if err := s.diaryRepo.CreateWorkout(ctx, entry); err != nil {
		logger.Log.Error("Failed to log workout",
			zap.String("athlete_id", caller.UserID.String()),
			zap.Error(err),
		)
		return nil, err
	}
	return entry, nil
}

func (s *DiaryService) LogMeasurement(ctx context.Context, caller Caller, in MeasurementInput) (*models.AthleteMeasurement, error) {
	if err := caller.requireRole(models.RoleUser); err != nil {
		return nil, err
	}
	if err := in.validate(); err != nil {
		return nil, err
	}

	m := &models.AthleteMeasurement{
		ID:                uuid.New(),
		AthleteID:         caller.UserID,
		Date:              s.now(),
		Weight:            in.Weight,
		BodyFatPercentage: in.BodyFatPercentage,
		Notes:             in.Notes,
	}
	if err := s.diaryRepo.CreateMeasurement(ctx, m); err != nil {
		logger.Log.Error("Failed to log measurement",
			zap.String("athlete_id", caller.UserID.String()),
			zap.Error(err),
		)
		return nil, err
	}
	return m, nil
}

func (s *DiaryService) Workouts(ctx context.Context, caller Caller, athleteID uuid.UUID) ([]models.TrainingLog, error) {
	if err := s.canRead(ctx, caller, athleteID); err != nil {
		return nil, err
	}
	return s.diaryRepo.ListWorkouts(ctx, athleteID)
}

func (s *DiaryService) Measurements(ctx context.Context, caller Caller, athleteID uuid.UUID) ([]models.AthleteMeasurement, error) {
	if err := s.canRead(ctx, caller, athleteID); err != nil {
		return nil, err
	}
	return s.diaryRepo.ListMeasurements(ctx, athleteID)
}

// canRead allows the athlete, and any coach that follows the athlete.
func (s *DiaryService) canRead(ctx context.Context, caller Caller, athleteID uuid.UUID) error {
	if caller.UserID == athleteID {
		return nil
	}
	if !caller.IsCoach() {
		return ErrForbidden
	}

	follows, err := s.athleteRepo.Follows(ctx, caller.UserID, athleteID)
	if err != nil {
		return err
	}
	if !follows {
		return ErrForbidden
	}
	return nil
}
