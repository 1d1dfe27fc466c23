package repository

import (
	"context"

	"github.com/Baaaki/trainergo/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WorkoutPlanRepository struct {
	db *gorm.DB
}

func NewWorkoutPlanRepository(db *gorm.DB) *WorkoutPlanRepository {
	return &WorkoutPlanRepository{db: db}
}

func (r *WorkoutPlanRepository) Create(ctx context.Context, plan *models.WorkoutPlan) error {
	return r.db.WithContext(ctx).Create(plan).Error
}

func (r *WorkoutPlanRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.WorkoutPlan, error) {
	var plan models.WorkoutPlan
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&plan).Error; err != nil {
		return nil, notFoundAsNil(err)
	}
	return &plan, nil
}

// Update changes title and content only.
func (r *WorkoutPlanRepository) Update(ctx context.Context, plan *models.WorkoutPlan) error {
	return r.db.WithContext(ctx).Model(&models.WorkoutPlan{}).
		Where("id = ?", plan.ID).
		Select("title", "html_content").
		Updates(plan).Error
}

func (r *WorkoutPlanRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.WorkoutPlan{}).Error
}

func (r *WorkoutPlanRepository) ListByCoachAndAthlete(ctx context.Context, coachID, athleteID uuid.UUID) ([]models.WorkoutPlan, error) {
	var plans []models.WorkoutPlan
	err := r.db.WithContext(ctx).
		Where("coach_id = ? AND athlete_id = ?", coachID, athleteID).
		Order("created_at DESC").
		Find(&plans).Error
	return plans, err
}

func (r *WorkoutPlanRepository) ListByAthlete(ctx context.Context, athleteID uuid.UUID) ([]models.WorkoutPlan, error) {
	var plans []models.WorkoutPlan
	err := r.db.WithContext(ctx).
		Where("athlete_id = ?", athleteID).
		Order("created_at DESC").
		Find(&plans).Error
	return plans, err
}
