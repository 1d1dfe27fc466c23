package repository

import (
	"context"

	"github.com/Baaaki/trainergo/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DiaryRepository stores append-only training logs and body measurements.
type DiaryRepository struct {
	db *gorm.DB
}

func NewDiaryRepository(db *gorm.DB) *DiaryRepository {
	return &DiaryRepository{db: db}
}

func (r *DiaryRepository) CreateWorkout(ctx context.Context, log *models.TrainingLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

func (r *DiaryRepository) ListWorkouts(ctx context.Context, athleteID uuid.UUID) ([]models.TrainingLog, error) {
	var logs []models.TrainingLog
	err := r.db.WithContext(ctx).
		Where("athlete_id = ?", athleteID).
		Order("date DESC").
		Find(&logs).Error
	return logs, err
}

func (r *DiaryRepository) CreateMeasurement(ctx context.Context, m *models.AthleteMeasurement) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *DiaryRepository) ListMeasurements(ctx context.Context, athleteID uuid.UUID) ([]models.AthleteMeasurement, error) {
	var out []models.AthleteMeasurement
	err := r.db.WithContext(ctx).
		Where("athlete_id = ?", athleteID).
		Order("date DESC").
		Find(&out).Error
	return out, err
}
