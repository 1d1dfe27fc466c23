package repository

import (
	"context"

	"github.com/Baaaki/trainergo/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AthleteRepository struct {
	db *gorm.DB
}

func NewAthleteRepository(db *gorm.DB) *AthleteRepository {
	return &AthleteRepository{db: db}
}

// Create returns ErrDuplicate when the coach already follows the athlete.
func (r *AthleteRepository) Create(ctx context.Context, p *models.AthleteProfile) error {
	return translate(r.db.WithContext(ctx).Omit(clause.Associations).Create(p).Error)
}

func (r *AthleteRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.AthleteProfile, error) {
	var p models.AthleteProfile
	if err := r.db.WithContext(ctx).Preload("User").Where("id = ?", id).First(&p).Error; err != nil {
		return nil, notFoundAsNil(err)
	}
	return &p, nil
}

func (r *AthleteRepository) GetByCoachAndUser(ctx context.Context, coachID, userID uuid.UUID) (*models.AthleteProfile, error) {
	var p models.AthleteProfile
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("coach_id = ? AND user_id = ?", coachID, userID).
		First(&p).Error
	if err != nil {
		return nil, notFoundAsNil(err)
	}
	return &p, nil
}

// Follows reports whether an AthleteProfile(coach, user) exists.
func (r *AthleteRepository) Follows(ctx context.Context, coachID, userID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.AthleteProfile{}).
		Where("coach_id = ? AND user_id = ?", coachID, userID).
		Count(&count).Error
	return count > 0, err
}

func (r *AthleteRepository) ListByCoach(ctx context.Context, coachID uuid.UUID) ([]models.AthleteProfile, error) {
	var out []models.AthleteProfile
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("coach_id = ?", coachID).
		Order("updated_at DESC").
		Find(&out).Error
	return out, err
}

// ListByUser returns every profile kept on the athlete, most recently updated first.
func (r *AthleteRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.AthleteProfile, error) {
	var out []models.AthleteProfile
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		Find(&out).Error
	return out, err
}

// Update writes the mutable columns. Ownership columns are never updated.
func (r *AthleteRepository) Update(ctx context.Context, p *models.AthleteProfile) error {
	return r.db.WithContext(ctx).Model(&models.AthleteProfile{}).
		Where("id = ?", p.ID).
		Select("weight", "height", "goals", "equipment", "weekly_workouts", "coach_notes", "updated_at").
		Updates(p).Error
}
