package repository

import (
	"context"

	"github.com/Baaaki/trainergo/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type EnrollmentRepository struct {
	db *gorm.DB
}

func NewEnrollmentRepository(db *gorm.DB) *EnrollmentRepository {
	return &EnrollmentRepository{db: db}
}

// Create returns ErrDuplicate when the (user, course) pair already exists.
func (r *EnrollmentRepository) Create(ctx context.Context, e *models.Enrollment) error {
	return translate(r.db.WithContext(ctx).Omit(clause.Associations).Create(e).Error)
}

func (r *EnrollmentRepository) Get(ctx context.Context, userID, courseID uuid.UUID) (*models.Enrollment, error) {
	var e models.Enrollment
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND course_id = ?", userID, courseID).
		First(&e).Error
	if err != nil {
		return nil, notFoundAsNil(err)
	}
	return &e, nil
}

func (r *EnrollmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Enrollment{}).Error
}

// ListByUser returns the user's enrollments with Course loaded.
func (r *EnrollmentRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Enrollment, error) {
	var out []models.Enrollment
	err := r.db.WithContext(ctx).
		Preload("Course").
		Where("user_id = ?", userID).
		Order("enrollment_date DESC").
		Find(&out).Error
	return out, err
}

// ListByCourse returns the roster with User loaded.
func (r *EnrollmentRepository) ListByCourse(ctx context.Context, courseID uuid.UUID) ([]models.Enrollment, error) {
	var out []models.Enrollment
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("course_id = ?", courseID).
		Order("enrollment_date ASC").
		Find(&out).Error
	return out, err
}
