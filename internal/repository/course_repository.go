package repository

import (
	"context"

	"github.com/Baaaki/trainergo/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CourseRepository struct {
	db *gorm.DB
}

func NewCourseRepository(db *gorm.DB) *CourseRepository {
	return &CourseRepository{db: db}
}

func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	return r.db.WithContext(ctx).Create(course).Error
}

func (r *CourseRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Course, error) {
	var course models.Course
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&course).Error; err != nil {
		return nil, notFoundAsNil(err)
	}
	return &course, nil
}

func (r *CourseRepository) List(ctx context.Context) ([]models.Course, error) {
	var courses []models.Course
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&courses).Error
	return courses, err
}

func (r *CourseRepository) ListByCoach(ctx context.Context, coachID uuid.UUID) ([]models.Course, error) {
	var courses []models.Course
	err := r.db.WithContext(ctx).Where("coach_id = ?", coachID).Order("created_at DESC").Find(&courses).Error
	return courses, err
}

// Update writes the editable columns only. coach_id and created_at are never touched.
func (r *CourseRepository) Update(ctx context.Context, course *models.Course) error {
	return r.db.WithContext(ctx).Model(&models.Course{}).
		Where("id = ?", course.ID).
		Select("name", "instructor_name", "schedule", "description", "price_monthly", "price_type").
		Updates(course).Error
}

// Delete removes the course and its enrollments in one transaction.
func (r *CourseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("course_id = ?", id).Delete(&models.Enrollment{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&models.Course{}).Error
	})
}
