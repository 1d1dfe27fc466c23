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

// CourseInput holds the client-editable course fields. Owner and id are never taken from it.
type CourseInput struct {
	Name         string
	Instructor   string
	Schedule     string
	Description  string
	PriceMonthly float64
	PriceType    string
}

func (in CourseInput) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return validationError("course name is required")
	}
	if len(in.Name) > 150 {
		return validationError("course name too long")
	}
	if in.PriceMonthly < 0 {
		return validationError("price must not be negative")
	}
	return nil
}

func (in CourseInput) priceType() string {
	if pt := strings.TrimSpace(in.PriceType); pt != "" {
		return pt
	}
	return models.DefaultPriceType
}

type CourseService struct {
	courseRepo *repository.CourseRepository
}

func NewCourseService(courseRepo *repository.CourseRepository) *CourseService {
	return &CourseService{courseRepo: courseRepo}
}

// List returns the caller's own courses for a coach, every course otherwise.
func (s *CourseService) List(ctx context.Context, caller Caller) ([]models.Course, error) {
	if caller.IsCoach() {
		return s.courseRepo.ListByCoach(ctx, caller.UserID)
	}
	return s.courseRepo.List(ctx)
}

func (s *CourseService) Create(ctx context.Context, caller Caller, in CourseInput) (*models.Course, error) {
	if err := caller.requireRole(models.RoleCoach); err != nil {
		return nil, err
	}
	if err := in.validate(); err != nil {
		return nil, err
	}

	course := &models.Course{
		ID:             uuid.New(),
		Name:           strings.TrimSpace(in.Name),
		InstructorName: strings.TrimSpace(in.Instructor),
		CoachID:        caller.UserID,
		Schedule:       in.Schedule,
		Description:    in.Description,
		PriceMonthly:   in.PriceMonthly,
		PriceType:      in.priceType(),
		CreatedAt:      time.Now().UTC(),
	}
	if err := s.courseRepo.Create(ctx, course); err != nil {
		logger.Log.Error("Failed to create course",
			zap.String("coach_id", caller.UserID.String()),
			zap.Error(err),
		)
		return nil, err
	}

	logger.Log.Info("Course created",
		zap.String("course_id", course.ID.String()),
		zap.String("coach_id", caller.UserID.String()),
	)
	return course, nil
}

// Update is owner-only. The persisted coachId is kept.
func (s *CourseService) Update(ctx context.Context, caller Caller, id uuid.UUID, in CourseInput) (*models.Course, error) {
	if err := caller.requireRole(models.RoleCoach); err != nil {
		return nil, err
	}
	if err := in.validate(); err != nil {
		return nil, err
	}

	existing, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrCourseNotFound
	}
	if existing.CoachID != caller.UserID {
		logger.Log.Warn("Course update denied",
			zap.String("course_id", id.String()),
			zap.String("caller_id", caller.UserID.String()),
		)
		return nil, ErrForbidden
	}

	existing.Name = strings.TrimSpace(in.Name)
	existing.InstructorName = strings.TrimSpace(in.Instructor)
	existing.Schedule = in.Schedule
	existing.Description = in.Description
	existing.PriceMonthly = in.PriceMonthly
	existing.PriceType = in.priceType()

	if err := s.courseRepo.Update(ctx, existing); err != nil {
		logger.Log.Error("Failed to update course",
			zap.String("course_id", id.String()),
			zap.Error(err),
		)
		return nil, err
	}
	return existing, nil
}

// Delete is allowed for the owner and for admins. Enrollments go with the course.
func (s *CourseService) Delete(ctx context.Context, caller Caller, id uuid.UUID) error {
	existing, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrCourseNotFound
	}
	if existing.CoachID != caller.UserID && !caller.IsAdmin() {
		logger.Log.Warn("Course delete denied",
			zap.String("course_id", id.String()),
			zap.String("caller_id", caller.UserID.String()),
		)
		return ErrForbidden
	}

	if err := s.courseRepo.Delete(ctx, id); err != nil {
		logger.Log.Error("Failed to delete course",
			zap.String("course_id", id.String()),
			zap.Error(err),
		)
		return err
	}

	logger.Log.Info("Course deleted",
		zap.String("course_id", id.String()),
		zap.String("deleted_by", caller.UserID.String()),
	)
	return nil
}
