package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/Baaaki/trainergo/internal/models"
	"github.com/Baaaki/trainergo/internal/repository"
	"github.com/Baaaki/trainergo/pkg/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type EnrollmentService struct {
	enrollmentRepo *repository.EnrollmentRepository
	courseRepo     *repository.CourseRepository
	userRepo       *repository.UserRepository
}

func NewEnrollmentService(
	enrollmentRepo *repository.EnrollmentRepository,
	courseRepo *repository.CourseRepository,
	userRepo *repository.UserRepository,
) *EnrollmentService {
	return &EnrollmentService{
		enrollmentRepo: enrollmentRepo,
		courseRepo:     courseRepo,
		userRepo:       userRepo,
	}
}

// Join enrolls the calling athlete. A second join for the same course is a conflict.
func (s *EnrollmentService) Join(ctx context.Context, caller Caller, courseID uuid.UUID) (*models.Enrollment, error) {
	if err := caller.requireRole(models.RoleUser); err != nil {
		return nil, err
	}
	if _, err := s.loadCourse(ctx, courseID); err != nil {
		return nil, err
	}
	return s.enroll(ctx, caller.UserID, courseID)
}

func (s *EnrollmentService) Leave(ctx context.Context, caller Caller, courseID uuid.UUID) error {
	if err := caller.requireRole(models.RoleUser); err != nil {
		return err
	}

	e, err := s.enrollmentRepo.Get(ctx, caller.UserID, courseID)
	if err != nil {
		return err
	}
	if e == nil {
		return ErrNotEnrolled
	}

	if err := s.enrollmentRepo.Delete(ctx, e.ID); err != nil {
		logger.Log.Error("Failed to delete enrollment",
			zap.String("enrollment_id", e.ID.String()),
			zap.Error(err),
		)
		return err
	}

	logger.Log.Info("Athlete left course",
		zap.String("user_id", caller.UserID.String()),
		zap.String("course_id", courseID.String()),
	)
	return nil
}

func (s *EnrollmentService) MyEnrollments(ctx context.Context, caller Caller) ([]EnrollmentView, error) {
	rows, err := s.enrollmentRepo.ListByUser(ctx, caller.UserID)
	if err != nil {
		return nil, err
	}

	views := make([]EnrollmentView, 0, len(rows))
	for _, e := range rows {
		views = append(views, EnrollmentView{
			EnrollmentID:   e.ID,
			CourseID:       e.CourseID,
			CourseName:     e.Course.Name,
			Instructor:     e.Course.InstructorName,
			Schedule:       e.Course.Schedule,
			EnrollmentDate: e.EnrollmentDate,
		})
	}
	return views, nil
}

// Students returns the roster of a course the calling coach owns.
func (s *EnrollmentService) Students(ctx context.Context, caller Caller, courseID uuid.UUID) ([]StudentView, error) {
	if _, err := s.ownedCourse(ctx, caller, courseID); err != nil {
		return nil, err
	}

	rows, err := s.enrollmentRepo.ListByCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}

	views := make([]StudentView, 0, len(rows))
	for _, e := range rows {
		views = append(views, StudentView{
			EnrollmentID: e.ID,
			UserID:       e.UserID,
			FullName:     e.User.FullName(),
			Email:        e.User.Email,
			Date:         e.EnrollmentDate,
		})
	}
	return views, nil
}

// EnrollByEmail lets the owning coach add an athlete to the roster.
func (s *EnrollmentService) EnrollByEmail(ctx context.Context, caller Caller, courseID uuid.UUID, email string) (*models.Enrollment, error) {
	if _, err := s.ownedCourse(ctx, caller, courseID); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	return s.enroll(ctx, user.ID, courseID)
}

func (s *EnrollmentService) enroll(ctx context.Context, userID, courseID uuid.UUID) (*models.Enrollment, error) {
	existing, err := s.enrollmentRepo.Get(ctx, userID, courseID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrAlreadyEnrolled
	}

	e := &models.Enrollment{
		ID:             uuid.New(),
		UserID:         userID,
		CourseID:       courseID,
		EnrollmentDate: time.Now().UTC(),
	}
	if err := s.enrollmentRepo.Create(ctx, e); err != nil {
		// The unique index catches a concurrent join that passed the pre-check
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrAlreadyEnrolled
		}
		logger.Log.Error("Failed to create enrollment",
			zap.String("user_id", userID.String()),
			zap.String("course_id", courseID.String()),
			zap.Error(err),
		)
		return nil, err
	}

	logger.Log.Info("Enrollment created",
		zap.String("user_id", userID.String()),
		zap.String("course_id", courseID.String()),
	)
	return e, nil
}

func (s *EnrollmentService) loadCourse(ctx context.Context, id uuid.UUID) (*models.Course, error) {
	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if course == nil {
		return nil, ErrCourseNotFound
	}
	return course, nil
}

func (s *EnrollmentService) ownedCourse(ctx context.Context, caller Caller, id uuid.UUID) (*models.Course, error) {
	if err := caller.requireRole(models.RoleCoach); err != nil {
		return nil, err
	}
	course, err := s.loadCourse(ctx, id)
	if err != nil {
		return nil, err
	}
	if course.CoachID != caller.UserID {
		return nil, ErrForbidden
	}
	return course, nil
}
