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

// ProfileInput is the body of a profile update. CoachNotes only counts when a coach sends it.
type ProfileInput struct {
	ID             uuid.UUID
	Weight         float64
	Height         float64
	Goals          string
	Equipment      string
	WeeklyWorkouts int
	CoachNotes     *string
}

func (in ProfileInput) validate() error {
	if in.ID == uuid.Nil {
		return validationError("profile id is required")
	}
	if in.Weight < 0 || in.Height < 0 {
		return validationError("weight and height must not be negative")
	}
	if in.WeeklyWorkouts < 0 || in.WeeklyWorkouts > 14 {
		return validationError("weeklyWorkouts must be between 0 and 14")
	}
	return nil
}

type AthleteService struct {
	athleteRepo *repository.AthleteRepository
	userRepo    *repository.UserRepository
}

func NewAthleteService(athleteRepo *repository.AthleteRepository, userRepo *repository.UserRepository) *AthleteService {
	return &AthleteService{
		athleteRepo: athleteRepo,
		userRepo:    userRepo,
	}
}

// AddByEmail makes the calling coach follow an existing user, starting from an empty profile.
func (s *AthleteService) AddByEmail(ctx context.Context, caller Caller, email string) (*AthleteSummary, error) {
	if err := caller.requireRole(models.RoleCoach); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	following, err := s.athleteRepo.Follows(ctx, caller.UserID, user.ID)
	if err != nil {
		return nil, err
	}
	if following {
		return nil, ErrAlreadyFollowed
	}

	profile := &models.AthleteProfile{
		ID:        uuid.New(),
		CoachID:   caller.UserID,
		UserID:    user.ID,
		UpdatedAt: time.Now().UTC(),
	}
	if err := s.athleteRepo.Create(ctx, profile); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrAlreadyFollowed
		}
		logger.Log.Error("Failed to create athlete profile",
			zap.String("coach_id", caller.UserID.String()),
			zap.String("user_id", user.ID.String()),
			zap.Error(err),
		)
		return nil, err
	}

	logger.Log.Info("Coach now follows athlete",
		zap.String("coach_id", caller.UserID.String()),
		zap.String("user_id", user.ID.String()),
	)

	return &AthleteSummary{
		ProfileID: profile.ID,
		UserID:    user.ID,
		FullName:  user.FullName(),
		Email:     user.Email,
	}, nil
}

// MyAthletes is the calling coach's roster.
func (s *AthleteService) MyAthletes(ctx context.Context, caller Caller) ([]AthleteSummary, error) {
	if err := caller.requireRole(models.RoleCoach); err != nil {
		return nil, err
	}

	profiles, err := s.athleteRepo.ListByCoach(ctx, caller.UserID)
	if err != nil {
		return nil, err
	}

	out := make([]AthleteSummary, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, AthleteSummary{
			ProfileID: p.ID,
			UserID:    p.UserID,
			FullName:  p.User.FullName(),
			Email:     p.User.Email,
			Goal:      p.Goals,
		})
	}
	return out, nil
}

// Detail returns the coach's own profile of userID. Other coaches' profiles are invisible.
func (s *AthleteService) Detail(ctx context.Context, caller Caller, userID uuid.UUID) (*CoachProfileView, error) {
	if err := caller.requireRole(models.RoleCoach); err != nil {
		return nil, err
	}

	p, err := s.athleteRepo.GetByCoachAndUser(ctx, caller.UserID, userID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProfileNotFound
	}

	view := newCoachProfileView(p)
	return &view, nil
}

// MyProfile returns the most recently updated profile kept on the calling athlete.
func (s *AthleteService) MyProfile(ctx context.Context, caller Caller) (*AthleteProfileView, error) {
	profiles, err := s.MyProfiles(ctx, caller)
	if err != nil {
		return nil, err
	}
	if len(profiles) == 0 {
		return nil, ErrProfileNotFound
	}
	return &profiles[0], nil
}

// MyProfiles returns one view per coach following the caller, most recent first.
func (s *AthleteService) MyProfiles(ctx context.Context, caller Caller) ([]AthleteProfileView, error) {
	profiles, err := s.athleteRepo.ListByUser(ctx, caller.UserID)
	if err != nil {
		return nil, err
	}

	out := make([]AthleteProfileView, 0, len(profiles))
	for i := range profiles {
		out = append(out, newAthleteProfileView(&profiles[i]))
	}
	return out, nil
}

// Update applies in to the profile. The owning coach or the profiled athlete may write.
// Returns a CoachProfileView for the owning coach and an AthleteProfileView for the athlete.
func (s *AthleteService) Update(ctx context.Context, caller Caller, in ProfileInput) (interface{}, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	p, err := s.athleteRepo.GetByID(ctx, in.ID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProfileNotFound
	}

	asCoach := caller.IsCoach() && p.CoachID == caller.UserID
	asAthlete := p.UserID == caller.UserID
	if !asCoach && !asAthlete {
		logger.Log.Warn("Profile update denied",
			zap.String("profile_id", p.ID.String()),
			zap.String("caller_id", caller.UserID.String()),
		)
		return nil, ErrForbidden
	}

	p.Weight = in.Weight
	p.Height = in.Height
	p.Goals = in.Goals
	p.Equipment = in.Equipment
	p.WeeklyWorkouts = in.WeeklyWorkouts
	if asCoach && in.CoachNotes != nil {
		p.CoachNotes = *in.CoachNotes
	}
	p.UpdatedAt = time.Now().UTC()

	if err := s.athleteRepo.Update(ctx, p); err != nil {
		logger.Log.Error("Failed to update athlete profile",
			zap.String("profile_id", p.ID.String()),
			zap.Error(err),
		)
		return nil, err
	}

	if asCoach {
		return newCoachProfileView(p), nil
	}
	return newAthleteProfileView(p), nil
}
