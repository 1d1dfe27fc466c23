package service

import (
	"time"

	"github.com/Baaaki/trainergo/internal/models"
	"github.com/google/uuid"
)

// Projections returned across role boundaries. Raw models never leave the service
// when the caller's role limits what it may see.

type UserView struct {
	ID      uuid.UUID       `json:"id"`
	Name    string          `json:"name"`
	Surname string          `json:"surname"`
	Email   string          `json:"email"`
	Phone   string          `json:"phone"`
	TaxID   string          `json:"taxId"`
	Role    models.RoleName `json:"role"`
}

func newUserView(u *models.User) UserView {
	return UserView{
		ID:      u.ID,
		Name:    u.Name,
		Surname: u.Surname,
		Email:   u.Email,
		Phone:   u.Phone,
		TaxID:   u.TaxID,
		Role:    u.Role.Name,
	}
}

type EnrollmentView struct {
	EnrollmentID   uuid.UUID `json:"enrollmentId"`
	CourseID       uuid.UUID `json:"courseId"`
	CourseName     string    `json:"courseName"`
	Instructor     string    `json:"instructor"`
	Schedule       string    `json:"schedule"`
	EnrollmentDate time.Time `json:"enrollmentDate"`
}

type StudentView struct {
	EnrollmentID uuid.UUID `json:"enrollmentId"`
	UserID       uuid.UUID `json:"userId"`
	FullName     string    `json:"fullName"`
	Email        string    `json:"email"`
	Date         time.Time `json:"date"`
}

// AthleteSummary is one row of a coach's roster.
type AthleteSummary struct {
	ProfileID uuid.UUID `json:"profileId"`
	UserID    uuid.UUID `json:"userId"`
	FullName  string    `json:"fullName"`
	Email     string    `json:"email"`
	Goal      string    `json:"goal"`
}

// CoachProfileView is the coach's view of an athlete, notes included.
type CoachProfileView struct {
	ID             uuid.UUID `json:"id"`
	UserID         uuid.UUID `json:"userId"`
	FullName       string    `json:"fullName"`
	Email          string    `json:"email"`
	Weight         float64   `json:"weight"`
	Height         float64   `json:"height"`
	Goals          string    `json:"goals"`
	Equipment      string    `json:"equipment"`
	WeeklyWorkouts int       `json:"weeklyWorkouts"`
	CoachNotes     string    `json:"coachNotes"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// AthleteProfileView is the athlete's own view. It has no coachNotes field at all.
type AthleteProfileView struct {
	ID             uuid.UUID `json:"id"`
	CoachID        uuid.UUID `json:"coachId"`
	Weight         float64   `json:"weight"`
	Height         float64   `json:"height"`
	Goals          string    `json:"goals"`
	Equipment      string    `json:"equipment"`
	WeeklyWorkouts int       `json:"weeklyWorkouts"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func newCoachProfileView(p *models.AthleteProfile) CoachProfileView {
	return CoachProfileView{
		ID:             p.ID,
		UserID:         p.UserID,
		FullName:       p.User.FullName(),
		Email:          p.User.Email,
		Weight:         p.Weight,
		Height:         p.Height,
		Goals:          p.Goals,
		Equipment:      p.Equipment,
		WeeklyWorkouts: p.WeeklyWorkouts,
		CoachNotes:     p.CoachNotes,
		UpdatedAt:      p.UpdatedAt,
	}
}

func newAthleteProfileView(p *models.AthleteProfile) AthleteProfileView {
	return AthleteProfileView{
		ID:             p.ID,
		CoachID:        p.CoachID,
		Weight:         p.Weight,
		Height:         p.Height,
		Goals:          p.Goals,
		Equipment:      p.Equipment,
		WeeklyWorkouts: p.WeeklyWorkouts,
		UpdatedAt:      p.UpdatedAt,
	}
}
