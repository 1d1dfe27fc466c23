package models

import (
	"time"

	"github.com/google/uuid"
)

// AthleteProfile is the per (coach, athlete) record. CoachNotes is coach-private.
type AthleteProfile struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CoachID        uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_athlete_profile_coach_user" json:"coachId"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_athlete_profile_coach_user;index" json:"userId"`
	Weight         float64   `json:"weight"`
	Height         float64   `json:"height"`
	Goals          string    `gorm:"type:text" json:"goals"`
	Equipment      string    `gorm:"type:text" json:"equipment"`
	WeeklyWorkouts int       `json:"weeklyWorkouts"`
	CoachNotes     string    `gorm:"type:text" json:"coachNotes"`
	UpdatedAt      time.Time `json:"updatedAt"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

type WorkoutPlan struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CoachID     uuid.UUID `gorm:"type:uuid;not null;index" json:"coachId"`
	AthleteID   uuid.UUID `gorm:"type:uuid;not null;index" json:"athleteId"`
	Title       string    `gorm:"type:varchar(200);not null" json:"title"`
	HTMLContent string    `gorm:"type:text" json:"htmlContent"` // opaque, stored as-is
	CreatedAt   time.Time `gorm:"index" json:"createdAt"`
}

type TrainingLog struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	AthleteID    uuid.UUID `gorm:"type:uuid;not null;index" json:"athleteId"`
	Date         time.Time `gorm:"not null;index" json:"date"`
	ExerciseName string    `gorm:"type:varchar(150);not null" json:"exerciseName"`
	Sets         int       `json:"sets"`
	Reps         int       `json:"reps"`
	WeightLifted float64   `json:"weightLifted"`
	EffortLevel  *int      `json:"effortLevel,omitempty"`
}

type AthleteMeasurement struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	AthleteID         uuid.UUID `gorm:"type:uuid;not null;index" json:"athleteId"`
	Date              time.Time `gorm:"not null;index" json:"date"`
	Weight            float64   `gorm:"not null" json:"weight"`
	BodyFatPercentage *float64  `json:"bodyFatPercentage,omitempty"`
	Notes             *string   `gorm:"type:text" json:"notes,omitempty"`
}

// All returns every model in migration order.
func All() []interface{} {
	return []interface{}{
		&Role{},
		&User{},
		&Course{},
		&Enrollment{},
		&AthleteProfile{},
		&WorkoutPlan{},
		&TrainingLog{},
		&AthleteMeasurement{},
	}
}
