package models

import (
	"time"

	"github.com/google/uuid"
)

const DefaultPriceType = "Monthly"

type Course struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name           string    `gorm:"type:varchar(150);not null" json:"name"`
	InstructorName string    `gorm:"type:varchar(150)" json:"instructor"`
	CoachID        uuid.UUID `gorm:"type:uuid;not null;index" json:"coachId"`
	Schedule       string    `gorm:"type:varchar(255)" json:"schedule"`
	Description    string    `gorm:"type:text" json:"description"`
	PriceMonthly   float64   `gorm:"not null;default:0" json:"priceMonthly"`
	PriceType      string    `gorm:"type:varchar(30);not null;default:'Monthly'" json:"priceType"`
	CreatedAt      time.Time `json:"createdAt"`
}

// Enrollment links an athlete to a course. One row per (user, course).
type Enrollment struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_enrollment_user_course" json:"userId"`
	CourseID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_enrollment_user_course;index" json:"courseId"`
	EnrollmentDate time.Time `gorm:"not null" json:"enrollmentDate"`

	User   User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Course Course `gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE" json:"-"`
}
