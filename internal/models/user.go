package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type RoleName string

const (
	RoleAdmin RoleName = "Admin"
	RoleUser  RoleName = "User"
	RoleCoach RoleName = "Coach"
)

// Seeded role ids. Never reassigned at runtime.
const (
	RoleIDAdmin uint = 1
	RoleIDUser  uint = 2
	RoleIDCoach uint = 3
)

type Role struct {
	ID   uint     `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Name RoleName `gorm:"type:varchar(20);uniqueIndex;not null" json:"name"`
}

// DefaultRoles returns the reference rows every database must contain.
func DefaultRoles() []Role {
	return []Role{
		{ID: RoleIDAdmin, Name: RoleAdmin},
		{ID: RoleIDUser, Name: RoleUser},
		{ID: RoleIDCoach, Name: RoleCoach},
	}
}

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name         string    `gorm:"type:varchar(100);not null" json:"name"`
	Surname      string    `gorm:"type:varchar(100)" json:"surname"`
	TaxID        string    `gorm:"type:varchar(32)" json:"taxId"`
	Email        string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"type:varchar(255);not null" json:"-"` // Never expose password hash in JSON
	Phone        string    `gorm:"type:varchar(32)" json:"phone"`
	RoleID       uint      `gorm:"not null;index" json:"roleId"`
	Role         Role      `gorm:"foreignKey:RoleID" json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (u *User) FullName() string {
	return strings.TrimSpace(u.Name + " " + u.Surname)
}
