package testutil

import (
	"testing"
	"time"

	"github.com/Baaaki/trainergo/internal/models"
	"github.com/Baaaki/trainergo/internal/utils"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DefaultPassword is the plain-text password of every fixture user.
const DefaultPassword = "Password123"

// TokenOptions used by tests that build routers or sign tokens.
var TokenOptions = utils.TokenOptions{
	Secret:    "test-secret-key",
	Issuer:    "trainergo-test",
	Audience:  "trainergo-test-clients",
	ExpiresIn: time.Hour,
}

var roleIDs = map[models.RoleName]uint{
	models.RoleAdmin: models.RoleIDAdmin,
	models.RoleUser:  models.RoleIDUser,
	models.RoleCoach: models.RoleIDCoach,
}

// CreateUser inserts a user with the given role and DefaultPassword.
func CreateUser(t *testing.T, db *gorm.DB, role models.RoleName, name, email string) *models.User {
	t.Helper()

	hash, err := utils.HashPassword(DefaultPassword)
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}

	user := &models.User{
		ID:           uuid.New(),
		Name:         name,
		Surname:      "Test",
		Email:        email,
		PasswordHash: hash,
		RoleID:       roleIDs[role],
	}
	if err := db.Omit(clause.Associations).Create(user).Error; err != nil {
		t.Fatalf("Failed to create user %s: %v", email, err)
	}
	user.Role = models.Role{ID: roleIDs[role], Name: role}
	return user
}

// CreateCourse inserts a course owned by coachID.
func CreateCourse(t *testing.T, db *gorm.DB, coachID uuid.UUID, name string) *models.Course {
	t.Helper()

	course := &models.Course{
		ID:             uuid.New(),
		Name:           name,
		InstructorName: "Coach " + name,
		CoachID:        coachID,
		Schedule:       "Mon 18:00",
		PriceMonthly:   40,
		PriceType:      models.DefaultPriceType,
	}
	if err := db.Create(course).Error; err != nil {
		t.Fatalf("Failed to create course: %v", err)
	}
	return course
}

// CreateProfile makes coachID follow userID.
func CreateProfile(t *testing.T, db *gorm.DB, coachID, userID uuid.UUID) *models.AthleteProfile {
	t.Helper()

	p := &models.AthleteProfile{ID: uuid.New(), CoachID: coachID, UserID: userID}
	if err := db.Omit(clause.Associations).Create(p).Error; err != nil {
		t.Fatalf("Failed to create profile: %v", err)
	}
	return p
}

// TokenFor signs a token for user with TokenOptions.
func TokenFor(t *testing.T, user *models.User) string {
	t.Helper()

	token, err := utils.GenerateToken(user, TokenOptions)
	if err != nil {
		t.Fatalf("Failed to sign token: %v", err)
	}
	return token
}

// CreateEnrollment enrolls userID in courseID.
func CreateEnrollment(t *testing.T, db *gorm.DB, userID, courseID uuid.UUID) *models.Enrollment {
	t.Helper()

	e := &models.Enrollment{
		ID:             uuid.New(),
		UserID:         userID,
		CourseID:       courseID,
		EnrollmentDate: time.Now().UTC(),
	}
	if err := db.Omit(clause.Associations).Create(e).Error; err != nil {
		t.Fatalf("Failed to create enrollment: %v", err)
	}
	return e
}
