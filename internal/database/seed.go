package database

import (
	"errors"
	"fmt"

	"github.com/Baaaki/trainergo/internal/models"
	"github.com/Baaaki/trainergo/internal/utils"
	"github.com/Baaaki/trainergo/pkg/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SeedRoles inserts Admin/User/Coach. Safe to run on every start.
func SeedRoles(db *gorm.DB) error {
	roles := models.DefaultRoles()
	err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&roles).Error
	if err != nil {
		return fmt.Errorf("seed roles: %w", err)
	}
	return nil
}

type AdminSeed struct {
	Email    string
	Password string
	Name     string
}

// SeedAdmin creates the admin account if no user owns the email yet.
// Admins can only be created this way, never through the public API.
func SeedAdmin(db *gorm.DB, seed AdminSeed) (*models.User, bool, error) {
	if seed.Email == "" || seed.Password == "" {
		return nil, false, errors.New("admin email and password are required")
	}

	var existing models.User
	err := db.Where("email = ?", seed.Email).First(&existing).Error
	if err == nil {
		return &existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("lookup admin: %w", err)
	}

	hash, err := utils.HashPassword(seed.Password)
	if err != nil {
		return nil, false, fmt.Errorf("hash admin password: %w", err)
	}

	admin := &models.User{
		ID:           uuid.New(),
		Name:         seed.Name,
		Email:        seed.Email,
		PasswordHash: hash,
		RoleID:       models.RoleIDAdmin,
	}
	if err := db.Omit(clause.Associations).Create(admin).Error; err != nil {
		return nil, false, fmt.Errorf("create admin: %w", err)
	}

	logger.Log.Info("Admin user created",
		zap.String("user_id", admin.ID.String()),
		zap.String("email", admin.Email),
	)
	return admin, true, nil
}
