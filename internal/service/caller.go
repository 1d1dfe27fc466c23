package service

import (
	"github.com/Baaaki/trainergo/internal/models"
	"github.com/google/uuid"
)

// Caller is the identity resolved from a verified token.
type Caller struct {
	UserID uuid.UUID
	Role   models.RoleName
}

func (c Caller) IsCoach() bool { return c.Role == models.RoleCoach }
func (c Caller) IsAdmin() bool { return c.Role == models.RoleAdmin }
func (c Caller) IsUser() bool  { return c.Role == models.RoleUser }

func (c Caller) requireRole(roles ...models.RoleName) error {
	for _, r := range roles {
		if c.Role == r {
			return nil
		}
	}
	return ErrForbidden
}
