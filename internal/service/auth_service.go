package service

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/Baaaki/trainergo/internal/models"
	"github.com/Baaaki/trainergo/internal/repository"
	"github.com/Baaaki/trainergo/internal/utils"
	"github.com/Baaaki/trainergo/pkg/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

type RegisterInput struct {
	Email    string
	Password string
	Name     string
	Surname  string
	TaxID    string
	Phone    string
}

// AuthResult is what register and login hand back to the client.
type AuthResult struct {
	Token string          `json:"token"`
	Role  models.RoleName `json:"role"`
	User  UserView        `json:"user"`
}

type AuthService struct {
	userRepo *repository.UserRepository
	tokens   utils.TokenOptions
}

func NewAuthService(userRepo *repository.UserRepository, tokens utils.TokenOptions) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

// Register creates an account with the given seeded role. The role is fixed here and never changes.
func (s *AuthService) Register(ctx context.Context, in RegisterInput, roleID uint) (*AuthResult, error) {
	start := time.Now()
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))

	logger.Log.Debug("Processing registration",
		zap.String("email", in.Email),
		zap.Uint("role_id", roleID),
	)

	if err := validateRegisterInput(in); err != nil {
		logger.Log.Warn("Registration validation failed",
			zap.String("email", in.Email),
			zap.Error(err),
		)
		return nil, err
	}

	role, err := s.userRepo.GetRole(ctx, roleID)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, ErrInvalidRole
	}

	existing, err := s.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		logger.Log.Error("Failed to check email existence",
			zap.String("email", in.Email),
			zap.Error(err),
		)
		return nil, err
	}
	if existing != nil {
		logger.Log.Warn("Email already exists", zap.String("email", in.Email))
		return nil, ErrDuplicateEmail
	}

	hashStart := time.Now()
	hash, err := utils.HashPassword(in.Password)
	if err != nil {
		logger.Log.Error("Failed to hash password", zap.Error(err))
		return nil, err
	}
	hashDuration := time.Since(hashStart)

	user := &models.User{
		ID:           uuid.New(),
		Name:         strings.TrimSpace(in.Name),
		Surname:      strings.TrimSpace(in.Surname),
		TaxID:        strings.TrimSpace(in.TaxID),
		Email:        in.Email,
		PasswordHash: hash,
		Phone:        strings.TrimSpace(in.Phone),
		RoleID:       role.ID,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		// Lost a race with a concurrent registration
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrDuplicateEmail
		}
		logger.Log.Error("Failed to create user in database",
			zap.String("email", in.Email),
			zap.Error(err),
		)
		return nil, err
	}
	user.Role = *role

	result, err := s.issue(user)
	if err != nil {
		return nil, err
	}

	logger.Log.Info("User registered successfully",
		zap.String("user_id", user.ID.String()),
		zap.String("role", string(role.Name)),
		zap.Duration("hash_duration", hashDuration),
		zap.Duration("total_duration", time.Since(start)),
	)

	return result, nil
}

// Login returns ErrInvalidCredentials for both an unknown email and a wrong password.
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	start := time.Now()
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Error("Failed to get user by email",
			zap.String("email", email),
			zap.Error(err),
		)
		return nil, err
	}
	if user == nil {
		logger.Log.Warn("Login failed: user not found", zap.String("email", email))
		return nil, ErrInvalidCredentials
	}

	valid, err := utils.VerifyPassword(password, user.PasswordHash)
	if err != nil {
		logger.Log.Error("Failed to verify password",
			zap.String("user_id", user.ID.String()),
			zap.Error(err),
		)
		return nil, err
	}
	if !valid {
		logger.Log.Warn("Login failed: invalid password",
			zap.String("user_id", user.ID.String()),
		)
		return nil, ErrInvalidCredentials
	}

	result, err := s.issue(user)
	if err != nil {
		return nil, err
	}

	logger.Log.Info("User logged in successfully",
		zap.String("user_id", user.ID.String()),
		zap.String("role", string(user.Role.Name)),
		zap.Duration("total_duration", time.Since(start)),
	)

	return result, nil
}

// Me returns the caller's own account.
func (s *AuthService) Me(ctx context.Context, caller Caller) (*UserView, error) {
	user, err := s.userRepo.GetByID(ctx, caller.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	view := newUserView(user)
	return &view, nil
}

// ListUsers returns every account. Admin only.
func (s *AuthService) ListUsers(ctx context.Context, caller Caller) ([]UserView, error) {
	if err := caller.requireRole(models.RoleAdmin); err != nil {
		return nil, err
	}

	users, err := s.userRepo.List(ctx)
	if err != nil {
		logger.Log.Error("Failed to fetch users", zap.Error(err))
		return nil, err
	}

	views := make([]UserView, 0, len(users))
	for i := range users {
		views = append(views, newUserView(&users[i]))
	}
	return views, nil
}

func (s *AuthService) issue(user *models.User) (*AuthResult, error) {
	token, err := utils.GenerateToken(user, s.tokens)
	if err != nil {
		logger.Log.Error("Failed to generate JWT token",
			zap.String("user_id", user.ID.String()),
			zap.Error(err),
		)
		return nil, err
	}

	return &AuthResult{
		Token: token,
		Role:  user.Role.Name,
		User:  newUserView(user),
	}, nil
}

func validateRegisterInput(in RegisterInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return validationError("name is required")
	}
	if len(in.Name) > 100 || len(in.Surname) > 100 {
		return validationError("name too long")
	}

	if !emailRegex.MatchString(in.Email) {
		return validationError("invalid email format")
	}
	if len(in.Email) > 100 {
		return validationError("email too long")
	}

	if len(in.Password) < 8 {
		return validationError("password must be at least 8 characters")
	}
	if len(in.Password) > 128 {
		return validationError("password too long")
	}

	return nil
}
