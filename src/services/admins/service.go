package admins

import (
	"context"
	"errors"
	"fmt"
	"time"

	"course-marketplace/src/apperrors"
	"course-marketplace/src/models"
	"course-marketplace/src/repositories"
	"course-marketplace/src/utils"
)

const opTimeout = 5 * time.Second

var errMissingCredentials = apperrors.New(apperrors.ErrBadRequest, "Username and password are required")

type Service struct {
	admins     repositories.AdminRepository
	tokens     *utils.TokenManager
	bcryptCost int
}

func NewService(admins repositories.AdminRepository, tokens *utils.TokenManager, bcryptCost int) *Service {
	return &Service{admins: admins, tokens: tokens, bcryptCost: bcryptCost}
}

// Signup สร้าง admin ใหม่และคืน token
func (s *Service) Signup(ctx context.Context, creds models.Credentials) (string, error) {
	if err := utils.ValidateStruct(creds); err != nil {
		return "", errMissingCredentials
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	_, err := s.admins.FindByUsername(ctx, creds.Username)
	if err == nil {
		return "", apperrors.New(apperrors.ErrConflict, "Admin already exists")
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return "", fmt.Errorf("find admin: %w", err)
	}

	hashed, err := utils.HashPassword(creds.Password, s.bcryptCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	admin := &models.Admin{Username: creds.Username, Password: hashed}
	if err := s.admins.Create(ctx, admin); err != nil {
		// lost a race with a concurrent signup for the same username
		if errors.Is(err, apperrors.ErrConflict) {
			return "", apperrors.New(apperrors.ErrConflict, "Admin already exists")
		}
		return "", fmt.Errorf("create admin: %w", err)
	}

	return s.tokens.GenerateJWT(admin.Username, models.RoleAdmin)
}

func (s *Service) Login(ctx context.Context, creds models.Credentials) (string, error) {
	if err := utils.ValidateStruct(creds); err != nil {
		return "", errMissingCredentials
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	admin, err := s.admins.FindByUsername(ctx, creds.Username)
	if errors.Is(err, apperrors.ErrNotFound) {
		return "", apperrors.New(apperrors.ErrInvalidCredentials, "Invalid username or password")
	}
	if err != nil {
		return "", fmt.Errorf("find admin: %w", err)
	}
	if !utils.CheckPassword(admin.Password, creds.Password) {
		return "", apperrors.New(apperrors.ErrInvalidCredentials, "Invalid username or password")
	}

	return s.tokens.GenerateJWT(admin.Username, models.RoleAdmin)
}

// GetSelf returns the admin behind a verified token.
func (s *Service) GetSelf(ctx context.Context, username string) (*models.Admin, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	admin, err := s.admins.FindByUsername(ctx, username)
	if errors.Is(err, apperrors.ErrNotFound) {
		return nil, apperrors.New(apperrors.ErrForbidden, "Admin doesnt exist")
	}
	if err != nil {
		return nil, fmt.Errorf("find admin: %w", err)
	}
	return admin, nil
}
