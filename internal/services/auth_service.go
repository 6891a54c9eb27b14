package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/okanoworks/orgtask-api/internal/constants"
	"github.com/okanoworks/orgtask-api/internal/models"
	"github.com/okanoworks/orgtask-api/internal/repository"
	"github.com/okanoworks/orgtask-api/internal/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailTaken           = errors.New("user already exists")
	ErrNameRequired         = errors.New("organization and user name are required")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrPasswordTooShort     = errors.New("password too short")
	ErrFailedToHashPassword = errors.New("failed to hash password")
	ErrFailedToRegister     = errors.New("failed to register organization")
)

// AuthService handles registration, login, and token issuance.
type AuthService struct {
	userRepo  repository.UserRepository
	jwtSecret string
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository, jwtSecret string) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		jwtSecret: jwtSecret,
	}
}

// RegisterInput represents the required information to bootstrap a tenant.
type RegisterInput struct {
	OrgName  string
	UserName string
	Email    string
	Password string
}

// RegisterOrganization creates a new organization together with its admin
// user. The two inserts and the duplicate-email check run in one database
// transaction; on any failure neither row persists.
func (s *AuthService) RegisterOrganization(input RegisterInput) (*models.User, *models.Organization, string, error) {
	orgName := strings.TrimSpace(input.OrgName)
	userName := strings.TrimSpace(input.UserName)
	if orgName == "" || userName == "" {
		return nil, nil, "", ErrNameRequired
	}
	if len(input.Password) < constants.MinPasswordLength {
		return nil, nil, "", ErrPasswordTooShort
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, "", ErrFailedToHashPassword
	}

	org := &models.Organization{
		Name: orgName,
	}

	admin := &models.User{
		Name:         userName,
		Email:        strings.ToLower(strings.TrimSpace(input.Email)),
		PasswordHash: string(hashedPassword),
		Role:         models.RoleOrgAdmin,
	}

	if err := s.userRepo.RegisterOrganization(org, admin); err != nil {
		switch {
		case errors.Is(err, repository.ErrEmailTaken):
			return nil, nil, "", ErrEmailTaken
		default:
			return nil, nil, "", fmt.Errorf("%w: %v", ErrFailedToRegister, err)
		}
	}

	token, err := utils.GenerateToken(admin, s.jwtSecret)
	if err != nil {
		return nil, nil, "", fmt.Errorf("failed to sign token: %w", err)
	}

	return admin, org, token, nil
}

// LoginInput holds the credentials for authentication.
type LoginInput struct {
	Email    string
	Password string
}

// Login verifies credentials and returns the user and a fresh token.
// Unknown email and wrong password are indistinguishable to the caller.
func (s *AuthService) Login(input LoginInput) (*models.User, string, error) {
	user, err := s.userRepo.FindByEmail(strings.ToLower(strings.TrimSpace(input.Email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("failed to find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(user, s.jwtSecret)
	if err != nil {
		return nil, "", fmt.Errorf("failed to sign token: %w", err)
	}

	return user, token, nil
}
