package repository

import (
	"errors"
	"fmt"

	"github.com/okanoworks/orgtask-api/internal/models"
	"gorm.io/gorm"
)

// GormUserRepository is a GORM implementation of UserRepository
type GormUserRepository struct {
	db *gorm.DB
}

var (
	// ErrEmailTaken is returned when the registration email already exists.
	ErrEmailTaken = errors.New("user repository: email already registered")
	// ErrCreateOrganization is returned when creating the organization fails inside the registration transaction.
	ErrCreateOrganization = errors.New("user repository: create organization failed")
	// ErrCreateUser is returned when creating the admin user fails inside the registration transaction.
	ErrCreateUser = errors.New("user repository: create user failed")
)

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &GormUserRepository{db: db}
}

// RegisterOrganization creates the organization and its admin user atomically.
// The duplicate-email check runs inside the transaction so a concurrent
// registration cannot slip between check and insert.
func (r *GormUserRepository) RegisterOrganization(org *models.Organization, admin *models.User) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var existing models.User
		err := tx.Where("email = ?", admin.Email).First(&existing).Error
		if err == nil {
			return ErrEmailTaken
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check email: %w", err)
		}

		if err := tx.Create(org).Error; err != nil {
			return fmt.Errorf("%w: %v", ErrCreateOrganization, err)
		}

		admin.OrgID = org.ID

		if err := tx.Create(admin).Error; err != nil {
			return fmt.Errorf("%w: %v", ErrCreateUser, err)
		}

		return nil
	})
}

// FindByEmail finds a user by email
func (r *GormUserRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindInOrganization finds a user by ID scoped to an organization
func (r *GormUserRepository) FindInOrganization(id, orgID uint64) (*models.User, error) {
	var user models.User
	if err := r.db.Where("id = ? AND org_id = ?", id, orgID).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
