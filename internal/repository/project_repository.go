package repository

import (
	"github.com/okanoworks/orgtask-api/internal/database"
	"github.com/okanoworks/orgtask-api/internal/models"
	"github.com/okanoworks/orgtask-api/internal/utils"
	"gorm.io/gorm"
)

// GormProjectRepository is a GORM implementation of ProjectRepository
type GormProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &GormProjectRepository{db: db}
}

// Create creates a new project
func (r *GormProjectRepository) Create(project *models.Project) error {
	return r.db.Create(project).Error
}

// ListByOrganization retrieves a page of non-deleted projects, newest first
func (r *GormProjectRepository) ListByOrganization(orgID uint64, params utils.PaginationParams) ([]models.Project, int64, error) {
	var total int64
	if err := r.db.Model(&models.Project{}).
		Scopes(database.NotDeleted).
		Where("org_id = ?", orgID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var projects []models.Project
	if err := r.db.
		Scopes(database.NotDeleted).
		Where("org_id = ?", orgID).
		Order("created_at DESC").
		Scopes(database.Paginate(params)).
		Find(&projects).Error; err != nil {
		return nil, 0, err
	}

	return projects, total, nil
}

// FindOwned finds a non-deleted project by ID scoped to an organization.
// A project that is absent, soft-deleted, or owned by another organization
// is reported identically as gorm.ErrRecordNotFound.
func (r *GormProjectRepository) FindOwned(id, orgID uint64) (*models.Project, error) {
	var project models.Project
	if err := r.db.
		Scopes(database.NotDeleted).
		Where("id = ? AND org_id = ?", id, orgID).
		First(&project).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

// FindOwnedAny finds a project by ID scoped to an organization, including
// soft-deleted rows.
func (r *GormProjectRepository) FindOwnedAny(id, orgID uint64) (*models.Project, error) {
	var project models.Project
	if err := r.db.
		Where("id = ? AND org_id = ?", id, orgID).
		First(&project).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

// Update persists changes to a project
func (r *GormProjectRepository) Update(project *models.Project) error {
	return r.db.Save(project).Error
}
