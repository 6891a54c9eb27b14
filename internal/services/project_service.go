package services

import (
	"errors"
	"fmt"

	"github.com/okanoworks/orgtask-api/internal/models"
	"github.com/okanoworks/orgtask-api/internal/repository"
	"github.com/okanoworks/orgtask-api/internal/utils"
	"gorm.io/gorm"
)

var (
	// ErrProjectNotFound covers absent, soft-deleted, and other-tenant
	// projects alike so callers cannot probe for existence across orgs.
	ErrProjectNotFound = errors.New("project not found or access denied")
)

// ProjectService provides business logic for project operations.
type ProjectService struct {
	projectRepo repository.ProjectRepository
	audit       *AuditLogger
}

// NewProjectService creates a new ProjectService.
func NewProjectService(projectRepo repository.ProjectRepository, audit *AuditLogger) *ProjectService {
	return &ProjectService{
		projectRepo: projectRepo,
		audit:       audit,
	}
}

// CreateProjectInput represents parameters to create a new project.
type CreateProjectInput struct {
	Name        string
	Description string
}

// CreateProject creates a project owned by the caller's organization.
func (s *ProjectService) CreateProject(orgID, actorID uint64, input CreateProjectInput) (*models.Project, error) {
	project := &models.Project{
		Name:        input.Name,
		Description: input.Description,
		Status:      models.ProjectStatusActive,
		OrgID:       orgID,
	}

	if err := s.projectRepo.Create(project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	s.audit.Record(orgID, actorID, fmt.Sprintf("Created project: %s", project.Name))

	return project, nil
}

// ListProjects returns a page of the organization's projects, newest first.
func (s *ProjectService) ListProjects(orgID uint64, params utils.PaginationParams) ([]models.Project, int64, error) {
	projects, total, err := s.projectRepo.ListByOrganization(orgID, params)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, total, nil
}

// UpdateProjectInput carries a partial update: nil fields keep their
// stored values.
type UpdateProjectInput struct {
	Name        *string
	Description *string
	Status      *models.ProjectStatus
}

// UpdateProject applies a partial update after re-verifying ownership.
func (s *ProjectService) UpdateProject(id, orgID, actorID uint64, input UpdateProjectInput) (*models.Project, error) {
	project, err := s.projectRepo.FindOwned(id, orgID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}

	if input.Name != nil {
		project.Name = *input.Name
	}
	if input.Description != nil {
		project.Description = *input.Description
	}
	if input.Status != nil {
		project.Status = *input.Status
	}

	if err := s.projectRepo.Update(project); err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	s.audit.Record(orgID, actorID, fmt.Sprintf("Updated project status: %s", project.Name))

	return project, nil
}

// DeleteProject soft-deletes a project after re-verifying ownership. The
// row is kept for history but excluded from subsequent listings.
func (s *ProjectService) DeleteProject(id, orgID, actorID uint64) (*models.Project, error) {
	project, err := s.projectRepo.FindOwned(id, orgID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}

	project.IsDeleted = true

	if err := s.projectRepo.Update(project); err != nil {
		return nil, fmt.Errorf("failed to delete project: %w", err)
	}

	s.audit.Record(orgID, actorID, fmt.Sprintf("Deleted project: %s", project.Name))

	return project, nil
}
