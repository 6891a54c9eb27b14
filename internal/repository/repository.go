package repository

import (
	"github.com/okanoworks/orgtask-api/internal/dto"
	"github.com/okanoworks/orgtask-api/internal/models"
	"github.com/okanoworks/orgtask-api/internal/utils"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// RegisterOrganization creates an organization and its admin user
	// within a single transaction. Neither row persists on failure.
	RegisterOrganization(org *models.Organization, admin *models.User) error

	// FindByEmail finds a user by email
	FindByEmail(email string) (*models.User, error)

	// FindInOrganization finds a user by ID scoped to an organization
	FindInOrganization(id, orgID uint64) (*models.User, error)
}

// ProjectRepository defines the interface for project data access
type ProjectRepository interface {
	// Create creates a new project
	Create(project *models.Project) error

	// ListByOrganization retrieves a page of non-deleted projects for an
	// organization, newest first, along with the total count.
	ListByOrganization(orgID uint64, params utils.PaginationParams) ([]models.Project, int64, error)

	// FindOwned finds a non-deleted project by ID scoped to an organization
	FindOwned(id, orgID uint64) (*models.Project, error)

	// FindOwnedAny is FindOwned without the soft-delete filter; a deleted
	// project's tasks remain readable.
	FindOwnedAny(id, orgID uint64) (*models.Project, error)

	// Update persists changes to a project
	Update(project *models.Project) error
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create creates a new task
	Create(task *models.Task) error

	// ListByProject retrieves non-deleted tasks for a project, newest
	// first, each augmented with the assignee's display name.
	ListByProject(projectID uint64) ([]dto.TaskWithAssignee, error)

	// FindOwned finds a non-deleted task whose project belongs to the
	// given organization. Ownership is transitive through the project.
	FindOwned(id, orgID uint64) (*models.Task, error)

	// Update persists changes to a task
	Update(task *models.Task) error
}

// ActivityLogRepository defines the interface for audit log data access
type ActivityLogRepository interface {
	// Create appends an activity log entry
	Create(entry *models.ActivityLog) error

	// ListRecent retrieves the most recent entries for an organization,
	// newest first, each joined with the acting user's display name.
	ListRecent(orgID uint64, limit int) ([]dto.ActivityLogEntry, error)
}
