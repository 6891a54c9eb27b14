package repository

import (
	"github.com/okanoworks/orgtask-api/internal/dto"
	"github.com/okanoworks/orgtask-api/internal/models"
	"gorm.io/gorm"
)

// GormTaskRepository is a GORM implementation of TaskRepository
type GormTaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &GormTaskRepository{db: db}
}

// Create creates a new task
func (r *GormTaskRepository) Create(task *models.Task) error {
	return r.db.Create(task).Error
}

// ListByProject retrieves non-deleted tasks for a project, newest first.
// The assignee name comes from a LEFT JOIN so unassigned tasks (and tasks
// whose assignee was removed) carry a null name instead of disappearing.
func (r *GormTaskRepository) ListByProject(projectID uint64) ([]dto.TaskWithAssignee, error) {
	var rows []dto.TaskWithAssignee
	err := r.db.Model(&models.Task{}).
		Select("tasks.*, users.name AS assignee_name").
		Joins("LEFT JOIN users ON users.id = tasks.assigned_to").
		Where("tasks.project_id = ? AND tasks.is_deleted = ?", projectID, false).
		Order("tasks.created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// FindOwned finds a non-deleted task belonging to a non-deleted project of
// the given organization. The organization boundary is checked through the
// project join, never trusted from the task id alone.
func (r *GormTaskRepository) FindOwned(id, orgID uint64) (*models.Task, error) {
	var task models.Task
	err := r.db.
		Joins("JOIN projects ON projects.id = tasks.project_id").
		Where("tasks.id = ? AND tasks.is_deleted = ?", id, false).
		Where("projects.org_id = ? AND projects.is_deleted = ?", orgID, false).
		First(&task).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// Update persists changes to a task
func (r *GormTaskRepository) Update(task *models.Task) error {
	return r.db.Save(task).Error
}
