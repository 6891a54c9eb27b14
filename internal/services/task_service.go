package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/okanoworks/orgtask-api/internal/dto"
	"github.com/okanoworks/orgtask-api/internal/models"
	"github.com/okanoworks/orgtask-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrTaskNotFound        = errors.New("task not found")
	ErrProjectAccessDenied = errors.New("access denied")
	ErrAssigneeOutsideOrg  = errors.New("cannot assign task to user outside your organization")
)

// TaskService provides business logic for task operations.
type TaskService struct {
	taskRepo    repository.TaskRepository
	projectRepo repository.ProjectRepository
	userRepo    repository.UserRepository
	audit       *AuditLogger
}

// NewTaskService creates a new TaskService.
func NewTaskService(taskRepo repository.TaskRepository, projectRepo repository.ProjectRepository, userRepo repository.UserRepository, audit *AuditLogger) *TaskService {
	return &TaskService{
		taskRepo:    taskRepo,
		projectRepo: projectRepo,
		userRepo:    userRepo,
		audit:       audit,
	}
}

// CreateTaskInput represents parameters to create a new task.
type CreateTaskInput struct {
	Title       string
	Description string
	ProjectID   uint64
	AssignedTo  *uint64
	Priority    *models.TaskPriority
	DueDate     *time.Time
}

// CreateTask inserts a task after two ownership checks: the project must
// belong to the caller's organization, and the assignee, if given, must be
// a user of that same organization.
func (s *TaskService) CreateTask(orgID, actorID uint64, input CreateTaskInput) (*models.Task, error) {
	if _, err := s.projectRepo.FindOwned(input.ProjectID, orgID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to verify project: %w", err)
	}

	if input.AssignedTo != nil {
		if err := s.checkAssignee(*input.AssignedTo, orgID); err != nil {
			return nil, err
		}
	}

	priority := models.PriorityMedium
	if input.Priority != nil {
		priority = *input.Priority
	}

	task := &models.Task{
		Title:       input.Title,
		Description: input.Description,
		ProjectID:   input.ProjectID,
		AssignedTo:  input.AssignedTo,
		Priority:    priority,
		Status:      models.TaskStatusTodo,
		DueDate:     input.DueDate,
	}

	if err := s.taskRepo.Create(task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	s.audit.Record(orgID, actorID, fmt.Sprintf("Created task: %s", task.Title))

	return task, nil
}

// ListTasks returns all non-deleted tasks of a project, newest first. The
// project may be soft-deleted: its tasks stay readable.
func (s *TaskService) ListTasks(projectID, orgID uint64) ([]dto.TaskWithAssignee, error) {
	if _, err := s.projectRepo.FindOwnedAny(projectID, orgID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectAccessDenied
		}
		return nil, fmt.Errorf("failed to verify project: %w", err)
	}

	tasks, err := s.taskRepo.ListByProject(projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	return tasks, nil
}

// UpdateTaskInput carries a partial update: nil fields keep their stored
// values.
type UpdateTaskInput struct {
	Status     *models.TaskStatus
	Priority   *models.TaskPriority
	AssignedTo *uint64
}

// UpdateTask applies a partial update after re-verifying ownership
// transitively through the task's project. A newly supplied assignee is
// validated against the organization exactly as at creation.
func (s *TaskService) UpdateTask(id, orgID, actorID uint64, input UpdateTaskInput) (*models.Task, error) {
	task, err := s.taskRepo.FindOwned(id, orgID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	if input.AssignedTo != nil {
		if err := s.checkAssignee(*input.AssignedTo, orgID); err != nil {
			return nil, err
		}
		task.AssignedTo = input.AssignedTo
	}
	if input.Status != nil {
		task.Status = *input.Status
	}
	if input.Priority != nil {
		task.Priority = *input.Priority
	}

	if err := s.taskRepo.Update(task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	s.audit.Record(orgID, actorID, fmt.Sprintf("Updated task: %s", task.Title))

	return task, nil
}

func (s *TaskService) checkAssignee(userID, orgID uint64) error {
	if _, err := s.userRepo.FindInOrganization(userID, orgID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAssigneeOutsideOrg
		}
		return fmt.Errorf("failed to verify assignee: %w", err)
	}
	return nil
}
