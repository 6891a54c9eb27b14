package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/okanoworks/orgtask-api/internal/dto"
	apierrors "github.com/okanoworks/orgtask-api/internal/errors"
	"github.com/okanoworks/orgtask-api/internal/middleware"
	"github.com/okanoworks/orgtask-api/internal/models"
	"github.com/okanoworks/orgtask-api/internal/services"
)

// TaskHandler coordinates task-related HTTP handlers.
type TaskHandler struct {
	taskService *services.TaskService
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

// CreateTask creates a task under a project of the caller's organization.
func (h *TaskHandler) CreateTask(c *gin.Context) {
	identity, exists := middleware.GetIdentity(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	type CreateTaskRequest struct {
		Title       string               `json:"title" binding:"required"`
		Description string               `json:"description"`
		ProjectID   uint64               `json:"project_id" binding:"required"`
		AssignedTo  *uint64              `json:"assigned_to"`
		Priority    *models.TaskPriority `json:"priority" binding:"omitempty,oneof=low medium high"`
		DueDate     *time.Time           `json:"due_date"`
	}

	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	task, err := h.taskService.CreateTask(identity.OrgID, identity.UserID, services.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		ProjectID:   req.ProjectID,
		AssignedTo:  req.AssignedTo,
		Priority:    req.Priority,
		DueDate:     req.DueDate,
	})
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.TaskResponse{
		Message: "Task created",
		Task:    *task,
	})
}

// ListTasks returns the tasks of a project, with assignee names.
func (h *TaskHandler) ListTasks(c *gin.Context) {
	identity, exists := middleware.GetIdentity(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	projectIDStr := c.Query("projectId")
	if projectIDStr == "" {
		apierrors.BadRequest(c, "Project ID is required")
		return
	}

	projectID, err := strconv.ParseUint(projectIDStr, 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid projectId")
		return
	}

	tasks, err := h.taskService.ListTasks(projectID, identity.OrgID)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, tasks)
}

// UpdateTask applies a partial update to a task reachable from the
// caller's organization.
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	identity, exists := middleware.GetIdentity(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	taskID, ok := parseIDParam(c)
	if !ok {
		return
	}

	type UpdateTaskRequest struct {
		Status     *models.TaskStatus   `json:"status" binding:"omitempty,oneof=todo in_progress done"`
		Priority   *models.TaskPriority `json:"priority" binding:"omitempty,oneof=low medium high"`
		AssignedTo *uint64              `json:"assigned_to"`
	}

	var req UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	task, err := h.taskService.UpdateTask(taskID, identity.OrgID, identity.UserID, services.UpdateTaskInput{
		Status:     req.Status,
		Priority:   req.Priority,
		AssignedTo: req.AssignedTo,
	})
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.TaskResponse{
		Message: "Task updated",
		Task:    *task,
	})
}

func respondTaskError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrProjectNotFound):
		apierrors.NotFound(c, "Project not found or access denied")
	case errors.Is(err, services.ErrTaskNotFound):
		apierrors.NotFound(c, "Task not found")
	case errors.Is(err, services.ErrProjectAccessDenied):
		apierrors.Forbidden(c, "Access Denied")
	case errors.Is(err, services.ErrAssigneeOutsideOrg):
		apierrors.BadRequest(c, "Cannot assign task to user outside your organization")
	default:
		apierrors.InternalError(c, "Server Error")
	}
}
