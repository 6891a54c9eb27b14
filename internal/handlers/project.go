package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/okanoworks/orgtask-api/internal/dto"
	apierrors "github.com/okanoworks/orgtask-api/internal/errors"
	"github.com/okanoworks/orgtask-api/internal/middleware"
	"github.com/okanoworks/orgtask-api/internal/models"
	"github.com/okanoworks/orgtask-api/internal/services"
	"github.com/okanoworks/orgtask-api/internal/utils"
)

// ProjectHandler coordinates project-related HTTP handlers.
type ProjectHandler struct {
	projectService *services.ProjectService
}

// NewProjectHandler creates a new ProjectHandler.
func NewProjectHandler(projectService *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
	}
}

// CreateProject creates a project in the caller's organization.
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	identity, exists := middleware.GetIdentity(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	type CreateProjectRequest struct {
		Name        string `json:"name" binding:"required,max=255"`
		Description string `json:"description"`
	}

	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	project, err := h.projectService.CreateProject(identity.OrgID, identity.UserID, services.CreateProjectInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		respondProjectError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ProjectResponse{
		Message: "Project created successfully",
		Project: *project,
	})
}

// ListProjects returns a paginated listing of the caller's organization.
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	identity, exists := middleware.GetIdentity(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	params := utils.GetPaginationParams(c)

	projects, total, err := h.projectService.ListProjects(identity.OrgID, params)
	if err != nil {
		respondProjectError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ProjectListResponse{
		Data:       projects,
		Pagination: utils.NewPaginationResponse(total, params),
	})
}

// UpdateProject applies a partial update to a project the caller's
// organization owns.
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	identity, exists := middleware.GetIdentity(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	projectID, ok := parseIDParam(c)
	if !ok {
		return
	}

	type UpdateProjectRequest struct {
		Name        *string               `json:"name" binding:"omitempty,max=255"`
		Description *string               `json:"description"`
		Status      *models.ProjectStatus `json:"status" binding:"omitempty,oneof=active archived completed"`
	}

	var req UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	project, err := h.projectService.UpdateProject(projectID, identity.OrgID, identity.UserID, services.UpdateProjectInput{
		Name:        req.Name,
		Description: req.Description,
		Status:      req.Status,
	})
	if err != nil {
		respondProjectError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ProjectResponse{
		Message: "Project updated",
		Project: *project,
	})
}

// DeleteProject soft-deletes a project the caller's organization owns.
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	identity, exists := middleware.GetIdentity(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	projectID, ok := parseIDParam(c)
	if !ok {
		return
	}

	project, err := h.projectService.DeleteProject(projectID, identity.OrgID, identity.UserID)
	if err != nil {
		respondProjectError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ProjectResponse{
		Message: "Project deleted successfully",
		Project: *project,
	})
}

func parseIDParam(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid id")
		return 0, false
	}
	return id, true
}

func respondProjectError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrProjectNotFound):
		apierrors.NotFound(c, "Project not found or access denied")
	default:
		apierrors.InternalError(c, "Server Error")
	}
}
