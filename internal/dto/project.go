package dto

import (
	"github.com/okanoworks/orgtask-api/internal/models"
	"github.com/okanoworks/orgtask-api/internal/utils"
)

// ProjectResponse wraps a single project mutation result.
type ProjectResponse struct {
	Message string         `json:"message"`
	Project models.Project `json:"project"`
}

// ProjectListResponse is the paginated listing shape.
type ProjectListResponse struct {
	Data       []models.Project         `json:"data"`
	Pagination utils.PaginationResponse `json:"pagination"`
}
