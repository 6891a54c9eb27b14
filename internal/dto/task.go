package dto

import (
	"time"

	"github.com/okanoworks/orgtask-api/internal/models"
)

// TaskResponse wraps a single task mutation result.
type TaskResponse struct {
	Message string      `json:"message"`
	Task    models.Task `json:"task"`
}

// TaskWithAssignee is a task row augmented with the assignee's display
// name (null when unassigned or the user no longer exists).
type TaskWithAssignee struct {
	models.Task  `gorm:"embedded"`
	AssigneeName *string `gorm:"column:assignee_name" json:"assignee_name"`
}

// ActivityLogEntry is an audit row joined with the acting user's name.
type ActivityLogEntry struct {
	ID        uint64    `json:"id"`
	Action    string    `json:"action"`
	CreatedAt time.Time `json:"created_at"`
	UserName  *string   `gorm:"column:user_name" json:"user_name"`
}
