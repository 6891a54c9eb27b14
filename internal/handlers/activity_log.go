package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	apierrors "github.com/okanoworks/orgtask-api/internal/errors"
	"github.com/okanoworks/orgtask-api/internal/middleware"
	"github.com/okanoworks/orgtask-api/internal/services"
)

// ActivityLogHandler serves the audit trail listing.
type ActivityLogHandler struct {
	logService *services.ActivityLogService
}

// NewActivityLogHandler creates a new ActivityLogHandler.
func NewActivityLogHandler(logService *services.ActivityLogService) *ActivityLogHandler {
	return &ActivityLogHandler{
		logService: logService,
	}
}

// ListLogs returns the newest audit entries for the caller's organization.
func (h *ActivityLogHandler) ListLogs(c *gin.Context) {
	identity, exists := middleware.GetIdentity(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	entries, err := h.logService.ListRecent(identity.OrgID)
	if err != nil {
		apierrors.InternalError(c, "Server Error")
		return
	}

	c.JSON(http.StatusOK, entries)
}
