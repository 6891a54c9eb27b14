package services

import (
	"sync"

	"github.com/okanoworks/orgtask-api/internal/models"
	"github.com/okanoworks/orgtask-api/internal/repository"
	"go.uber.org/zap"
)

// AuditLogger records mutations to the activity log on a fire-and-forget
// basis. The triggering request never waits on the write, and a failed
// write never rolls back or fails the mutation it describes; the failure
// goes to the operational log instead.
type AuditLogger struct {
	logs   repository.ActivityLogRepository
	logger *zap.Logger
	wg     sync.WaitGroup
}

// NewAuditLogger creates a new AuditLogger
func NewAuditLogger(logs repository.ActivityLogRepository, logger *zap.Logger) *AuditLogger {
	return &AuditLogger{
		logs:   logs,
		logger: logger,
	}
}

// Record writes an activity entry in a detached goroutine.
func (a *AuditLogger) Record(orgID, userID uint64, action string) {
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()

		entry := &models.ActivityLog{
			OrgID:  orgID,
			UserID: userID,
			Action: action,
		}

		if err := a.logs.Create(entry); err != nil {
			a.logger.Error("activity log write failed",
				zap.Uint64("org_id", orgID),
				zap.Uint64("user_id", userID),
				zap.String("action", action),
				zap.Error(err),
			)
		}
	}()
}

// Flush blocks until all in-flight writes have completed. Used during
// shutdown and by tests.
func (a *AuditLogger) Flush() {
	a.wg.Wait()
}
