package services

import (
	"fmt"

	"github.com/okanoworks/orgtask-api/internal/constants"
	"github.com/okanoworks/orgtask-api/internal/dto"
	"github.com/okanoworks/orgtask-api/internal/repository"
)

// ActivityLogService reads the audit trail for an organization.
type ActivityLogService struct {
	logRepo repository.ActivityLogRepository
}

// NewActivityLogService creates a new ActivityLogService.
func NewActivityLogService(logRepo repository.ActivityLogRepository) *ActivityLogService {
	return &ActivityLogService{
		logRepo: logRepo,
	}
}

// ListRecent returns the newest activity entries for the organization,
// capped at the safety limit.
func (s *ActivityLogService) ListRecent(orgID uint64) ([]dto.ActivityLogEntry, error) {
	entries, err := s.logRepo.ListRecent(orgID, constants.ActivityLogLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list activity logs: %w", err)
	}
	return entries, nil
}
