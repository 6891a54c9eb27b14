package repository

import (
	"github.com/okanoworks/orgtask-api/internal/dto"
	"github.com/okanoworks/orgtask-api/internal/models"
	"gorm.io/gorm"
)

// GormActivityLogRepository is a GORM implementation of ActivityLogRepository
type GormActivityLogRepository struct {
	db *gorm.DB
}

// NewActivityLogRepository creates a new ActivityLogRepository
func NewActivityLogRepository(db *gorm.DB) ActivityLogRepository {
	return &GormActivityLogRepository{db: db}
}

// Create appends an activity log entry
func (r *GormActivityLogRepository) Create(entry *models.ActivityLog) error {
	return r.db.Create(entry).Error
}

// ListRecent retrieves the most recent entries for an organization.
// Entries outlive their users, so the join is a LEFT JOIN and the name
// is null once the user is gone.
func (r *GormActivityLogRepository) ListRecent(orgID uint64, limit int) ([]dto.ActivityLogEntry, error) {
	var entries []dto.ActivityLogEntry
	err := r.db.Model(&models.ActivityLog{}).
		Select("activity_logs.id, activity_logs.action, activity_logs.created_at, users.name AS user_name").
		Joins("LEFT JOIN users ON users.id = activity_logs.user_id").
		Where("activity_logs.org_id = ?", orgID).
		Order("activity_logs.created_at DESC").
		Limit(limit).
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
