package models

import "time"

// ActivityLog is append-only: rows are never updated or deleted.
type ActivityLog struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	OrgID     uint64    `gorm:"not null;index" json:"org_id"`
	UserID    uint64    `gorm:"not null" json:"user_id"`
	Action    string    `gorm:"type:text;not null" json:"action"`
	CreatedAt time.Time `json:"created_at"`
}
