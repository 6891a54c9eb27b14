package models

import "time"

type Role string

const (
	RoleOrgAdmin Role = "org_admin"
	RoleMember   Role = "member"
)

type User struct {
	ID           uint64    `gorm:"primarykey" json:"id"`
	Name         string    `gorm:"type:varchar(255);not null" json:"name"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"type:varchar(255);not null" json:"-"`
	Role         Role      `gorm:"type:varchar(20);not null" json:"role"`
	OrgID        uint64    `gorm:"not null" json:"org_id"`
	CreatedAt    time.Time `json:"created_at"`

	// Relations
	Organization Organization `gorm:"foreignKey:OrgID" json:"organization,omitempty"`
}
