package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleUser          = "user"
	RoleAdmin         = "admin"
	RoleModerateAdmin = "moderate_admin"
	RoleMainAdmin     = "main_admin"
)

// AdminRoles is the allow-list for admin-tier routes.
var AdminRoles = []string{RoleAdmin, RoleMainAdmin, RoleModerateAdmin}

// AssignableRoles are the values an admin may set on a user.
var AssignableRoles = []string{RoleUser, RoleAdmin, RoleModerateAdmin, RoleMainAdmin}

func IsValidRole(role string) bool {
	for _, r := range AssignableRoles {
		if r == role {
			return true
		}
	}
	return false
}

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name         string    `gorm:"size:100;not null" json:"name"`
	Email        string    `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	Role         string    `gorm:"size:30;not null;default:user" json:"role"`
	PhotoURL     *string   `gorm:"type:text" json:"photo_url,omitempty"`
	Phone        *string   `gorm:"size:30" json:"phone,omitempty"`
	City         *string   `gorm:"size:100" json:"city,omitempty"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
