package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

type User struct {
	gorm.Model
	Name           string     `json:"name" gorm:"default:''"`
	Email          string     `json:"email" gorm:"uniqueIndex;not null"`
	HashedPassword string     `json:"-" gorm:"not null"`
	Role           string     `json:"role" gorm:"default:'USER'"` // USER, ADMIN
	Phone          string     `json:"phone" gorm:"default:''"`
	Notes          string     `json:"notes" gorm:"type:text"` // admin-facing notes about the student
	IsActive       bool       `json:"is_active" gorm:"default:true"`
	LastLogin      *time.Time `json:"last_login"`
}

// IsAdmin reports whether the user holds the administrator role.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
