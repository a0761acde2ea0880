package models

import (
	"time"

	"gorm.io/gorm"
)

type StaffUser struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	Name         string         `json:"name" gorm:"not null"`
	Email        string         `json:"email" gorm:"unique;not null"`
	PasswordHash string         `json:"-" gorm:"not null"`
	Role         StaffRole      `json:"role" gorm:"not null"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}

type StaffRole string

const (
	RoleAdmin   StaffRole = "admin"
	RoleOwner   StaffRole = "owner"
	RoleCourier StaffRole = "courier"
)

// Valid reports whether the role is one of the three fixed staff tiers.
func (r StaffRole) Valid() bool {
	switch r {
	case RoleAdmin, RoleOwner, RoleCourier:
		return true
	}
	return false
}
