package models

import "gorm.io/gorm"

// UserRole classifies an account as a rider or a driver.
type UserRole string

const (
	RoleRider  UserRole = "RIDER"
	RoleDriver UserRole = "DRIVER"
)

type User struct {
	gorm.Model
	Email    string   `json:"email" gorm:"uniqueIndex;not null"`
	Name     string   `json:"name"`
	Phone    string   `json:"phone"`
	Password string   `json:"-" gorm:"not null"` // bcrypt hash
	Role     UserRole `json:"role" gorm:"type:varchar(16);not null;index"`
}

// IsDriver reports whether the user offers routes.
func (u User) IsDriver() bool {
	return u.Role == RoleDriver
}
