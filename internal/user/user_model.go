package user

import (
	"time"

	"gorm.io/gorm"
)

// User is a scorer account. Only admins exist today; viewers are anonymous.
type User struct {
	gorm.Model
	Username  string     `gorm:"uniqueIndex;size:64;not null" json:"username"`
	Password  string     `gorm:"not null" json:"-"`
	Role      string     `gorm:"size:32;not null;default:admin" json:"role"`
	LastLogin *time.Time `json:"last_login,omitempty"`
}

// UserResponse is the public view of a User.
type UserResponse struct {
	ID        uint       `json:"id"`
	Username  string     `json:"username"`
	Role      string     `json:"role"`
	LastLogin *time.Time `json:"last_login,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// FilterUserRecord strips the password hash and gorm bookkeeping.
func FilterUserRecord(u *User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Role:      u.Role,
		LastLogin: u.LastLogin,
		CreatedAt: u.CreatedAt,
	}
}
