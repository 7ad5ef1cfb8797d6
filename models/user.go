package models

import "time"

// Role IDs as seeded by the schema migration.
const (
	RoleAdmin    = 1
	RoleCustomer = 2
	RoleGuest    = 3
)

type User struct {
	UserID       uint      `gorm:"primaryKey" json:"user_id"`
	FirstName    string    `gorm:"not null" json:"first_name"`
	LastName     string    `gorm:"not null" json:"last_name"`
	Email        *string   `gorm:"uniqueIndex" json:"email"`
	PasswordHash *string   `json:"-"`
	PhoneNumber  *string   `json:"phone_number"`
	IsGuest      bool      `json:"is_guest"`
	RoleID       int       `gorm:"default:2" json:"role_id"`
	CreatedAt    time.Time `json:"created_at"`
}

func (u *User) IsAdmin() bool {
	return u.RoleID == RoleAdmin
}
