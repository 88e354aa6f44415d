package models

import "time"

// User defines the account model based on the 'users' table.
// Every user of role STUDENT or FACULTY has exactly one corresponding
// role-profile row referencing it; deleting the user cascades to it.
type User struct {
	ID           int64     `json:"id" db:"id" example:"1"`
	Email        string    `json:"email" db:"email" example:"jane@university.edu"`
	PasswordHash string    `json:"-" db:"password_hash"`
	FirstName    string    `json:"firstName" db:"first_name" example:"Jane"`
	LastName     string    `json:"lastName" db:"last_name" example:"Doe"`
	RoleType     RoleType  `json:"roleType" db:"role_type" example:"STUDENT"`
	IsActive     bool      `json:"isActive" db:"is_active"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

// FullName returns the display name used in notification snapshots
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
