package domain

import "time"

// Role values for User.Role.
const (
	RoleAdmin  = "admin"
	RoleMember = "member"
)

type User struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string // argon2 encoded
	Role         string // "admin" or "member"
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
