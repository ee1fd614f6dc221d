package models

import (
	"time"
)

type Role string

const (
	RoleUser    Role = "user"
	RoleAdmin   Role = "admin"
	RolePlanner Role = "planner"
)

func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleAdmin, RolePlanner:
		return true
	}
	return false
}

type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email" validate:"required,email"`
	Name         string    `json:"name" validate:"required"`
	Role         Role      `json:"role" validate:"required,oneof=user admin planner"`
	PasswordHash string    `json:"passwordHash,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Public strips credentials before the user leaves the process.
func (u User) Public() User {
	u.PasswordHash = ""
	return u
}

func PublicUsers(users []User) []User {
	out := make([]User, 0, len(users))
	for _, u := range users {
		out = append(out, u.Public())
	}
	return out
}
