package helpers

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/joshua-takyi/eventconnect/internal/models"
)

// TokenClaims is what the session token carries.
type TokenClaims struct {
	Email string      `json:"email"`
	Name  string      `json:"name,omitempty"`
	Role  models.Role `json:"role"`
	jwt.RegisteredClaims
}

// SessionClaims is the caller identity stored on the gin context. Role comes
// from the user record, not the token, so role changes apply immediately.
type SessionClaims struct {
	*TokenClaims
	UserID string      `json:"id"`
	Email  string      `json:"email,omitempty"`
	Name   string      `json:"name,omitempty"`
	Role   models.Role `json:"role"`
}

func (sc *SessionClaims) IsAdmin() bool {
	return sc.Role == models.RoleAdmin
}

func (sc *SessionClaims) IsPlanner() bool {
	return sc.Role == models.RolePlanner
}

func (sc *SessionClaims) HasRole(roles ...models.Role) bool {
	for _, r := range roles {
		if sc.Role == r {
			return true
		}
	}
	return false
}

func (sc *SessionClaims) IsOwner(userID string) bool {
	return sc.UserID == userID
}
