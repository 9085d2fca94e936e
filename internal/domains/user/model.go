package user

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleUser      = "user"
	RoleAdmin     = "admin"
	RoleModerator = "moderator"
)

// User accounts are read-only in this system: the back-office lists
// them but never mutates them. PasswordHash never leaves the server.
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	FirstName    *string   `json:"first_name"`
	LastName     *string   `json:"last_name"`
	Role         string    `json:"role"`
	IsActive     bool      `json:"is_active"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// AuthResult is what a successful login answers with.
type AuthResult struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}
