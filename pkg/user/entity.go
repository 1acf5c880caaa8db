package user

import (
	"time"

	"github.com/google/uuid"
)

// User is a persisted user row.
type User struct {
	ID           int64
	UUID         uuid.UUID
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Complete is a user enriched with the names of its assigned roles.
type Complete struct {
	ID    int64     `json:"id"`
	UUID  uuid.UUID `json:"uuid"`
	Email string    `json:"email"`
	Roles Roles     `json:"roles"`
}

// NewComplete projects a user row and its roles.
func NewComplete(u User, roles Roles) Complete {
	return Complete{
		ID:    u.ID,
		UUID:  u.UUID,
		Email: u.Email,
		Roles: roles.Normalize(),
	}
}
