package user

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var (
	ErrNotFound            = errors.New("user not found")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrUnknownRole         = errors.New("unknown role")
	ErrUserAlreadyExists   = errors.New("user already exists")
	ErrRoleAlreadyAssigned = errors.New("role already assigned")
)

// Repository reads users together with their roles and manages role
// assignments.
type Repository interface {
	FindComplete(ctx context.Context, id int64) (Complete, error)
	FindCompleteByUUID(ctx context.Context, id uuid.UUID) (Complete, error)
	AssignRole(ctx context.Context, userID int64, role Role) error
	RevokeRole(ctx context.Context, userID int64, role Role) error
}
