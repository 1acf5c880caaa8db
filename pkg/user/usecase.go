package user

import (
	"context"

	"github.com/google/uuid"
)

// UseCase exposes user lookups guarded by role membership.
type UseCase interface {
	Self(ctx context.Context, requester uuid.UUID) (Complete, error)
	GetByID(ctx context.Context, requester uuid.UUID, id int64) (Complete, error)
	AssignRole(ctx context.Context, requester uuid.UUID, id int64, role Role) error
	RevokeRole(ctx context.Context, requester uuid.UUID, id int64, role Role) error
	// RequireAdmin returns ErrNotFound for a requester whose row is gone and
	// ErrUnauthorized for one without the admin role.
	RequireAdmin(ctx context.Context, requester uuid.UUID) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) UseCase { return &service{repo: repo} }

func (s *service) Self(ctx context.Context, requester uuid.UUID) (Complete, error) {
	return s.repo.FindCompleteByUUID(ctx, requester)
}

func (s *service) GetByID(ctx context.Context, requester uuid.UUID, id int64) (Complete, error) {
	if err := s.RequireAdmin(ctx, requester); err != nil {
		return Complete{}, err
	}
	return s.repo.FindComplete(ctx, id)
}

func (s *service) AssignRole(ctx context.Context, requester uuid.UUID, id int64, role Role) error {
	if err := s.RequireAdmin(ctx, requester); err != nil {
		return err
	}
	if !role.Valid() {
		return ErrUnknownRole
	}
	return s.repo.AssignRole(ctx, id, role)
}

func (s *service) RevokeRole(ctx context.Context, requester uuid.UUID, id int64, role Role) error {
	if err := s.RequireAdmin(ctx, requester); err != nil {
		return err
	}
	if !role.Valid() {
		return ErrUnknownRole
	}
	return s.repo.RevokeRole(ctx, id, role)
}

// RequireAdmin resolves the requester once.
func (s *service) RequireAdmin(ctx context.Context, requester uuid.UUID) error {
	self, err := s.repo.FindCompleteByUUID(ctx, requester)
	if err != nil {
		return err
	}
	if !self.Roles.Has(RoleAdmin) {
		return ErrUnauthorized
	}
	return nil
}
