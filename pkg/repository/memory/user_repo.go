// Package memory keeps users and role assignments in process memory. It backs
// the service when no DATABASE_URL is configured and serves as the fixture
// store in handler tests.
package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/artem13815/users/pkg/user"
)

type UserRepository struct {
	mu      sync.RWMutex
	nextID  int64
	byID    map[int64]user.User
	byEmail map[string]int64
	byUUID  map[uuid.UUID]int64
	roles   map[int64]user.Roles
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		byID:    make(map[int64]user.User),
		byEmail: make(map[string]int64),
		byUUID:  make(map[uuid.UUID]int64),
		roles:   make(map[int64]user.Roles),
	}
}

func (r *UserRepository) Create(_ context.Context, u user.User) (user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u.Email = strings.ToLower(u.Email)
	if _, ok := r.byEmail[u.Email]; ok {
		return user.User{}, user.ErrUserAlreadyExists
	}
	if _, ok := r.byUUID[u.UUID]; ok {
		return user.User{}, user.ErrUserAlreadyExists
	}
	r.nextID++
	u.ID = r.nextID
	r.byID[u.ID] = u
	r.byEmail[u.Email] = u.ID
	r.byUUID[u.UUID] = u.ID
	return u, nil
}

func (r *UserRepository) GetByEmail(_ context.Context, email string) (user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[strings.ToLower(email)]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return r.byID[id], nil
}

func (r *UserRepository) FindComplete(_ context.Context, id int64) (user.Complete, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.completeLocked(id)
}

func (r *UserRepository) FindCompleteByUUID(_ context.Context, id uuid.UUID) (user.Complete, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	uid, ok := r.byUUID[id]
	if !ok {
		return user.Complete{}, user.ErrNotFound
	}
	return r.completeLocked(uid)
}

func (r *UserRepository) completeLocked(id int64) (user.Complete, error) {
	u, ok := r.byID[id]
	if !ok {
		return user.Complete{}, user.ErrNotFound
	}
	roles := make(user.Roles, len(r.roles[id]))
	copy(roles, r.roles[id])
	return user.NewComplete(u, roles), nil
}

func (r *UserRepository) AssignRole(_ context.Context, userID int64, role user.Role) error {
	if !role.Valid() {
		return user.ErrUnknownRole
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[userID]; !ok {
		return user.ErrNotFound
	}
	if r.roles[userID].Has(role) {
		return user.ErrRoleAlreadyAssigned
	}
	// callers may hand in strings backed by reused buffers
	r.roles[userID] = append(r.roles[userID], user.Role(strings.Clone(string(role))))
	return nil
}

func (r *UserRepository) RevokeRole(_ context.Context, userID int64, role user.Role) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[userID]; !ok {
		return user.ErrNotFound
	}
	kept := r.roles[userID][:0]
	for _, x := range r.roles[userID] {
		if x != role {
			kept = append(kept, x)
		}
	}
	r.roles[userID] = kept
	return nil
}

// Delete removes a user and its role assignments.
func (r *UserRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.byID[id]
	if !ok {
		return user.ErrNotFound
	}
	delete(r.byID, id)
	delete(r.byEmail, u.Email)
	delete(r.byUUID, u.UUID)
	delete(r.roles, id)
	return nil
}
