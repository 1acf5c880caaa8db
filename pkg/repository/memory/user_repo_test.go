package memory

import (
	"context"
	"sync"
	"testing"
	"unsafe"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/users/pkg/user"
)

func mustCreate(t *testing.T, r *UserRepository, email string) user.User {
	t.Helper()
	u, err := r.Create(context.Background(), user.User{UUID: uuid.New(), Email: email})
	require.NoError(t, err)
	return u
}

func TestCreate_AssignsSequentialIDs(t *testing.T) {
	r := NewUserRepository()
	a := mustCreate(t, r, "a@example.com")
	b := mustCreate(t, r, "B@example.com")

	assert.Equal(t, int64(1), a.ID)
	assert.Equal(t, int64(2), b.ID)
	assert.Equal(t, "b@example.com", b.Email)

	_, err := r.Create(context.Background(), user.User{UUID: uuid.New(), Email: "A@EXAMPLE.COM"})
	assert.ErrorIs(t, err, user.ErrUserAlreadyExists)
}

func TestGetByEmail(t *testing.T) {
	r := NewUserRepository()
	a := mustCreate(t, r, "a@example.com")

	got, err := r.GetByEmail(context.Background(), "A@example.com")
	require.NoError(t, err)
	assert.Equal(t, a, got)

	_, err = r.GetByEmail(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, user.ErrNotFound)
}

func TestRoles_AssignRevokeAndProject(t *testing.T) {
	ctx := context.Background()
	r := NewUserRepository()
	u := mustCreate(t, r, "u@example.com")

	c, err := r.FindComplete(ctx, u.ID)
	require.NoError(t, err)
	assert.NotNil(t, c.Roles)
	assert.Empty(t, c.Roles)

	require.NoError(t, r.AssignRole(ctx, u.ID, user.RoleOwner))
	require.NoError(t, r.AssignRole(ctx, u.ID, user.RoleMember))
	assert.ErrorIs(t, r.AssignRole(ctx, u.ID, user.RoleOwner), user.ErrRoleAlreadyAssigned)
	assert.ErrorIs(t, r.AssignRole(ctx, u.ID, user.Role("root")), user.ErrUnknownRole)
	assert.ErrorIs(t, r.AssignRole(ctx, 999, user.RoleOwner), user.ErrNotFound)

	c, err = r.FindCompleteByUUID(ctx, u.UUID)
	require.NoError(t, err)
	assert.Equal(t, u.ID, c.ID)
	assert.Equal(t, u.UUID, c.UUID)
	assert.Equal(t, u.Email, c.Email)
	assert.ElementsMatch(t, []string{"owner", "member"}, c.Roles.Names())

	require.NoError(t, r.RevokeRole(ctx, u.ID, user.RoleOwner))
	require.NoError(t, r.RevokeRole(ctx, u.ID, user.RoleAdmin))
	assert.ErrorIs(t, r.RevokeRole(ctx, 999, user.RoleOwner), user.ErrNotFound)

	c, err = r.FindComplete(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"member"}, c.Roles.Names())
}

func TestAssignRole_CopiesBorrowedName(t *testing.T) {
	ctx := context.Background()
	r := NewUserRepository()
	u := mustCreate(t, r, "u@example.com")

	// A string aliasing a buffer the caller reuses, as fasthttp does.
	buf := []byte("owner")
	require.NoError(t, r.AssignRole(ctx, u.ID, user.Role(unsafe.String(&buf[0], len(buf)))))
	copy(buf, "admin")

	c, err := r.FindComplete(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"owner"}, c.Roles.Names())
	assert.False(t, c.Roles.Has(user.RoleAdmin))
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	r := NewUserRepository()
	u := mustCreate(t, r, "gone@example.com")
	require.NoError(t, r.AssignRole(ctx, u.ID, user.RoleAdmin))

	require.NoError(t, r.Delete(ctx, u.ID))

	_, err := r.FindCompleteByUUID(ctx, u.UUID)
	assert.ErrorIs(t, err, user.ErrNotFound)
	_, err = r.GetByEmail(ctx, u.Email)
	assert.ErrorIs(t, err, user.ErrNotFound)
	assert.ErrorIs(t, r.Delete(ctx, u.ID), user.ErrNotFound)
}

func TestConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	r := NewUserRepository()
	u := mustCreate(t, r, "busy@example.com")

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = r.AssignRole(ctx, u.ID, user.RoleMember)
		}()
		go func() {
			defer wg.Done()
			_, _ = r.FindComplete(ctx, u.ID)
		}()
	}
	wg.Wait()

	c, err := r.FindComplete(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"member"}, c.Roles.Names())
}
