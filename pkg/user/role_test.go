package user

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	for in, want := range map[string]Role{"admin": RoleAdmin, " Owner ": RoleOwner, "MEMBER": RoleMember} {
		got, err := ParseRole(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}

	_, err := ParseRole("superuser")
	assert.ErrorIs(t, err, ErrUnknownRole)
	_, err = ParseRole("")
	assert.ErrorIs(t, err, ErrUnknownRole)
}

func TestRoles_Has(t *testing.T) {
	rs := Roles{RoleOwner, RoleMember}
	assert.True(t, rs.Has(RoleOwner))
	assert.False(t, rs.Has(RoleAdmin))
	assert.False(t, Roles(nil).Has(RoleAdmin))
	// membership is exact, not substring or case-folded
	assert.False(t, Roles{"administrator", "ADMIN"}.Has(RoleAdmin))
}

func TestRoles_NamesDedupAndNeverNil(t *testing.T) {
	assert.Equal(t, []string{"owner", "member"}, Roles{RoleOwner, RoleMember, RoleOwner, ""}.Names())
	assert.NotNil(t, Roles(nil).Names())
	assert.Empty(t, Roles(nil).Names())
}

func TestComplete_JSONShape(t *testing.T) {
	c := Complete{ID: 3, Email: "x@example.com"}
	raw, err := json.Marshal(c)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.EqualValues(t, 3, got["id"])
	assert.Equal(t, "00000000-0000-0000-0000-000000000000", got["uuid"])
	assert.Equal(t, "x@example.com", got["email"])
	assert.Equal(t, []any{}, got["roles"])
}
