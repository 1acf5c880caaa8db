package user

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Role is a named capability tag attached to a user.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleOwner  Role = "owner"
	RoleMember Role = "member"
)

var knownRoles = map[Role]struct{}{
	RoleAdmin:  {},
	RoleOwner:  {},
	RoleMember: {},
}

// ParseRole maps a role name onto one of the known variants.
func ParseRole(name string) (Role, error) {
	r := Role(strings.ToLower(strings.TrimSpace(name)))
	if !r.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownRole, name)
	}
	return r, nil
}

func (r Role) Valid() bool {
	_, ok := knownRoles[r]
	return ok
}

func (r Role) String() string { return string(r) }

// Roles is an unordered set of roles.
type Roles []Role

// Has reports whether the set contains r.
func (rs Roles) Has(r Role) bool {
	for _, x := range rs {
		if x == r {
			return true
		}
	}
	return false
}

// Normalize drops duplicates and empty names, keeping first-seen order.
// The result is never nil.
func (rs Roles) Normalize() Roles {
	out := make(Roles, 0, len(rs))
	for _, r := range rs {
		if r == "" || out.Has(r) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// Names returns the role names as plain strings.
func (rs Roles) Names() []string {
	n := rs.Normalize()
	out := make([]string, len(n))
	for i, r := range n {
		out[i] = string(r)
	}
	return out
}

// MarshalJSON encodes the set as a JSON array of names, "[]" when empty.
func (rs Roles) MarshalJSON() ([]byte, error) {
	return json.Marshal(rs.Names())
}
