// Package entity contains the core business objects of the project.
package entity

import (
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Well-known role names. The enumeration is extensible; these three are
// provisioned at startup and assigned during registration.
const (
	RoleNameAdmin     = "ROLE_ADMIN"
	RoleNameCompany   = "ROLE_COMPANY"
	RoleNameCandidate = "ROLE_CANDIDATE"
)

// rolePrefix is stripped from role names to derive descriptions.
const rolePrefix = "ROLE_"

// rolePriority orders roles for deterministic primary-role selection.
// Lower index wins. Roles outside this list rank after it, by name.
var rolePriority = []string{RoleNameAdmin, RoleNameCompany, RoleNameCandidate}

// Role is a named authorization grant. Names are globally unique and role
// creation is idempotent: created once on first use, reused thereafter.
type Role struct {
	ID          uuid.UUID
	Name        string
	Description string
	CreatedAt   time.Time
}

// NewRole builds a role with the description derived from its name
// (the name minus the ROLE_ prefix, lower-cased).
func NewRole(name string) *Role {
	return &Role{
		Name:        name,
		Description: strings.ToLower(strings.TrimPrefix(name, rolePrefix)),
	}
}

// Roles is a set of roles assigned to a user.
type Roles []Role

// Names returns the role names, for token claims.
func (rs Roles) Names() []string {
	names := make([]string, len(rs))
	for i, r := range rs {
		names[i] = r.Name
	}

	return names
}

// Contains reports whether the set contains a role with the given name.
func (rs Roles) Contains(name string) bool {
	return slices.ContainsFunc(rs, func(r Role) bool { return r.Name == name })
}

// Primary returns the highest-priority role of the set. The ordering is
// fixed (admin before company before candidate, then by name) so the same
// user always reports the same role regardless of insertion order.
func (rs Roles) Primary() Role {
	if len(rs) == 0 {
		return Role{}
	}

	best := rs[0]
	for _, r := range rs[1:] {
		if roleRank(r.Name, best.Name) {
			best = r
		}
	}

	return best
}

// roleRank reports whether role name a outranks role name b.
func roleRank(a, b string) bool {
	ai := slices.Index(rolePriority, a)
	bi := slices.Index(rolePriority, b)

	switch {
	case ai >= 0 && bi >= 0:
		return ai < bi
	case ai >= 0:
		return true
	case bi >= 0:
		return false
	default:
		return a < b
	}
}
