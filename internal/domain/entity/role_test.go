package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRole_DerivesDescription(t *testing.T) {
	tests := []struct {
		name     string
		roleName string
		want     string
	}{
		{name: "admin", roleName: RoleNameAdmin, want: "admin"},
		{name: "company", roleName: RoleNameCompany, want: "company"},
		{name: "candidate", roleName: RoleNameCandidate, want: "candidate"},
		{name: "custom role", roleName: "ROLE_REVIEWER", want: "reviewer"},
		{name: "no prefix", roleName: "AUDITOR", want: "auditor"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewRole(tt.roleName).Description)
		})
	}
}

func TestRoles_Primary_IsDeterministic(t *testing.T) {
	admin := Role{Name: RoleNameAdmin}
	company := Role{Name: RoleNameCompany}
	candidate := Role{Name: RoleNameCandidate}

	// Insertion order must not matter.
	assert.Equal(t, RoleNameAdmin, Roles{candidate, admin, company}.Primary().Name)
	assert.Equal(t, RoleNameAdmin, Roles{admin, company, candidate}.Primary().Name)
	assert.Equal(t, RoleNameCompany, Roles{candidate, company}.Primary().Name)
	assert.Equal(t, RoleNameCandidate, Roles{candidate}.Primary().Name)

	// Roles outside the priority list rank after it, ordered by name.
	custom := Role{Name: "ROLE_REVIEWER"}
	assert.Equal(t, RoleNameCandidate, Roles{custom, candidate}.Primary().Name)
	assert.Equal(t, "ROLE_AUDITOR", Roles{custom, {Name: "ROLE_AUDITOR"}}.Primary().Name)

	assert.Empty(t, Roles{}.Primary().Name)
}

func TestRoles_Names_And_Contains(t *testing.T) {
	roles := Roles{{Name: RoleNameCompany}, {Name: RoleNameAdmin}}

	assert.Equal(t, []string{RoleNameCompany, RoleNameAdmin}, roles.Names())
	assert.True(t, roles.Contains(RoleNameAdmin))
	assert.False(t, roles.Contains(RoleNameCandidate))
}

func TestUser_CanAuthenticate(t *testing.T) {
	user := NewCandidate("John", "Smith", "john@example.com", "hash", "+1234567890", &CandidateProfile{Available: true})
	assert.True(t, user.CanAuthenticate())

	for _, mutate := range []func(u *User){
		func(u *User) { u.Enabled = false },
		func(u *User) { u.AccountNonExpired = false },
		func(u *User) { u.AccountNonLocked = false },
		func(u *User) { u.CredentialsNonExpired = false },
		func(u *User) { u.Active = false },
	} {
		fresh := NewCandidate("John", "Smith", "john@example.com", "hash", "+1234567890", nil)
		mutate(fresh)
		assert.False(t, fresh.CanAuthenticate())
	}
}
