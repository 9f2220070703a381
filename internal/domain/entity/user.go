// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserType discriminates the two account variants the platform registers.
type UserType string

const (
	// UserTypeCompany marks an account registered by a hiring company.
	UserTypeCompany UserType = "COMPANY"
	// UserTypeCandidate marks an account registered by a job candidate.
	UserTypeCandidate UserType = "CANDIDATE"
)

// String returns the string representation of the UserType.
func (t UserType) String() string {
	return string(t)
}

// User is the core identity record shared by both account variants.
// Exactly one of CompanyProfile or CandidateProfile is non-nil, matching Type.
type User struct {
	ID           uuid.UUID // The unique identifier for the account.
	FirstName    string
	LastName     string
	Email        string // Login identifier; unique (case-sensitive) across the store.
	PasswordHash string // bcrypt hash; the plaintext never leaves the registration/login path.
	PhoneNumber  string
	Roles        Roles // Assigned roles; exactly one on creation, non-empty thereafter.

	// Account-state flags. All true on creation; authorization layers downstream
	// reject logins when any of them is false.
	Enabled               bool
	AccountNonExpired     bool
	AccountNonLocked      bool
	CredentialsNonExpired bool

	// Active is the soft-delete flag. Accounts are deactivated, never hard-deleted.
	Active bool

	// RefreshToken holds the latest issued refresh token. It is overwritten on
	// every successful registration, login and refresh, which invalidates the
	// previously issued one.
	RefreshToken string

	Type             UserType
	CompanyProfile   *CompanyProfile
	CandidateProfile *CandidateProfile

	CreatedAt time.Time
	UpdatedAt time.Time
	Version   int // Optimistic-lock counter, bumped by the storage layer on every mutation.
}

// NewCompany builds a Company user with the account flags a fresh registration carries.
func NewCompany(firstName, lastName, email, passwordHash, phone string, profile *CompanyProfile) *User {
	user := newUser(firstName, lastName, email, passwordHash, phone)
	user.Type = UserTypeCompany
	user.CompanyProfile = profile

	return user
}

// NewCandidate builds a Candidate user with the account flags a fresh registration carries.
func NewCandidate(firstName, lastName, email, passwordHash, phone string, profile *CandidateProfile) *User {
	user := newUser(firstName, lastName, email, passwordHash, phone)
	user.Type = UserTypeCandidate
	user.CandidateProfile = profile

	return user
}

func newUser(firstName, lastName, email, passwordHash, phone string) *User {
	return &User{
		FirstName:             firstName,
		LastName:              lastName,
		Email:                 email,
		PasswordHash:          passwordHash,
		PhoneNumber:           phone,
		Enabled:               true,
		AccountNonExpired:     true,
		AccountNonLocked:      true,
		CredentialsNonExpired: true,
		Active:                true,
	}
}

// PrimaryRole returns the single role reported in token responses.
// The data model permits many roles per user; the pick is made deterministic
// by ordering on role priority instead of insertion order.
func (u *User) PrimaryRole() Role {
	return u.Roles.Primary()
}

// CanAuthenticate reports whether the account state still permits a login.
func (u *User) CanAuthenticate() bool {
	return u.Enabled && u.Active && u.AccountNonExpired && u.AccountNonLocked && u.CredentialsNonExpired
}

// CompanyProfile holds the fields specific to the Company variant.
type CompanyProfile struct {
	UserID      uuid.UUID
	CompanyName string // Required at registration.
	Industry    string // Required at registration.
	Website     string
	Description string
	Size        string
	Location    string

	// MemberIDs is a weak back-reference to users grouped under this company.
	// It is an organizational grouping, not exclusive ownership of their lifecycle.
	MemberIDs []uuid.UUID

	UpdatedAt time.Time
}

// CandidateProfile holds the fields specific to the Candidate variant.
type CandidateProfile struct {
	UserID          uuid.UUID
	Bio             string
	Skills          string
	CurrentPosition string
	Education       string
	Experience      string
	ResumeURL       string
	LinkedinURL     string
	GithubURL       string
	PortfolioURL    string
	Available       bool // Defaults to true at registration.

	UpdatedAt time.Time
}
