// Package model contains the GORM persistence models. They mirror the
// database schema and are mapped to and from pure domain entities by the
// repositories.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. The unique constraint on email is
// load-bearing: it is the arbiter for concurrent registrations of the same
// address. UserType discriminates the Company/Candidate variants.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	FirstName    string    `gorm:"type:varchar(100)"`
	LastName     string    `gorm:"type:varchar(100)"`
	Email        string    `gorm:"type:varchar(255);unique;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	PhoneNumber  string    `gorm:"type:varchar(32)"`
	UserType     string    `gorm:"type:varchar(16);not null"`

	Enabled               bool `gorm:"not null;default:true"`
	AccountNonExpired     bool `gorm:"not null;default:true"`
	AccountNonLocked      bool `gorm:"not null;default:true"`
	CredentialsNonExpired bool `gorm:"not null;default:true"`
	Active                bool `gorm:"not null;default:true"`

	RefreshToken string `gorm:"type:text"`

	// CompanyID is the weak organizational back-reference grouping users
	// under a company profile. It never owns the user's lifecycle.
	CompanyID *uuid.UUID `gorm:"type:uuid;index"`

	CreatedAt time.Time
	UpdatedAt time.Time
	Version   int `gorm:"not null;default:0"`

	CompanyProfile   *CompanyProfileModel   `gorm:"foreignKey:UserID"`
	CandidateProfile *CandidateProfileModel `gorm:"foreignKey:UserID"`
	Roles            []RoleModel            `gorm:"many2many:user_roles"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// CompanyProfileModel mirrors the 'company_profiles' table. UserID references users.id.
type CompanyProfileModel struct {
	UserID      uuid.UUID `gorm:"primaryKey"`
	CompanyName string    `gorm:"type:varchar(255);not null"`
	Industry    string    `gorm:"type:varchar(255);not null"`
	Website     string    `gorm:"type:varchar(512)"`
	Description string    `gorm:"type:text"`
	Size        string    `gorm:"type:varchar(64)"`
	Location    string    `gorm:"type:varchar(255)"`

	Members []*UserModel `gorm:"foreignKey:CompanyID"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CompanyProfileModel) TableName() string {
	return "company_profiles"
}

// CandidateProfileModel mirrors the 'candidate_profiles' table. UserID references users.id.
type CandidateProfileModel struct {
	UserID          uuid.UUID `gorm:"primaryKey"`
	Bio             string    `gorm:"type:text"`
	Skills          string    `gorm:"type:text"`
	CurrentPosition string    `gorm:"type:varchar(255)"`
	Education       string    `gorm:"type:text"`
	Experience      string    `gorm:"type:text"`
	ResumeURL       string    `gorm:"type:varchar(512)"`
	LinkedinURL     string    `gorm:"type:varchar(512)"`
	GithubURL       string    `gorm:"type:varchar(512)"`
	PortfolioURL    string    `gorm:"type:varchar(512)"`
	Available       bool      `gorm:"not null;default:true"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CandidateProfileModel) TableName() string {
	return "candidate_profiles"
}
