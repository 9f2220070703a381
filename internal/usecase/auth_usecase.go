// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
)

// --- Input DTOs ---

// RegisterCompanyInput defines the data required to register a new company account.
type RegisterCompanyInput struct {
	CompanyName string `json:"companyName"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	PhoneNumber string `json:"phoneNumber"`
	Industry    string `json:"industry"`
	Website     string `json:"website,omitempty"`
	Description string `json:"description,omitempty"`
	Size        string `json:"size,omitempty"`
	Location    string `json:"location,omitempty"`
}

// RegisterCandidateInput defines the data required to register a new candidate account.
type RegisterCandidateInput struct {
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	PhoneNumber     string `json:"phoneNumber"`
	Bio             string `json:"bio,omitempty"`
	Skills          string `json:"skills,omitempty"`
	CurrentPosition string `json:"currentPosition,omitempty"`
	Education       string `json:"education,omitempty"`
	Experience      string `json:"experience,omitempty"`
	ResumeURL       string `json:"resumeUrl,omitempty"`
	LinkedinURL     string `json:"linkedinUrl,omitempty"`
	GithubURL       string `json:"githubUrl,omitempty"`
	PortfolioURL    string `json:"portfolioUrl,omitempty"`
}

// LoginInput defines the credentials presented at login.
type LoginInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RefreshInput carries the refresh token presented to mint a new token pair.
type RefreshInput struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// --- Output DTOs ---

// AuthOutput is the token response returned by every token-issuing operation.
// Field names are part of the public API contract.
type AuthOutput struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"` // Always "Bearer".
	ExpiresIn    int64  `json:"expires_in"` // Access-token lifetime in seconds.
	Email        string `json:"email"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Role         string `json:"role"`     // The user's primary role name.
	UserType     string `json:"userType"` // COMPANY or CANDIDATE.
}

// AuthUsecase defines the authentication engine's contract.
// This is what the delivery layer (HTTP handlers) depends on.
type AuthUsecase interface {
	// RegisterCompany validates, provisions the company role, hashes the
	// password and persists a new Company account, then issues tokens.
	RegisterCompany(ctx context.Context, input *RegisterCompanyInput) (*AuthOutput, error)

	// RegisterCandidate does the same for a Candidate account.
	RegisterCandidate(ctx context.Context, input *RegisterCandidateInput) (*AuthOutput, error)

	// Login verifies credentials and issues a fresh token pair, rotating the
	// stored refresh token.
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)

	// Refresh exchanges a valid, currently-stored refresh token for a new
	// token pair, rotating the stored refresh token.
	Refresh(ctx context.Context, input *RefreshInput) (*AuthOutput, error)

	// EnsureDefaultRoles idempotently provisions the built-in role
	// enumeration. Run once at service startup.
	EnsureDefaultRoles(ctx context.Context) error
}
