package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenType discriminates the two token kinds carried in the typ claim.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// BearerTokenType is the token_type constant reported in token responses.
const BearerTokenType = "Bearer"

// Claims defines the custom claims for the JWT tokens.
// The registered subject claim carries the user's email.
type Claims struct {
	Roles []string `json:"roles,omitempty"`
	Type  string   `json:"typ"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and validating JWTs.
// Tokens are self-contained: validation never requires a store lookup.
type TokenService interface {
	// GenerateAccessToken signs a short-lived token carrying the subject email
	// and the user's role names.
	GenerateAccessToken(email string, roles []string) (string, error)

	// GenerateRefreshToken signs a longer-lived token carrying only the
	// subject email. The engine persists it on the user record so stale
	// tokens can be rejected on rotation.
	GenerateRefreshToken(email string) (string, error)

	// ValidateAccessToken verifies signature and expiry of an access token.
	ValidateAccessToken(tokenString string) (*Claims, error)

	// ValidateRefreshToken verifies signature and expiry of a refresh token.
	ValidateRefreshToken(tokenString string) (*Claims, error)

	// AccessTokenTTL returns the configured access-token lifetime, reported
	// as expires_in on token responses.
	AccessTokenTTL() time.Duration
}
