// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"hirehub/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is returned when no user matches the lookup key.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer depends on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByEmail retrieves a single user by exact (case-sensitive) email,
	// with roles and the variant profile loaded.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// ExistsByEmail reports whether a user with the exact email is already stored.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// Create persists a new user together with its variant profile and role
	// assignments. A lost race on the unique email constraint surfaces as the
	// domain's EMAIL_ALREADY_EXISTS conflict, not a generic storage error.
	Create(ctx context.Context, user *entity.User) error

	// UpdateRefreshToken overwrites the stored refresh token of a user,
	// invalidating the previously issued one. The storage layer bumps the
	// record's version and updated-at fields.
	UpdateRefreshToken(ctx context.Context, userID uuid.UUID, refreshToken string) error
}
