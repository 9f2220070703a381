// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"hirehub/internal/domain/entity"
)

// Domain-specific errors for role persistence.
var (
	// ErrRoleNotFound is returned when no role matches the given name.
	ErrRoleNotFound = errors.New("role not found")
	// ErrRoleAlreadyExists is returned when a create loses the race on the
	// unique role-name constraint. Callers retry with a lookup.
	ErrRoleAlreadyExists = errors.New("role already exists")
)

// RoleRepository defines the operations for role persistence. Role names are
// globally unique; the unique constraint is the arbiter under concurrent
// first-use, not application-level locking.
type RoleRepository interface {
	// FindByName retrieves a role by its exact name.
	FindByName(ctx context.Context, name string) (*entity.Role, error)

	// Create persists a new role. Returns ErrRoleAlreadyExists when the
	// unique name constraint is violated.
	Create(ctx context.Context, role *entity.Role) error
}
