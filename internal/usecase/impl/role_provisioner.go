package impl

import (
	"context"

	"hirehub/internal/domain/entity"
	"hirehub/internal/domain/repository"

	"github.com/pkg/errors"
)

// getOrCreateRole looks a role up by exact name and creates it on first use.
// Concurrent first-use is resolved by the unique constraint on the role name:
// a create that loses the race returns ErrRoleAlreadyExists as a no-op rather
// than an aborted statement, so the re-fetch of the winner's row runs on the
// same transaction. No application-level locking is involved.
func getOrCreateRole(ctx context.Context, roleRepo repository.RoleRepository, name string) (*entity.Role, error) {
	role, err := roleRepo.FindByName(ctx, name)
	if err == nil {
		return role, nil
	}
	if !errors.Is(err, repository.ErrRoleNotFound) {
		return nil, errors.Wrap(err, "failed to look up role")
	}

	newRole := entity.NewRole(name)
	if err := roleRepo.Create(ctx, newRole); err != nil {
		if errors.Is(err, repository.ErrRoleAlreadyExists) {
			// Lost the race; the row now exists.
			role, err := roleRepo.FindByName(ctx, name)
			if err != nil {
				return nil, errors.Wrap(err, "failed to fetch role after create conflict")
			}

			return role, nil
		}

		return nil, errors.Wrap(err, "failed to create role")
	}

	return newRole, nil
}
