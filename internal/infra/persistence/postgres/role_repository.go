package postgres

import (
	"context"

	"hirehub/internal/domain/entity"
	"hirehub/internal/domain/repository"
	"hirehub/internal/errors"
	"hirehub/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// roleRepository implements repository.RoleRepository with GORM.
type roleRepository struct {
	db *gorm.DB
}

// NewRoleRepository creates a role repository bound to the given session,
// which may be a transaction handle.
func NewRoleRepository(db *gorm.DB) repository.RoleRepository {
	return &roleRepository{db: db}
}

// FindByName retrieves a role by its exact name.
func (r *roleRepository) FindByName(ctx context.Context, name string) (*entity.Role, error) {
	var row model.RoleModel
	err := r.db.WithContext(ctx).
		Where("name = ?", name).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRoleNotFound
		}

		return nil, errors.Wrap(err, "failed to find role by name")
	}

	return toRoleEntityPtr(&row), nil
}

// Create persists a new role. The insert is ON CONFLICT DO NOTHING on the
// unique name: a lost race surfaces as ErrRoleAlreadyExists without raising
// a constraint error, so the surrounding transaction stays usable and the
// caller can re-fetch the winner inside it.
func (r *roleRepository) Create(ctx context.Context, role *entity.Role) error {
	row := &model.RoleModel{
		Name:        role.Name,
		Description: role.Description,
	}

	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoNothing: true,
		}).
		Create(row)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to create role")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRoleAlreadyExists
	}

	role.ID = row.ID
	role.CreatedAt = row.CreatedAt

	return nil
}

func toRoleEntity(row *model.RoleModel) entity.Role {
	return entity.Role{
		ID:          row.ID,
		Name:        row.Name,
		Description: row.Description,
		CreatedAt:   row.CreatedAt,
	}
}

func toRoleEntityPtr(row *model.RoleModel) *entity.Role {
	role := toRoleEntity(row)

	return &role
}
