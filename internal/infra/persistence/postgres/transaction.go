package postgres

import (
	"context"

	domainerrors "hirehub/internal/domain/errors"
	"hirehub/internal/domain/repository"
	"hirehub/internal/errors"

	"gorm.io/gorm"
)

// gormTransactionManager implements repository.TransactionManager on top of
// GORM's transaction support.
type gormTransactionManager struct {
	db *gorm.DB
}

// NewTransactionManager creates the GORM-backed transaction manager.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs fn inside a single database transaction. Every repository
// obtained from the factory shares that transaction; any error (or panic)
// from fn rolls the whole unit back.
func (m *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	err := m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormRepositoryFactory{tx: tx})
	})
	if err == nil {
		return nil
	}

	// Domain errors pass through untouched so callers can map them to
	// responses; anything else is an infrastructure failure.
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return err
	}

	return domainerrors.NewDatabaseExecuteError(err, "transaction failed")
}

// gormRepositoryFactory hands out repositories bound to one transaction.
type gormRepositoryFactory struct {
	tx *gorm.DB
}

func (f *gormRepositoryFactory) UserRepo() repository.UserRepository {
	return NewUserRepository(f.tx)
}

func (f *gormRepositoryFactory) RoleRepo() repository.RoleRepository {
	return NewRoleRepository(f.tx)
}
