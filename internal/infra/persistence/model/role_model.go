package model

import (
	"time"

	"github.com/google/uuid"
)

// RoleModel mirrors the 'roles' table. The unique constraint on name makes
// first-use provisioning idempotent under concurrency.
type RoleModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name        string    `gorm:"type:varchar(64);unique;not null"`
	Description string    `gorm:"type:varchar(255)"`
	CreatedAt   time.Time

	Users []*UserModel `gorm:"many2many:user_roles"`
}

// TableName explicitly sets the table name for GORM.
func (RoleModel) TableName() string {
	return "roles"
}
