// Package model contains the GORM-specific table mirrors of the domain
// entities. Constraint tags here are the write-time enforcement of the
// schema invariants; cascade policies live on the association constraints.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type UserModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Username  string    `gorm:"type:varchar(150);unique;not null"`
	Email     string    `gorm:"type:varchar(255)"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Details    *UserDetailsModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Curriculum *CurriculumModel  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Services   []*ServiceModel   `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
