package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderModel mirrors the 'orders' table. The service and user references are
// nullable and set to NULL when the referenced row is deleted, so order
// history outlives accounts and listings.
type OrderModel struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	FirstName  string     `gorm:"type:varchar(50);not null"`
	LastName   string     `gorm:"type:varchar(50);not null"`
	Email      string     `gorm:"type:varchar(254);not null"`
	Address    string     `gorm:"type:varchar(250);not null"`
	PostalCode string     `gorm:"type:varchar(32);not null"`
	City       string     `gorm:"type:varchar(100);not null"`
	Status     string     `gorm:"type:varchar(16);not null;default:'pending'"`
	ServiceID  *uuid.UUID `gorm:"type:uuid;index"`
	UserID     *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Service *ServiceModel `gorm:"foreignKey:ServiceID;constraint:OnDelete:SET NULL"`
	User    *UserModel    `gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}
