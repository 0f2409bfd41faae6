package model

import (
	"time"

	"github.com/google/uuid"
)

// ServiceModel mirrors the 'services' table. The creation timestamp is
// write-once: the `<-:create` permission keeps updates from ever touching it.
type ServiceModel struct {
	ID            uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name          string     `gorm:"type:varchar(100);not null"`
	Description   string     `gorm:"type:text;not null"`
	Created       time.Time  `gorm:"autoCreateTime;<-:create"`
	Price         float64    `gorm:"type:decimal(20,2);not null;check:price >= 0"`
	Available     bool       `gorm:"not null;default:true"`
	Category      string     `gorm:"type:varchar(32);not null;default:'Sin especificar'"`
	AuthorID      uuid.UUID  `gorm:"type:uuid;not null;index"`
	SolicitanteID *uuid.UUID `gorm:"type:uuid;index"`
	UpdatedAt     time.Time

	Author      *UserModel       `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
	Solicitante *UserModel       `gorm:"foreignKey:SolicitanteID;constraint:OnDelete:SET NULL"`
	Offerers    []*UserModel     `gorm:"many2many:service_offerers;joinForeignKey:ServiceID;joinReferences:UserID;constraint:OnDelete:CASCADE"`
	Feedback    []*FeedbackModel `gorm:"many2many:service_feedbacks;joinForeignKey:ServiceID;joinReferences:FeedbackID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ServiceModel) TableName() string {
	return "services"
}
