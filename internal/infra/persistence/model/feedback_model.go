package model

import (
	"time"

	"github.com/google/uuid"
)

// FeedbackModel mirrors the 'feedbacks' table. The rate bounds are enforced
// both here as a check constraint and at validation time.
type FeedbackModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Rate        int       `gorm:"not null;check:rate >= 0 AND rate <= 5"`
	Description string    `gorm:"type:text"`
	CreatedAt   time.Time

	Services []*ServiceModel `gorm:"many2many:service_feedbacks;joinForeignKey:FeedbackID;joinReferences:ServiceID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (FeedbackModel) TableName() string {
	return "feedbacks"
}
