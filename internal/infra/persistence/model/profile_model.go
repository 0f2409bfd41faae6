package model

import (
	"time"

	"github.com/google/uuid"
)

// UserDetailsModel mirrors the 'user_details' table. UserID is the primary
// key, which enforces the at-most-one-profile-per-user invariant.
type UserDetailsModel struct {
	UserID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Birthday         time.Time `gorm:"type:date;not null"`
	Phone            string    `gorm:"type:varchar(17)"`
	Address          string    `gorm:"type:varchar(250);not null"`
	Gender           string    `gorm:"type:varchar(1);not null;default:'O'"`
	Occupation       string    `gorm:"type:varchar(100)"`
	PhotoURL         string    `gorm:"type:varchar(500);not null"`
	SocialReferences string    `gorm:"type:text"`
	IdentityNumber   string    `gorm:"type:varchar(9)"`
	CreatedAt        time.Time
	UpdatedAt        time.Time

	User *UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (UserDetailsModel) TableName() string {
	return "user_details"
}

// CurriculumModel mirrors the 'curricula' table, one row per user at most.
type CurriculumModel struct {
	UserID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	PersonalData string    `gorm:"type:varchar(500)"`
	Experience   string    `gorm:"type:varchar(500)"`
	Education    string    `gorm:"type:varchar(500)"`
	Notes        string    `gorm:"type:varchar(500)"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	User *UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (CurriculumModel) TableName() string {
	return "curricula"
}
