package usecase

import (
	"context"
	"time"

	"cuida/internal/domain/entity"

	"github.com/google/uuid"
)

// ProfileUsecase manages the per-user profile sheets: the contact details
// record and the caregiving curriculum. Each user owns at most one of each.
type ProfileUsecase interface {
	GetDetails(ctx context.Context, userID uuid.UUID) (*entity.UserDetails, error)
	UpsertDetails(ctx context.Context, userID uuid.UUID, input *UpsertDetailsInput) (*entity.UserDetails, error)
	DeleteDetails(ctx context.Context, userID uuid.UUID) error

	GetCurriculum(ctx context.Context, userID uuid.UUID) (*entity.Curriculum, error)
	UpsertCurriculum(ctx context.Context, userID uuid.UUID, input *UpsertCurriculumInput) (*entity.Curriculum, error)
	DeleteCurriculum(ctx context.Context, userID uuid.UUID) error
}

// UpsertDetailsInput carries the full contact-details sheet. Saving replaces
// the previous sheet for the user.
type UpsertDetailsInput struct {
	Birthday         time.Time `json:"birthday" validate:"required"`
	Phone            string    `json:"phone" validate:"omitempty,intl_phone,max=17"`
	Address          string    `json:"address" validate:"required,max=250"`
	Gender           string    `json:"gender" validate:"omitempty,gender"`
	Occupation       string    `json:"occupation" validate:"max=100"`
	PhotoURL         string    `json:"photo_url" validate:"required,url,max=500"`
	SocialReferences string    `json:"social_references" validate:"max=500"`
	IdentityNumber   string    `json:"identity_number" validate:"omitempty,dni"`
}

// UpsertCurriculumInput carries the full curriculum sheet.
type UpsertCurriculumInput struct {
	PersonalData string `json:"personal_data" validate:"max=500"`
	Experience   string `json:"experience" validate:"max=500"`
	Education    string `json:"education" validate:"max=500"`
	Notes        string `json:"notes" validate:"max=500"`
}
