package usecase

import (
	"context"

	"cuida/internal/domain/entity"

	"github.com/google/uuid"
)

// AccountUsecase manages user accounts. Deleting an account removes the
// user's profile sheets, authored listings and offer memberships with it.
type AccountUsecase interface {
	Register(ctx context.Context, input *RegisterUserInput) (*entity.User, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// RegisterUserInput carries the minimum data to create an account.
type RegisterUserInput struct {
	Username string `json:"username" validate:"required,max=150"`
	Email    string `json:"email" validate:"required,email,max=254"`
}
