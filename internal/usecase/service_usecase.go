// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"cuida/internal/domain/entity"
	"cuida/internal/domain/repository"

	"github.com/google/uuid"
)

// ServiceUsecase defines the interface for service-listing business operations.
type ServiceUsecase interface {
	Create(ctx context.Context, input *CreateServiceInput) (*entity.Service, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Service, error)
	List(ctx context.Context, filter repository.ServiceFilter) ([]*entity.Service, error)
	Update(ctx context.Context, id uuid.UUID, input *UpdateServiceInput) (*entity.Service, error)
	Delete(ctx context.Context, id uuid.UUID) error
	AddOfferer(ctx context.Context, serviceID, userID uuid.UUID) error
	RemoveOfferer(ctx context.Context, serviceID, userID uuid.UUID) error
	AttachFeedback(ctx context.Context, serviceID, feedbackID uuid.UUID) error
}

// --- Input DTOs ---

// CreateServiceInput defines the data required to publish a service listing.
type CreateServiceInput struct {
	Name          string     `json:"name" validate:"required,max=100"`
	Description   string     `json:"description" validate:"required"`
	Price         float64    `json:"price" validate:"gte=0"`
	Available     bool       `json:"available"`
	Category      string     `json:"category" validate:"omitempty,care_category"`
	AuthorID      uuid.UUID  `json:"author_id" validate:"required"`
	SolicitanteID *uuid.UUID `json:"solicitante_id,omitempty"`
}

// UpdateServiceInput defines the data accepted when editing a listing. The
// creation timestamp and the author are not part of it: both are immutable.
// A nil pointer means the field is left alone; a supplied value is held to
// the same rules as creation, so omitnil rather than omitempty is used.
type UpdateServiceInput struct {
	Name          *string    `json:"name,omitempty" validate:"omitnil,required,max=100"`
	Description   *string    `json:"description,omitempty" validate:"omitnil,required"`
	Price         *float64   `json:"price,omitempty" validate:"omitnil,gte=0"`
	Available     *bool      `json:"available,omitempty"`
	Category      *string    `json:"category,omitempty" validate:"omitnil,required,care_category"`
	SolicitanteID *uuid.UUID `json:"solicitante_id,omitempty"`
}
