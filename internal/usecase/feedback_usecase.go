package usecase

import (
	"context"

	"cuida/internal/domain/entity"

	"github.com/google/uuid"
)

// FeedbackUsecase manages ratings attached to service listings.
type FeedbackUsecase interface {
	Create(ctx context.Context, input *CreateFeedbackInput) (*entity.Feedback, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Feedback, error)
	ListByService(ctx context.Context, serviceID uuid.UUID) ([]*entity.Feedback, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// CreateFeedbackInput creates a rating and links it to a service listing in
// the same transaction.
type CreateFeedbackInput struct {
	Rate        int       `json:"rate" validate:"gte=0,lte=5"`
	Description string    `json:"description"`
	ServiceID   uuid.UUID `json:"service_id" validate:"required"`
}
