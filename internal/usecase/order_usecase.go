package usecase

import (
	"context"

	"cuida/internal/domain/entity"

	"github.com/google/uuid"
)

// OrderUsecase manages purchase orders placed against service listings.
type OrderUsecase interface {
	Place(ctx context.Context, input *PlaceOrderInput) (*entity.Order, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) (*entity.Order, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// PlaceOrderInput carries the billing data for a new order. New orders always
// start in the pending state.
type PlaceOrderInput struct {
	FirstName  string     `json:"first_name" validate:"required,max=50"`
	LastName   string     `json:"last_name" validate:"required,max=50"`
	Email      string     `json:"email" validate:"required,email,max=254"`
	Address    string     `json:"address" validate:"required,max=250"`
	PostalCode string     `json:"postal_code" validate:"required,max=32"`
	City       string     `json:"city" validate:"required,max=100"`
	ServiceID  uuid.UUID  `json:"service_id" validate:"required"`
	UserID     *uuid.UUID `json:"user_id,omitempty"`
}
