// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"cuida/internal/domain/entity"
	"cuida/internal/errors"

	"github.com/google/uuid"
)

// ErrServiceNotFound is returned when a service is not found.
var ErrServiceNotFound = errors.New("service not found")

// ServiceFilter narrows List results. Nil fields are ignored.
type ServiceFilter struct {
	Category  *entity.Category // Only services of this category.
	AuthorID  *uuid.UUID       // Only services published by this user.
	Available *bool            // Only services with this availability flag.
	OffererID *uuid.UUID       // Only services this user offers to perform.
}

// ServiceRepository defines the standard operations for service persistence.
type ServiceRepository interface {
	// Create persists a new service. The creation timestamp is assigned by
	// the storage layer and reported back on the entity.
	Create(ctx context.Context, service *entity.Service) error

	// FindByID retrieves a single service, preloading author, offerers and
	// feedback.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Service, error)

	// List retrieves services matching the filter, newest first.
	List(ctx context.Context, filter ServiceFilter) ([]*entity.Service, error)

	// Update modifies the mutable fields of an existing service. The creation
	// timestamp and the author reference are never written.
	Update(ctx context.Context, service *entity.Service) error

	// Delete removes a service. Offerer memberships and feedback attachments
	// are removed with it; orders keep a nulled reference.
	Delete(ctx context.Context, id uuid.UUID) error

	// AddOfferer records that a user offers to perform the service.
	AddOfferer(ctx context.Context, serviceID, userID uuid.UUID) error

	// RemoveOfferer withdraws a user's offer.
	RemoveOfferer(ctx context.Context, serviceID, userID uuid.UUID) error

	// AttachFeedback links an existing feedback entry to the service.
	AttachFeedback(ctx context.Context, serviceID, feedbackID uuid.UUID) error
}
