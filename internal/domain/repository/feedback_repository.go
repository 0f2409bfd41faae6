// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"cuida/internal/domain/entity"
	"cuida/internal/errors"

	"github.com/google/uuid"
)

// ErrFeedbackNotFound is returned when a feedback entry is not found.
var ErrFeedbackNotFound = errors.New("feedback not found")

// FeedbackRepository defines the standard operations for feedback persistence.
// Linking feedback to services goes through ServiceRepository.AttachFeedback.
type FeedbackRepository interface {
	// Create persists a new feedback entry.
	Create(ctx context.Context, feedback *entity.Feedback) error

	// FindByID retrieves a single feedback entry.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Feedback, error)

	// FindByService retrieves all feedback attached to a service, newest first.
	FindByService(ctx context.Context, serviceID uuid.UUID) ([]*entity.Feedback, error)

	// Delete removes a feedback entry and its service attachments.
	Delete(ctx context.Context, id uuid.UUID) error
}
