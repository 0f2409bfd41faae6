// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"cuida/internal/domain/entity"
	"cuida/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for profile persistence.
var (
	// ErrUserDetailsNotFound is returned when a user has no extended profile.
	ErrUserDetailsNotFound = errors.New("user details not found")
	// ErrCurriculumNotFound is returned when a user has no curriculum.
	ErrCurriculumNotFound = errors.New("curriculum not found")
)

// ProfileRepository defines the operations for the two one-per-user profile
// records: the extended profile and the curriculum.
type ProfileRepository interface {
	// SaveDetails creates the extended profile of a user, or replaces it when
	// one already exists. The one-record-per-user invariant is enforced by
	// the primary key.
	SaveDetails(ctx context.Context, details *entity.UserDetails) error

	// FindDetailsByUser retrieves the extended profile of a user.
	FindDetailsByUser(ctx context.Context, userID uuid.UUID) (*entity.UserDetails, error)

	// DeleteDetails removes the extended profile of a user.
	DeleteDetails(ctx context.Context, userID uuid.UUID) error

	// SaveCurriculum creates or replaces the curriculum of a user.
	SaveCurriculum(ctx context.Context, curriculum *entity.Curriculum) error

	// FindCurriculumByUser retrieves the curriculum of a user.
	FindCurriculumByUser(ctx context.Context, userID uuid.UUID) (*entity.Curriculum, error)

	// DeleteCurriculum removes the curriculum of a user.
	DeleteCurriculum(ctx context.Context, userID uuid.UUID) error
}
