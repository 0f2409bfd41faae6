// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"cuida/internal/domain/entity"
	"cuida/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for user persistence.
var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateUsername is returned when the username is already taken.
	ErrDuplicateUsername = errors.New("username already exists")
)

// UserRepository defines the standard operations for the local mirror of the
// externally owned user principal.
type UserRepository interface {
	// Create persists a new user mirror row.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a single user by their unique ID, preloading the
	// extended profile and curriculum when present.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByUsername retrieves a single user by their username.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// Delete removes a user. Authored services, the extended profile and the
	// curriculum are removed with it; orders keep a nulled reference. The
	// whole cascade is atomic.
	Delete(ctx context.Context, id uuid.UUID) error
}
