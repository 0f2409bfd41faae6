// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User mirrors the identity principal owned by the external auth system.
// Only the fields the marketplace schema references are kept here; credentials
// and session state never enter this layer.
type User struct {
	ID        uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Username  string    // Unique login identifier, assigned by the auth collaborator.
	Email     string    // Contact email, informational only in this layer.
	CreatedAt time.Time // Timestamp of when this mirror row was created.
	UpdatedAt time.Time // Timestamp of the last modification.

	Details    *UserDetails // Extended profile, nil when the user never filled one in.
	Curriculum *Curriculum  // Résumé supplement, nil when absent.
}
