// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Curriculum is the optional résumé supplement of a user. At most one record
// exists per user; every field besides the owner reference is optional.
type Curriculum struct {
	UserID       uuid.UUID // Foreign key to the owning User, also the primary key.
	PersonalData string    // Short free-text personal summary.
	Experience   string    // Short free-text work experience.
	Education    string    // Short free-text education history.
	Notes        string    // Miscellaneous notes.
	CreatedAt    time.Time // Timestamp of when the curriculum was created.
	UpdatedAt    time.Time // Timestamp of the last modification.

	User *User // Owning user, preloaded on reads.
}

// Label returns the human-readable identifier of the curriculum, which is the
// owning user's username.
func (c *Curriculum) Label() string {
	if c.User != nil {
		return c.User.Username
	}

	return c.UserID.String()
}

// Path returns the canonical relative location of the curriculum page.
func (c *Curriculum) Path() string {
	return "/curriculum"
}
