// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserDetails is the extended profile of a user. At most one record exists
// per user; it is owned by the user and removed together with it.
type UserDetails struct {
	UserID           uuid.UUID // Foreign key to the owning User, also the primary key.
	Birthday         time.Time // Date of birth, required.
	Phone            string    // Optional contact phone in international format.
	Address          string    // Postal address, required.
	Gender           Gender    // Declared gender, defaults to GenderOther.
	Occupation       string    // Free-text occupation.
	PhotoURL         string    // Profile photo location, required.
	SocialReferences string    // Optional free-text references.
	IdentityNumber   string    // Optional national identity document number.
	CreatedAt        time.Time // Timestamp of when the profile was created.
	UpdatedAt        time.Time // Timestamp of the last modification.

	User *User // Owning user, preloaded on reads.
}

// Label returns the human-readable identifier of the profile, which is the
// owning user's username.
func (d *UserDetails) Label() string {
	if d.User != nil {
		return d.User.Username
	}

	return d.UserID.String()
}

// Path returns the canonical relative location of the profile page.
func (d *UserDetails) Path() string {
	return "/profile"
}
