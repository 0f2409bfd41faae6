// Package entity contains the core business objects of the project.
package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	shortDescriptionLen = 15
	// discountFactor is the flat promotional discount applied to the listed
	// price. The rate is fixed product-wide, not derived from the price value.
	discountFactor = 0.8
)

// Service is a care offering or request published on the marketplace.
type Service struct {
	ID            uuid.UUID  // The Global Unique Identifier (GUID) for the service.
	Name          string     // Listing title, at most 100 characters.
	Description   string     // Free-text description of the offered care.
	Created       time.Time  // Assigned by the system at creation, never updated afterwards.
	Price         float64    // Listed price, non-negative, stored with two fractional digits.
	Available     bool       // Whether the service can currently be booked.
	Category      Category   // One of the closed care-category set.
	AuthorID      uuid.UUID  // The user who published the listing.
	SolicitanteID *uuid.UUID // The requesting user, nil when the listing is an offer.
	UpdatedAt     time.Time  // Timestamp of the last modification.

	Author   *User       // Publishing user, preloaded on reads.
	Offerers []*User     // Users offering to perform this service.
	Feedback []*Feedback // Ratings attached to this service.
}

// ShortDescription returns the leading fragment of the description used on
// listing cards. Truncation is by character, not by word boundary.
func (s *Service) ShortDescription() string {
	runes := []rune(s.Description)
	if len(runes) <= shortDescriptionLen {
		return s.Description
	}

	return string(runes[:shortDescriptionLen])
}

// DiscountedPrice returns the price with the flat promotional discount
// applied, formatted with exactly two decimal places.
func (s *Service) DiscountedPrice() string {
	return fmt.Sprintf("%.2f", s.Price*discountFactor)
}

// Label returns the human-readable identifier of the service.
func (s *Service) Label() string {
	return s.Name
}

// Path returns the canonical relative location of the service, consumed by
// the presentation layer.
func (s *Service) Path() string {
	return "/services/" + s.ID.String()
}
