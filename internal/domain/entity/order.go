// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Order is a booking record captured at checkout. Its service and user
// references are optional so that order history survives the deletion of
// either side.
type Order struct {
	ID         uuid.UUID   // The Global Unique Identifier (GUID) for the order.
	FirstName  string      // Contact first name, required.
	LastName   string      // Contact last name, required.
	Email      string      // Contact email, required and format-validated.
	Address    string      // Shipping/visit address, required.
	PostalCode string      // Postal code, required.
	City       string      // City, required.
	Status     OrderStatus // Booking lifecycle state, pending at creation.
	ServiceID  *uuid.UUID  // The ordered service, nil after the service was removed.
	UserID     *uuid.UUID  // The ordering user, nil after the account was removed.
	CreatedAt  time.Time   // Timestamp of when the order was placed.
	UpdatedAt  time.Time   // Timestamp of the last modification.

	Service *Service // Ordered service, preloaded on reads.
}

// Path returns the canonical relative location of the order page.
func (o *Order) Path() string {
	return "/orders/" + o.ID.String()
}
