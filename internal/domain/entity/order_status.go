// Package entity contains the core business objects of the project.
package entity

// OrderStatus represents the booking lifecycle state of an order.
type OrderStatus string

const (
	// OrderStatusPending is assigned at creation, before the author confirms.
	OrderStatusPending OrderStatus = "pending"
	// OrderStatusConfirmed indicates the booking was accepted.
	OrderStatusConfirmed OrderStatus = "confirmed"
	// OrderStatusCancelled indicates either side cancelled the booking.
	OrderStatusCancelled OrderStatus = "cancelled"
	// OrderStatusCompleted indicates the service was performed.
	OrderStatusCompleted OrderStatus = "completed"
)

// String returns the string representation of the OrderStatus.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid checks if the OrderStatus is a valid value.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusCancelled, OrderStatusCompleted:
		return true
	default:
		return false
	}
}
