// Package entity contains the core business objects of the project.
package entity

import (
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Feedback rate bounds, inclusive.
const (
	MinFeedbackRate = 0
	MaxFeedbackRate = 5
)

// Feedback is a rating left on a service. Ratings attach to services through
// a join structure, so one rating may in principle belong to several services.
type Feedback struct {
	ID          uuid.UUID // The Global Unique Identifier (GUID) for the rating.
	Rate        int       // Numeric rating, 0 to 5 inclusive.
	Description string    // Free-text comment.
	CreatedAt   time.Time // Timestamp of when the rating was left.
}

// Label returns the human-readable identifier of the rating, its numeric value.
func (f *Feedback) Label() string {
	return strconv.Itoa(f.Rate)
}

// Path returns the canonical relative location of the feedback page.
func (f *Feedback) Path() string {
	return "/feedback/" + f.ID.String()
}
