package entity

import (
	"time"

	"github.com/google/uuid"
)

// Event represents a campus event for data transfer between layers.
type Event struct {
	ID                   uuid.UUID `json:"id"`
	Title                string    `json:"title"`
	Category             string    `json:"category"`
	School               string    `json:"school"`
	Date                 string    `json:"date"` // YYYY-MM-DD, may be raw poster text when normalization failed
	Time                 string    `json:"time"`
	Location             string    `json:"location"`
	Organizer            string    `json:"organizer"`
	RegistrationDeadline string    `json:"registrationDeadline"`
	Description          string    `json:"description"`
	Email                string    `json:"email,omitempty"`
	Phone                string    `json:"phone,omitempty"`
	PosterPath           *string   `json:"posterPath,omitempty"`
	RawText              string    `json:"rawText,omitempty"`
	NeedsReview          bool      `json:"needsReview"`
	CreatedBy            string    `json:"createdBy"`
	CreatedAt            time.Time `json:"createdAt"`
	UpdatedAt            time.Time `json:"updatedAt"`
}

// EventFilter narrows event listings.
type EventFilter struct {
	Category *string
	School   *string
	FromDate *time.Time
	ToDate   *time.Time
}
