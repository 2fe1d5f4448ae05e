package entity

import (
	"time"

	"github.com/google/uuid"
)

// Registration is a student's (or team's) sign-up for an event.
type Registration struct {
	ID           uuid.UUID `json:"id"`
	EventID      uuid.UUID `json:"eventId"`
	StudentID    string    `json:"studentId"`
	StudentName  string    `json:"studentName"`
	Email        string    `json:"email"`
	TeamName     *string   `json:"teamName,omitempty"`
	TeamMembers  []string  `json:"teamMembers,omitempty"`
	RegisteredAt time.Time `json:"registeredAt"`
}
