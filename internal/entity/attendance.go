package entity

import (
	"time"

	"github.com/google/uuid"
)

// AttendanceStatus enumerates the recorded states for a student.
type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "present"
	AttendanceAbsent  AttendanceStatus = "absent"
	AttendanceOD      AttendanceStatus = "od"
)

// AttendanceRecord is one student's attendance mark for an event.
type AttendanceRecord struct {
	ID          uuid.UUID        `json:"id"`
	EventID     uuid.UUID        `json:"eventId"`
	StudentID   string           `json:"studentId"`
	StudentName string           `json:"studentName"`
	Status      AttendanceStatus `json:"status"`
	MarkedBy    string           `json:"markedBy"`
	MarkedAt    time.Time        `json:"markedAt"`
	ODGranted   bool             `json:"odGranted"`
	ODGrantedBy *string          `json:"odGrantedBy,omitempty"`
	ODGrantedAt *time.Time       `json:"odGrantedAt,omitempty"`
}
