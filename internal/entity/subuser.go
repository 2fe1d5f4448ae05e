package entity

import (
	"time"

	"github.com/google/uuid"
)

// SubUserRole enumerates delegated roles on a single event.
type SubUserRole string

const (
	RoleVolunteer   SubUserRole = "volunteer"
	RoleCoordinator SubUserRole = "co-coordinator"
)

// SubUserPermissions gates what a delegated user may do for the event.
type SubUserPermissions struct {
	MarkAttendance bool `json:"markAttendance"`
	GrantOD        bool `json:"grantOD"`
	ViewReports    bool `json:"viewReports"`
}

// SubUser is a helper account delegated by the event coordinator. The
// generated credentials are returned once at creation and stored hashed.
type SubUser struct {
	ID           uuid.UUID          `json:"id"`
	EventID      uuid.UUID          `json:"eventId"`
	Name         string             `json:"name"`
	Username     string             `json:"username"`
	Role         SubUserRole        `json:"role"`
	Permissions  SubUserPermissions `json:"permissions"`
	PasswordHash string             `json:"-"`
	CreatedAt    time.Time          `json:"createdAt"`
}
