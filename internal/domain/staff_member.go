package domain

import "time"

// StaffRole enumerates shop operator roles.
type StaffRole string

const (
	StaffRoleTech    StaffRole = "TECH"
	StaffRoleManager StaffRole = "MANAGER"
)

// StaffMember models a technician or manager who signs into the app.
type StaffMember struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	Role         StaffRole
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsManager reports whether the staff member may write elevated fields
// such as a customer's active flag or a ticket's technician assignment.
func (s *StaffMember) IsManager() bool {
	return s.Role == StaffRoleManager
}
