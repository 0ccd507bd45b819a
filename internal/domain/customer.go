package domain

import "time"

// Customer is the aggregate for repair-shop customers. Optional fields are
// pointers; a nil pointer persists as NULL, never as an empty string.
type Customer struct {
	ID        int64
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Address1  string
	Address2  *string
	City      string
	State     string
	Zip       string
	Notes     *string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// FullName returns the display name for lists and notifications.
func (c *Customer) FullName() string {
	return c.FirstName + " " + c.LastName
}
