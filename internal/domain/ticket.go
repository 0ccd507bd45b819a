package domain

import "time"

// TechUnassigned is the stored technician value for a ticket nobody has
// been assigned to yet.
const TechUnassigned = "unassigned"

// Ticket is the aggregate for repair jobs. Every ticket references a
// customer.
type Ticket struct {
	ID          int64
	CustomerID  int64
	Title       string
	Description *string
	Completed   bool
	Tech        string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Assigned reports whether a technician has been assigned.
func (t *Ticket) Assigned() bool {
	return t.Tech != "" && t.Tech != TechUnassigned
}
