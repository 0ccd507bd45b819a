package events

import (
	"time"

	"github.com/spec-kit/repairshop-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventCustomerCreated EventType = "customer_created"
	EventCustomerUpdated EventType = "customer_updated"
	EventTicketCreated   EventType = "ticket_created"
	EventTicketUpdated   EventType = "ticket_updated"
	EventTicketCompleted EventType = "ticket_completed"
)

// Actor identifies the staff member behind an event.
type Actor struct {
	StaffID int64  `json:"staff_id"`
	Email   string `json:"email"`
}

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	EntityID  int64       `json:"entity_id"`
	Actor     Actor       `json:"actor"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// CustomerSavedPayload payload.
type CustomerSavedPayload struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Active bool   `json:"active"`
}

// TicketSavedPayload payload.
type TicketSavedPayload struct {
	CustomerID int64  `json:"customer_id"`
	Title      string `json:"title"`
	Tech       string `json:"tech"`
	Completed  bool   `json:"completed"`
}

// StaffActor builds an Actor from the acting staff member.
func StaffActor(staff *domain.StaffMember) Actor {
	if staff == nil {
		return Actor{}
	}
	return Actor{StaffID: staff.ID, Email: staff.Email}
}
