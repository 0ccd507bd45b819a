package dto

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spec-kit/repairshop-service/internal/domain"
)

// NewTicketMarker is the wire sentinel the ticket form submits for a
// ticket that has not been persisted yet.
const NewTicketMarker = "(New)"

// TicketID accepts either a numeric id or the "(New)" marker.
type TicketID struct {
	id int64
}

// UnmarshalJSON decodes a number or the new-ticket marker.
func (t *TicketID) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		if str == NewTicketMarker {
			t.id = 0
			return nil
		}
		return fmt.Errorf("invalid ticket id %q", str)
	}
	var num int64
	if err := json.Unmarshal(data, &num); err != nil {
		return fmt.Errorf("invalid ticket id: %w", err)
	}
	if num < 0 {
		return fmt.Errorf("invalid ticket id %d", num)
	}
	t.id = num
	return nil
}

// MarshalJSON encodes the id, or the marker when unset.
func (t TicketID) MarshalJSON() ([]byte, error) {
	if t.id == 0 {
		return json.Marshal(NewTicketMarker)
	}
	return json.Marshal(t.id)
}

// Identity maps the wire sentinel onto the domain identity.
func (t TicketID) Identity() domain.Identity {
	return domain.ExistingIdentity(t.id)
}

// SaveTicketRequest payload.
type SaveTicketRequest struct {
	ID          TicketID `json:"id"`
	CustomerID  int64    `json:"customerId" validate:"required,gte=1"`
	Title       string   `json:"title" validate:"required,max=200"`
	Description *string  `json:"description"`
	Completed   bool     `json:"completed"`
	Tech        string   `json:"tech"`
}

// TicketResponse mirrors a stored ticket.
type TicketResponse struct {
	ID          int64     `json:"id"`
	CustomerID  int64     `json:"customerId"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Completed   bool      `json:"completed"`
	Tech        string    `json:"tech"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// TicketListItem is a search/list row with customer context joined in.
type TicketListItem struct {
	TicketResponse
	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail"`
}

// TicketDetailResponse is the edit-form payload: the ticket plus the
// customer it belongs to.
type TicketDetailResponse struct {
	Ticket   TicketResponse   `json:"ticket"`
	Customer CustomerResponse `json:"customer"`
}
