package dto

import (
	"time"

	"github.com/spec-kit/repairshop-service/internal/domain"
)

// SaveCustomerRequest payload. An id of 0 marks a record that has not
// been persisted yet.
type SaveCustomerRequest struct {
	ID        int64   `json:"id" validate:"gte=0"`
	FirstName string  `json:"firstName" validate:"required,max=100"`
	LastName  string  `json:"lastName" validate:"required,max=100"`
	Email     string  `json:"email" validate:"required,email"`
	Phone     string  `json:"phone" validate:"required,max=30"`
	Address1  string  `json:"address1" validate:"required,max=200"`
	Address2  *string `json:"address2"`
	City      string  `json:"city" validate:"required,max=100"`
	State     string  `json:"state" validate:"required,len=2"`
	Zip       string  `json:"zip" validate:"required,zipcode"`
	Notes     *string `json:"notes"`
	Active    *bool   `json:"active"`
}

// Identity maps the wire sentinel onto the domain identity.
func (r SaveCustomerRequest) Identity() domain.Identity {
	return domain.ExistingIdentity(r.ID)
}

// SaveReceiptResponse is the uniform success shape for saves.
type SaveReceiptResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

// CustomerResponse mirrors a stored customer.
type CustomerResponse struct {
	ID        int64     `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Address1  string    `json:"address1"`
	Address2  *string   `json:"address2"`
	City      string    `json:"city"`
	State     string    `json:"state"`
	Zip       string    `json:"zip"`
	Notes     *string   `json:"notes"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
