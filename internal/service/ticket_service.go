package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/repairshop-service/internal/domain"
	"github.com/spec-kit/repairshop-service/internal/events"
	"github.com/spec-kit/repairshop-service/internal/repository"
	"github.com/spec-kit/repairshop-service/internal/validation"
	apperrors "github.com/spec-kit/repairshop-service/pkg/util"
)

// TicketSaveInput carries a validated ticket record into the save
// workflow. Tech is elevated: only managers may assign a technician.
type TicketSaveInput struct {
	ID          domain.Identity
	CustomerID  int64
	Title       string
	Description *string
	Completed   bool
	Tech        string
}

// TicketDetail pairs a ticket with its customer for the edit form.
type TicketDetail struct {
	Ticket   *domain.Ticket
	Customer *domain.Customer
}

// TicketService coordinates ticket workflows.
type TicketService struct {
	tickets    repository.TicketRepository
	customers  *CustomerService
	dispatcher events.Dispatcher
}

// TicketDependencies bundles collaborators for the ticket service.
type TicketDependencies struct {
	TicketRepo      repository.TicketRepository
	CustomerService *CustomerService
	Dispatcher      events.Dispatcher
}

// NewTicketService constructs the service.
func NewTicketService(deps TicketDependencies) *TicketService {
	return &TicketService{
		tickets:    deps.TicketRepo,
		customers:  deps.CustomerService,
		dispatcher: deps.Dispatcher,
	}
}

// Save creates or updates a ticket depending on the input identity. New
// tickets may only be opened against an active customer; that check runs
// before any write. Technician assignment from a non-manager is silently
// discarded.
func (s *TicketService) Save(ctx context.Context, staff *domain.StaffMember, input TicketSaveInput) (*SaveReceipt, error) {
	if staff == nil {
		return nil, apperrors.NewUnauthenticated("sign in required")
	}

	if input.ID.IsNew() {
		return s.create(ctx, staff, input)
	}
	return s.update(ctx, staff, input)
}

func (s *TicketService) create(ctx context.Context, staff *domain.StaffMember, input TicketSaveInput) (*SaveReceipt, error) {
	customer, err := s.customers.Get(ctx, input.CustomerID)
	if err != nil {
		return nil, err
	}
	if !customer.Active {
		return nil, apperrors.NewDomainInvariant("customer not active")
	}

	ticket := &domain.Ticket{
		CustomerID:  customer.ID,
		Title:       strings.TrimSpace(input.Title),
		Description: validation.NormalizeOptional(input.Description),
		Tech:        domain.TechUnassigned,
	}
	if staff.IsManager() {
		ticket.Tech = normalizeTech(input.Tech)
	}
	// completed defaults false at creation; the store assigns it
	if err := s.tickets.Create(ctx, ticket); err != nil {
		return nil, apperrors.NewPersistenceError(err)
	}

	s.publishTicketEvent(ctx, events.EventTicketCreated, staff, ticket)
	return &SaveReceipt{
		ID:      ticket.ID,
		Message: fmt.Sprintf("Ticket ID #%d created successfully", ticket.ID),
	}, nil
}

func (s *TicketService) update(ctx context.Context, staff *domain.StaffMember, input TicketSaveInput) (*SaveReceipt, error) {
	stored, err := s.tickets.GetByID(ctx, input.ID.Value())
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("ticket", map[string]any{"id": input.ID.Value()})
		}
		return nil, apperrors.NewPersistenceError(err)
	}

	ticket := &domain.Ticket{
		ID:          stored.ID,
		CustomerID:  stored.CustomerID,
		Title:       strings.TrimSpace(input.Title),
		Description: validation.NormalizeOptional(input.Description),
		Completed:   input.Completed,
		Tech:        stored.Tech,
	}
	// elevated field: only managers reassign technicians
	if staff.IsManager() {
		ticket.Tech = normalizeTech(input.Tech)
	}

	if err := s.tickets.Update(ctx, ticket); err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("ticket", map[string]any{"id": ticket.ID})
		}
		return nil, apperrors.NewPersistenceError(err)
	}

	eventType := events.EventTicketUpdated
	if ticket.Completed && !stored.Completed {
		eventType = events.EventTicketCompleted
	}
	s.publishTicketEvent(ctx, eventType, staff, ticket)
	return &SaveReceipt{
		ID:      ticket.ID,
		Message: fmt.Sprintf("Ticket ID #%d updated successfully", ticket.ID),
	}, nil
}

// Get returns a ticket together with its customer.
func (s *TicketService) Get(ctx context.Context, id int64) (*TicketDetail, error) {
	ticket, err := s.tickets.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("ticket", map[string]any{"id": id})
		}
		return nil, apperrors.NewPersistenceError(err)
	}
	customer, err := s.customers.Get(ctx, ticket.CustomerID)
	if err != nil {
		return nil, err
	}
	return &TicketDetail{Ticket: ticket, Customer: customer}, nil
}

// Search returns tickets matching the free-text term. A blank term
// yields an empty result without touching the store.
func (s *TicketService) Search(ctx context.Context, term string) ([]repository.TicketResult, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return []repository.TicketResult{}, nil
	}
	results, err := s.tickets.Search(ctx, term)
	if err != nil {
		return nil, apperrors.NewPersistenceError(err)
	}
	if results == nil {
		results = []repository.TicketResult{}
	}
	return results, nil
}

// ListForStaff returns the default ticket listing: managers see every
// open ticket, techs only the ones assigned to them.
func (s *TicketService) ListForStaff(ctx context.Context, staff *domain.StaffMember) ([]repository.TicketResult, error) {
	if staff == nil {
		return nil, apperrors.NewUnauthenticated("sign in required")
	}
	var (
		results []repository.TicketResult
		err     error
	)
	if staff.IsManager() {
		results, err = s.tickets.ListOpen(ctx)
	} else {
		results, err = s.tickets.ListByTech(ctx, staff.Email)
	}
	if err != nil {
		return nil, apperrors.NewPersistenceError(err)
	}
	if results == nil {
		results = []repository.TicketResult{}
	}
	return results, nil
}

func normalizeTech(tech string) string {
	tech = strings.TrimSpace(strings.ToLower(tech))
	if tech == "" {
		return domain.TechUnassigned
	}
	return tech
}

func (s *TicketService) publishTicketEvent(ctx context.Context, eventType events.EventType, staff *domain.StaffMember, ticket *domain.Ticket) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		EntityID:  ticket.ID,
		Actor:     events.StaffActor(staff),
		Timestamp: time.Now(),
		Payload: events.TicketSavedPayload{
			CustomerID: ticket.CustomerID,
			Title:      ticket.Title,
			Tech:       ticket.Tech,
			Completed:  ticket.Completed,
		},
	})
}
