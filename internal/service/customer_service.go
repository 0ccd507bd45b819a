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
	"github.com/spec-kit/repairshop-service/internal/persistence"
	"github.com/spec-kit/repairshop-service/internal/repository"
	"github.com/spec-kit/repairshop-service/internal/validation"
	apperrors "github.com/spec-kit/repairshop-service/pkg/util"
)

// SaveReceipt is the uniform success outcome of a save.
type SaveReceipt struct {
	ID      int64
	Message string
}

// CustomerSaveInput carries a validated customer record into the save
// workflow. Active is elevated: only managers may change it, and only on
// existing records.
type CustomerSaveInput struct {
	ID        domain.Identity
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
	Active    *bool
}

// CustomerService coordinates customer workflows.
type CustomerService struct {
	customers  repository.CustomerRepository
	cache      *persistence.CustomerCache
	dispatcher events.Dispatcher
}

// CustomerDependencies bundles collaborators for the customer service.
type CustomerDependencies struct {
	CustomerRepo repository.CustomerRepository
	Cache        *persistence.CustomerCache
	Dispatcher   events.Dispatcher
}

// NewCustomerService constructs the service.
func NewCustomerService(deps CustomerDependencies) *CustomerService {
	return &CustomerService{
		customers:  deps.CustomerRepo,
		cache:      deps.Cache,
		dispatcher: deps.Dispatcher,
	}
}

// Save creates or updates a customer depending on the input identity.
// New records are inserted without the server-assigned fields; the store
// sets id, timestamps and the active default. Updates write every field,
// but the active flag from a non-manager is discarded in favor of the
// currently stored value.
func (s *CustomerService) Save(ctx context.Context, staff *domain.StaffMember, input CustomerSaveInput) (*SaveReceipt, error) {
	if staff == nil {
		return nil, apperrors.NewUnauthenticated("sign in required")
	}

	if input.ID.IsNew() {
		return s.create(ctx, staff, input)
	}
	return s.update(ctx, staff, input)
}

func (s *CustomerService) create(ctx context.Context, staff *domain.StaffMember, input CustomerSaveInput) (*SaveReceipt, error) {
	customer := &domain.Customer{
		FirstName: strings.TrimSpace(input.FirstName),
		LastName:  strings.TrimSpace(input.LastName),
		Email:     strings.TrimSpace(input.Email),
		Phone:     strings.TrimSpace(input.Phone),
		Address1:  strings.TrimSpace(input.Address1),
		Address2:  validation.NormalizeOptional(input.Address2),
		City:      strings.TrimSpace(input.City),
		State:     strings.ToUpper(strings.TrimSpace(input.State)),
		Zip:       strings.TrimSpace(input.Zip),
		Notes:     validation.NormalizeOptional(input.Notes),
	}
	// active is not settable at creation; the store defaults it to true
	if err := s.customers.Create(ctx, customer); err != nil {
		return nil, apperrors.NewPersistenceError(err)
	}

	s.publishCustomerEvent(ctx, events.EventCustomerCreated, staff, customer)
	return &SaveReceipt{
		ID:      customer.ID,
		Message: fmt.Sprintf("Customer ID #%d created successfully", customer.ID),
	}, nil
}

func (s *CustomerService) update(ctx context.Context, staff *domain.StaffMember, input CustomerSaveInput) (*SaveReceipt, error) {
	stored, err := s.customers.GetByID(ctx, input.ID.Value())
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("customer", map[string]any{"id": input.ID.Value()})
		}
		return nil, apperrors.NewPersistenceError(err)
	}

	customer := &domain.Customer{
		ID:        stored.ID,
		FirstName: strings.TrimSpace(input.FirstName),
		LastName:  strings.TrimSpace(input.LastName),
		Email:     strings.TrimSpace(input.Email),
		Phone:     strings.TrimSpace(input.Phone),
		Address1:  strings.TrimSpace(input.Address1),
		Address2:  validation.NormalizeOptional(input.Address2),
		City:      strings.TrimSpace(input.City),
		State:     strings.ToUpper(strings.TrimSpace(input.State)),
		Zip:       strings.TrimSpace(input.Zip),
		Notes:     validation.NormalizeOptional(input.Notes),
		Active:    stored.Active,
	}
	// elevated field: a submitted active flag from a non-manager is
	// silently ignored, never an error
	if staff.IsManager() && input.Active != nil {
		customer.Active = *input.Active
	}

	if err := s.customers.Update(ctx, customer); err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("customer", map[string]any{"id": customer.ID})
		}
		return nil, apperrors.NewPersistenceError(err)
	}
	s.cache.Invalidate(ctx, customer.ID)

	s.publishCustomerEvent(ctx, events.EventCustomerUpdated, staff, customer)
	return &SaveReceipt{
		ID:      customer.ID,
		Message: fmt.Sprintf("Customer ID #%d updated successfully", customer.ID),
	}, nil
}

// Get returns a customer by id, consulting the cache first.
func (s *CustomerService) Get(ctx context.Context, id int64) (*domain.Customer, error) {
	if cached, ok := s.cache.Get(ctx, id); ok {
		return cached, nil
	}
	customer, err := s.customers.GetByID(ctx, id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("customer", map[string]any{"id": id})
		}
		return nil, apperrors.NewPersistenceError(err)
	}
	s.cache.Set(ctx, customer)
	return customer, nil
}

// Search returns customers matching the free-text term. A blank term
// yields an empty result without touching the store.
func (s *CustomerService) Search(ctx context.Context, term string) ([]domain.Customer, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return []domain.Customer{}, nil
	}
	results, err := s.customers.Search(ctx, term)
	if err != nil {
		return nil, apperrors.NewPersistenceError(err)
	}
	if results == nil {
		results = []domain.Customer{}
	}
	return results, nil
}

func (s *CustomerService) publishCustomerEvent(ctx context.Context, eventType events.EventType, staff *domain.StaffMember, customer *domain.Customer) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		EntityID:  customer.ID,
		Actor:     events.StaffActor(staff),
		Timestamp: time.Now(),
		Payload: events.CustomerSavedPayload{
			Name:   customer.FullName(),
			Email:  customer.Email,
			Active: customer.Active,
		},
	})
}
