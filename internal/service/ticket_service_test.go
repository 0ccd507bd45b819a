package service

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/repairshop-service/internal/domain"
	"github.com/spec-kit/repairshop-service/internal/repository"
	apperrors "github.com/spec-kit/repairshop-service/pkg/util"
)

type fakeTicketRepo struct {
	tickets     map[int64]domain.Ticket
	nextID      int64
	searchCalls int
	openCalls   int
	techCalls   []string
}

func newFakeTicketRepo() *fakeTicketRepo {
	return &fakeTicketRepo{tickets: map[int64]domain.Ticket{}, nextID: 1}
}

func (f *fakeTicketRepo) Create(_ context.Context, ticket *domain.Ticket) error {
	ticket.ID = f.nextID
	f.nextID++
	ticket.Completed = false
	f.tickets[ticket.ID] = *ticket
	return nil
}

func (f *fakeTicketRepo) Update(_ context.Context, ticket *domain.Ticket) error {
	if _, ok := f.tickets[ticket.ID]; !ok {
		return pgx.ErrNoRows
	}
	f.tickets[ticket.ID] = *ticket
	return nil
}

func (f *fakeTicketRepo) GetByID(_ context.Context, id int64) (*domain.Ticket, error) {
	ticket, ok := f.tickets[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &ticket, nil
}

func (f *fakeTicketRepo) Search(_ context.Context, term string) ([]repository.TicketResult, error) {
	f.searchCalls++
	return nil, nil
}

func (f *fakeTicketRepo) ListOpen(_ context.Context) ([]repository.TicketResult, error) {
	f.openCalls++
	return []repository.TicketResult{}, nil
}

func (f *fakeTicketRepo) ListByTech(_ context.Context, tech string) ([]repository.TicketResult, error) {
	f.techCalls = append(f.techCalls, tech)
	return []repository.TicketResult{}, nil
}

func newTicketFixture(t *testing.T) (*TicketService, *fakeTicketRepo, *fakeCustomerRepo, int64) {
	t.Helper()
	customerRepo := newFakeCustomerRepo()
	customerService := newCustomerService(customerRepo)
	receipt, err := customerService.Save(context.Background(), tech(), validCustomerInput())
	require.NoError(t, err)

	ticketRepo := newFakeTicketRepo()
	svc := NewTicketService(TicketDependencies{
		TicketRepo:      ticketRepo,
		CustomerService: customerService,
	})
	return svc, ticketRepo, customerRepo, receipt.ID
}

func validTicketInput(customerID int64) TicketSaveInput {
	description := "screen flickers on boot"
	return TicketSaveInput{
		ID:          domain.NewIdentity(),
		CustomerID:  customerID,
		Title:       "Laptop repair",
		Description: &description,
	}
}

func TestTicketSaveRequiresAuthentication(t *testing.T) {
	svc, _, _, customerID := newTicketFixture(t)

	_, err := svc.Save(context.Background(), nil, validTicketInput(customerID))
	require.Error(t, err)
	assert.Equal(t, "UNAUTHENTICATED", apperrors.ToDomainError(err).Code)
}

func TestTicketSaveCreate(t *testing.T) {
	svc, repo, _, customerID := newTicketFixture(t)

	receipt, err := svc.Save(context.Background(), tech(), validTicketInput(customerID))

	require.NoError(t, err)
	assert.Equal(t, "Ticket ID #1 created successfully", receipt.Message)

	stored := repo.tickets[receipt.ID]
	assert.Equal(t, customerID, stored.CustomerID)
	assert.False(t, stored.Completed)
	assert.Equal(t, domain.TechUnassigned, stored.Tech)
}

func TestTicketSaveCreateRejectsInactiveCustomer(t *testing.T) {
	svc, ticketRepo, customerRepo, customerID := newTicketFixture(t)

	customer := customerRepo.customers[customerID]
	customer.Active = false
	customerRepo.customers[customerID] = customer

	_, err := svc.Save(context.Background(), manager(), validTicketInput(customerID))

	require.Error(t, err)
	domainErr := apperrors.ToDomainError(err)
	assert.Equal(t, "DOMAIN_INVARIANT", domainErr.Code)
	assert.Equal(t, "customer not active", domainErr.Message)
	assert.Empty(t, ticketRepo.tickets, "no write performed")
}

func TestTicketSaveCreateUnknownCustomer(t *testing.T) {
	svc, _, _, _ := newTicketFixture(t)

	_, err := svc.Save(context.Background(), manager(), validTicketInput(99))
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperrors.ToDomainError(err).Code)
}

func TestTicketSaveTechAssignmentGate(t *testing.T) {
	tests := []struct {
		name     string
		staff    *domain.StaffMember
		tech     string
		wantTech string
	}{
		{
			name:     "manager assigns tech",
			staff:    manager(),
			tech:     "Sam@Example.com",
			wantTech: "sam@example.com",
		},
		{
			name:     "manager leaves unassigned",
			staff:    manager(),
			tech:     "",
			wantTech: domain.TechUnassigned,
		},
		{
			name:     "non-manager assignment silently dropped",
			staff:    tech(),
			tech:     "sam@example.com",
			wantTech: domain.TechUnassigned,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, _, customerID := newTicketFixture(t)

			input := validTicketInput(customerID)
			input.Tech = tt.tech

			receipt, err := svc.Save(context.Background(), tt.staff, input)
			require.NoError(t, err)
			assert.Equal(t, tt.wantTech, repo.tickets[receipt.ID].Tech)
		})
	}
}

func TestTicketSaveUpdatePreservesTechForNonManager(t *testing.T) {
	svc, repo, _, customerID := newTicketFixture(t)

	input := validTicketInput(customerID)
	input.Tech = "sam@example.com"
	receipt, err := svc.Save(context.Background(), manager(), input)
	require.NoError(t, err)

	update := validTicketInput(customerID)
	update.ID = domain.ExistingIdentity(receipt.ID)
	update.Completed = true
	update.Tech = "other@example.com"

	_, err = svc.Save(context.Background(), tech(), update)
	require.NoError(t, err)

	stored := repo.tickets[receipt.ID]
	assert.Equal(t, "sam@example.com", stored.Tech, "stored assignment preserved")
	assert.True(t, stored.Completed, "non-elevated fields still update")
}

func TestTicketSaveUpdateNotFound(t *testing.T) {
	svc, _, _, customerID := newTicketFixture(t)

	input := validTicketInput(customerID)
	input.ID = domain.ExistingIdentity(42)

	_, err := svc.Save(context.Background(), manager(), input)
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperrors.ToDomainError(err).Code)
}

func TestTicketSearchBlankTermSkipsStore(t *testing.T) {
	svc, repo, _, _ := newTicketFixture(t)

	results, err := svc.Search(context.Background(), "   ")
	require.NoError(t, err)
	assert.Empty(t, results)
	assert.Zero(t, repo.searchCalls)
}

func TestTicketListForStaffScopesByRole(t *testing.T) {
	svc, repo, _, _ := newTicketFixture(t)

	_, err := svc.ListForStaff(context.Background(), manager())
	require.NoError(t, err)
	assert.Equal(t, 1, repo.openCalls)

	_, err = svc.ListForStaff(context.Background(), tech())
	require.NoError(t, err)
	assert.Equal(t, []string{"tech@example.com"}, repo.techCalls)
}
