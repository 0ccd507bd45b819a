package service

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/repairshop-service/internal/domain"
	apperrors "github.com/spec-kit/repairshop-service/pkg/util"
)

type fakeCustomerRepo struct {
	customers   map[int64]domain.Customer
	nextID      int64
	searchCalls int
	failWrites  bool
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{customers: map[int64]domain.Customer{}, nextID: 1}
}

func (f *fakeCustomerRepo) Create(_ context.Context, customer *domain.Customer) error {
	if f.failWrites {
		return errors.New("connection refused")
	}
	customer.ID = f.nextID
	f.nextID++
	customer.Active = true
	f.customers[customer.ID] = *customer
	return nil
}

func (f *fakeCustomerRepo) Update(_ context.Context, customer *domain.Customer) error {
	if f.failWrites {
		return errors.New("connection refused")
	}
	if _, ok := f.customers[customer.ID]; !ok {
		return pgx.ErrNoRows
	}
	f.customers[customer.ID] = *customer
	return nil
}

func (f *fakeCustomerRepo) GetByID(_ context.Context, id int64) (*domain.Customer, error) {
	customer, ok := f.customers[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &customer, nil
}

func (f *fakeCustomerRepo) Search(_ context.Context, term string) ([]domain.Customer, error) {
	f.searchCalls++
	return nil, nil
}

func manager() *domain.StaffMember {
	return &domain.StaffMember{ID: 1, Email: "boss@example.com", Role: domain.StaffRoleManager, Active: true}
}

func tech() *domain.StaffMember {
	return &domain.StaffMember{ID: 2, Email: "tech@example.com", Role: domain.StaffRoleTech, Active: true}
}

func validCustomerInput() CustomerSaveInput {
	address2 := ""
	notes := ""
	return CustomerSaveInput{
		ID:        domain.NewIdentity(),
		FirstName: "Dan",
		LastName:  "Lee",
		Email:     "dan@example.com",
		Phone:     "555-0100",
		Address1:  "1 Main St",
		Address2:  &address2,
		City:      "Kansas City",
		State:     "KS",
		Zip:       "66101",
		Notes:     &notes,
	}
}

func newCustomerService(repo *fakeCustomerRepo) *CustomerService {
	return NewCustomerService(CustomerDependencies{CustomerRepo: repo})
}

func TestCustomerSaveRequiresAuthentication(t *testing.T) {
	svc := newCustomerService(newFakeCustomerRepo())

	receipt, err := svc.Save(context.Background(), nil, validCustomerInput())

	require.Error(t, err)
	assert.Nil(t, receipt)
	assert.Equal(t, "UNAUTHENTICATED", apperrors.ToDomainError(err).Code)
}

func TestCustomerSaveCreate(t *testing.T) {
	repo := newFakeCustomerRepo()
	svc := newCustomerService(repo)

	receipt, err := svc.Save(context.Background(), tech(), validCustomerInput())

	require.NoError(t, err)
	assert.Equal(t, int64(1), receipt.ID)
	assert.Equal(t, "Customer ID #1 created successfully", receipt.Message)

	stored := repo.customers[1]
	assert.True(t, stored.Active, "new customers are active regardless of input")
	assert.Nil(t, stored.Address2, "blank optional stored as absent")
	assert.Nil(t, stored.Notes, "blank optional stored as absent")
	assert.Equal(t, "Dan", stored.FirstName)
}

func TestCustomerSaveCreateRoundTrip(t *testing.T) {
	repo := newFakeCustomerRepo()
	svc := newCustomerService(repo)

	input := validCustomerInput()
	notes := "  prefers evening calls  "
	input.Notes = &notes

	receipt, err := svc.Save(context.Background(), tech(), input)
	require.NoError(t, err)

	fetched, err := svc.Get(context.Background(), receipt.ID)
	require.NoError(t, err)
	assert.Equal(t, input.FirstName, fetched.FirstName)
	assert.Equal(t, input.Email, fetched.Email)
	require.NotNil(t, fetched.Notes)
	assert.Equal(t, "prefers evening calls", *fetched.Notes)
}

func TestCustomerSaveUpdatePreservesActiveForNonManager(t *testing.T) {
	repo := newFakeCustomerRepo()
	svc := newCustomerService(repo)

	receipt, err := svc.Save(context.Background(), tech(), validCustomerInput())
	require.NoError(t, err)

	input := validCustomerInput()
	input.ID = domain.ExistingIdentity(receipt.ID)
	inactive := false
	input.Active = &inactive

	_, err = svc.Save(context.Background(), tech(), input)
	require.NoError(t, err)
	assert.True(t, repo.customers[receipt.ID].Active, "non-manager cannot flip the active flag")

	_, err = svc.Save(context.Background(), manager(), input)
	require.NoError(t, err)
	assert.False(t, repo.customers[receipt.ID].Active, "manager can flip the active flag")
}

func TestCustomerSaveUpdateClearsOptionals(t *testing.T) {
	repo := newFakeCustomerRepo()
	svc := newCustomerService(repo)

	input := validCustomerInput()
	notes := "old note"
	input.Notes = &notes
	receipt, err := svc.Save(context.Background(), tech(), input)
	require.NoError(t, err)
	require.NotNil(t, repo.customers[receipt.ID].Notes)

	update := validCustomerInput()
	update.ID = domain.ExistingIdentity(receipt.ID)
	cleared := "   "
	update.Notes = &cleared

	_, err = svc.Save(context.Background(), tech(), update)
	require.NoError(t, err)
	assert.Nil(t, repo.customers[receipt.ID].Notes, "cleared optional persists as absent")
}

func TestCustomerSaveUpdateIdempotent(t *testing.T) {
	repo := newFakeCustomerRepo()
	svc := newCustomerService(repo)

	receipt, err := svc.Save(context.Background(), tech(), validCustomerInput())
	require.NoError(t, err)

	update := validCustomerInput()
	update.ID = domain.ExistingIdentity(receipt.ID)
	update.Phone = "555-0199"

	_, err = svc.Save(context.Background(), tech(), update)
	require.NoError(t, err)
	first := repo.customers[receipt.ID]

	receipt2, err := svc.Save(context.Background(), tech(), update)
	require.NoError(t, err)
	assert.Equal(t, receipt.ID, receipt2.ID)
	assert.Equal(t, first, repo.customers[receipt.ID])
	assert.Len(t, repo.customers, 1, "no duplicate records")
}

func TestCustomerSaveUpdateNotFound(t *testing.T) {
	svc := newCustomerService(newFakeCustomerRepo())

	input := validCustomerInput()
	input.ID = domain.ExistingIdentity(42)

	_, err := svc.Save(context.Background(), tech(), input)
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperrors.ToDomainError(err).Code)
}

func TestCustomerSavePersistenceErrorSanitized(t *testing.T) {
	repo := newFakeCustomerRepo()
	repo.failWrites = true
	svc := newCustomerService(repo)

	_, err := svc.Save(context.Background(), tech(), validCustomerInput())
	require.Error(t, err)

	domainErr := apperrors.ToDomainError(err)
	assert.Equal(t, "PERSISTENCE_ERROR", domainErr.Code)
	assert.NotContains(t, domainErr.Message, "connection refused")
}

func TestCustomerSearchBlankTermSkipsStore(t *testing.T) {
	repo := newFakeCustomerRepo()
	svc := newCustomerService(repo)

	for _, term := range []string{"", "   ", "\t"} {
		results, err := svc.Search(context.Background(), term)
		require.NoError(t, err)
		assert.Empty(t, results)
	}
	assert.Zero(t, repo.searchCalls, "blank searches never reach the store")
}
