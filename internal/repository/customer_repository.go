package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/repairshop-service/internal/domain"
)

// CustomerRepository encapsulates customer persistence.
type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) error
	Update(ctx context.Context, customer *domain.Customer) error
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
	Search(ctx context.Context, term string) ([]domain.Customer, error)
}

type customerRepository struct {
	pool *pgxpool.Pool
}

// NewCustomerRepository instantiates the repository.
func NewCustomerRepository(pool *pgxpool.Pool) CustomerRepository {
	return &customerRepository{pool: pool}
}

func (r *customerRepository) Create(ctx context.Context, customer *domain.Customer) error {
	const query = `
        INSERT INTO customers (first_name, last_name, email, phone, address1, address2, city, state, zip, notes)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
        RETURNING id, active, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		customer.FirstName,
		customer.LastName,
		customer.Email,
		customer.Phone,
		customer.Address1,
		customer.Address2,
		customer.City,
		customer.State,
		customer.Zip,
		customer.Notes,
	).Scan(&customer.ID, &customer.Active, &customer.CreatedAt, &customer.UpdatedAt)
}

func (r *customerRepository) Update(ctx context.Context, customer *domain.Customer) error {
	const query = `
        UPDATE customers SET first_name=$1, last_name=$2, email=$3, phone=$4, address1=$5,
            address2=$6, city=$7, state=$8, zip=$9, notes=$10, active=$11, updated_at=NOW()
        WHERE id=$12`
	cmd, err := r.pool.Exec(ctx, query,
		customer.FirstName,
		customer.LastName,
		customer.Email,
		customer.Phone,
		customer.Address1,
		customer.Address2,
		customer.City,
		customer.State,
		customer.Zip,
		customer.Notes,
		customer.Active,
		customer.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *customerRepository) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	const query = `
        SELECT id, first_name, last_name, email, phone, address1, address2, city, state, zip,
               notes, active, created_at, updated_at
        FROM customers WHERE id=$1`
	var customer domain.Customer
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&customer.ID,
		&customer.FirstName,
		&customer.LastName,
		&customer.Email,
		&customer.Phone,
		&customer.Address1,
		&customer.Address2,
		&customer.City,
		&customer.State,
		&customer.Zip,
		&customer.Notes,
		&customer.Active,
		&customer.CreatedAt,
		&customer.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &customer, nil
}

// Search matches the term case-insensitively across name, contact and
// locality columns, unioned. Ordered by id so identical queries return
// rows in a stable order.
func (r *customerRepository) Search(ctx context.Context, term string) ([]domain.Customer, error) {
	const query = `
        SELECT id, first_name, last_name, email, phone, address1, address2, city, state, zip,
               notes, active, created_at, updated_at
        FROM customers
        WHERE first_name ILIKE $1 OR last_name ILIKE $1 OR email ILIKE $1
           OR phone ILIKE $1 OR city ILIKE $1 OR zip ILIKE $1
        ORDER BY id`
	rows, err := r.pool.Query(ctx, query, "%"+term+"%")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanCustomers(rows)
}

func scanCustomers(rows pgx.Rows) ([]domain.Customer, error) {
	var result []domain.Customer
	for rows.Next() {
		var customer domain.Customer
		if err := rows.Scan(
			&customer.ID,
			&customer.FirstName,
			&customer.LastName,
			&customer.Email,
			&customer.Phone,
			&customer.Address1,
			&customer.Address2,
			&customer.City,
			&customer.State,
			&customer.Zip,
			&customer.Notes,
			&customer.Active,
			&customer.CreatedAt,
			&customer.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, customer)
	}
	return result, rows.Err()
}
