package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/repairshop-service/internal/domain"
)

// TicketResult pairs a ticket with the customer columns the ticket list
// and form pages display alongside it.
type TicketResult struct {
	Ticket        domain.Ticket
	CustomerName  string
	CustomerEmail string
}

// TicketRepository encapsulates ticket persistence.
type TicketRepository interface {
	Create(ctx context.Context, ticket *domain.Ticket) error
	Update(ctx context.Context, ticket *domain.Ticket) error
	GetByID(ctx context.Context, id int64) (*domain.Ticket, error)
	Search(ctx context.Context, term string) ([]TicketResult, error)
	ListOpen(ctx context.Context) ([]TicketResult, error)
	ListByTech(ctx context.Context, tech string) ([]TicketResult, error)
}

type ticketRepository struct {
	pool *pgxpool.Pool
}

// NewTicketRepository instantiates the repository.
func NewTicketRepository(pool *pgxpool.Pool) TicketRepository {
	return &ticketRepository{pool: pool}
}

func (r *ticketRepository) Create(ctx context.Context, ticket *domain.Ticket) error {
	const query = `
        INSERT INTO tickets (customer_id, title, description, tech)
        VALUES ($1,$2,$3,$4)
        RETURNING id, completed, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		ticket.CustomerID,
		ticket.Title,
		ticket.Description,
		ticket.Tech,
	).Scan(&ticket.ID, &ticket.Completed, &ticket.CreatedAt, &ticket.UpdatedAt)
}

func (r *ticketRepository) Update(ctx context.Context, ticket *domain.Ticket) error {
	const query = `
        UPDATE tickets SET title=$1, description=$2, completed=$3, tech=$4, updated_at=NOW()
        WHERE id=$5`
	cmd, err := r.pool.Exec(ctx, query,
		ticket.Title,
		ticket.Description,
		ticket.Completed,
		ticket.Tech,
		ticket.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *ticketRepository) GetByID(ctx context.Context, id int64) (*domain.Ticket, error) {
	const query = `
        SELECT id, customer_id, title, description, completed, tech, created_at, updated_at
        FROM tickets WHERE id=$1`
	var ticket domain.Ticket
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&ticket.ID,
		&ticket.CustomerID,
		&ticket.Title,
		&ticket.Description,
		&ticket.Completed,
		&ticket.Tech,
		&ticket.CreatedAt,
		&ticket.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &ticket, nil
}

const ticketSelect = `
    SELECT t.id, t.customer_id, t.title, t.description, t.completed, t.tech,
           t.created_at, t.updated_at,
           c.first_name || ' ' || c.last_name, c.email
    FROM tickets t
    JOIN customers c ON c.id = t.customer_id`

// Search matches the term case-insensitively across ticket title, tech
// and the joined customer's name and email, unioned. Ordered by id for
// stable output.
func (r *ticketRepository) Search(ctx context.Context, term string) ([]TicketResult, error) {
	query := ticketSelect + `
        WHERE t.title ILIKE $1 OR t.tech ILIKE $1
           OR c.first_name ILIKE $1 OR c.last_name ILIKE $1 OR c.email ILIKE $1
        ORDER BY t.id`
	rows, err := r.pool.Query(ctx, query, "%"+term+"%")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTicketResults(rows)
}

// ListOpen returns tickets not yet completed, oldest first.
func (r *ticketRepository) ListOpen(ctx context.Context) ([]TicketResult, error) {
	query := ticketSelect + ` WHERE NOT t.completed ORDER BY t.id`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTicketResults(rows)
}

// ListByTech returns open tickets assigned to the given technician.
func (r *ticketRepository) ListByTech(ctx context.Context, tech string) ([]TicketResult, error) {
	query := ticketSelect + ` WHERE NOT t.completed AND t.tech = $1 ORDER BY t.id`
	rows, err := r.pool.Query(ctx, query, tech)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTicketResults(rows)
}

func scanTicketResults(rows pgx.Rows) ([]TicketResult, error) {
	var result []TicketResult
	for rows.Next() {
		var item TicketResult
		if err := rows.Scan(
			&item.Ticket.ID,
			&item.Ticket.CustomerID,
			&item.Ticket.Title,
			&item.Ticket.Description,
			&item.Ticket.Completed,
			&item.Ticket.Tech,
			&item.Ticket.CreatedAt,
			&item.Ticket.UpdatedAt,
			&item.CustomerName,
			&item.CustomerEmail,
		); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	return result, rows.Err()
}
