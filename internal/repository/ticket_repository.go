package repository

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/agent-console/internal/domain"
)

type ticketRepository struct {
	pool *pgxpool.Pool
}

// NewTicketRepository builds the postgres-backed ticket repository.
func NewTicketRepository(pool *pgxpool.Pool) TicketRepository {
	return &ticketRepository{pool: pool}
}

const ticketColumns = `id, subject, description, status, priority, category, channel,
               customer_id, agent_id, zoho_desk_ticket_id, created_at, updated_at`

func (r *ticketRepository) List(ctx context.Context) ([]domain.Ticket, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+ticketColumns+` FROM tickets ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Ticket
	for rows.Next() {
		ticket, err := scanTicket(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *ticket)
	}
	return result, rows.Err()
}

func (r *ticketRepository) GetByID(ctx context.Context, id int64) (*domain.Ticket, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+ticketColumns+` FROM tickets WHERE id=$1`, id)
	ticket, err := scanTicket(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	events, err := r.listEvents(ctx, id)
	if err != nil {
		return nil, err
	}
	ticket.Events = events
	return ticket, nil
}

func (r *ticketRepository) Create(ctx context.Context, ticket *domain.Ticket) error {
	const query = `
        INSERT INTO tickets (subject, description, status, priority, category, channel, customer_id, agent_id)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		ticket.Subject,
		ticket.Description,
		ticket.Status,
		ticket.Priority,
		ticket.Category,
		ticket.Channel,
		ticket.CustomerID,
		ticket.AgentID,
	).Scan(&ticket.ID, &ticket.CreatedAt, &ticket.UpdatedAt)
}

// Patch applies the present fields with a single UPDATE, always bumping
// updated_at. ErrNotFound when the id matches no row.
func (r *ticketRepository) Patch(ctx context.Context, id int64, patch TicketPatch) error {
	builder := sq.Update("tickets").
		PlaceholderFormat(sq.Dollar).
		Where(sq.Eq{"id": id}).
		Set("updated_at", sq.Expr("NOW()"))

	if patch.Subject != nil {
		builder = builder.Set("subject", *patch.Subject)
	}
	if patch.Description != nil {
		builder = builder.Set("description", *patch.Description)
	}
	if patch.Status != nil {
		builder = builder.Set("status", *patch.Status)
	}
	if patch.Priority != nil {
		builder = builder.Set("priority", *patch.Priority)
	}
	if patch.Channel != nil {
		builder = builder.Set("channel", *patch.Channel)
	}
	if patch.AgentID != nil {
		builder = builder.Set("agent_id", *patch.AgentID)
	}
	if patch.ZohoDeskTicketID != nil {
		builder = builder.Set("zoho_desk_ticket_id", *patch.ZohoDeskTicketID)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return err
	}

	cmd, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ticketRepository) AppendEvent(ctx context.Context, ticketID int64, event *domain.TicketEvent) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	const insert = `
        INSERT INTO ticket_events (ticket_id, position, date, type, content, agent, status, private)
        VALUES ($1, (SELECT COUNT(*)+1 FROM ticket_events WHERE ticket_id=$1), $2,$3,$4,$5,$6,$7)
        RETURNING position`
	if err := tx.QueryRow(ctx, insert,
		ticketID,
		event.Date,
		event.Type,
		event.Content,
		event.Agent,
		event.Status,
		event.Private,
	).Scan(&event.ID); err != nil {
		return err
	}

	cmd, err := tx.Exec(ctx, `UPDATE tickets SET updated_at=$1 WHERE id=$2`, event.Date, ticketID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}

	return tx.Commit(ctx)
}

func (r *ticketRepository) listEvents(ctx context.Context, ticketID int64) ([]domain.TicketEvent, error) {
	const query = `
        SELECT position, date, type, content, agent, status, private
        FROM ticket_events WHERE ticket_id=$1 ORDER BY position`
	rows, err := r.pool.Query(ctx, query, ticketID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.TicketEvent
	for rows.Next() {
		var event domain.TicketEvent
		if err := rows.Scan(
			&event.ID,
			&event.Date,
			&event.Type,
			&event.Content,
			&event.Agent,
			&event.Status,
			&event.Private,
		); err != nil {
			return nil, err
		}
		result = append(result, event)
	}
	return result, rows.Err()
}

func scanTicket(row pgx.Row) (*domain.Ticket, error) {
	var ticket domain.Ticket
	if err := row.Scan(
		&ticket.ID,
		&ticket.Subject,
		&ticket.Description,
		&ticket.Status,
		&ticket.Priority,
		&ticket.Category,
		&ticket.Channel,
		&ticket.CustomerID,
		&ticket.AgentID,
		&ticket.ZohoDeskTicketID,
		&ticket.CreatedAt,
		&ticket.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &ticket, nil
}
