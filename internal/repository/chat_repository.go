package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/agent-console/internal/domain"
)

type chatRepository struct {
	pool *pgxpool.Pool
}

// NewChatRepository builds the postgres-backed chat repository.
func NewChatRepository(pool *pgxpool.Pool) ChatRepository {
	return &chatRepository{pool: pool}
}

func (r *chatRepository) ListByCustomer(ctx context.Context, customerID int64) ([]domain.ChatMessage, error) {
	const query = `
        SELECT id, customer_id, message, created_at
        FROM chat_history WHERE customer_id=$1 ORDER BY id`
	rows, err := r.pool.Query(ctx, query, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.ChatMessage
	for rows.Next() {
		var msg domain.ChatMessage
		if err := rows.Scan(&msg.ID, &msg.CustomerID, &msg.Message, &msg.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, msg)
	}
	return result, rows.Err()
}

func (r *chatRepository) Append(ctx context.Context, msg *domain.ChatMessage) error {
	const query = `
        INSERT INTO chat_history (customer_id, message)
        VALUES ($1,$2)
        RETURNING id, created_at`
	return r.pool.QueryRow(ctx, query, msg.CustomerID, msg.Message).
		Scan(&msg.ID, &msg.CreatedAt)
}
