package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/agent-console/internal/domain"
)

type productRepository struct {
	pool *pgxpool.Pool
}

// NewProductRepository builds the postgres-backed product repository.
func NewProductRepository(pool *pgxpool.Pool) ProductRepository {
	return &productRepository{pool: pool}
}

func (r *productRepository) ListByCustomer(ctx context.Context, customerID int64) ([]domain.Product, error) {
	const query = `
        SELECT id, customer_id, name, type, serial_number, status, firmware, location, last_active
        FROM products WHERE customer_id=$1 ORDER BY id`
	rows, err := r.pool.Query(ctx, query, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Product
	for rows.Next() {
		var product domain.Product
		if err := rows.Scan(
			&product.ID,
			&product.CustomerID,
			&product.Name,
			&product.Type,
			&product.SerialNumber,
			&product.Status,
			&product.Firmware,
			&product.Location,
			&product.LastActive,
		); err != nil {
			return nil, err
		}
		result = append(result, product)
	}
	return result, rows.Err()
}
