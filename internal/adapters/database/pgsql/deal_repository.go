package pgsql

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dealdeskhq/dealdesk_backend/internal/core/domain"
	portsrepo "github.com/dealdeskhq/dealdesk_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxDealRepository loads the deal set from Postgres. The deal aggregate
// (deal plus its owned collections) is persisted as a single JSONB
// document per row, so a load is one query and one unmarshal per deal.
type PgxDealRepository struct {
	pool *pgxpool.Pool
}

// NewPgxDealRepository creates a new Postgres-backed deal loader.
func NewPgxDealRepository(pool *pgxpool.Pool) portsrepo.DealLoader {
	return &PgxDealRepository{pool: pool}
}

// LoadDeals returns the complete deal set in creation order.
func (r *PgxDealRepository) LoadDeals(ctx context.Context) ([]domain.Deal, error) {
	query := `
		SELECT payload
		FROM deals
		ORDER BY created_at, deal_id;
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query deals: %w", err)
	}
	defer rows.Close()

	deals := []domain.Deal{}
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("failed to scan deal row: %w", err)
		}
		var deal domain.Deal
		if err := json.Unmarshal(payload, &deal); err != nil {
			return nil, fmt.Errorf("failed to decode deal payload: %w", err)
		}
		deals = append(deals, deal)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate deal rows: %w", err)
	}

	return deals, nil
}
