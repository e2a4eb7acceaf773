package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/skuflow/skuflow/internal/inventory/domain"
)

type Repository struct {
	log  *slog.Logger
	pool *pgxpool.Pool
}

func NewRepository(log *slog.Logger, pool *pgxpool.Pool) *Repository {
	return &Repository{log: log, pool: pool}
}

func (r *Repository) EnsureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS inventory (
			sku_code   TEXT PRIMARY KEY,
			quantity   INT NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		)
	`)
	return err
}

func (r *Repository) Levels(ctx context.Context, skuCodes []string) ([]domain.StockLevel, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT sku_code, quantity, updated_at FROM inventory WHERE sku_code = ANY($1)`,
		skuCodes)
	if err != nil {
		return nil, fmt.Errorf("query inventory: %w", err)
	}
	defer rows.Close()

	var levels []domain.StockLevel
	for rows.Next() {
		var lvl domain.StockLevel
		if err := rows.Scan(&lvl.SkuCode, &lvl.Quantity, &lvl.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan stock level: %w", err)
		}
		levels = append(levels, lvl)
	}
	return levels, rows.Err()
}

func (r *Repository) Upsert(ctx context.Context, level domain.StockLevel) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO inventory (sku_code, quantity, updated_at) VALUES ($1, $2, $3)
		 ON CONFLICT (sku_code) DO UPDATE SET quantity=$2, updated_at=$3`,
		level.SkuCode, level.Quantity, level.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upsert inventory: %w", err)
	}
	return nil
}
