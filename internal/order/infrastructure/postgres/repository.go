package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/skuflow/skuflow/internal/order/domain"
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
		CREATE TABLE IF NOT EXISTS orders (
			order_number TEXT PRIMARY KEY,
			total_price  NUMERIC NOT NULL,
			created_at   TIMESTAMPTZ NOT NULL
		);
		CREATE TABLE IF NOT EXISTS order_items (
			order_number TEXT NOT NULL REFERENCES orders(order_number),
			sku_code     TEXT NOT NULL,
			quantity     INT NOT NULL,
			price        NUMERIC NOT NULL
		);
	`)
	return err
}

// Save writes the order row and all line-item rows in one transaction. Either
// everything becomes visible at commit or nothing does.
func (r *Repository) Save(ctx context.Context, o domain.Order) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	_, err = tx.Exec(ctx, `INSERT INTO orders (order_number, total_price, created_at)
			VALUES ($1, $2::numeric, $3)`,
		o.OrderNumber, o.TotalPrice.String(), o.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}

	batch := &pgx.Batch{}
	for _, item := range o.LineItems {
		batch.Queue(`INSERT INTO order_items (order_number, sku_code, quantity, price)
			VALUES ($1, $2, $3, $4::numeric)`,
			o.OrderNumber, item.SkuCode, item.Quantity, item.Price.String())
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("insert order items: %w", err)
	}

	return tx.Commit(ctx)
}

func (r *Repository) Get(ctx context.Context, orderNumber string) (domain.Order, error) {
	var o domain.Order
	var total string
	err := r.pool.QueryRow(ctx,
		`SELECT order_number, total_price::text, created_at FROM orders WHERE order_number=$1`,
		orderNumber).Scan(&o.OrderNumber, &total, &o.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Order{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.Order{}, fmt.Errorf("query order: %w", err)
	}
	if o.TotalPrice, err = decimal.NewFromString(total); err != nil {
		return domain.Order{}, fmt.Errorf("parse total price: %w", err)
	}

	rows, err := r.pool.Query(ctx,
		`SELECT sku_code, quantity, price::text FROM order_items WHERE order_number=$1`,
		orderNumber)
	if err != nil {
		return domain.Order{}, fmt.Errorf("query order items: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var item domain.OrderLineItem
		var price string
		if err := rows.Scan(&item.SkuCode, &item.Quantity, &price); err != nil {
			return domain.Order{}, fmt.Errorf("scan order item: %w", err)
		}
		if item.Price, err = decimal.NewFromString(price); err != nil {
			return domain.Order{}, fmt.Errorf("parse item price: %w", err)
		}
		o.LineItems = append(o.LineItems, item)
	}
	return o, rows.Err()
}
