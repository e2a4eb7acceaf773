package application

import (
	"context"

	"github.com/skuflow/skuflow/internal/order/domain"
)

type OrderRepository interface {
	// Save persists the order and its line items in a single transaction.
	Save(ctx context.Context, o domain.Order) error
	Get(ctx context.Context, orderNumber string) (domain.Order, error)
}

type InventoryClient interface {
	// CheckStock reports per-SKU availability. It fails with
	// inventory.ErrUnavailable (wrapped) when the endpoint cannot be reached
	// or returns an unusable response.
	CheckStock(ctx context.Context, skuCodes []string) ([]domain.StockStatus, error)
}
