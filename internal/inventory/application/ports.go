package application

import (
	"context"

	"github.com/skuflow/skuflow/internal/inventory/domain"
)

type StockRepository interface {
	// Levels returns the stored levels for the given SKUs; SKUs without a row
	// are simply absent from the result.
	Levels(ctx context.Context, skuCodes []string) ([]domain.StockLevel, error)
	Upsert(ctx context.Context, level domain.StockLevel) error
}
