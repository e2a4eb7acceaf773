package application

import (
	"context"

	"github.com/skuflow/skuflow/internal/product/domain"
)

type ProductRepository interface {
	Create(ctx context.Context, p domain.Product) error
	// List returns all products in insertion order.
	List(ctx context.Context) ([]domain.Product, error)
}
