package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/skuflow/skuflow/internal/order/domain"
)

// ErrStockRejected covers both a genuine out-of-stock answer and an
// inventory check that could not be completed. The two are deliberately
// indistinguishable to callers: when stock cannot be confirmed the order is
// rejected rather than admitted on faith.
var ErrStockRejected = errors.New("item(s) not in stock")

type Service struct {
	log  *slog.Logger
	repo OrderRepository
	inv  InventoryClient
}

func NewService(log *slog.Logger, repo OrderRepository, inv InventoryClient) *Service {
	return &Service{log: log, repo: repo, inv: inv}
}

// PlaceOrder runs the admission workflow: assemble the order, confirm every
// referenced SKU is in stock, then persist order and line items atomically.
// Nothing is written before the admission decision. Returns the order number
// on acceptance.
//
// Known limitation: there is no reservation step, so concurrent orders for
// overlapping SKUs can all observe "in stock" and overcommit inventory.
func (s *Service) PlaceOrder(ctx context.Context, items []domain.OrderLineItem) (string, error) {
	o := domain.NewOrder(items)

	skuCodes := o.SkuCodes()
	if len(skuCodes) > 0 {
		statuses, err := s.inv.CheckStock(ctx, skuCodes)
		if err != nil {
			// Fail closed: an unanswerable stock question rejects the order.
			s.log.Warn("inventory check failed, rejecting order",
				"order_number", o.OrderNumber, "err", err)
			return "", fmt.Errorf("%w: %w", ErrStockRejected, err)
		}
		for _, st := range statuses {
			if !st.InStock {
				return "", fmt.Errorf("%w: %s", ErrStockRejected, st.SkuCode)
			}
		}
	}

	if err := s.repo.Save(ctx, o); err != nil {
		return "", fmt.Errorf("save order: %w", err)
	}
	s.log.Info("order accepted", "order_number", o.OrderNumber, "total_price", o.TotalPrice)
	return o.OrderNumber, nil
}

func (s *Service) Get(ctx context.Context, orderNumber string) (domain.Order, error) {
	return s.repo.Get(ctx, orderNumber)
}
