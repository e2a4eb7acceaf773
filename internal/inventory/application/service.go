package application

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/skuflow/skuflow/internal/inventory/domain"
)

type Service struct {
	log  *slog.Logger
	repo StockRepository
}

func NewService(log *slog.Logger, repo StockRepository) *Service {
	return &Service{log: log, repo: repo}
}

// Status answers availability for every requested SKU, in request order.
// A SKU with no stored level is reported as not in stock.
func (s *Service) Status(ctx context.Context, skuCodes []string) ([]domain.StockStatus, error) {
	levels, err := s.repo.Levels(ctx, skuCodes)
	if err != nil {
		return nil, fmt.Errorf("load stock levels: %w", err)
	}

	byCode := make(map[string]int, len(levels))
	for _, lvl := range levels {
		byCode[lvl.SkuCode] = lvl.Quantity
	}

	statuses := make([]domain.StockStatus, 0, len(skuCodes))
	for _, code := range skuCodes {
		statuses = append(statuses, domain.StockStatus{
			SkuCode: code,
			InStock: byCode[code] > 0,
		})
	}
	return statuses, nil
}

func (s *Service) SetLevel(ctx context.Context, skuCode string, quantity int) error {
	level := domain.StockLevel{
		SkuCode:   skuCode,
		Quantity:  quantity,
		UpdatedAt: time.Now().UTC(),
	}
	if err := s.repo.Upsert(ctx, level); err != nil {
		return fmt.Errorf("upsert stock level: %w", err)
	}
	s.log.Info("stock level set", "sku_code", skuCode, "quantity", quantity)
	return nil
}
