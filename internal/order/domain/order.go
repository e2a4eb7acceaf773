package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrNotFound is returned when no order exists for a given order number.
var ErrNotFound = errors.New("order not found")

// OrderLineItem is a single requested position. Immutable once the order is
// assembled; quantities and prices are validated at the transport boundary.
type OrderLineItem struct {
	SkuCode  string          `json:"skuCode"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

type Order struct {
	OrderNumber string          `json:"orderNumber"`
	LineItems   []OrderLineItem `json:"lineItems"`
	TotalPrice  decimal.Decimal `json:"totalPrice"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// NewOrder assembles an order from the requested line items: a fresh order
// number and the exact decimal total over price*quantity. An empty item list
// is legal and totals to zero. No side effects.
func NewOrder(items []OrderLineItem) Order {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return Order{
		OrderNumber: uuid.NewString(),
		LineItems:   items,
		TotalPrice:  total,
		CreatedAt:   time.Now().UTC(),
	}
}

// SkuCodes returns the distinct SKU set referenced by the order, in first-seen
// order. May be empty.
func (o Order) SkuCodes() []string {
	seen := make(map[string]struct{}, len(o.LineItems))
	codes := make([]string, 0, len(o.LineItems))
	for _, item := range o.LineItems {
		if _, ok := seen[item.SkuCode]; ok {
			continue
		}
		seen[item.SkuCode] = struct{}{}
		codes = append(codes, item.SkuCode)
	}
	return codes
}

// StockStatus is one inventory record as reported by the inventory service.
type StockStatus struct {
	SkuCode string `json:"skuCode"`
	InStock bool   `json:"inStock"`
}
