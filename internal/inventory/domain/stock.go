package domain

import "time"

// StockLevel is the quantity on hand for one SKU.
type StockLevel struct {
	SkuCode   string    `json:"skuCode"`
	Quantity  int       `json:"quantity"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// StockStatus is the per-SKU answer served to callers. A SKU is in stock when
// its quantity is positive; unknown SKUs report false.
type StockStatus struct {
	SkuCode string `json:"skuCode"`
	InStock bool   `json:"inStock"`
}
