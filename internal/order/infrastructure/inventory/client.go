package inventory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/skuflow/skuflow/internal/order/domain"
)

// ErrUnavailable means the inventory endpoint could not be reached or did not
// produce a usable answer. The admission workflow fail-closes on it.
var ErrUnavailable = errors.New("inventory unavailable")

// Client queries the inventory service over HTTP:
// GET <baseURL>/api/v1/inventory?skuCode=A&skuCode=B -> [{"skuCode","inStock"}].
type Client struct {
	log     *slog.Logger
	baseURL string
	httpc   *http.Client
	tracer  trace.Tracer
}

func NewClient(log *slog.Logger, baseURL string, timeout time.Duration) *Client {
	return &Client{
		log:     log,
		baseURL: baseURL,
		httpc:   &http.Client{Timeout: timeout},
		tracer:  otel.Tracer("inventory-client"),
	}
}

func (c *Client) CheckStock(ctx context.Context, skuCodes []string) ([]domain.StockStatus, error) {
	ctx, span := c.tracer.Start(ctx, "CheckStock")
	defer span.End()

	q := url.Values{}
	for _, code := range skuCodes {
		q.Add("skuCode", code)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/v1/inventory?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %w", ErrUnavailable, err)
	}
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}

	var statuses []domain.StockStatus
	if err := json.NewDecoder(resp.Body).Decode(&statuses); err != nil {
		return nil, fmt.Errorf("%w: decode response: %w", ErrUnavailable, err)
	}
	if len(statuses) == 0 && len(skuCodes) > 0 {
		// An empty answer for a non-empty question is as useless as no answer.
		return nil, fmt.Errorf("%w: empty response for %d sku(s)", ErrUnavailable, len(skuCodes))
	}
	return statuses, nil
}
