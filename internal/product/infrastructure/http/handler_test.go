package http

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skuflow/skuflow/internal/product/application"
	"github.com/skuflow/skuflow/internal/product/domain"
)

type memoryRepo struct {
	products []domain.Product
}

func (m *memoryRepo) Create(ctx context.Context, p domain.Product) error {
	m.products = append(m.products, p)
	return nil
}

func (m *memoryRepo) List(ctx context.Context) ([]domain.Product, error) {
	return m.products, nil
}

func setup(t *testing.T) nethttp.Handler {
	t.Helper()
	log := slog.New(slog.DiscardHandler)
	svc := application.NewService(log, &memoryRepo{})
	return NewHandler(log, svc).Routes()
}

func TestCreateThenList(t *testing.T) {
	h := setup(t)

	names := []string{"keyboard", "mouse", "monitor"}
	for i, name := range names {
		body := fmt.Sprintf(`{"name":%q,"description":"desc %d","price":%d.50}`, name, i, i+10)
		req := httptest.NewRequest(nethttp.MethodPost, "/api/v1/product", strings.NewReader(body))
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		require.Equal(t, nethttp.StatusCreated, rec.Code, rec.Body.String())
	}

	req := httptest.NewRequest(nethttp.MethodGet, "/api/v1/product", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, nethttp.StatusOK, rec.Code)

	var products []domain.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &products))
	require.Len(t, products, 3)
	for i, name := range names {
		assert.Equal(t, name, products[i].Name)
		assert.Equal(t, fmt.Sprintf("desc %d", i), products[i].Description)
		want := decimal.RequireFromString(fmt.Sprintf("%d.50", i+10))
		assert.True(t, products[i].Price.Equal(want), "expected %s, got %s", want, products[i].Price)
		assert.NotEmpty(t, products[i].ID)
	}
}

func TestList_EmptyIsArray(t *testing.T) {
	h := setup(t)

	req := httptest.NewRequest(nethttp.MethodGet, "/api/v1/product", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, nethttp.StatusOK, rec.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
}

func TestCreate_Validation(t *testing.T) {
	h := setup(t)

	cases := map[string]string{
		"missing name":   `{"description":"x","price":1.00}`,
		"negative price": `{"name":"x","price":-1.00}`,
		"garbage body":   `{"name":`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(nethttp.MethodPost, "/api/v1/product", strings.NewReader(body))
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			assert.Equal(t, nethttp.StatusBadRequest, rec.Code)
		})
	}
}
