package inventory

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skuflow/skuflow/internal/order/domain"
)

func discard() *slog.Logger { return slog.New(slog.DiscardHandler) }

func TestCheckStock(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/inventory", r.URL.Path)
		assert.Equal(t, []string{"A1", "B2"}, r.URL.Query()["skuCode"])
		_ = json.NewEncoder(w).Encode([]domain.StockStatus{
			{SkuCode: "A1", InStock: true},
			{SkuCode: "B2", InStock: false},
		})
	}))
	defer srv.Close()

	c := NewClient(discard(), srv.URL, time.Second)
	statuses, err := c.CheckStock(context.Background(), []string{"A1", "B2"})
	require.NoError(t, err)
	assert.Equal(t, []domain.StockStatus{
		{SkuCode: "A1", InStock: true},
		{SkuCode: "B2", InStock: false},
	}, statuses)
}

func TestCheckStock_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	c := NewClient(discard(), srv.URL, time.Second)
	_, err := c.CheckStock(context.Background(), []string{"A1"})
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestCheckStock_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(discard(), srv.URL, time.Second)
	_, err := c.CheckStock(context.Background(), []string{"A1"})
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestCheckStock_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"not":"an array"`))
	}))
	defer srv.Close()

	c := NewClient(discard(), srv.URL, time.Second)
	_, err := c.CheckStock(context.Background(), []string{"A1"})
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestCheckStock_EmptyAnswerForNonEmptyQuestion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := NewClient(discard(), srv.URL, time.Second)
	_, err := c.CheckStock(context.Background(), []string{"A1"})
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestCheckStock_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	c := NewClient(discard(), srv.URL, 10*time.Millisecond)
	_, err := c.CheckStock(context.Background(), []string{"A1"})
	assert.ErrorIs(t, err, ErrUnavailable)
}
