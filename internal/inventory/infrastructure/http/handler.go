package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/skuflow/skuflow/internal/inventory/application"
)

type Handler struct {
	log      *slog.Logger
	service  *application.Service
	validate *validator.Validate
	tracer   trace.Tracer
}

func NewHandler(log *slog.Logger, service *application.Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
		tracer:   otel.Tracer("inventory-http"),
	}
}

type setLevelReq struct {
	SkuCode  string `json:"skuCode" validate:"required"`
	Quantity int    `json:"quantity" validate:"gte=0"`
}

func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Get("/api/v1/inventory", h.stockStatus)
	r.Put("/api/v1/inventory", h.setLevel)
	return r
}

func (h *Handler) stockStatus(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "StockStatus")
	defer span.End()

	skuCodes := r.URL.Query()["skuCode"]
	statuses, err := h.service.Status(ctx, skuCodes)
	if err != nil {
		h.log.Error("stock status failed", "err", err)
		writeError(w, http.StatusInternalServerError, "stock status unavailable")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(statuses)
}

func (h *Handler) setLevel(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "SetLevel")
	defer span.End()

	var req setLevelReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.service.SetLevel(ctx, req.SkuCode, req.Quantity); err != nil {
		h.log.Error("set stock level failed", "err", err)
		writeError(w, http.StatusInternalServerError, "stock level could not be set")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
