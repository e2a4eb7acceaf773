package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/skuflow/skuflow/internal/order/application"
	"github.com/skuflow/skuflow/internal/order/domain"
)

type Handler struct {
	log      *slog.Logger
	service  *application.Service
	validate *validator.Validate
	tracer   trace.Tracer
}

func NewHandler(log *slog.Logger, service *application.Service) *Handler {
	v := validator.New()
	v.RegisterStructValidation(lineItemValidation, orderLineItemDto{})
	return &Handler{
		log:      log,
		service:  service,
		validate: v,
		tracer:   otel.Tracer("order-http"),
	}
}

type orderLineItemDto struct {
	SkuCode  string          `json:"skuCode" validate:"required"`
	Quantity int             `json:"quantity" validate:"gte=0"`
	Price    decimal.Decimal `json:"price"`
}

type createOrderReq struct {
	OrderLineItemDtos []orderLineItemDto `json:"orderLineItemDtos" validate:"dive"`
}

// lineItemValidation rejects negative prices; decimal fields carry no
// tag-checkable scalar, so the sign check lives here.
func lineItemValidation(sl validator.StructLevel) {
	dto := sl.Current().Interface().(orderLineItemDto)
	if dto.Price.IsNegative() {
		sl.ReportError(dto.Price, "price", "Price", "gte", "0")
	}
}

func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Post("/api/v1/order", h.createOrder)
	r.Get("/api/v1/order/{orderNumber}", h.getOrder)
	return r
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "CreateOrder")
	defer span.End()

	var req createOrderReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	items := make([]domain.OrderLineItem, 0, len(req.OrderLineItemDtos))
	for _, dto := range req.OrderLineItemDtos {
		items = append(items, domain.OrderLineItem{
			SkuCode:  dto.SkuCode,
			Quantity: dto.Quantity,
			Price:    dto.Price,
		})
	}

	orderNumber, err := h.service.PlaceOrder(ctx, items)
	if err != nil {
		if errors.Is(err, application.ErrStockRejected) {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		h.log.Error("create order failed", "err", err)
		writeError(w, http.StatusInternalServerError, "order could not be placed")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(map[string]string{"orderNumber": orderNumber})
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "GetOrder")
	defer span.End()

	o, err := h.service.Get(ctx, chi.URLParam(r, "orderNumber"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "order not found")
			return
		}
		h.log.Error("get order failed", "err", err)
		writeError(w, http.StatusInternalServerError, "order could not be read")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(o)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
