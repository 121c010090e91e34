package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Ezinne-Elele/qucoon-shopokoa-backend-mobile/internal/order"
	"github.com/Ezinne-Elele/qucoon-shopokoa-backend-mobile/internal/product"
)

type OrderHandler struct {
	svc    *order.Service
	repo   order.Repository
	logger *log.Logger
}

func NewOrderHandler(svc *order.Service, repo order.Repository, logger *log.Logger) *OrderHandler {
	return &OrderHandler{svc: svc, repo: repo, logger: logger}
}

func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req order.CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	o, err := h.svc.Place(ctx, req)
	if err != nil {
		var ise *order.InsufficientStockError
		switch {
		case errors.Is(err, product.ErrNotFound):
			writeError(w, http.StatusNotFound, err.Error())
		case errors.As(err, &ise):
			writeError(w, http.StatusConflict, ise.Error())
		default:
			h.logger.Printf("place order: %v", err)
			writeError(w, http.StatusServiceUnavailable, "failed to place order")
		}
		return
	}

	writeJSON(w, http.StatusCreated, o)
}

func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	var limit int64
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = n
	}

	status := order.Status(r.URL.Query().Get("status"))
	if status != "" && !status.Valid() {
		writeError(w, http.StatusBadRequest, "invalid status")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	orders, err := h.repo.List(ctx, limit, status)
	if err != nil {
		h.logger.Printf("list orders: %v", err)
		writeError(w, http.StatusServiceUnavailable, "failed to load orders")
		return
	}
	if orders == nil {
		orders = []order.Order{}
	}

	writeJSON(w, http.StatusOK, orders)
}

func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderId")

	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	o, err := h.repo.Get(ctx, orderID)
	if err != nil {
		if errors.Is(err, order.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Order not found")
			return
		}
		h.logger.Printf("get order %s: %v", orderID, err)
		writeError(w, http.StatusServiceUnavailable, "failed to load order")
		return
	}

	writeJSON(w, http.StatusOK, o)
}

func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderId")

	var body struct {
		Status order.Status `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if !body.Status.Valid() {
		writeError(w, http.StatusBadRequest, "invalid status")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	o, err := h.repo.UpdateStatus(ctx, orderID, body.Status)
	if err != nil {
		if errors.Is(err, order.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Order not found")
			return
		}
		h.logger.Printf("update order %s status: %v", orderID, err)
		writeError(w, http.StatusServiceUnavailable, "failed to update order")
		return
	}

	writeJSON(w, http.StatusOK, o)
}

func (h *OrderHandler) Stats(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	stats, err := h.repo.Stats(ctx)
	if err != nil {
		h.logger.Printf("order stats: %v", err)
		writeError(w, http.StatusServiceUnavailable, "failed to load stats")
		return
	}

	writeJSON(w, http.StatusOK, stats)
}
