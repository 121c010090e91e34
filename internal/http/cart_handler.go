package httpapi

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Ezinne-Elele/qucoon-shopokoa-backend-mobile/internal/cart"
)

type CartHandler struct {
	repo   cart.Repository
	logger *log.Logger
}

func NewCartHandler(repo cart.Repository, logger *log.Logger) *CartHandler {
	return &CartHandler{repo: repo, logger: logger}
}

// Add inserts a new cart row unconditionally. Matching rows are not merged and
// stock is not checked.
func (h *CartHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req cart.AddRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	item := req.NewItem(time.Now().UTC())
	if err := h.repo.Add(ctx, item); err != nil {
		h.logger.Printf("add cart item: %v", err)
		writeError(w, http.StatusServiceUnavailable, "database not available")
		return
	}

	writeJSON(w, http.StatusCreated, item)
}

func (h *CartHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")
	if userID == "" {
		writeError(w, http.StatusBadRequest, "missing userId")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	items, err := h.repo.ListByUser(ctx, userID)
	if err != nil {
		h.logger.Printf("list cart for %s: %v", userID, err)
		writeError(w, http.StatusServiceUnavailable, "failed to load cart")
		return
	}
	if items == nil {
		items = []cart.Item{}
	}

	writeJSON(w, http.StatusOK, items)
}
