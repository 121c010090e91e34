package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Ezinne-Elele/qucoon-shopokoa-backend-mobile/internal/product"
)

type ProductHandler struct {
	repo   product.Repository
	logger *log.Logger
}

func NewProductHandler(repo product.Repository, logger *log.Logger) *ProductHandler {
	return &ProductHandler{repo: repo, logger: logger}
}

// List serves the catalog. An unreachable store and an empty store both yield
// the fallback catalog; clients cannot tell the two apart (the health endpoint
// reports the degraded state instead).
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	products, err := h.repo.List(ctx, category)
	if err != nil {
		h.logger.Printf("list products: %v (serving fallback)", err)
		products = nil
	}
	if len(products) == 0 {
		products = product.Fallback()
	}

	writeJSON(w, http.StatusOK, products)
}

func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "productId")

	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	p, err := h.repo.Get(ctx, id)
	if err != nil {
		if !errors.Is(err, product.ErrNotFound) {
			h.logger.Printf("get product %s: %v (checking fallback)", id, err)
		}
		if fb := product.FallbackByID(id); fb != nil {
			writeJSON(w, http.StatusOK, fb)
			return
		}
		writeError(w, http.StatusNotFound, "Product not found")
		return
	}

	writeJSON(w, http.StatusOK, p)
}

func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req product.CreateRequest
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

	p := req.NewProduct(time.Now().UTC())
	if err := h.repo.Create(ctx, p); err != nil {
		h.logger.Printf("create product: %v", err)
		writeError(w, http.StatusServiceUnavailable, "database not available")
		return
	}

	writeJSON(w, http.StatusCreated, p)
}

func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "productId")

	var req product.UpdateRequest
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

	p, err := h.repo.Update(ctx, id, req)
	if err != nil {
		if errors.Is(err, product.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Product not found")
			return
		}
		h.logger.Printf("update product %s: %v", id, err)
		writeError(w, http.StatusServiceUnavailable, "database not available")
		return
	}

	writeJSON(w, http.StatusOK, p)
}

func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "productId")

	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	if err := h.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, product.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Product not found")
			return
		}
		h.logger.Printf("delete product %s: %v", id, err)
		writeError(w, http.StatusServiceUnavailable, "database not available")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Product deleted successfully"})
}
