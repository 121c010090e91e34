package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/Ezinne-Elele/qucoon-shopokoa-backend-mobile/internal/product"
)

const (
	serviceName    = "mobile-api"
	serviceVersion = "2.0.0"
)

// Pinger reports store reachability for the health endpoint.
type Pinger interface {
	Ping(ctx context.Context) error
}

type MetaHandler struct {
	db Pinger
}

func NewMetaHandler(db Pinger) *MetaHandler {
	return &MetaHandler{db: db}
}

// Health reports liveness plus whether the store is reachable. The service
// stays up either way; "degraded" means reads are being served from fallback
// data.
func (h *MetaHandler) Health(w http.ResponseWriter, r *http.Request) {
	database := "degraded"
	if h.db != nil && h.db.Ping(r.Context()) == nil {
		database = "connected"
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "healthy",
		"service":   serviceName,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"database":  database,
	})
}

func (h *MetaHandler) Version(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"service": serviceName,
		"version": serviceVersion,
	})
}

// Featured serves the static featured list.
func (h *MetaHandler) Featured(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, product.Fallback())
}
