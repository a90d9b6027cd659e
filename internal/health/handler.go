package health

import (
	"net/http"
	"time"

	"github.com/Lelo88/menu-api-golang/internal/httpx"
)

// Catalog es lo mínimo que health necesita del catálogo de menú.
type Catalog interface {
	Len() int
}

// Handler encapsula endpoints de health.
type Handler struct {
	catalog Catalog
}

// New crea un handler de health. catalog puede ser nil (el servicio no está listo).
func New(catalog Catalog) *Handler {
	return &Handler{catalog: catalog}
}

// Health indica si el proceso está vivo.
func (handler *Handler) Health(w http.ResponseWriter, r *http.Request) {
	httpx.OK(w, r, http.StatusOK, map[string]any{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

// Ready indica si el catálogo está cableado y puede atender requests.
func (handler *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if handler.catalog == nil {
		httpx.Fail(w, r, http.StatusServiceUnavailable, "not_ready", "menu catalog not configured")
		return
	}

	httpx.OK(w, r, http.StatusOK, map[string]any{
		"status": "ready",
		"items":  handler.catalog.Len(),
	})
}
