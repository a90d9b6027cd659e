package docs

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes monta Swagger UI en /docs/ y el documento OpenAPI del menú en /docs/openapi.yaml.
func RegisterRoutes(r chi.Router) {
	r.Get("/docs", func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, "/docs/", http.StatusMovedPermanently)
	})

	r.Route("/docs", func(r chi.Router) {
		r.Get("/", SwaggerUIHandler())
		r.Get("/openapi.yaml", OpenAPIHandler())
	})
}
