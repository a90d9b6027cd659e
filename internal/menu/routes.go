package menu

import "github.com/go-chi/chi/v5"

// RegisterRoutes registra rutas del menú en el router.
func RegisterRoutes(route chi.Router, handler *Handler) {
	route.Route("/menu", func(route chi.Router) {
		route.Get("/courses", handler.Courses)
		route.Post("/items", handler.Create)
		route.Get("/items", handler.List)
		route.Get("/statistics", handler.Statistics)
	})
}
