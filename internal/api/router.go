package api

import (
	"net/http"

	"contact-map-service/internal/api/handlers"
	"contact-map-service/internal/ports"
	"contact-map-service/internal/services"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(
	repo ports.ContactRepository,
	geocodeSvc *services.GeocodeService,
	routeSvc *services.RouteService,
	exporter ports.Exporter,
) http.Handler {
	mux := http.NewServeMux()

	contactHandler := &handlers.ContactHandler{Repo: repo}
	geocodeHandler := &handlers.GeocodeHandler{Service: geocodeSvc}
	routeHandler := &handlers.RouteHandler{Service: routeSvc}
	exportHandler := &handlers.ExportHandler{Repo: repo, Exporter: exporter}

	mux.HandleFunc("GET /health", handlers.Health)

	mux.HandleFunc("GET /contacts", contactHandler.List)
	mux.HandleFunc("POST /contacts", contactHandler.Create)
	mux.HandleFunc("PUT /contacts/{id}", contactHandler.Update)
	mux.HandleFunc("DELETE /contacts/{id}", contactHandler.Delete)

	mux.HandleFunc("POST /contacts/{id}/geocode", geocodeHandler.Geocode)
	mux.HandleFunc("GET /contacts/export", exportHandler.Export)

	mux.HandleFunc("POST /routes", routeHandler.Create)

	return loggingMiddleware(mux)
}
