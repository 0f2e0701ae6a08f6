package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/curricuforge/internal/api"
	apiMiddleware "github.com/phrazzld/curricuforge/internal/api/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// setupRouter creates and configures the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)
	r.Use(apiMiddleware.MetricsMiddleware)

	curriculumHandler := api.NewCurriculumHandler(app.curricula, app.pages, app.logger)

	// HTML form endpoints
	r.Get("/", curriculumHandler.ShowForm)
	r.Post("/", curriculumHandler.GenerateForm)
	r.Post("/generate", curriculumHandler.GenerateForm)

	// JSON API
	r.Route("/api", func(r chi.Router) {
		r.Post("/curricula", curriculumHandler.GenerateJSON)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	r.Handle("/metrics", promhttp.Handler())

	return r
}
