/*
server.go - HTTP router and middleware configuration

PURPOSE:
  Configures the HTTP router (chi), middleware stack, and route definitions.
  This is the wiring layer that connects URLs to handlers.

MIDDLEWARE STACK:
  1. Logger:     Request logging
  2. Recoverer:  Panic recovery (500 instead of crash)
  3. RequestID:  Unique ID per request, echoed in zap error logs
  4. CORS:       Cross-origin requests for a browser frontend

ROUTE GROUPS:
  /api/health, /api/analyze, /api/compatibility   Engine
  /api/constitutions/*                            Catalog
  /api/profiles/*, /api/roster                    Saved profiles
  /api/samples/*                                  Demo rosters
  /                                               Endpoint index

SEE ALSO:
  - handlers.go: Handler implementations
  - cmd/server/main.go: Server startup
*/
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// DefaultAllowedOrigins is used when no origins are configured.
var DefaultAllowedOrigins = []string{"http://localhost:5173", "http://localhost:8080"}

// NewRouter creates a new router with all routes configured.
func NewRouter(h *Handler, allowedOrigins []string) *chi.Mux {
	if len(allowedOrigins) == 0 {
		allowedOrigins = DefaultAllowedOrigins
	}

	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-Id"},
		AllowCredentials: false,
	}))

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Get("/health", h.Health)
		r.Post("/analyze", h.Analyze)
		r.Post("/compatibility", h.Compatibility)

		r.Route("/constitutions", func(r chi.Router) {
			r.Get("/", h.ListConstitutions)
			r.Get("/{type}", h.GetConstitution)
		})

		r.Route("/profiles", func(r chi.Router) {
			r.Get("/", h.ListProfiles)
			r.Post("/", h.CreateProfile)
			r.Get("/stats", h.ProfileStats)
			r.Get("/{id}", h.GetProfile)
			r.Get("/{id}/analysis", h.GetProfileAnalysis)
			r.Delete("/{id}", h.DeleteProfile)
		})

		r.Post("/roster", h.ImportRoster)

		r.Route("/samples", func(r chi.Router) {
			r.Get("/", h.ListSamples)
			r.Get("/current", h.GetCurrentSample)
			r.Post("/load", h.LoadSample)
			r.Post("/reset", h.ResetDatabase)
		})
	})

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(`<!DOCTYPE html>
<html>
<head><title>Saju Engine</title></head>
<body style="font-family: system-ui; max-width: 800px; margin: 50px auto; padding: 20px;">
<h1>Saju Engine API</h1>
<h2>API Endpoints</h2>
<ul>
<li><a href="/api/health">/api/health</a> - Liveness</li>
<li>POST /api/analyze - Four pillars, balance, health profile</li>
<li>POST /api/compatibility - Pair score</li>
<li><a href="/api/constitutions">/api/constitutions</a> - Constitution catalog</li>
<li><a href="/api/profiles">/api/profiles</a> - Saved profiles</li>
<li><a href="/api/samples">/api/samples</a> - Demo rosters</li>
</ul>
</body>
</html>`))
	})

	return r
}
