// Package api provides the local HTTP server for bottled. It exposes the
// bottle store and the gamification state as JSON for a web UI.
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/bottled-app/bottled/internal/app/bottle"
	"github.com/bottled-app/bottled/internal/app/gamification"
	"github.com/bottled-app/bottled/internal/health"
)

// Server is the bottled HTTP API server.
type Server struct {
	bottles        *bottle.Service
	engine         *gamification.Engine
	health         *health.Checker
	metricsEnabled bool
	corsOrigins    []string
}

// NewServer creates a new API server.
func NewServer(bottles *bottle.Service, engine *gamification.Engine) *Server {
	return &Server{bottles: bottles, engine: engine}
}

// EnableMetrics enables the /metrics Prometheus endpoint.
func (s *Server) EnableMetrics() { s.metricsEnabled = true }

// SetHealth sets the health checker backing /health.
func (s *Server) SetHealth(h *health.Checker) { s.health = h }

// SetCORSOrigins restricts which Origins get CORS headers. The default
// is "*" (any origin).
func (s *Server) SetCORSOrigins(origins []string) { s.corsOrigins = origins }

// Handler returns the chi router with all routes mounted.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(time.Minute))
	r.Use(s.cors)

	r.Get("/health", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Route("/bottles", func(r chi.Router) {
			r.Get("/", s.handleListBottles)
			r.Post("/", s.handleCreateBottle)
			r.Get("/{id}", s.handleGetBottle)
			r.Delete("/{id}", s.handleDeleteBottle)
			r.Post("/{id}/open", s.handleOpenBottle)
			r.Post("/{id}/unlock", s.handleUnlockBottle)
		})
		r.Get("/stats", s.handleStats)
		r.Get("/achievements", s.handleAchievements)
		r.Get("/streak", s.handleStreak)
	})

	// Prometheus metrics endpoint
	if s.metricsEnabled {
		r.Handle("/metrics", promhttp.Handler())
	}

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if s.health == nil {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		return
	}
	status := http.StatusOK
	if !s.health.IsHealthy() {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, map[string]any{
		"healthy": s.health.IsHealthy(),
		"checks":  s.health.Statuses(),
	})
}

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]interface{}{
		"error": map[string]interface{}{
			"message": msg,
			"type":    "error",
		},
	})
}

// cors adds CORS headers for the local web UI, limited to the configured
// origins.
func (s *Server) cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if allow := s.allowOrigin(r.Header.Get("Origin")); allow != "" {
			w.Header().Set("Access-Control-Allow-Origin", allow)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		}
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// allowOrigin resolves the Allow-Origin header value for a request
// Origin, or "" when the origin is not allowed.
func (s *Server) allowOrigin(origin string) string {
	origins := s.corsOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	for _, o := range origins {
		if o == "*" {
			return "*"
		}
		if o == origin {
			return origin
		}
	}
	return ""
}
