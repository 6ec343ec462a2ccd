// Package server assembles the HTTP router and listener.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/ziadkadry99/zodiac/internal/api"
	"github.com/ziadkadry99/zodiac/internal/apperr"
	"github.com/ziadkadry99/zodiac/internal/auth"
	"github.com/ziadkadry99/zodiac/internal/config"
	"github.com/ziadkadry99/zodiac/internal/db"
	"github.com/ziadkadry99/zodiac/internal/httpx"
	"github.com/ziadkadry99/zodiac/internal/logging"
	"github.com/ziadkadry99/zodiac/internal/profile"
	"github.com/ziadkadry99/zodiac/internal/ratelimit"
)

// Deps are the feature dependencies mounted on the router.
type Deps struct {
	Service *api.Service
	DB      *db.DB
	JWT     auth.JWT
}

// Server is the zodiac HTTP server.
type Server struct {
	cfg        config.Config
	deps       Deps
	logger     *zap.Logger
	limiter    *ratelimit.Limiter
	router     chi.Router
	httpServer *http.Server
}

// New creates a server with every feature route registered.
func New(cfg config.Config, deps Deps, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{cfg: cfg, deps: deps, logger: logger}
	if cfg.RateLimit.Enabled {
		s.limiter = ratelimit.New(cfg.RateLimit.Limit, cfg.RateLimit.Window)
	}
	s.router = s.buildRouter()
	return s
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(logging.Middleware(s.logger))
	r.Use(middleware.Recoverer)
	if t := s.cfg.Server.RequestTimeout; t > 0 {
		r.Use(middleware.Timeout(t))
	}

	corsOpts := cors.Options{
		AllowedOrigins:   []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Accept-Language", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Language", "Retry-After", "X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	if len(s.cfg.Server.AllowedOrigins) > 0 {
		corsOpts.AllowedOrigins = s.cfg.Server.AllowedOrigins
	}
	if s.cfg.Server.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
		corsOpts.AllowCredentials = false
	}
	r.Use(cors.Handler(corsOpts))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteError(w, http.StatusNotFound, apperr.CodeNotFound, "", "no route for "+r.URL.Path)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteError(w, http.StatusMethodNotAllowed, apperr.CodeMethodNotAllowed, "", r.Method+" not allowed on "+r.URL.Path)
	})

	r.Get("/healthz", s.handleHealth)

	r.Group(func(r chi.Router) {
		if s.limiter != nil {
			r.Use(s.limiter.Middleware)
		}
		if s.deps.Service != nil {
			api.RegisterRoutes(r, s.deps.Service)
		}
		if len(s.deps.JWT.Secret) > 0 {
			auth.RegisterRoutes(r, s.deps.JWT)
			if s.deps.DB != nil {
				profile.RegisterRoutes(r, profile.NewStore(s.deps.DB), s.deps.JWT)
			}
		}
	})

	return r
}

type healthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	resp := healthResponse{Status: "ok"}
	if s.deps.DB != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := s.deps.DB.PingContext(ctx); err != nil {
			s.logger.Warn("health check: database unreachable", zap.Error(err))
			resp.Status, resp.Database = "degraded", "unreachable"
			httpx.WriteJSON(w, http.StatusServiceUnavailable, resp)
			return
		}
		resp.Database = "ok"
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

// Router returns the chi router for registering additional routes.
func (s *Server) Router() chi.Router { return s.router }

// Start begins listening on the configured port.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Server.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      s.cfg.Server.RequestTimeout + 10*time.Second,
		IdleTimeout:       120 * time.Second,
	}

	s.logger.Info("zodiac server listening", zap.String("addr", addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
