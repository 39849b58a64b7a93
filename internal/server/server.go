// Package server assembles services, handlers and middleware into the HTTP API.
package server

import (
	"log/slog"
	"net/http"
	"strings"

	"analysisdesk/internal/auth"
	"analysisdesk/internal/config"
	analysisSvc "analysisdesk/internal/domain/services/analysis"
	"analysisdesk/internal/handler"
	"analysisdesk/internal/middleware"
	"analysisdesk/internal/repository"
	serviceAnalysis "analysisdesk/internal/service/analysis"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
)

// Paths reachable without a bearer token
var publicPaths = []string{"/health", "/metrics"}

// Services groups the analysis services built over one store
type Services struct {
	Projects     analysisSvc.ProjectService
	Stakeholders analysisSvc.StakeholderService
	Processes    analysisSvc.ProcessService
}

// NewServices wires the analysis services to the store's repositories
func NewServices(store *repository.Store, logger *slog.Logger) *Services {
	validator := serviceAnalysis.NewResourceValidator(store.Projects, store.Processes, store.Subprocesses)

	return &Services{
		Projects:     serviceAnalysis.NewProjectService(store.Projects, store.Stakeholders, store.Processes, store.Subprocesses, store.Tx, logger),
		Stakeholders: serviceAnalysis.NewStakeholderService(store.Stakeholders, validator, logger),
		Processes:    serviceAnalysis.NewProcessService(store.Processes, store.Subprocesses, store.Stakeholders, validator, store.Tx, logger),
	}
}

// NewHandler builds the full middleware chain around the API router.
// verifier may be nil, in which case requests are not authenticated.
func NewHandler(cfg *config.Config, store *repository.Store, verifier auth.JWTVerifier, logger *slog.Logger) http.Handler {
	svc := NewServices(store, logger)

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux, &handler.Handlers{
		Health:      handler.NewHealthHandler(store.Admin, logger),
		Project:     handler.NewProjectHandler(svc.Projects, logger),
		Stakeholder: handler.NewStakeholderHandler(svc.Stakeholders, logger),
		Process:     handler.NewProcessHandler(svc.Processes, logger),
	})
	if cfg.MetricsEnabled {
		mux.Handle("GET /metrics", promhttp.Handler())
	}

	// Order: CORS → RequestID → Recovery → Auth → Metrics → Routes
	middlewares := []func(http.Handler) http.Handler{
		corsMiddleware(cfg),
		middleware.RequestID,
		middleware.Recovery(logger),
	}
	if verifier != nil {
		middlewares = append(middlewares, middleware.Auth(verifier, logger, publicPaths...))
	}
	if cfg.MetricsEnabled {
		middlewares = append(middlewares, middleware.Metrics)
	}

	return middleware.Chain(mux, middlewares...)
}

// corsMiddleware must run before auth so that pre-flight requests succeed
func corsMiddleware(cfg *config.Config) func(http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins:   strings.Split(cfg.CORSOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
	})
	return c.Handler
}
