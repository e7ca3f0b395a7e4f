// Package server provides the HTTP API and job detail pages for the board.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/accessibilityjobs/jobboard/internal/db"
	"github.com/accessibilityjobs/jobboard/internal/geo"
	"github.com/accessibilityjobs/jobboard/internal/jobs"
	"github.com/accessibilityjobs/jobboard/internal/server/ratelimit"
)

// Store is the job persistence surface the handlers depend on.
type Store interface {
	CreateJob(ctx context.Context, sub *jobs.JobSubmission, idemKey uuid.UUID) (*db.JobRecord, error)
	GetJobByIDAndStatus(ctx context.Context, id uuid.UUID, status string) (*db.JobRecord, error)
	ListJobs(ctx context.Context, opts db.ListJobsOptions) ([]db.JobRecord, int, error)
	UpdateJobStatus(ctx context.Context, id uuid.UUID, status string) error
}

// Server represents the HTTP server
type Server struct {
	httpServer  *http.Server
	store       Store
	database    *db.DB
	logger      zerolog.Logger
	rateLimiter *ratelimit.Limiter
	ipResolver  *geo.IPResolver
}

// Config holds server configuration
type Config struct {
	Port        int
	DatabaseURL string
	GeoIPDBPath string
}

// New creates a new server instance
func New(ctx context.Context, cfg Config, logger zerolog.Logger) (*Server, error) {
	database, err := db.Connect(ctx, cfg.DatabaseURL, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := database.EnsureSchema(ctx); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to ensure schema: %w", err)
	}

	s := &Server{
		store:    database,
		database: database,
		logger:   logger,
	}

	// Country defaulting on submissions is optional; run without it when no
	// database file is configured or it fails to open.
	s.ipResolver, err = geo.NewIPResolver(cfg.GeoIPDBPath)
	if err != nil {
		logger.Warn().Err(err).Str("path", cfg.GeoIPDBPath).Msg("geoip database unavailable, submissions will not be geo-defaulted")
	}

	s.rateLimiter = ratelimit.NewLimiter(ratelimit.LoadConfig())

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withRateLimit(s.withLogging(s.withCORS(s.routes()))),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/jobs/submit", s.handleSubmitJob)
	mux.HandleFunc("GET /api/jobs", s.handleListJobs)
	mux.HandleFunc("GET /api/jobs/{id}", s.handleGetJob)

	mux.HandleFunc("GET /jobs/{id}", s.handleJobDetail)

	mux.HandleFunc("GET /health", s.handleHealth)

	return mux
}

// Start begins listening for requests
func (s *Server) Start() error {
	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		s.logger.Info().Str("addr", s.httpServer.Addr).Msg("server starting")
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.Fatal().Err(err).Msg("server error")
		}
	}()

	<-stop
	s.logger.Info().Msg("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}
	if s.ipResolver != nil {
		_ = s.ipResolver.Close()
	}
	s.database.Close()

	s.logger.Info().Msg("server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withRateLimit adds rate limiting middleware
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID := s.extractClientID(r)

		allowed, info := s.rateLimiter.Allow(clientID, r.URL.Path, r.Method)

		if !allowed {
			s.setRateLimitHeaders(w, info)
			s.rateLimitResponse(w, info)
			return
		}

		s.setRateLimitHeaders(w, info)
		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Str("remote", r.RemoteAddr).
			Dur("duration", time.Since(start)).
			Msg("request")
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error().Err(err).Msg("error encoding JSON response")
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// extractClientID extracts the client identifier from the request.
// Uses the IP address from RemoteAddr; X-Forwarded-For is not trusted.
func (s *Server) extractClientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// setRateLimitHeaders sets standard rate limit headers on the response.
func (s *Server) setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit > 0 {
		w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", info.Limit))
		w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", info.Remaining))
		w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", info.ResetTime.Unix()))
	}
}

// rateLimitResponse writes a 429 Too Many Requests response with rate limit information.
func (s *Server) rateLimitResponse(w http.ResponseWriter, info ratelimit.Info) {
	response := map[string]interface{}{
		"error":     "rate_limit_exceeded",
		"message":   "Rate limit exceeded. Please try again later.",
		"limit":     info.Limit,
		"remaining": info.Remaining,
		"reset_at":  info.ResetTime.Format(time.RFC3339),
	}

	if info.RetryAfter > 0 {
		response["retry_after"] = int(info.RetryAfter.Seconds())
		w.Header().Set("Retry-After", fmt.Sprintf("%d", int(info.RetryAfter.Seconds())))
	}

	s.logger.Warn().
		Int("limit", info.Limit).
		Int("remaining", info.Remaining).
		Time("reset", info.ResetTime).
		Msg("rate limit exceeded")

	s.jsonResponse(w, http.StatusTooManyRequests, response)
}
