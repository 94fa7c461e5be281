// Package server provides the HTTP REST API for career matching, market
// insights, roadmap generation, and user persistence.
package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/careersight/careersight/internal/db"
	"github.com/careersight/careersight/internal/llm"
	"github.com/careersight/careersight/internal/logger"
	"github.com/careersight/careersight/internal/roadmap"
	"github.com/careersight/careersight/internal/server/ratelimit"
	"github.com/careersight/careersight/internal/skills"
)

// Server represents the HTTP server
type Server struct {
	httpServer  *http.Server
	store       *Store
	db          *db.DB // nil in degraded mode
	generator   *roadmap.Generator
	rateLimiter *ratelimit.Limiter
	validate    *validator.Validate
	llmClient   llm.Client

	roadmapWeeks int // default plan duration when a request leaves weeks unset
}

// Config holds server configuration
type Config struct {
	Port         int
	DatabaseURL  string
	APIKey       string
	RoadmapWeeks int

	// Vocabulary overrides the built-in skill taxonomy used for corpus
	// enrichment. Nil selects the default.
	Vocabulary skills.Vocabulary
}

// New creates a new server instance. Without a DatabaseURL the server runs in
// degraded mode: matching and roadmap endpoints work, persistence endpoints
// return 503. Without an APIKey roadmaps come from the deterministic fallback.
func New(ctx context.Context, cfg Config) (*Server, error) {
	s := &Server{
		store:        NewStore(cfg.Vocabulary),
		validate:     validator.New(),
		roadmapWeeks: cfg.RoadmapWeeks,
	}

	if cfg.DatabaseURL != "" {
		database, err := db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		s.db = database
	} else {
		logger.Warn().Msg("no database configured, persistence endpoints disabled")
	}

	if cfg.APIKey != "" {
		client, err := llm.NewClient(ctx, llm.DefaultConfig(), cfg.APIKey)
		if err != nil {
			return nil, fmt.Errorf("failed to create model client: %w", err)
		}
		s.llmClient = client
	} else {
		logger.Warn().Msg("no API key configured, roadmaps use the static fallback")
	}
	s.generator = roadmap.NewGenerator(s.llmClient)

	s.rateLimiter = ratelimit.NewLimiter(ratelimit.LoadConfig())

	mux := http.NewServeMux()

	// Matching pipeline endpoints
	mux.HandleFunc("POST /recommend", s.handleRecommend)
	mux.HandleFunc("GET /insights", s.handleInsights)
	mux.HandleFunc("GET /insights/summary", s.handleInsightsSummary)
	mux.HandleFunc("GET /insights/trending", s.handleTrendingSkills)
	mux.HandleFunc("POST /roadmap", s.handleRoadmap)
	mux.HandleFunc("POST /advice", s.handleAdvice)
	mux.HandleFunc("POST /advice/salary", s.handleSalaryAdvice)
	mux.HandleFunc("GET /health", s.handleHealth)

	// Posting corpus endpoints
	mux.HandleFunc("POST /postings", s.handleIngestPostings)
	mux.HandleFunc("GET /postings", s.handleListPostings)
	mux.HandleFunc("GET /postings/{id}/similar", s.handleSimilarPostings)

	// User profile endpoints
	mux.HandleFunc("GET /users/{id}/profile", s.handleGetProfile)
	mux.HandleFunc("PUT /users/{id}/profile", s.handlePutProfile)
	mux.HandleFunc("DELETE /users/{id}/profile", s.handleDeleteProfile)

	// Application endpoints
	mux.HandleFunc("GET /users/{id}/applications", s.handleListApplications)
	mux.HandleFunc("POST /users/{id}/applications", s.handleCreateApplication)
	mux.HandleFunc("PUT /applications/{id}", s.handleUpdateApplication)
	mux.HandleFunc("DELETE /applications/{id}", s.handleDeleteApplication)

	// Saved search endpoints
	mux.HandleFunc("GET /users/{id}/searches", s.handleListSavedSearches)
	mux.HandleFunc("POST /users/{id}/searches", s.handleCreateSavedSearch)
	mux.HandleFunc("DELETE /searches/{id}", s.handleDeleteSavedSearch)

	// Notification preference endpoints
	mux.HandleFunc("GET /users/{id}/preferences", s.handleGetPreferences)
	mux.HandleFunc("PUT /users/{id}/preferences", s.handlePutPreferences)
	mux.HandleFunc("DELETE /users/{id}/preferences", s.handleDeletePreferences)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withRateLimit(s.withLogging(s.withCORS(mux))),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// Store exposes the posting store so callers can seed it before Start.
func (s *Server) Store() *Store {
	return s.store
}

// Handler returns the configured HTTP handler, for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start begins listening for requests and blocks until SIGINT/SIGTERM.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info().Str("addr", s.httpServer.Addr).Msg("server starting")
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error().Err(err).Msg("server error")
			os.Exit(1)
		}
	}()

	<-stop
	logger.Info().Msg("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}
	if s.llmClient != nil {
		_ = s.llmClient.Close()
	}
	if s.db != nil {
		s.db.Close()
	}

	logger.Info().Msg("server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withRateLimit enforces per-client token bucket limits
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID := extractClientID(r)

		allowed, info := s.rateLimiter.Allow(clientID, r.URL.Path, r.Method)
		setRateLimitHeaders(w, info)

		if !allowed {
			if info.RetryAfter > 0 {
				w.Header().Set("Retry-After", fmt.Sprintf("%d", int(info.RetryAfter.Seconds())+1))
			}
			respondError(w, http.StatusTooManyRequests, "rate limit exceeded")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		logger.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Str("remote", r.RemoteAddr).
			Dur("duration", time.Since(start)).
			Msg("request")
	})
}

// extractClientID identifies the client by IP, preferring proxy headers.
func extractClientID(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		if idx := strings.Index(fwd, ","); idx > 0 {
			return strings.TrimSpace(fwd[:idx])
		}
		return strings.TrimSpace(fwd)
	}
	if real := r.Header.Get("X-Real-IP"); real != "" {
		return real
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit <= 0 {
		return
	}
	w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", info.Limit))
	w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", info.Remaining))
	w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", info.ResetTime.Unix()))
}
