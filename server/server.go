package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/proposalfast/proposalfast/pkg/domain"
	"github.com/proposalfast/proposalfast/pkg/pipeline"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/database.go -pkg mocks -skip-ensure -fmt goimports . Database
//go:generate moq -out mocks/generator.go -pkg mocks -skip-ensure -fmt goimports . Generator

// Server represents HTTP server instance
type Server struct {
	config    ConfigProvider
	db        Database
	generator Generator
	auth      *authenticator
	hooksPriv bool // webhooks may target private networks
	version   string
	debug     bool

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// Database interface for drafts, client memory and webhooks
type Database interface {
	ListDrafts(ctx context.Context, userID string, limit int) ([]*domain.Draft, error)
	GetDraft(ctx context.Context, userID, id string) (*domain.Draft, error)
	ListPreferences(ctx context.Context, userID string) ([]*domain.ClientPreference, error)
	DeletePreference(ctx context.Context, userID, clientName string) error
	CreateWebhook(ctx context.Context, hook *domain.Webhook) error
	ListWebhooks(ctx context.Context, userID string, enabledOnly bool) ([]*domain.Webhook, error)
	DeleteWebhook(ctx context.Context, userID string, id int64) error
}

// Generator runs contract generation requests
type Generator interface {
	Generate(ctx context.Context, userID string, req domain.GenerateRequest) (*domain.GenerateResult, error)
	Stats() pipeline.Stats
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
	GetAuthConfig() (jwtSecret, issuer string)
	AllowPrivateWebhooks() bool
}

// New initializes a new server instance
func New(cfg ConfigProvider, db Database, generator Generator, version string, debug bool) *Server {
	secret, issuer := cfg.GetAuthConfig()
	s := &Server{
		config:    cfg,
		db:        db,
		generator: generator,
		auth:      newAuthenticator(secret, issuer),
		hooksPriv: cfg.AllowPrivateWebhooks(),
		version:   version,
		debug:     debug,
		router:    routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	lgr.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:              listen,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       timeout,
		WriteTimeout:      timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		lgr.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		s.lock.Lock()
		defer s.lock.Unlock()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			lgr.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("proposalfast", "proposalfast", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(1024 * 1024)) // 1MB
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)

		// everything else acts on behalf of the authenticated user
		r.Group().Route(func(user *routegroup.Bundle) {
			user.Use(s.auth.middleware)

			user.HandleFunc("POST /contracts/generate", s.generateHandler)
			user.HandleFunc("GET /contracts", s.listDraftsHandler)
			user.HandleFunc("GET /contracts/{id}", s.getDraftHandler)

			user.HandleFunc("GET /memory", s.listMemoryHandler)
			user.HandleFunc("DELETE /memory/{client}", s.deleteMemoryHandler)

			user.HandleFunc("GET /webhooks", s.listWebhooksHandler)
			user.HandleFunc("POST /webhooks", s.createWebhookHandler)
			user.HandleFunc("DELETE /webhooks/{id}", s.deleteWebhookHandler)
		})
	})
}
