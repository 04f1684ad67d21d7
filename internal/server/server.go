// Package server maps the HTTP API onto the domain service.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pkg/browser"
	"github.com/sirupsen/logrus"

	"github.com/botwatch-dev/botwatch/internal/auth"
	"github.com/botwatch-dev/botwatch/internal/config"
	"github.com/botwatch-dev/botwatch/internal/data/db"
	"github.com/botwatch-dev/botwatch/internal/monitor"
	"github.com/botwatch-dev/botwatch/internal/obs/otel"
	"github.com/botwatch-dev/botwatch/internal/server/middleware"
	"github.com/botwatch-dev/botwatch/internal/util"
)

// Server represents the HTTP server
type Server struct {
	config      *config.Config
	store       *db.Store
	storage     monitor.Storage
	jwtManager  *auth.JWTManager
	passwordSvc *auth.PasswordService
	engine      *gin.Engine
	httpServer  *http.Server
	watcher     *config.Watcher
	meterSetup  *otel.MeterSetup

	// middleware
	authMW *middleware.AuthMiddleware

	// options
	openBrowser bool
	host        string
	version     string
}

// ServerOption defines a functional option for Server configuration
type ServerOption func(*Server)

// WithVersion sets the version string reported by the info endpoint.
func WithVersion(version string) ServerOption {
	return func(s *Server) {
		s.version = version
	}
}

// WithOpenBrowser opens the dashboard URL once the server is reachable.
func WithOpenBrowser(enabled bool) ServerOption {
	return func(s *Server) {
		s.openBrowser = enabled
	}
}

// WithHost overrides the bind host from config.
func WithHost(host string) ServerOption {
	return func(s *Server) {
		s.host = host
	}
}

// WithMeterSetup attaches an otel metrics pipeline.
func WithMeterSetup(ms *otel.MeterSetup) ServerOption {
	return func(s *Server) {
		s.meterSetup = ms
	}
}

// WithWatcher attaches a config watcher started alongside the server.
func WithWatcher(w *config.Watcher) ServerOption {
	return func(s *Server) {
		s.watcher = w
	}
}

// NewServer creates the HTTP server over an opened store.
func NewServer(cfg *config.Config, store *db.Store, opts ...ServerOption) *Server {
	s := &Server{
		config:      cfg,
		store:       store,
		storage:     monitor.NewService(store),
		jwtManager:  auth.NewJWTManager(cfg.JWTSecret()),
		passwordSvc: auth.NewPasswordService(),
		host:        cfg.Host,
		version:     "dev",
	}

	for _, opt := range opts {
		opt(s)
	}

	s.authMW = middleware.NewAuthMiddleware(cfg, s.jwtManager)

	gin.SetMode(gin.ReleaseMode)
	s.engine = gin.New()
	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// setupMiddleware configures server middleware
func (s *Server) setupMiddleware() {
	s.engine.Use(gin.Recovery())
	s.engine.Use(middleware.RequestLogger())
	s.engine.Use(middleware.CORS())
	if s.meterSetup.Tracker() != nil {
		s.engine.Use(middleware.Metrics(s.meterSetup.Tracker()))
	}
}

// setupRoutes configures server routes
func (s *Server) setupRoutes() {
	api := s.engine.Group("/api")

	// Open endpoints: auth bootstrap and liveness
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/signup", s.Signup)
		authGroup.POST("/login", s.Login)
	}

	info := api.Group("/info")
	{
		info.GET("/health", s.GetHealthInfo)
		info.GET("/version", s.GetVersionInfo)
	}

	// Management API, bearer-protected when auth.required is set
	protected := api.Group("")
	protected.Use(s.authMW.Middleware())
	{
		protected.GET("/bots", s.GetBots)
		protected.POST("/bots", s.CreateBot)
		protected.GET("/bots/:id", s.GetBot)
		protected.PATCH("/bots/:id", s.UpdateBot)

		protected.GET("/tests", s.GetTests)
		protected.POST("/tests", s.CreateTest)
		protected.GET("/tests/bot/:botId", s.GetTestsByBot)

		protected.GET("/dashboard/stats", s.GetDashboardStats)
	}
}

// Start starts the HTTP server and blocks until it exits.
func (s *Server) Start(port int) error {
	if s.watcher != nil {
		if err := s.watcher.Start(); err != nil {
			logrus.Warnf("Failed to start config watcher: %v", err)
		} else {
			logrus.Info("Configuration hot-reload enabled")
		}
	}

	addr := fmt.Sprintf("%s:%d", s.host, port)
	s.httpServer = &http.Server{
		Addr:    addr,
		Handler: s.engine,
	}

	resolvedHost := util.ResolveHost(s.host)
	apiURL := fmt.Sprintf("http://%s:%d/api", resolvedHost, port)
	fmt.Printf("Bot API endpoint: %s/bots\n", apiURL)
	fmt.Printf("Dashboard stats:  %s/dashboard/stats\n", apiURL)

	serverError := make(chan error, 1)
	go func() {
		serverError <- s.httpServer.ListenAndServe()
	}()

	if err := util.WaitForPort(addr, 2*time.Second); err != nil {
		select {
		case e := <-serverError:
			return e
		default:
			return fmt.Errorf("timeout: server did not start on %s: %v", addr, err)
		}
	}

	if s.openBrowser {
		_ = browser.OpenURL(fmt.Sprintf("http://%s:%d", resolvedHost, port))
	}

	return <-serverError
}

// Shutdown drains in-flight requests and stops background pieces.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.watcher != nil {
		_ = s.watcher.Stop()
	}
	if err := s.meterSetup.Shutdown(ctx); err != nil {
		logrus.Warnf("Failed to shut down metrics: %v", err)
	}
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

// GetRouter returns the Gin engine for testing purposes
func (s *Server) GetRouter() *gin.Engine {
	return s.engine
}
