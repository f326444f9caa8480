package ui

import (
	"context"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"teamdash/adapters/chart"
	"teamdash/internal/api"
	"teamdash/internal/events"
	"teamdash/internal/logger"
	"teamdash/ports"
	"teamdash/ui/middleware"
)

// Deps are the collaborators the web server needs
type Deps struct {
	Persons ports.PersonRepository
	Chart   *chart.Renderer
	Events  *events.Hub
	Log     *logger.Logger

	// AllowedOrigins for cross-origin reads of /api; empty disables CORS
	AllowedOrigins []string
}

// Server is the dashboard web server
type Server struct {
	router    *gin.Engine
	templates *template.Template
	persons   ports.PersonRepository
	chart     *chart.Renderer
	events    *events.Hub
	log       *logger.Logger
}

// NewServer parses templates and wires routes
func NewServer(deps Deps) (*Server, error) {
	if deps.Persons == nil {
		return nil, fmt.Errorf("person repository is required")
	}
	if deps.Chart == nil {
		return nil, fmt.Errorf("chart renderer is required")
	}
	if deps.Log == nil {
		deps.Log = logger.NewNop()
	}
	if deps.Events == nil {
		deps.Events = events.NewHub(0, deps.Log)
	}

	templates, err := parseTemplates()
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	s := &Server{
		router:    gin.New(),
		templates: templates,
		persons:   deps.Persons,
		chart:     deps.Chart,
		events:    deps.Events,
		log:       deps.Log.With("component", "ui"),
	}

	if err := s.setupRoutes(deps.AllowedOrigins); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Server) setupRoutes(allowedOrigins []string) error {
	s.router.Use(gin.Recovery())
	s.router.Use(middleware.RequestLogger(s.log))
	s.router.Use(middleware.TrackRoute())

	staticFS, err := fs.Sub(staticFiles, "static")
	if err != nil {
		return fmt.Errorf("failed to create static filesystem: %w", err)
	}
	s.router.StaticFS("/static", http.FS(staticFS))

	s.router.GET("/", s.handleDashboard)
	s.router.GET("/team", s.handleTeam)
	s.router.POST("/team/members", s.handleCreateMember)
	s.router.POST("/team/members/:id", s.handleUpdateMember)
	s.router.POST("/team/members/:id/delete", s.handleDeleteMember)
	s.router.GET("/events", s.handleEvents)
	s.router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	apiGroup := s.router.Group("/api")
	if len(allowedOrigins) > 0 {
		apiGroup.Use(cors.New(corsConfig(allowedOrigins)))
	}
	apiHandler := http.StripPrefix("/api", api.NewHandler(s.persons, s.chart, s.log).Routes())
	apiGroup.Any("/*path", gin.WrapH(apiHandler))

	s.router.NoRoute(s.handleNotFound)
	return nil
}

func corsConfig(allowedOrigins []string) cors.Config {
	config := cors.Config{
		AllowMethods: []string{http.MethodGet, http.MethodOptions},
		AllowHeaders: []string{"Origin", "Accept", "Content-Type"},
		MaxAge:       12 * time.Hour,
	}
	if len(allowedOrigins) == 1 && allowedOrigins[0] == "*" {
		config.AllowAllOrigins = true
	} else {
		config.AllowOrigins = allowedOrigins
	}
	return config
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully
// within shutdownTimeout.
func (s *Server) Run(ctx context.Context, addr string, shutdownTimeout time.Duration) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("http server listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("http server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.log.Info("shutting down http server", "timeout", shutdownTimeout)
	// open SSE streams would otherwise hold Shutdown until the timeout
	s.events.Close()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown failed: %w", err)
	}
	return nil
}

func (s *Server) page(c *gin.Context, title string) Page {
	return Page{
		Title: title,
		Nav:   middleware.NavState(c).Links(),
	}
}

func (s *Server) handleNotFound(c *gin.Context) {
	s.renderTemplate(c, http.StatusNotFound, "not_found.html", s.page(c, "Not found"))
}
