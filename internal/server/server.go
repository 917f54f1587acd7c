package server

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"mangoadvisory/internal/api/handlers"
	"mangoadvisory/internal/api/middleware"
	"mangoadvisory/internal/config"
	"mangoadvisory/internal/database"
	"mangoadvisory/internal/logging"
	"mangoadvisory/internal/repository"
	"mangoadvisory/internal/server/routes"
	"mangoadvisory/internal/service"

	"github.com/gin-gonic/gin"
)

// Server represents the HTTP server
type Server struct {
	router *gin.Engine
	cfg    *config.Config
	db     *database.Database
	mail   service.MailService
}

// NewServer creates a new server instance
func NewServer(cfg *config.Config, db *database.Database, mail service.MailService) *Server {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Disable Gin's default logger entirely because we're using our custom logger
	gin.DisableConsoleColor()
	gin.DefaultWriter = io.Discard

	router := gin.New()

	return &Server{
		router: router,
		cfg:    cfg,
		db:     db,
		mail:   mail,
	}
}

// Init wires middleware, services, handlers and routes.
func (s *Server) Init() {
	// Create repositories
	contactRepo := repository.NewContactRepository(s.db.Pool)
	accountRepo := repository.NewAccountRepository(s.db.Pool)

	// Create services
	passwordService := service.NewPasswordService()
	contactService := service.NewContactService(contactRepo, s.mail)
	accountService := service.NewAccountService(accountRepo, passwordService, s.mail)

	// Create handlers and middleware
	h := &routes.Handlers{
		Contact: handlers.NewContactHandler(contactService),
		Account: handlers.NewAccountHandler(accountService),
		Health:  handlers.NewHealthHandler(s.db),
	}
	m := &routes.Middleware{
		Validation: middleware.NewValidationMiddleware(),
	}

	// Global middleware
	s.router.Use(middleware.Recovery())
	s.router.Use(middleware.RequestID())
	s.router.Use(middleware.CORS(s.cfg.AllowedOrigins, s.cfg.IsProduction()))
	s.router.Use(middleware.RequestLogger())
	s.router.Use(middleware.RateLimitMiddleware(middleware.RateLimitConfig{
		RPS:   10,
		Burst: 20,
	}))

	routes.Setup(s.router, h, m)
}

// Start runs the server until ctx is cancelled, then drains in-flight
// requests before returning.
func (s *Server) Start(ctx context.Context) error {
	logger := logging.GetGlobalLogger()

	srv := &http.Server{
		Addr:    ":" + s.cfg.Port,
		Handler: s.router,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server listening on port %s", s.cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}
