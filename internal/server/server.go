package server

import (
	"context"
	"fmt"

	"github.com/grachmannico95/ledger-engine/internal/config"
	"github.com/grachmannico95/ledger-engine/internal/handler"
	"github.com/grachmannico95/ledger-engine/internal/middleware"
	"github.com/grachmannico95/ledger-engine/pkg/logger"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Server struct {
	echo          *echo.Echo
	cfg           *config.Config
	logger        *logger.Logger
	ledgerHandler *handler.LedgerHandler
	healthHandler *handler.HealthHandler
	gatherer      prometheus.Gatherer
	routed        bool
}

// New builds the HTTP server. A nil gatherer leaves /metrics unregistered.
func New(
	cfg *config.Config,
	log *logger.Logger,
	ledgerHandler *handler.LedgerHandler,
	healthHandler *handler.HealthHandler,
	gatherer prometheus.Gatherer,
) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	return &Server{
		echo:          e,
		cfg:           cfg,
		logger:        log,
		ledgerHandler: ledgerHandler,
		healthHandler: healthHandler,
		gatherer:      gatherer,
	}
}

func (s *Server) Start() error {
	s.setup()

	addr := fmt.Sprintf("%s:%s", s.cfg.Server.Host, s.cfg.Server.Port)
	s.logger.Info(context.Background(), "Starting HTTP server",
		"address", addr,
	)

	return s.echo.Start(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info(ctx, "Shutting down HTTP server")
	return s.echo.Shutdown(ctx)
}

func (s *Server) setup() {
	if s.routed {
		return
	}
	s.routed = true
	s.setupMiddleware()
	s.setupRoutes()
}

func (s *Server) setupMiddleware() {
	s.echo.Use(echoMiddleware.Recover())
	s.echo.Use(echoMiddleware.CORS())
	if s.cfg.Server.BodyLimit != "" {
		s.echo.Use(echoMiddleware.BodyLimit(s.cfg.Server.BodyLimit))
	}
	s.echo.Use(middleware.RequestID())
	s.echo.Use(middleware.Logging(s.logger))
}

func (s *Server) setupRoutes() {
	s.echo.GET("/health", s.healthHandler.Check)
	if s.gatherer != nil {
		s.echo.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{})))
	}

	s.echo.POST("/statements", s.ledgerHandler.Upload)
	s.echo.GET("/statements/:id", s.ledgerHandler.GetRun)
	s.echo.GET("/accounts", s.ledgerHandler.GetAccounts)
	s.echo.GET("/transactions/issues", s.ledgerHandler.GetIssues)

	s.echo.POST("/actions", s.ledgerHandler.SubmitAction)
	s.echo.GET("/live/accounts", s.ledgerHandler.LiveAccounts)
}

func (s *Server) Handler() *echo.Echo {
	s.setup()
	return s.echo
}
