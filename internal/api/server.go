package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/vfg2006/sales-analyzer-api/infrastructure/repository"
	"github.com/vfg2006/sales-analyzer-api/internal/api/handler"
	"github.com/vfg2006/sales-analyzer-api/internal/api/handler/router"
	"github.com/vfg2006/sales-analyzer-api/internal/config"
	"github.com/vfg2006/sales-analyzer-api/internal/usecases/analyzing"
	"github.com/vfg2006/sales-analyzer-api/internal/usecases/authenticating"
	"github.com/vfg2006/sales-analyzer-api/internal/usecases/exporting"
	"github.com/vfg2006/sales-analyzer-api/internal/usecases/importing"
	"github.com/vfg2006/sales-analyzer-api/pkg/log"
	"github.com/vfg2006/sales-analyzer-api/pkg/middleware"
)

const defaultShutdownTimeout = 15 * time.Second

// Services reúne os casos de uso expostos pela API
type Services struct {
	Analyzer         analyzing.Analyzer
	Authenticator    authenticating.Authenticator
	Importer         importing.Importer
	Exporter         *exporting.Exporter
	InsightSnapshots repository.InsightSnapshotRepository
	CronJobs         handler.CronJobServices
	Location         *time.Location
}

type Server struct {
	httpServer      *http.Server
	shutdownTimeout time.Duration
}

func New(cfg *config.Config, services Services) (*Server, error) {
	if services.Location == nil {
		services.Location = time.UTC
	}

	limiter := middleware.NewRateLimiter(cfg.RateLimit)

	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Authentication(services.Authenticator)...),
		router.WithRoutes(handler.Dashboard(services.Analyzer, limiter)...),
		router.WithRoutes(handler.Sales(
			services.Analyzer,
			services.Importer,
			services.Exporter,
			services.Location,
			cfg.Export.MaxRows,
		)...),
		router.WithRoutes(handler.InsightHistory(services.InsightSnapshots)...),
		router.WithRoutes(handler.CronJobs(services.CronJobs)...),
	)

	chain := alice.New(
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(cfg.Cors.AllowedOrigins),
		middleware.AuthMiddleware(services.Authenticator),
	)

	shutdownTimeout := cfg.Server.ShutdownTimeout
	if shutdownTimeout <= 0 {
		shutdownTimeout = defaultShutdownTimeout
	}

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
			Handler:           chain.Then(rt),
			ReadHeaderTimeout: 2 * time.Second,
		},
		shutdownTimeout: shutdownTimeout,
	}, nil
}

// Handler expõe a cadeia completa de middlewares e rotas
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Run sobe o servidor e bloqueia até receber um sinal ou o contexto ser cancelado
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		log.L.WithField("address", s.httpServer.Addr).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(done)

	select {
	case <-done:
		log.L.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		log.L.Info("Contexto de aplicação cancelado")
	case err := <-errCh:
		return fmt.Errorf("erro durante a execução do servidor: %w", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	log.L.WithField("duration_ms", s.shutdownTimeout.Milliseconds()).Info("Iniciando desligamento gracioso do servidor")

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("erro durante o desligamento do servidor: %w", err)
	}

	log.L.Info("Servidor desligado com sucesso")
	return nil
}
