package api

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/strategic-dashboard-api/internal/api/handler"
	"github.com/vfg2006/strategic-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/strategic-dashboard-api/internal/config"
	"github.com/vfg2006/strategic-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/strategic-dashboard-api/internal/usecases/exporting"
	"github.com/vfg2006/strategic-dashboard-api/internal/usecases/insighting"
	"github.com/vfg2006/strategic-dashboard-api/internal/usecases/ranking"
	"github.com/vfg2006/strategic-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/strategic-dashboard-api/pkg/middleware"
)

const defaultShutdownTimeout = 15 * time.Second

// Services dependências montadas em main e repassadas às rotas
type Services struct {
	Reporter      reporting.Reporter
	Insighter     insighting.Insighter
	Ranking       ranking.RankingService
	Exporter      exporting.Exporter
	Authenticator authenticating.Authenticator
	CronJobs      handler.CronJobServices
	History       handler.SnapshotHistory
	SourceName    string
}

type Server struct {
	httpServer      *http.Server
	shutdownTimeout time.Duration
}

func New(cfg *config.Config, services Services) (*Server, error) {
	if services.Reporter == nil || services.Authenticator == nil {
		return nil, fmt.Errorf("servidor exige reporter e authenticator")
	}

	rt := NewHandler(cfg, services)

	shutdownTimeout := cfg.Server.ShutdownTimeout
	if shutdownTimeout <= 0 {
		shutdownTimeout = defaultShutdownTimeout
	}

	// streams SSE usam o contexto base, cancelado quando o desligamento começa
	baseCtx, cancelStreams := context.WithCancel(context.Background())

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
			Handler:           rt,
			ReadHeaderTimeout: 2 * time.Second,
			ReadTimeout:       cfg.Server.ReadTimeout,
			BaseContext: func(net.Listener) context.Context {
				return baseCtx
			},
		},
		shutdownTimeout: shutdownTimeout,
	}
	srv.httpServer.RegisterOnShutdown(cancelStreams)

	return srv, nil
}

// NewHandler monta as rotas e a cadeia de middlewares
func NewHandler(cfg *config.Config, services Services) http.Handler {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck(services.Reporter)...),
		router.WithRoutes(handler.Authentication(services.Authenticator)...),
		router.WithPrefix(handler.DashboardPrefix, handler.Dashboard(services.Reporter, cfg.Dashboard.StreamInterval)...),
		router.WithRoutes(handler.Insights(services.Insighter, services.Reporter)...),
		router.WithRoutes(handler.History(services.History, services.SourceName)...),
		router.WithRoutes(handler.ProductRanking(services.Ranking, services.Reporter)...),
		router.WithRoutes(handler.Exports(services.Exporter, services.Reporter)...),
		router.WithRoutes(handler.CronJobs(services.CronJobs)...),
	)

	logrus.WithField("rotas", rt.Routes()).Debug("server: rotas registradas")

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(cfg.Cors.AllowedOrigins),
		middleware.RateLimit(middleware.NewRateLimiter(cfg.RateLimit)),
		middleware.AuthMiddleware(services.Authenticator),
	}

	return alice.New(middlewares...).Then(rt)
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": s.shutdownTimeout.String(),
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
