package main

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/strategic-dashboard-api/infrastructure/cache/redis"
	"github.com/vfg2006/strategic-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/strategic-dashboard-api/infrastructure/datasource/database"
	"github.com/vfg2006/strategic-dashboard-api/infrastructure/datasource/file"
	"github.com/vfg2006/strategic-dashboard-api/infrastructure/integrator/salesapi"
	"github.com/vfg2006/strategic-dashboard-api/infrastructure/integrator/salesapi/salesapiclient"
	"github.com/vfg2006/strategic-dashboard-api/infrastructure/report/pdf"
	"github.com/vfg2006/strategic-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/strategic-dashboard-api/internal/api"
	"github.com/vfg2006/strategic-dashboard-api/internal/api/handler"
	"github.com/vfg2006/strategic-dashboard-api/internal/config"
	"github.com/vfg2006/strategic-dashboard-api/internal/dataset"
	"github.com/vfg2006/strategic-dashboard-api/internal/datasource"
	"github.com/vfg2006/strategic-dashboard-api/internal/scheduler"
	"github.com/vfg2006/strategic-dashboard-api/internal/usecases/authenticating"
	"github.com/vfg2006/strategic-dashboard-api/internal/usecases/exporting"
	"github.com/vfg2006/strategic-dashboard-api/internal/usecases/insighting"
	"github.com/vfg2006/strategic-dashboard-api/internal/usecases/ranking"
	"github.com/vfg2006/strategic-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/strategic-dashboard-api/pkg/log"
)

const initialLoadTimeout = 2 * time.Minute

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel)

	// valores monetários saem como número no JSON, não como string
	decimal.MarshalJSONWithoutQuotes = true

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var pgConn *postgres.Connection
	if cfg.Database.Enabled {
		pgConn = pgconn(ctx, cfg.Database)
		defer pgConn.Close()
	}

	store := dataset.NewStore()
	source := salesSource(cfg, pgConn)

	var snapshotRepo repository.MonthlySalesSnapshotRepository
	if pgConn != nil && cfg.DatasetRefresh.PersistSnapshots {
		snapshotRepo = repository.NewMonthlySalesSnapshotRepository(pgConn)
	}

	reportService := reporting.NewService(store, dashboardCache(ctx, cfg.Redis), reporting.Options{
		TopProductsLimit: cfg.Dashboard.TopProductsLimit,
		CacheTTL:         cfg.Dashboard.CacheTTL,
	})
	insightService := insighting.NewService(reportService)
	rankingService := ranking.NewProductRankingService(store)
	exportService := exporting.NewService(reportService, insightService, pdf.NewDashboardRenderer(time.Local))

	authenticator, err := authenticating.NewService(cfg.Auth)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar usuários configurados")
	}

	refreshService := scheduler.NewDatasetRefreshService(source, store, reportService, snapshotRepo, cfg.DatasetRefresh)

	// primeira carga síncrona; se falhar a API sobe e responde 503 até a próxima atualização
	loadCtx, cancelLoad := context.WithTimeout(ctx, initialLoadTimeout)
	if _, err := refreshService.Refresh(loadCtx); err != nil {
		logrus.WithError(err).Error("Erro na carga inicial do conjunto de vendas")
	}
	cancelLoad()

	if err := refreshService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de atualização do conjunto de vendas")
	} else {
		logrus.Info("Agendador de atualização do conjunto de vendas iniciado com sucesso")
	}

	services := api.Services{
		Reporter:      reportService,
		Insighter:     insightService,
		Ranking:       rankingService,
		Exporter:      exportService,
		Authenticator: authenticator,
		CronJobs:      handler.CronJobServices{DatasetRefresh: refreshService},
		SourceName:    source.Name(),
	}
	if snapshotRepo != nil {
		services.History = snapshotRepo
	}

	server, err := api.New(cfg, services)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// salesSource escolhe a fonte do conjunto de vendas conforme DATA_SOURCE
func salesSource(cfg *config.Config, pgConn *postgres.Connection) datasource.Source {
	switch cfg.DataSource.Kind {
	case config.SourceFile:
		return file.NewSource(cfg.DataSource.FilePath)
	case config.SourcePostgres:
		return database.NewSource(repository.NewSalesRepository(pgConn))
	case config.SourceAPI:
		return salesapi.New(cfg.SalesAPI, salesapiclient.NewClient(cfg.SalesAPI))
	default:
		logrus.Fatalf("DATA_SOURCE desconhecido: %q", cfg.DataSource.Kind)
		return nil
	}
}

// dashboardCache usa o Redis quando habilitado; sem ele os painéis são recalculados a cada requisição
func dashboardCache(ctx context.Context, cfg config.Redis) reporting.Cache {
	if !cfg.Enabled {
		logrus.Info("Redis desabilitado, painéis sem cache")
		return reporting.NoopCache{}
	}

	client := redis.NewClient(cfg)
	if err := client.Ping(ctx).Err(); err != nil {
		logrus.WithError(err).Warn("Redis indisponível, painéis sem cache")
		return reporting.NoopCache{}
	}

	logrus.Info("Conexão com Redis estabelecida com sucesso")
	return redis.NewCache(client, cfg.Namespace)
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
