// Package scheduler contém os serviços de agendamento para atualização de dados
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/strategic-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/strategic-dashboard-api/internal/config"
	"github.com/vfg2006/strategic-dashboard-api/internal/datasource"
	"github.com/vfg2006/strategic-dashboard-api/internal/domain"
	"github.com/vfg2006/strategic-dashboard-api/internal/usecases/analyzing"
	"github.com/vfg2006/strategic-dashboard-api/pkg/log"
)

var ErrRefreshAlreadyRunning = errors.New("atualização do conjunto de vendas já em andamento")

// DatasetReplacer recebe o conjunto de vendas atualizado
type DatasetReplacer interface {
	Replace(source string, records []domain.Sale) uint64
}

// CacheInvalidator limpa os painéis memorizados após uma troca de conjunto
type CacheInvalidator interface {
	InvalidateCache(ctx context.Context) error
}

type DatasetRefreshConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// RefreshStatus estado exposto em /v1/cron/status
type RefreshStatus struct {
	SyncEnabled         bool      `json:"sync_enabled"`
	SyncCron            string    `json:"sync_cron"`
	Running             bool      `json:"running"`
	Source              string    `json:"source"`
	DatasetVersion      uint64    `json:"dataset_version"`
	LastRecords         int       `json:"last_records"`
	LastSyncStartedAt   time.Time `json:"last_sync_started_at"`
	LastSyncCompletedAt time.Time `json:"last_sync_completed_at"`
	LastError           string    `json:"last_error,omitempty"`
}

type DatasetRefreshService struct {
	scheduler    *gocron.Scheduler
	source       datasource.Source
	store        DatasetReplacer
	cache        CacheInvalidator
	snapshotRepo repository.MonthlySalesSnapshotRepository
	config       DatasetRefreshConfig
	logger       log.Logger
	syncRunning  bool
	syncMutex    sync.Mutex
	status       RefreshStatus
	now          func() time.Time
}

// NewDatasetRefreshService snapshotRepo é opcional; sem ele os resumos mensais não são gravados
func NewDatasetRefreshService(
	source datasource.Source,
	store DatasetReplacer,
	cache CacheInvalidator,
	snapshotRepo repository.MonthlySalesSnapshotRepository,
	cfg config.DatasetRefresh,
) *DatasetRefreshService {
	refreshConfig := DatasetRefreshConfig{
		CronSchedule: cfg.CronSchedule,
		SyncEnabled:  cfg.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": refreshConfig.CronSchedule,
		"source":        source.Name(),
	}).Info("Configuração do agendador de atualização do conjunto de vendas carregada")

	return &DatasetRefreshService{
		scheduler:    gocron.NewScheduler(time.Local),
		source:       source,
		store:        store,
		cache:        cache,
		snapshotRepo: snapshotRepo,
		config:       refreshConfig,
		logger:       log.Component("dataset-refresh"),
		status: RefreshStatus{
			SyncEnabled: refreshConfig.SyncEnabled,
			SyncCron:    refreshConfig.CronSchedule,
			Source:      source.Name(),
		},
		now: time.Now,
	}
}

func (s *DatasetRefreshService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		s.logger.Info("Cron de atualização do conjunto de vendas desabilitada por configuração")
		return nil
	}

	s.logger.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de atualização do conjunto de vendas")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if _, err := s.Refresh(ctx); err != nil && !errors.Is(err, ErrRefreshAlreadyRunning) {
			s.logger.WithError(err).Error("Erro na atualização do conjunto de vendas")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar atualização do conjunto de vendas: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		s.logger.Info("Parando cron de atualização do conjunto de vendas")
		s.scheduler.Stop()
	}()

	return nil
}

// Refresh busca as vendas na fonte e troca o conjunto inteiro.
// Se a busca falhar o conjunto anterior continua valendo.
func (s *DatasetRefreshService) Refresh(ctx context.Context) (uint64, error) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		s.logger.Warn("Atualização do conjunto de vendas já está em execução")
		return 0, ErrRefreshAlreadyRunning
	}
	s.syncRunning = true
	s.status.Running = true
	s.status.LastSyncStartedAt = s.now()
	s.syncMutex.Unlock()

	version, records, err := s.refresh(ctx)

	s.syncMutex.Lock()
	s.syncRunning = false
	s.status.Running = false
	s.status.LastSyncCompletedAt = s.now()
	if err != nil {
		s.status.LastError = err.Error()
	} else {
		s.status.LastError = ""
		s.status.LastRecords = records
		s.status.DatasetVersion = version
	}
	s.syncMutex.Unlock()

	return version, err
}

func (s *DatasetRefreshService) refresh(ctx context.Context) (uint64, int, error) {
	s.logger.WithField("source", s.source.Name()).Info("Iniciando atualização do conjunto de vendas")

	records, err := s.source.Fetch(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("erro ao buscar vendas em %s: %w", s.source.Name(), err)
	}

	version := s.store.Replace(s.source.Name(), records)

	if err := s.cache.InvalidateCache(ctx); err != nil {
		s.logger.WithError(err).Warn("Falha ao limpar cache do painel após atualização")
	}

	if s.snapshotRepo != nil {
		snapshots := BuildMonthlySnapshots(s.source.Name(), records)
		if err := s.snapshotRepo.SaveOrUpdate(ctx, snapshots); err != nil {
			s.logger.WithError(err).Error("Erro ao salvar resumos mensais")
		}
	}

	s.logger.WithFields(log.Fields{
		"records": len(records),
		"version": version,
	}).Info("Atualização do conjunto de vendas concluída")

	return version, len(records), nil
}

// TriggerManualSync inicia manualmente uma atualização em segundo plano
func (s *DatasetRefreshService) TriggerManualSync() error {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		s.logger.Info("Atualização já em andamento, ignorando solicitação manual")
		return ErrRefreshAlreadyRunning
	}
	s.syncMutex.Unlock()

	s.logger.Info("Iniciando atualização manual do conjunto de vendas")
	go func() {
		if _, err := s.Refresh(context.Background()); err != nil && !errors.Is(err, ErrRefreshAlreadyRunning) {
			s.logger.WithError(err).Error("Erro na atualização manual do conjunto de vendas")
		}
	}()

	return nil
}

// GetStatus retorna o status atual do agendador
func (s *DatasetRefreshService) GetStatus() RefreshStatus {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()
	return s.status
}

// BuildMonthlySnapshots resume as vendas de cada mês presente, em ordem cronológica
func BuildMonthlySnapshots(source string, records []domain.Sale) []*domain.MonthlySalesSnapshot {
	byPeriod := make(map[string][]domain.Sale)
	for _, record := range records {
		period := record.SaleDate.MonthLabel()
		byPeriod[period] = append(byPeriod[period], record)
	}

	periods := analyzing.PeriodsOf(records)
	snapshots := make([]*domain.MonthlySalesSnapshot, 0, len(periods))
	for _, period := range periods {
		summary := analyzing.Summary(byPeriod[period])

		snapshot := &domain.MonthlySalesSnapshot{
			Period:          period,
			Source:          source,
			TotalRevenue:    summary.TotalRevenue,
			Transactions:    summary.Transactions,
			UniqueCustomers: summary.UniqueCustomers,
			UniqueProducts:  summary.UniqueProducts,
		}
		if summary.AverageTicket != nil {
			snapshot.AverageTicket = *summary.AverageTicket
		}

		snapshots = append(snapshots, snapshot)
	}

	return snapshots
}
