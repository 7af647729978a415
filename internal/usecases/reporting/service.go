// Package reporting monta as visões do painel a partir do conjunto de vendas carregado
package reporting

import (
	"context"
	"errors"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/strategic-dashboard-api/internal/dataset"
	"github.com/vfg2006/strategic-dashboard-api/internal/domain"
	"github.com/vfg2006/strategic-dashboard-api/internal/usecases/analyzing"
	"github.com/vfg2006/strategic-dashboard-api/internal/usecases/filtering"
	"github.com/vfg2006/strategic-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/strategic-dashboard-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Reporter define as consultas do painel sobre o conjunto de vendas atual
type Reporter interface {
	GetDashboard(ctx context.Context, filters domain.SalesFilters) (*domain.Dashboard, error)
	GetSummary(ctx context.Context, filters domain.SalesFilters) (*domain.ExecutiveSummary, error)
	GetMonthlyRevenue(ctx context.Context, filters domain.SalesFilters) ([]domain.MonthlyRevenue, error)
	GetTopProducts(ctx context.Context, filters domain.SalesFilters, limit int) ([]domain.ProductRevenue, error)
	GetChannelDistribution(ctx context.Context, filters domain.SalesFilters) ([]domain.ChannelRevenue, error)
	GetRegionDistribution(ctx context.Context, filters domain.SalesFilters) ([]domain.RegionRevenue, error)
	GetCategoryDistribution(ctx context.Context, filters domain.SalesFilters) ([]domain.CategoryRevenue, error)
	GetCustomerProfile(ctx context.Context, filters domain.SalesFilters) (*domain.CustomerProfile, error)
	GetRecurrence(ctx context.Context, filters domain.SalesFilters) ([]domain.RecurrenceCell, error)
	GetFilterOptions(ctx context.Context) (*domain.FilterOptions, error)
	FilteredSales(ctx context.Context, filters domain.SalesFilters) ([]domain.Sale, error)
	DatasetVersion() uint64
	InvalidateCache(ctx context.Context) error
}

// SnapshotProvider fornece a visão atual do conjunto de vendas
type SnapshotProvider interface {
	Snapshot() dataset.Snapshot
	Version() uint64
}

type Options struct {
	TopProductsLimit int
	CacheTTL         time.Duration
}

type Service struct {
	store SnapshotProvider
	cache Cache
	opts  Options
	now   func() time.Time
}

func NewService(store SnapshotProvider, cache Cache, opts Options) *Service {
	if cache == nil {
		cache = NoopCache{}
	}
	if opts.TopProductsLimit <= 0 {
		opts.TopProductsLimit = analyzing.DefaultTopProductsLimit
	}
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = 10 * time.Minute
	}

	return &Service{
		store: store,
		cache: cache,
		opts:  opts,
		now:   time.Now,
	}
}

// GetDashboard calcula todas as visões para os filtros informados.
// O resultado é memorizado por versão do conjunto de vendas e combinação de filtros.
func (s *Service) GetDashboard(ctx context.Context, filters domain.SalesFilters) (*domain.Dashboard, error) {
	filters = filters.Normalize()
	if err := validate(filters); err != nil {
		return nil, err
	}

	snapshot := s.store.Snapshot()
	key := DashboardKey(snapshot.Version, filters)
	logger := log.ForContext(ctx).WithField("cache_key", key)

	if cached, ok := s.cachedDashboard(ctx, key, logger); ok {
		return cached, nil
	}

	records := filtering.Apply(snapshot.Records, filters)

	dashboard := &domain.Dashboard{
		Filters:         filters,
		Summary:         analyzing.Summary(records),
		MonthlyRevenue:  analyzing.GroupByMonth(records),
		TopProducts:     analyzing.TopProducts(records, s.opts.TopProductsLimit),
		Channels:        analyzing.ChannelDistribution(analyzing.GroupByChannel(records)),
		Regions:         analyzing.RegionHeatmap(analyzing.GroupByRegion(records)),
		Categories:      analyzing.GroupByCategory(records),
		CustomerProfile: analyzing.CustomerProfile(records),
		Recurrence:      analyzing.RecurrenceMatrix(records),
		DatasetVersion:  snapshot.Version,
		GeneratedAt:     s.now(),
	}

	data, err := json.Marshal(dashboard)
	if err != nil {
		logger.WithError(err).Warn("reporting: falha ao serializar painel para cache")
		return dashboard, nil
	}

	if err := s.cache.Set(ctx, key, data, s.opts.CacheTTL); err != nil {
		logger.WithError(err).Warn("reporting: falha ao gravar painel no cache")
	}

	return dashboard, nil
}

func (s *Service) cachedDashboard(ctx context.Context, key string, logger log.Logger) (*domain.Dashboard, bool) {
	data, err := s.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrCacheMiss) {
			logger.WithError(err).Warn("reporting: falha ao ler painel do cache")
		}
		return nil, false
	}

	var dashboard domain.Dashboard
	if err := json.Unmarshal(data, &dashboard); err != nil {
		logger.WithError(err).Warn("reporting: painel inválido no cache, recalculando")
		return nil, false
	}

	return &dashboard, true
}

func (s *Service) GetSummary(ctx context.Context, filters domain.SalesFilters) (*domain.ExecutiveSummary, error) {
	records, err := s.FilteredSales(ctx, filters)
	if err != nil {
		return nil, err
	}

	summary := analyzing.Summary(records)
	return &summary, nil
}

func (s *Service) GetMonthlyRevenue(ctx context.Context, filters domain.SalesFilters) ([]domain.MonthlyRevenue, error) {
	records, err := s.FilteredSales(ctx, filters)
	if err != nil {
		return nil, err
	}
	return analyzing.GroupByMonth(records), nil
}

// GetTopProducts usa o limite configurado quando limit <= 0
func (s *Service) GetTopProducts(ctx context.Context, filters domain.SalesFilters, limit int) ([]domain.ProductRevenue, error) {
	records, err := s.FilteredSales(ctx, filters)
	if err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = s.opts.TopProductsLimit
	}
	return analyzing.TopProducts(records, limit), nil
}

func (s *Service) GetChannelDistribution(ctx context.Context, filters domain.SalesFilters) ([]domain.ChannelRevenue, error) {
	records, err := s.FilteredSales(ctx, filters)
	if err != nil {
		return nil, err
	}
	return analyzing.ChannelDistribution(analyzing.GroupByChannel(records)), nil
}

func (s *Service) GetRegionDistribution(ctx context.Context, filters domain.SalesFilters) ([]domain.RegionRevenue, error) {
	records, err := s.FilteredSales(ctx, filters)
	if err != nil {
		return nil, err
	}
	return analyzing.RegionHeatmap(analyzing.GroupByRegion(records)), nil
}

func (s *Service) GetCategoryDistribution(ctx context.Context, filters domain.SalesFilters) ([]domain.CategoryRevenue, error) {
	records, err := s.FilteredSales(ctx, filters)
	if err != nil {
		return nil, err
	}
	return analyzing.GroupByCategory(records), nil
}

func (s *Service) GetCustomerProfile(ctx context.Context, filters domain.SalesFilters) (*domain.CustomerProfile, error) {
	records, err := s.FilteredSales(ctx, filters)
	if err != nil {
		return nil, err
	}

	profile := analyzing.CustomerProfile(records)
	return &profile, nil
}

func (s *Service) GetRecurrence(ctx context.Context, filters domain.SalesFilters) ([]domain.RecurrenceCell, error) {
	records, err := s.FilteredSales(ctx, filters)
	if err != nil {
		return nil, err
	}
	return analyzing.RecurrenceMatrix(records), nil
}

// GetFilterOptions lista as opções de filtro do conjunto completo, sem filtros aplicados
func (s *Service) GetFilterOptions(_ context.Context) (*domain.FilterOptions, error) {
	options := filtering.Options(s.store.Snapshot().Records)
	return &options, nil
}

// FilteredSales valida os filtros e retorna uma cópia das vendas que os atendem
func (s *Service) FilteredSales(_ context.Context, filters domain.SalesFilters) ([]domain.Sale, error) {
	filters = filters.Normalize()
	if err := validate(filters); err != nil {
		return nil, err
	}

	return filtering.Apply(s.store.Snapshot().Records, filters), nil
}

func (s *Service) DatasetVersion() uint64 {
	return s.store.Version()
}

// InvalidateCache remove todos os painéis memorizados
func (s *Service) InvalidateCache(ctx context.Context) error {
	if err := s.cache.DeletePrefix(ctx, dashboardKeyPrefix); err != nil {
		return NewReportError(ErrReportGeneration, apiErrors.ErrCacheOperation, err.Error())
	}
	return nil
}

func validate(filters domain.SalesFilters) error {
	if err := filtering.Validate(filters); err != nil {
		return NewReportError(ErrInvalidFilters, apiErrors.ErrInvalidFilter, err.Error())
	}
	return nil
}
