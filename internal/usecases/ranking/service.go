// Package ranking compara o ranking de produtos de um mês com o do mês anterior
package ranking

import (
	"context"
	"fmt"

	"github.com/vfg2006/strategic-dashboard-api/internal/dataset"
	"github.com/vfg2006/strategic-dashboard-api/internal/domain"
	"github.com/vfg2006/strategic-dashboard-api/internal/usecases/analyzing"
	"github.com/vfg2006/strategic-dashboard-api/internal/usecases/filtering"
	"github.com/vfg2006/strategic-dashboard-api/pkg/utils"
)

type RankingService interface {
	GetProductRanking(ctx context.Context, period string, limit int) (*domain.ProductRankingResponse, error)
}

type SalesProvider interface {
	Snapshot() dataset.Snapshot
}

type ProductRankingService struct {
	sales SalesProvider
}

func NewProductRankingService(sales SalesProvider) RankingService {
	return &ProductRankingService{
		sales: sales,
	}
}

// GetProductRanking ranqueia os produtos do período (MM/YYYY) por faturamento.
// Período vazio usa o mês mais recente presente nas vendas.
func (s *ProductRankingService) GetProductRanking(_ context.Context, period string, limit int) (*domain.ProductRankingResponse, error) {
	snapshot := s.sales.Snapshot()

	if limit <= 0 {
		limit = analyzing.DefaultTopProductsLimit
	}

	if period == "" || period == domain.AllPeriods {
		periods := analyzing.PeriodsOf(snapshot.Records)
		if len(periods) == 0 {
			return &domain.ProductRankingResponse{
				Ranking:    []domain.ProductRankingItem{},
				LastUpdate: snapshot.LoadedAt,
			}, nil
		}
		period = periods[len(periods)-1]
	}

	year, month, err := filtering.ParsePeriod(period)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", filtering.ErrInvalidFilter, err)
	}

	previousYear, previousMonth := utils.PreviousPeriod(year, month)
	previousPeriod := fmt.Sprintf("%02d/%04d", previousMonth, previousYear)

	current := analyzing.RankProducts(filtering.Apply(snapshot.Records, domain.SalesFilters{Period: period}))
	previous := analyzing.RankProducts(filtering.Apply(snapshot.Records, domain.SalesFilters{Period: previousPeriod}))

	return &domain.ProductRankingResponse{
		Period:         period,
		PreviousPeriod: previousPeriod,
		Ranking:        compare(current, previous, limit),
		LastUpdate:     snapshot.LoadedAt,
	}, nil
}

// compare posiciona os produtos e calcula a variação em relação ao ranking anterior.
// PositionChange positivo significa que o produto subiu.
func compare(current, previous []domain.ProductRevenue, limit int) []domain.ProductRankingItem {
	previousPositions := make(map[string]int, len(previous))
	for i, item := range previous {
		previousPositions[item.Product] = i + 1
	}

	if len(current) > limit {
		current = current[:limit]
	}

	ranking := make([]domain.ProductRankingItem, 0, len(current))
	for i, item := range current {
		position := i + 1
		previousPosition := previousPositions[item.Product]

		change := 0
		if previousPosition > 0 {
			change = previousPosition - position
		}

		ranking = append(ranking, domain.ProductRankingItem{
			Product:          item.Product,
			Revenue:          item.Revenue,
			Position:         position,
			PositionChange:   change,
			PreviousPosition: previousPosition,
		})
	}

	return ranking
}
