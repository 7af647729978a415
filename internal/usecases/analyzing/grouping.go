package analyzing

import (
	"slices"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/strategic-dashboard-api/internal/domain"
)

// sumBy soma os valores por chave mantendo a ordem em que cada chave apareceu
func sumBy[K comparable](records []domain.Sale, key func(domain.Sale) K) ([]K, map[K]decimal.Decimal) {
	order := make([]K, 0)
	sums := make(map[K]decimal.Decimal)

	for _, record := range records {
		k := key(record)
		current, exists := sums[k]
		if !exists {
			order = append(order, k)
		}
		sums[k] = current.Add(record.Amount)
	}

	return order, sums
}

type monthKey struct {
	year  int
	month int
}

// GroupByMonth soma as vendas por mês em ordem cronológica, com rótulo MM/YYYY
func GroupByMonth(records []domain.Sale) []domain.MonthlyRevenue {
	order, sums := sumBy(records, func(s domain.Sale) monthKey {
		return monthKey{year: s.SaleDate.Year(), month: int(s.SaleDate.Month())}
	})

	slices.SortFunc(order, func(a, b monthKey) int {
		if a.year != b.year {
			return a.year - b.year
		}
		return a.month - b.month
	})

	result := make([]domain.MonthlyRevenue, 0, len(order))
	for _, k := range order {
		result = append(result, domain.MonthlyRevenue{
			Month:   domain.NewSaleDate(k.year, timeMonth(k.month), 1).MonthLabel(),
			Revenue: sums[k],
		})
	}

	return result
}

// GroupByChannel soma as vendas por canal na ordem em que os canais aparecem
func GroupByChannel(records []domain.Sale) []domain.ChannelRevenue {
	order, sums := sumBy(records, func(s domain.Sale) domain.Channel { return s.Channel })

	result := make([]domain.ChannelRevenue, 0, len(order))
	for _, channel := range order {
		result = append(result, domain.ChannelRevenue{Channel: channel, Revenue: sums[channel]})
	}

	return result
}

// GroupByRegion soma as vendas por região na ordem em que as regiões aparecem
func GroupByRegion(records []domain.Sale) []domain.RegionRevenue {
	order, sums := sumBy(records, func(s domain.Sale) domain.Region { return s.Region })

	result := make([]domain.RegionRevenue, 0, len(order))
	for _, region := range order {
		result = append(result, domain.RegionRevenue{Region: region, Revenue: sums[region]})
	}

	return result
}

func GroupByCategory(records []domain.Sale) []domain.CategoryRevenue {
	order, sums := sumBy(records, func(s domain.Sale) string { return s.Category })

	result := make([]domain.CategoryRevenue, 0, len(order))
	for _, category := range order {
		result = append(result, domain.CategoryRevenue{Category: category, Revenue: sums[category]})
	}

	return result
}

// ChannelDistribution completa cada canal com o percentual sobre o total e a cor do gráfico
func ChannelDistribution(groups []domain.ChannelRevenue) []domain.ChannelRevenue {
	total := decimal.Zero
	for _, group := range groups {
		total = total.Add(group.Revenue)
	}

	result := make([]domain.ChannelRevenue, 0, len(groups))
	for _, group := range groups {
		group.Share = Share(group.Revenue, total)
		group.Color = group.Channel.Color()
		result = append(result, group)
	}

	return result
}

// RegionHeatmap completa cada região com a cor do mapa de calor
func RegionHeatmap(groups []domain.RegionRevenue) []domain.RegionRevenue {
	result := make([]domain.RegionRevenue, 0, len(groups))
	for _, group := range groups {
		group.Color = group.Region.Color()
		result = append(result, group)
	}
	return result
}
