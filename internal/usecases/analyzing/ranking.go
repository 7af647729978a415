package analyzing

import (
	"slices"

	"github.com/vfg2006/strategic-dashboard-api/internal/domain"
)

const DefaultTopProductsLimit = 10

// TopProducts soma as vendas por produto e retorna os limit maiores em ordem decrescente.
// Empates mantêm a ordem em que os produtos apareceram na entrada (ordenação estável).
// limit <= 0 usa DefaultTopProductsLimit.
func TopProducts(records []domain.Sale, limit int) []domain.ProductRevenue {
	if limit <= 0 {
		limit = DefaultTopProductsLimit
	}

	ranked := RankProducts(records)
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	return ranked
}

// RankProducts ordena todos os produtos por faturamento sem truncar
func RankProducts(records []domain.Sale) []domain.ProductRevenue {
	order, sums := sumBy(records, func(s domain.Sale) string { return s.Product })

	ranked := make([]domain.ProductRevenue, 0, len(order))
	for _, product := range order {
		ranked = append(ranked, domain.ProductRevenue{Product: product, Revenue: sums[product]})
	}

	slices.SortStableFunc(ranked, func(a, b domain.ProductRevenue) int {
		return b.Revenue.Cmp(a.Revenue)
	})

	return ranked
}
