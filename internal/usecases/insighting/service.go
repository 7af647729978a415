// Package insighting deriva observações em texto a partir do painel de vendas
package insighting

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/strategic-dashboard-api/internal/domain"
	"github.com/vfg2006/strategic-dashboard-api/internal/usecases/analyzing"
	"github.com/vfg2006/strategic-dashboard-api/pkg/utils"
)

const noDataMessage = "Nenhuma venda encontrada para os filtros selecionados"

type Service struct {
	dashboards DashboardProvider
}

func NewService(dashboards DashboardProvider) *Service {
	return &Service{dashboards: dashboards}
}

func (s *Service) GetInsights(ctx context.Context, filters domain.SalesFilters) ([]domain.Insight, error) {
	dashboard, err := s.dashboards.GetDashboard(ctx, filters)
	if err != nil {
		return nil, err
	}

	return FromDashboard(dashboard), nil
}

// FromDashboard gera os insights na ordem: categoria, canal, região, público,
// sazonalidade, recorrência e ticket. Empates ficam com o primeiro grupo encontrado.
func FromDashboard(dashboard *domain.Dashboard) []domain.Insight {
	if dashboard == nil || dashboard.Summary.Transactions == 0 {
		return []domain.Insight{{Kind: domain.InsightNoData, Message: noDataMessage}}
	}

	total := dashboard.Summary.TotalRevenue
	insights := make([]domain.Insight, 0, 7)

	if leader, ok := leadingCategory(dashboard.Categories); ok {
		insights = append(insights, domain.Insight{
			Kind: domain.InsightCategory,
			Message: fmt.Sprintf("Categoria %s representa %s do faturamento total",
				leader.Category, utils.FormatPercent(analyzing.Share(leader.Revenue, total))),
		})
	}

	if leader, ok := leadingChannel(dashboard.Channels); ok {
		insights = append(insights, domain.Insight{
			Kind: domain.InsightChannel,
			Message: fmt.Sprintf("Canal %s concentra %s das vendas",
				leader.Channel.Label(), utils.FormatPercent(analyzing.Share(leader.Revenue, total))),
		})
	}

	if leader, ok := leadingRegion(dashboard.Regions); ok {
		insights = append(insights, domain.Insight{
			Kind:    domain.InsightRegion,
			Message: fmt.Sprintf("Região %s lidera as vendas com %s", leader.Region, utils.FormatBRL(leader.Revenue)),
		})
	}

	if leader, ok := leadingAgeBracket(dashboard.CustomerProfile.ByAgeBracket); ok {
		insights = append(insights, domain.Insight{
			Kind:    domain.InsightAudience,
			Message: fmt.Sprintf("Clientes da faixa %s são o maior grupo, com %d clientes ativos", leader.AgeBracket, leader.Customers),
		})
	}

	if insight, ok := seasonality(dashboard.MonthlyRevenue); ok {
		insights = append(insights, insight)
	}

	if insight, ok := recurrence(dashboard.Recurrence); ok {
		insights = append(insights, insight)
	}

	if dashboard.Summary.AverageTicket != nil {
		insights = append(insights, domain.Insight{
			Kind: domain.InsightTicket,
			Message: fmt.Sprintf("Ticket médio de %s em %d transações",
				utils.FormatBRL(*dashboard.Summary.AverageTicket), dashboard.Summary.Transactions),
		})
	}

	return insights
}

func leadingCategory(groups []domain.CategoryRevenue) (domain.CategoryRevenue, bool) {
	return leader(groups, func(g domain.CategoryRevenue) decimal.Decimal { return g.Revenue })
}

func leadingChannel(groups []domain.ChannelRevenue) (domain.ChannelRevenue, bool) {
	return leader(groups, func(g domain.ChannelRevenue) decimal.Decimal { return g.Revenue })
}

func leadingRegion(groups []domain.RegionRevenue) (domain.RegionRevenue, bool) {
	return leader(groups, func(g domain.RegionRevenue) decimal.Decimal { return g.Revenue })
}

func leadingAgeBracket(groups []domain.AgeBracketCount) (domain.AgeBracketCount, bool) {
	return leader(groups, func(g domain.AgeBracketCount) decimal.Decimal { return decimal.NewFromInt(int64(g.Customers)) })
}

func leader[T any](groups []T, value func(T) decimal.Decimal) (T, bool) {
	var best T
	if len(groups) == 0 {
		return best, false
	}

	best = groups[0]
	for _, group := range groups[1:] {
		if value(group).GreaterThan(value(best)) {
			best = group
		}
	}
	return best, true
}

// seasonality compara o último mês com o anterior; com um único mês, destaca o melhor mês
func seasonality(months []domain.MonthlyRevenue) (domain.Insight, bool) {
	switch len(months) {
	case 0:
		return domain.Insight{}, false
	case 1:
		return domain.Insight{
			Kind:    domain.InsightSeasonal,
			Message: fmt.Sprintf("Todas as vendas se concentram em %s", months[0].Month),
		}, true
	}

	last, previous := months[len(months)-1], months[len(months)-2]
	if previous.Revenue.IsZero() {
		best, _ := leader(months, func(m domain.MonthlyRevenue) decimal.Decimal { return m.Revenue })
		return domain.Insight{
			Kind:    domain.InsightSeasonal,
			Message: fmt.Sprintf("Melhor mês do período foi %s com %s", best.Month, utils.FormatBRL(best.Revenue)),
		}, true
	}

	variation := last.Revenue.Sub(previous.Revenue).Div(previous.Revenue).Mul(decimal.NewFromInt(100)).Round(2)
	return domain.Insight{
		Kind: domain.InsightSeasonal,
		Message: fmt.Sprintf("Vendas em %s variaram %s em relação a %s",
			last.Month, utils.FormatSignedPercent(variation), previous.Month),
	}, true
}

func recurrence(cells []domain.RecurrenceCell) (domain.Insight, bool) {
	totals := make(map[string]int)
	order := make([]string, 0)
	for _, cell := range cells {
		if _, seen := totals[cell.Customer]; !seen {
			order = append(order, cell.Customer)
		}
		totals[cell.Customer] += cell.Purchases
	}

	if len(order) == 0 {
		return domain.Insight{}, false
	}

	// a matriz já vem ordenada por total de compras
	top := order[0]
	return domain.Insight{
		Kind:    domain.InsightRecurrence,
		Message: fmt.Sprintf("Cliente %s é o mais recorrente, com %d compras no período", top, totals[top]),
	}, true
}
