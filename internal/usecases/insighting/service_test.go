package insighting

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/strategic-dashboard-api/internal/domain"
	"github.com/vfg2006/strategic-dashboard-api/internal/usecases/insighting/mocks"
	"go.uber.org/mock/gomock"
)

func dec(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func sampleDashboard() *domain.Dashboard {
	ticket := dec("250")
	return &domain.Dashboard{
		Summary: domain.ExecutiveSummary{
			TotalRevenue:  dec("1000"),
			AverageTicket: &ticket,
			Transactions:  4,
		},
		MonthlyRevenue: []domain.MonthlyRevenue{
			{Month: "01/2024", Revenue: dec("400")},
			{Month: "02/2024", Revenue: dec("600")},
		},
		Categories: []domain.CategoryRevenue{
			{Category: "Vestuário", Revenue: dec("300")},
			{Category: "Eletrônicos", Revenue: dec("700")},
		},
		Channels: []domain.ChannelRevenue{
			{Channel: domain.ChannelEcommerce, Revenue: dec("500")},
			{Channel: domain.ChannelPDV, Revenue: dec("500")},
		},
		Regions: []domain.RegionRevenue{
			{Region: domain.RegionSul, Revenue: dec("1000")},
		},
		CustomerProfile: domain.CustomerProfile{
			ByAgeBracket: []domain.AgeBracketCount{
				{AgeBracket: domain.AgeBracket18To25, Customers: 1},
				{AgeBracket: domain.AgeBracket26To35, Customers: 2},
			},
		},
		Recurrence: []domain.RecurrenceCell{
			{Customer: "cliente1", Month: "01/2024", Purchases: 2},
			{Customer: "cliente1", Month: "02/2024", Purchases: 1},
			{Customer: "cliente2", Month: "01/2024", Purchases: 0},
			{Customer: "cliente2", Month: "02/2024", Purchases: 1},
		},
	}
}

func messages(insights []domain.Insight) map[domain.InsightKind]string {
	result := make(map[domain.InsightKind]string, len(insights))
	for _, insight := range insights {
		result[insight.Kind] = insight.Message
	}
	return result
}

func TestFromDashboard(t *testing.T) {
	insights := FromDashboard(sampleDashboard())
	require.Len(t, insights, 7)

	byKind := messages(insights)
	assert.Equal(t, "Categoria Eletrônicos representa 70,00% do faturamento total", byKind[domain.InsightCategory])
	assert.Equal(t, "Canal E-commerce concentra 50,00% das vendas", byKind[domain.InsightChannel])
	assert.Equal(t, "Região Sul lidera as vendas com R$ 1.000,00", byKind[domain.InsightRegion])
	assert.Equal(t, "Clientes da faixa 26-35 são o maior grupo, com 2 clientes ativos", byKind[domain.InsightAudience])
	assert.Equal(t, "Vendas em 02/2024 variaram +50,00% em relação a 01/2024", byKind[domain.InsightSeasonal])
	assert.Equal(t, "Cliente cliente1 é o mais recorrente, com 3 compras no período", byKind[domain.InsightRecurrence])
	assert.Equal(t, "Ticket médio de R$ 250,00 em 4 transações", byKind[domain.InsightTicket])
}

func TestFromDashboard_EdgeCases(t *testing.T) {
	tests := []struct {
		name     string
		setup    func() *domain.Dashboard
		validate func(t *testing.T, insights []domain.Insight)
	}{
		{
			name:  "Painel nulo",
			setup: func() *domain.Dashboard { return nil },
			validate: func(t *testing.T, insights []domain.Insight) {
				require.Len(t, insights, 1)
				assert.Equal(t, domain.InsightNoData, insights[0].Kind)
			},
		},
		{
			name:  "Sem vendas",
			setup: func() *domain.Dashboard { return &domain.Dashboard{} },
			validate: func(t *testing.T, insights []domain.Insight) {
				require.Len(t, insights, 1)
				assert.Equal(t, noDataMessage, insights[0].Message)
			},
		},
		{
			name: "Um único mês",
			setup: func() *domain.Dashboard {
				d := sampleDashboard()
				d.MonthlyRevenue = d.MonthlyRevenue[1:]
				return d
			},
			validate: func(t *testing.T, insights []domain.Insight) {
				assert.Equal(t, "Todas as vendas se concentram em 02/2024", messages(insights)[domain.InsightSeasonal])
			},
		},
		{
			name: "Mês anterior zerado destaca o melhor mês",
			setup: func() *domain.Dashboard {
				d := sampleDashboard()
				d.MonthlyRevenue = []domain.MonthlyRevenue{
					{Month: "01/2024", Revenue: dec("900")},
					{Month: "02/2024", Revenue: dec("0")},
					{Month: "03/2024", Revenue: dec("100")},
				}
				return d
			},
			validate: func(t *testing.T, insights []domain.Insight) {
				assert.Equal(t, "Melhor mês do período foi 01/2024 com R$ 900,00", messages(insights)[domain.InsightSeasonal])
			},
		},
		{
			name: "Queda em relação ao mês anterior",
			setup: func() *domain.Dashboard {
				d := sampleDashboard()
				d.MonthlyRevenue[0].Revenue, d.MonthlyRevenue[1].Revenue = dec("800"), dec("200")
				return d
			},
			validate: func(t *testing.T, insights []domain.Insight) {
				assert.Equal(t, "Vendas em 02/2024 variaram -75,00% em relação a 01/2024", messages(insights)[domain.InsightSeasonal])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, FromDashboard(tt.setup()))
		})
	}
}

func TestService_GetInsights(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider := mocks.NewMockDashboardProvider(ctrl)
	service := NewService(provider)
	filters := domain.SalesFilters{Period: "02/2024"}

	provider.EXPECT().GetDashboard(gomock.Any(), filters).Return(sampleDashboard(), nil)
	insights, err := service.GetInsights(context.Background(), filters)
	require.NoError(t, err)
	assert.Len(t, insights, 7)

	provider.EXPECT().GetDashboard(gomock.Any(), filters).Return(nil, errors.New("filtro inválido"))
	insights, err = service.GetInsights(context.Background(), filters)
	assert.Error(t, err)
	assert.Nil(t, insights)
}
