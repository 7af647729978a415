package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/strategic-dashboard-api/internal/domain"
)

func TestDashboardRenderer_RenderDashboard(t *testing.T) {
	ticket := decimal.RequireFromString("150.50")
	dashboard := &domain.Dashboard{
		Filters: domain.DefaultSalesFilters(),
		Summary: domain.ExecutiveSummary{
			TotalRevenue:    decimal.RequireFromString("301"),
			AverageTicket:   &ticket,
			Transactions:    2,
			UniqueCustomers: 2,
			UniqueProducts:  1,
		},
		MonthlyRevenue: []domain.MonthlyRevenue{{Month: "01/2024", Revenue: decimal.RequireFromString("301")}},
		TopProducts:    []domain.ProductRevenue{{Product: "Notebook", Revenue: decimal.RequireFromString("301")}},
		Channels: []domain.ChannelRevenue{
			{Channel: domain.ChannelPDV, Revenue: decimal.RequireFromString("301"), Share: decimal.NewFromInt(100)},
		},
		GeneratedAt: time.Date(2024, 5, 24, 12, 0, 0, 0, time.UTC),
	}
	insights := []domain.Insight{{Kind: domain.InsightTicket, Message: "Ticket médio de R$ 150,50 em 2 transações"}}

	data, err := NewDashboardRenderer(nil).RenderDashboard(context.Background(), dashboard, insights)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestDashboardRenderer_EmptyDashboard(t *testing.T) {
	data, err := NewDashboardRenderer(time.UTC).RenderDashboard(context.Background(), &domain.Dashboard{}, nil)
	require.NoError(t, err)
	assert.NotEmpty(t, data)

	_, err = NewDashboardRenderer(time.UTC).RenderDashboard(context.Background(), nil, nil)
	assert.Error(t, err)
}

func TestHexColor(t *testing.T) {
	assert.Equal(t, &props.Color{Red: 37, Green: 99, Blue: 235}, hexColor("#2563eb"))
	assert.Equal(t, colorGray, hexColor("azul"))
	assert.Equal(t, colorGray, hexColor("#fff"))
}
