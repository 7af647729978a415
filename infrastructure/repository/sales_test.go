package repository

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/strategic-dashboard-api/internal/domain"
)

func TestBuildListSalesQuery(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 5, 24, 0, 0, 0, 0, time.UTC)
	channel := domain.ChannelPDV
	region := domain.RegionSul

	tests := []struct {
		name     string
		filters  domain.FetchFilters
		validate func(t *testing.T, query string, args []interface{})
	}{
		{
			name:    "Sem filtros",
			filters: domain.FetchFilters{},
			validate: func(t *testing.T, query string, args []interface{}) {
				assert.NotContains(t, query, "WHERE")
				assert.Contains(t, query, "ORDER BY sale_date ASC")
				assert.Empty(t, args)
			},
		},
		{
			name: "Todos os filtros",
			filters: domain.FetchFilters{
				StartDate: &start,
				EndDate:   &end,
				Channel:   &channel,
				Region:    &region,
			},
			validate: func(t *testing.T, query string, args []interface{}) {
				assert.Contains(t, query, "sale_date >= $1")
				assert.Contains(t, query, "sale_date <= $2")
				assert.Contains(t, query, "channel = $3")
				assert.Contains(t, query, "region = $4")
				assert.Equal(t, []interface{}{"2024-01-01", "2024-05-24", "PDV", "Sul"}, args)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildListSalesQuery(tt.filters)
			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(query, "SELECT customer_id, product, category, sale_date"))
			tt.validate(t, query, args)
		})
	}
}

func TestBuildInsertSalesQuery(t *testing.T) {
	sales := []domain.Sale{
		{
			CustomerID: "C1",
			Product:    "Notebook",
			Category:   "Eletrônicos",
			SaleDate:   domain.NewSaleDate(2024, time.January, 5),
			Amount:     decimal.RequireFromString("3500"),
			Quantity:   1,
			Region:     domain.RegionSudeste,
			Channel:    domain.ChannelPDV,
			Sex:        domain.SexFemale,
			AgeBracket: domain.AgeBracket26To35,
		},
		{CustomerID: "C2", Product: "Mouse"},
	}

	ids := []string{"id-1", "id-2"}
	next := 0
	generate := func() (string, error) {
		id := ids[next]
		next++
		return id, nil
	}

	query, args, err := buildInsertSalesQuery(sales, generate)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(query, "INSERT INTO sales (id,customer_id,product"))
	assert.Contains(t, query, "$24")
	require.Len(t, args, 24)
	assert.Equal(t, "id-1", args[0])
	assert.Equal(t, "C1", args[1])
	assert.Equal(t, "Sudeste", args[7])
	assert.Equal(t, "id-2", args[12])

	_, _, err = buildInsertSalesQuery(sales, func() (string, error) { return "", errors.New("sem entropia") })
	assert.Error(t, err)
}

func TestBuildUpsertSnapshotsQuery(t *testing.T) {
	query, args, err := buildUpsertSnapshotsQuery([]*domain.MonthlySalesSnapshot{
		{Period: "01/2024", Source: "arquivo:vendas.csv", TotalRevenue: decimal.NewFromInt(100), Transactions: 2},
	})
	require.NoError(t, err)

	assert.Contains(t, query, "INSERT INTO monthly_sales_snapshot")
	assert.Contains(t, query, "ON CONFLICT (period, source) DO UPDATE SET")
	assert.Len(t, args, 7)
	assert.Equal(t, "01/2024", args[0])
}
