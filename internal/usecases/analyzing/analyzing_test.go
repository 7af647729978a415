package analyzing

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/strategic-dashboard-api/internal/domain"
)

func newSale(customer, product, amount, date string) domain.Sale {
	saleDate, err := domain.ParseSaleDate(date)
	if err != nil {
		panic(err)
	}

	return domain.Sale{
		CustomerID: customer,
		Product:    product,
		Category:   "Eletrônicos",
		SaleDate:   saleDate,
		Amount:     decimal.RequireFromString(amount),
		Quantity:   1,
		Region:     domain.RegionSudeste,
		Channel:    domain.ChannelPDV,
		TaxID:      "000.000.000-00",
		Sex:        domain.SexFemale,
		AgeBracket: domain.AgeBracket26To35,
	}
}

func assertDecimal(t *testing.T, expected string, actual decimal.Decimal) {
	t.Helper()
	assert.Truef(t, decimal.RequireFromString(expected).Equal(actual), "esperado %s, obtido %s", expected, actual)
}

func TestTotals_SingleCustomerSameMonth(t *testing.T) {
	records := []domain.Sale{
		newSale("C1", "X", "100", "2024-01-15"),
		newSale("C1", "X", "50", "2024-01-20"),
	}

	assertDecimal(t, "150", TotalRevenue(records))

	ticket, err := AverageTicket(records)
	require.NoError(t, err)
	assertDecimal(t, "75", ticket)

	assert.Equal(t, 1, UniqueCustomerCount(records))

	monthly := GroupByMonth(records)
	require.Len(t, monthly, 1)
	assert.Equal(t, "01/2024", monthly[0].Month)
	assertDecimal(t, "150", monthly[0].Revenue)
}

func TestTopProducts_TruncatesToLimit(t *testing.T) {
	records := []domain.Sale{
		newSale("C1", "A", "10", "2024-01-01"),
		newSale("C2", "B", "20", "2024-01-02"),
		newSale("C3", "A", "30", "2024-01-03"),
	}

	top := TopProducts(records, 2)
	require.Len(t, top, 2)
	assert.Equal(t, "A", top[0].Product)
	assertDecimal(t, "40", top[0].Revenue)
	assert.Equal(t, "B", top[1].Product)
	assertDecimal(t, "20", top[1].Revenue)
}

func TestEmptyInput(t *testing.T) {
	var records []domain.Sale

	assertDecimal(t, "0", TotalRevenue(records))
	assert.Equal(t, 0, UniqueCustomerCount(records))
	assert.Equal(t, 0, UniqueProductCount(records))

	assert.NotNil(t, GroupByMonth(records))
	assert.Empty(t, GroupByMonth(records))
	assert.NotNil(t, TopProducts(records, 10))
	assert.Empty(t, TopProducts(records, 10))
	assert.NotNil(t, RecurrenceMatrix(records))
	assert.Empty(t, RecurrenceMatrix(records))
	assert.Empty(t, GroupByChannel(records))
	assert.Empty(t, GroupByRegion(records))
	assert.Empty(t, CustomerProfile(records).ByAgeBracket)
	assert.Empty(t, CustomerProfile(records).BySex)
}

func TestAverageTicket(t *testing.T) {
	tests := []struct {
		name     string
		records  []domain.Sale
		expected string
		err      error
	}{
		{
			name:    "Conjunto vazio deve retornar ErrNoRecords",
			records: []domain.Sale{},
			err:     ErrNoRecords,
		},
		{
			name: "Deve arredondar em duas casas",
			records: []domain.Sale{
				newSale("C1", "A", "10", "2024-01-01"),
				newSale("C2", "A", "10", "2024-01-01"),
				newSale("C3", "A", "10.01", "2024-01-01"),
			},
			expected: "10",
		},
		{
			name: "Meio centavo arredonda para cima",
			records: []domain.Sale{
				newSale("C1", "A", "0.01", "2024-01-01"),
				newSale("C2", "A", "0.00", "2024-01-01"),
			},
			expected: "0.01",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ticket, err := AverageTicket(tt.records)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}

			require.NoError(t, err)
			assertDecimal(t, tt.expected, ticket)
		})
	}
}

func TestSummary_EmptyHasNoAverageTicket(t *testing.T) {
	summary := Summary(nil)

	assert.Nil(t, summary.AverageTicket)
	assert.Equal(t, 0, summary.Transactions)
	assertDecimal(t, "0", summary.TotalRevenue)

	summary = Summary([]domain.Sale{newSale("C1", "A", "99.90", "2024-02-10")})
	require.NotNil(t, summary.AverageTicket)
	assertDecimal(t, "99.90", *summary.AverageTicket)
	assert.Equal(t, 1, summary.UniqueProducts)
}

func TestGroupByMonth_ChronologicalAcrossYears(t *testing.T) {
	records := []domain.Sale{
		newSale("C1", "A", "5", "2024-02-01"),
		newSale("C1", "A", "7", "2023-12-31"),
		newSale("C2", "A", "3", "2024-01-10"),
		newSale("C3", "A", "1", "2024-02-28"),
		newSale("C3", "A", "2", "2023-11-05"),
	}

	monthly := GroupByMonth(records)

	labels := make([]string, 0, len(monthly))
	for _, month := range monthly {
		labels = append(labels, month.Month)
	}
	assert.Equal(t, []string{"11/2023", "12/2023", "01/2024", "02/2024"}, labels)
	assertDecimal(t, "6", monthly[3].Revenue)
}

func TestGroupByChannelAndRegion_FirstSeenOrder(t *testing.T) {
	first := newSale("C1", "A", "10", "2024-01-01")
	first.Channel = domain.ChannelDelivery
	first.Region = domain.RegionSul

	second := newSale("C2", "A", "20", "2024-01-01")
	second.Channel = domain.ChannelPDV
	second.Region = domain.RegionNorte

	third := newSale("C3", "A", "5", "2024-01-01")
	third.Channel = domain.ChannelDelivery
	third.Region = domain.RegionNorte

	records := []domain.Sale{first, second, third}

	channels := GroupByChannel(records)
	require.Len(t, channels, 2)
	assert.Equal(t, domain.ChannelDelivery, channels[0].Channel)
	assertDecimal(t, "15", channels[0].Revenue)
	assert.Equal(t, domain.ChannelPDV, channels[1].Channel)

	regions := GroupByRegion(records)
	require.Len(t, regions, 2)
	assert.Equal(t, domain.RegionSul, regions[0].Region)
	assert.Equal(t, domain.RegionNorte, regions[1].Region)
	assertDecimal(t, "25", regions[1].Revenue)
}

func TestChannelDistribution_SharesAndColors(t *testing.T) {
	groups := []domain.ChannelRevenue{
		{Channel: domain.ChannelPDV, Revenue: decimal.NewFromInt(50)},
		{Channel: domain.ChannelEcommerce, Revenue: decimal.NewFromInt(30)},
		{Channel: domain.ChannelDelivery, Revenue: decimal.NewFromInt(20)},
	}

	distribution := ChannelDistribution(groups)

	require.Len(t, distribution, 3)
	assertDecimal(t, "50", distribution[0].Share)
	assert.Equal(t, "#2563eb", distribution[0].Color)
	assertDecimal(t, "30", distribution[1].Share)
	assert.Equal(t, "#059669", distribution[1].Color)
	assert.Equal(t, "#d97706", distribution[2].Color)
	assert.True(t, groups[0].Share.IsZero(), "entrada não deve ser alterada")
}

func TestSumConservation(t *testing.T) {
	records := make([]domain.Sale, 0)
	channels := domain.Channels
	regions := domain.Regions
	for i := 0; i < 60; i++ {
		sale := newSale(
			fmt.Sprintf("C%02d", i%13),
			fmt.Sprintf("P%d", i%7),
			fmt.Sprintf("%d.%02d", 10+i*3, i%100),
			fmt.Sprintf("2024-%02d-%02d", i%5+1, i%27+1),
		)
		sale.Channel = channels[i%len(channels)]
		sale.Region = regions[i%len(regions)]
		records = append(records, sale)
	}

	total := TotalRevenue(records)

	sumMonthly := decimal.Zero
	for _, m := range GroupByMonth(records) {
		sumMonthly = sumMonthly.Add(m.Revenue)
	}
	sumChannels := decimal.Zero
	for _, c := range GroupByChannel(records) {
		sumChannels = sumChannels.Add(c.Revenue)
	}
	sumRegions := decimal.Zero
	for _, r := range GroupByRegion(records) {
		sumRegions = sumRegions.Add(r.Revenue)
	}
	sumProducts := decimal.Zero
	for _, p := range RankProducts(records) {
		sumProducts = sumProducts.Add(p.Revenue)
	}

	assert.True(t, total.Equal(sumMonthly))
	assert.True(t, total.Equal(sumChannels))
	assert.True(t, total.Equal(sumRegions))
	assert.True(t, total.Equal(sumProducts))
}

func TestIdempotenceAndNoMutation(t *testing.T) {
	records := []domain.Sale{
		newSale("C2", "B", "20", "2024-02-01"),
		newSale("C1", "A", "10", "2024-01-01"),
		newSale("C3", "A", "30", "2024-03-01"),
	}
	snapshot := make([]domain.Sale, len(records))
	copy(snapshot, records)

	assert.Equal(t, TopProducts(records, 5), TopProducts(records, 5))
	assert.Equal(t, GroupByMonth(records), GroupByMonth(records))
	assert.Equal(t, RecurrenceMatrix(records), RecurrenceMatrix(records))
	assert.Equal(t, CustomerProfile(records), CustomerProfile(records))

	assert.Equal(t, snapshot, records)
}

func TestUniqueCustomerCount_CardinalityBound(t *testing.T) {
	distinct := []domain.Sale{
		newSale("C1", "A", "1", "2024-01-01"),
		newSale("C2", "A", "1", "2024-01-01"),
		newSale("C3", "A", "1", "2024-01-01"),
	}
	assert.Equal(t, len(distinct), UniqueCustomerCount(distinct))

	repeated := append(distinct, newSale("C1", "B", "1", "2024-01-02"))
	assert.Less(t, UniqueCustomerCount(repeated), len(repeated))
	assert.Equal(t, 2, UniqueProductCount(repeated))
}

func TestTopProducts(t *testing.T) {
	records := []domain.Sale{
		newSale("C1", "Notebook", "50", "2024-01-01"),
		newSale("C1", "Mouse", "50", "2024-01-01"),
		newSale("C1", "Teclado", "80", "2024-01-01"),
		newSale("C1", "Monitor", "50", "2024-01-01"),
		newSale("C1", "Cabo", "5", "2024-01-01"),
	}

	tests := []struct {
		name     string
		limit    int
		expected []string
	}{
		{
			name:     "Empates mantêm a ordem de primeira ocorrência",
			limit:    4,
			expected: []string{"Teclado", "Notebook", "Mouse", "Monitor"},
		},
		{
			name:     "Limite maior que o número de produtos",
			limit:    50,
			expected: []string{"Teclado", "Notebook", "Mouse", "Monitor", "Cabo"},
		},
		{
			name:     "Limite zero usa o padrão",
			limit:    0,
			expected: []string{"Teclado", "Notebook", "Mouse", "Monitor", "Cabo"},
		},
		{
			name:     "Limite um",
			limit:    1,
			expected: []string{"Teclado"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			top := TopProducts(records, tt.limit)

			products := make([]string, 0, len(top))
			for _, p := range top {
				products = append(products, p.Product)
			}
			assert.Equal(t, tt.expected, products)

			for i := 0; i+1 < len(top); i++ {
				assert.True(t, top[i].Revenue.GreaterThanOrEqual(top[i+1].Revenue))
			}
		})
	}
}

func TestTopProducts_DefaultLimitIsTen(t *testing.T) {
	records := make([]domain.Sale, 0)
	for i := 0; i < 15; i++ {
		records = append(records, newSale("C1", fmt.Sprintf("P%02d", i), fmt.Sprintf("%d", 100-i), "2024-01-01"))
	}

	top := TopProducts(records, 0)
	assert.Len(t, top, DefaultTopProductsLimit)
	assert.Equal(t, "P00", top[0].Product)
	assert.Equal(t, "P09", top[9].Product)
}

func TestCustomerProfile(t *testing.T) {
	s1 := newSale("C1", "A", "10", "2024-01-01")
	s1.AgeBracket = domain.AgeBracket60Plus
	s1.Sex = domain.SexFemale

	s2 := newSale("C2", "A", "10", "2024-01-01")
	s2.AgeBracket = domain.AgeBracket46To60
	s2.Sex = domain.SexMale

	s3 := newSale("C1", "B", "10", "2024-01-02")
	s3.AgeBracket = domain.AgeBracket60Plus
	s3.Sex = domain.SexFemale

	s4 := newSale("C3", "A", "10", "2024-01-01")
	s4.AgeBracket = domain.AgeBracket18To25
	s4.Sex = domain.SexFemale

	profile := CustomerProfile([]domain.Sale{s1, s2, s3, s4})

	require.Len(t, profile.ByAgeBracket, 3)
	assert.Equal(t, domain.AgeBracket18To25, profile.ByAgeBracket[0].AgeBracket)
	assert.Equal(t, domain.AgeBracket46To60, profile.ByAgeBracket[1].AgeBracket)
	assert.Equal(t, domain.AgeBracket60Plus, profile.ByAgeBracket[2].AgeBracket)
	assert.Equal(t, 1, profile.ByAgeBracket[2].Customers)

	require.Len(t, profile.BySex, 2)
	assert.Equal(t, domain.SexMale, profile.BySex[0].Sex)
	assert.Equal(t, 1, profile.BySex[0].Customers)
	assert.Equal(t, domain.SexFemale, profile.BySex[1].Sex)
	assert.Equal(t, 2, profile.BySex[1].Customers)
	assert.Equal(t, "Feminino", profile.BySex[1].Label)
}

func TestRecurrenceMatrix_Densification(t *testing.T) {
	records := []domain.Sale{
		newSale("CLIENTE-0001-AAAA", "A", "10", "2024-01-05"),
		newSale("CLIENTE-0001-AAAA", "A", "10", "2024-01-06"),
		newSale("CLIENTE-0001-AAAA", "A", "10", "2024-03-01"),
		newSale("C2", "A", "10", "2024-02-10"),
	}

	cells := RecurrenceMatrix(records)

	require.Len(t, cells, 6)
	assert.Equal(t, domain.RecurrenceCell{Customer: "CLIENTE-", Month: "01/2024", Purchases: 2}, cells[0])
	assert.Equal(t, domain.RecurrenceCell{Customer: "CLIENTE-", Month: "02/2024", Purchases: 0}, cells[1])
	assert.Equal(t, domain.RecurrenceCell{Customer: "CLIENTE-", Month: "03/2024", Purchases: 1}, cells[2])
	assert.Equal(t, domain.RecurrenceCell{Customer: "C2", Month: "01/2024", Purchases: 0}, cells[3])
	assert.Equal(t, domain.RecurrenceCell{Customer: "C2", Month: "02/2024", Purchases: 1}, cells[4])
	assert.Equal(t, domain.RecurrenceCell{Customer: "C2", Month: "03/2024", Purchases: 0}, cells[5])
}

func TestRecurrenceMatrix_TopTwentyStableTieBreak(t *testing.T) {
	records := make([]domain.Sale, 0)
	// 25 clientes com uma compra cada, exceto C24 que compra duas vezes
	for i := 0; i < 25; i++ {
		records = append(records, newSale(fmt.Sprintf("C%02d", i), "A", "1", "2024-01-01"))
	}
	records = append(records, newSale("C24", "A", "1", "2024-02-01"))

	cells := RecurrenceMatrix(records)

	// 20 clientes x 2 meses
	require.Len(t, cells, RecurrenceTopCustomers*2)

	customers := make([]string, 0)
	totals := make(map[string]int)
	for _, cell := range cells {
		if _, seen := totals[cell.Customer]; !seen {
			customers = append(customers, cell.Customer)
		}
		totals[cell.Customer] += cell.Purchases
	}

	assert.Equal(t, "C24", customers[0])
	assert.Equal(t, 2, totals["C24"])
	// Empatados com uma compra seguem a ordem de entrada: C00..C18
	assert.Equal(t, "C00", customers[1])
	assert.Equal(t, "C18", customers[19])
	assert.NotContains(t, customers, "C19")
}

func TestPeriodsOfAndAvailablePeriods(t *testing.T) {
	records := []domain.Sale{
		newSale("C1", "A", "1", "2024-03-01"),
		newSale("C1", "A", "1", "2023-12-01"),
		newSale("C1", "A", "1", "2024-01-01"),
	}

	assert.Equal(t, []string{"12/2023", "01/2024", "03/2024"}, PeriodsOf(records))

	available := AvailablePeriods(records)
	assert.Equal(t, []string{"2023", "2024"}, available.Years)
	assert.Equal(t, []string{"01", "03", "12"}, available.Months)
}

func TestShare(t *testing.T) {
	assertDecimal(t, "0", Share(decimal.NewFromInt(10), decimal.Zero))
	assertDecimal(t, "33.33", Share(decimal.NewFromInt(1), decimal.NewFromInt(3)))
}
