package analyzing

import (
	"slices"
	"time"

	"github.com/vfg2006/strategic-dashboard-api/internal/domain"
)

const (
	RecurrenceTopCustomers = 20
	customerLabelLength    = 8
)

type customerPurchases struct {
	id      string
	total   int
	byMonth map[string]int
}

// RecurrenceMatrix monta a matriz densa cliente x mês de quantidade de compras
// para os 20 clientes que mais compraram. Meses sem compra aparecem com zero.
// Empates no total mantêm a ordem em que os clientes apareceram.
func RecurrenceMatrix(records []domain.Sale) []domain.RecurrenceCell {
	customers := make([]*customerPurchases, 0)
	index := make(map[string]*customerPurchases)
	months := make(map[string]struct{})

	for _, record := range records {
		key := record.SaleDate.MonthKey()
		months[key] = struct{}{}

		customer, exists := index[record.CustomerID]
		if !exists {
			customer = &customerPurchases{id: record.CustomerID, byMonth: make(map[string]int)}
			index[record.CustomerID] = customer
			customers = append(customers, customer)
		}
		customer.byMonth[key]++
		customer.total++
	}

	slices.SortStableFunc(customers, func(a, b *customerPurchases) int {
		return b.total - a.total
	})
	if len(customers) > RecurrenceTopCustomers {
		customers = customers[:RecurrenceTopCustomers]
	}

	monthKeys := make([]string, 0, len(months))
	for key := range months {
		monthKeys = append(monthKeys, key)
	}
	slices.Sort(monthKeys)

	cells := make([]domain.RecurrenceCell, 0, len(customers)*len(monthKeys))
	for _, customer := range customers {
		label := truncate(customer.id, customerLabelLength)
		for _, key := range monthKeys {
			cells = append(cells, domain.RecurrenceCell{
				Customer:  label,
				Month:     monthLabelFromKey(key),
				Purchases: customer.byMonth[key],
			})
		}
	}

	return cells
}

func truncate(value string, size int) string {
	runes := []rune(value)
	if len(runes) <= size {
		return value
	}
	return string(runes[:size])
}

// monthLabelFromKey converte YYYY-MM em MM/YYYY
func monthLabelFromKey(key string) string {
	t, err := time.Parse("2006-01", key)
	if err != nil {
		return key
	}
	return t.Format("01/2006")
}

func timeMonth(month int) time.Month {
	return time.Month(month)
}
