// Package analyzing contém o motor de agregação do painel de vendas.
//
// Todas as funções são puras: recebem o conjunto de vendas já filtrado,
// não alteram a entrada e retornam estruturas novas. Entradas vazias
// resultam em slices vazios (nunca nil), exceto AverageTicket.
package analyzing

import (
	"errors"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/strategic-dashboard-api/internal/domain"
)

// ErrNoRecords indica que a métrica não se aplica a um conjunto vazio
var ErrNoRecords = errors.New("nenhuma venda no conjunto")

// TotalRevenue soma os valores de todas as vendas
func TotalRevenue(records []domain.Sale) decimal.Decimal {
	total := decimal.Zero
	for _, record := range records {
		total = total.Add(record.Amount)
	}
	return total
}

// AverageTicket é o faturamento total dividido pelo número de vendas,
// arredondado em duas casas. Retorna ErrNoRecords para conjunto vazio.
func AverageTicket(records []domain.Sale) (decimal.Decimal, error) {
	if len(records) == 0 {
		return decimal.Zero, ErrNoRecords
	}

	count := decimal.NewFromInt(int64(len(records)))
	return TotalRevenue(records).Div(count).Round(2), nil
}

func UniqueCustomerCount(records []domain.Sale) int {
	customers := make(map[string]struct{}, len(records))
	for _, record := range records {
		customers[record.CustomerID] = struct{}{}
	}
	return len(customers)
}

func UniqueProductCount(records []domain.Sale) int {
	products := make(map[string]struct{})
	for _, record := range records {
		products[record.Product] = struct{}{}
	}
	return len(products)
}

// Summary monta o resumo executivo. AverageTicket fica nil quando não há vendas.
func Summary(records []domain.Sale) domain.ExecutiveSummary {
	summary := domain.ExecutiveSummary{
		TotalRevenue:    TotalRevenue(records),
		Transactions:    len(records),
		UniqueCustomers: UniqueCustomerCount(records),
		UniqueProducts:  UniqueProductCount(records),
	}

	if ticket, err := AverageTicket(records); err == nil {
		summary.AverageTicket = &ticket
	}

	return summary
}

// Share calcula o percentual de part sobre total com duas casas. Total zero resulta em zero.
func Share(part, total decimal.Decimal) decimal.Decimal {
	if total.IsZero() {
		return decimal.Zero
	}
	return part.Div(total).Mul(decimal.NewFromInt(100)).Round(2)
}
