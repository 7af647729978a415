package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MonthlyRevenue soma de vendas de um mês (MM/YYYY)
type MonthlyRevenue struct {
	Month   string          `json:"mes"`
	Revenue decimal.Decimal `json:"valor"`
}

type ProductRevenue struct {
	Product string          `json:"produto"`
	Revenue decimal.Decimal `json:"valor"`
}

type CategoryRevenue struct {
	Category string          `json:"categoria"`
	Revenue  decimal.Decimal `json:"valor"`
}

// ChannelRevenue soma de vendas por canal. Share e Color são preenchidos
// apenas quando a distribuição é montada para exibição.
type ChannelRevenue struct {
	Channel Channel         `json:"canal"`
	Revenue decimal.Decimal `json:"valor"`
	Share   decimal.Decimal `json:"percentual"`
	Color   string          `json:"cor,omitempty"`
}

type RegionRevenue struct {
	Region  Region          `json:"regiao"`
	Revenue decimal.Decimal `json:"valor"`
	Color   string          `json:"cor,omitempty"`
}

type AgeBracketCount struct {
	AgeBracket AgeBracket `json:"faixa"`
	Customers  int        `json:"quantidade"`
}

type SexCount struct {
	Sex       Sex    `json:"sexo"`
	Label     string `json:"rotulo"`
	Customers int    `json:"quantidade"`
}

// CustomerProfile clientes únicos por faixa etária e por sexo
type CustomerProfile struct {
	ByAgeBracket []AgeBracketCount `json:"faixaEtaria"`
	BySex        []SexCount        `json:"sexo"`
}

// RecurrenceCell célula da matriz cliente x mês
type RecurrenceCell struct {
	Customer  string `json:"cliente"`
	Month     string `json:"mes"`
	Purchases int    `json:"compras"`
}

// ExecutiveSummary resumo executivo do conjunto filtrado.
// AverageTicket é nil quando não há vendas (não se aplica).
type ExecutiveSummary struct {
	TotalRevenue    decimal.Decimal  `json:"totalVendas"`
	AverageTicket   *decimal.Decimal `json:"ticketMedio"`
	Transactions    int              `json:"transacoes"`
	UniqueCustomers int              `json:"clientesAtivos"`
	UniqueProducts  int              `json:"produtosVendidos"`
}

// Dashboard agrega todas as visões do painel para um conjunto de filtros
type Dashboard struct {
	Filters         SalesFilters      `json:"filtros"`
	Summary         ExecutiveSummary  `json:"resumo"`
	MonthlyRevenue  []MonthlyRevenue  `json:"vendasPorMes"`
	TopProducts     []ProductRevenue  `json:"topProdutos"`
	Channels        []ChannelRevenue  `json:"distribuicaoPorCanal"`
	Regions         []RegionRevenue   `json:"vendasPorRegiao"`
	Categories      []CategoryRevenue `json:"vendasPorCategoria"`
	CustomerProfile CustomerProfile   `json:"perfilClientes"`
	Recurrence      []RecurrenceCell  `json:"recorrenciaCompra"`
	DatasetVersion  uint64            `json:"versaoDados"`
	GeneratedAt     time.Time         `json:"geradoEm"`
}
