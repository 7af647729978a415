package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MonthlySalesSnapshot resumo mensal persistido a cada atualização do conjunto de vendas
type MonthlySalesSnapshot struct {
	ID              int64           `json:"id"`
	Period          string          `json:"period"` // Período no formato MM/YYYY
	Source          string          `json:"source"`
	TotalRevenue    decimal.Decimal `json:"total_revenue"`
	AverageTicket   decimal.Decimal `json:"average_ticket"`
	Transactions    int             `json:"transactions"`
	UniqueCustomers int             `json:"unique_customers"`
	UniqueProducts  int             `json:"unique_products"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}
