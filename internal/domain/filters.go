package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sentinelas que significam "sem filtro" em cada dimensão
const (
	AllPeriods    = "todos"
	AllChannels   = "todos"
	AllRegions    = "todas"
	AllCategories = "todas"
)

// SalesFilters filtros aplicados sobre o conjunto de vendas.
// Period no formato MM/YYYY.
type SalesFilters struct {
	Period    string           `json:"periodo"`
	Channel   string           `json:"canal"`
	Region    string           `json:"regiao"`
	Category  string           `json:"categoria"`
	Product   string           `json:"produto,omitempty"`
	MinAmount *decimal.Decimal `json:"valorMinimo,omitempty"`
	MaxAmount *decimal.Decimal `json:"valorMaximo,omitempty"`
}

// DefaultSalesFilters retorna os filtros sem restrição
func DefaultSalesFilters() SalesFilters {
	return SalesFilters{
		Period:   AllPeriods,
		Channel:  AllChannels,
		Region:   AllRegions,
		Category: AllCategories,
	}
}

// Normalize troca valores vazios pelas sentinelas
func (f SalesFilters) Normalize() SalesFilters {
	if f.Period == "" {
		f.Period = AllPeriods
	}
	if f.Channel == "" {
		f.Channel = AllChannels
	}
	if f.Region == "" {
		f.Region = AllRegions
	}
	if f.Category == "" {
		f.Category = AllCategories
	}
	return f
}

// FetchFilters filtros de busca nas fontes de dados (API remota, banco)
type FetchFilters struct {
	StartDate *time.Time
	EndDate   *time.Time
	Channel   *Channel
	Region    *Region
}
