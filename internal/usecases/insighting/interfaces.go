package insighting

import (
	"context"

	"github.com/vfg2006/strategic-dashboard-api/internal/domain"
)

// Insighter gera insights textuais sobre o painel filtrado
type Insighter interface {
	GetInsights(ctx context.Context, filters domain.SalesFilters) ([]domain.Insight, error)
}

// DashboardProvider fornece o painel já calculado para os filtros
type DashboardProvider interface {
	GetDashboard(ctx context.Context, filters domain.SalesFilters) (*domain.Dashboard, error)
}
