package handler

import (
	"context"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/strategic-dashboard-api/internal/domain"
	"github.com/vfg2006/strategic-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/strategic-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/strategic-dashboard-api/pkg/log"
)

// dashboardView monta um handler que lê os filtros e devolve uma visão do painel
func dashboardView[T any](name string, reporter reporting.Reporter, fetch func(context.Context, domain.SalesFilters) (T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - " + name)

		if !requireDataset(w, r, reporter) {
			return
		}

		filters, err := parseFilters(r)
		if err != nil {
			handleServiceError(w, r, err, "Filtros inválidos")
			return
		}

		view, err := fetch(r.Context(), filters)
		if err != nil {
			handleServiceError(w, r, err, "Erro ao montar "+name)
			return
		}

		writeJSON(w, r, view)
	}
}

// GetDashboard retorna o painel completo para os filtros informados
func GetDashboard(reporter reporting.Reporter) http.HandlerFunc {
	return dashboardView("GetDashboard", reporter, reporter.GetDashboard)
}

func GetSummary(reporter reporting.Reporter) http.HandlerFunc {
	return dashboardView("GetSummary", reporter, reporter.GetSummary)
}

func GetMonthlyRevenue(reporter reporting.Reporter) http.HandlerFunc {
	return dashboardView("GetMonthlyRevenue", reporter, reporter.GetMonthlyRevenue)
}

func GetChannelDistribution(reporter reporting.Reporter) http.HandlerFunc {
	return dashboardView("GetChannelDistribution", reporter, reporter.GetChannelDistribution)
}

func GetRegionDistribution(reporter reporting.Reporter) http.HandlerFunc {
	return dashboardView("GetRegionDistribution", reporter, reporter.GetRegionDistribution)
}

func GetCategoryDistribution(reporter reporting.Reporter) http.HandlerFunc {
	return dashboardView("GetCategoryDistribution", reporter, reporter.GetCategoryDistribution)
}

func GetCustomerProfile(reporter reporting.Reporter) http.HandlerFunc {
	return dashboardView("GetCustomerProfile", reporter, reporter.GetCustomerProfile)
}

func GetRecurrence(reporter reporting.Reporter) http.HandlerFunc {
	return dashboardView("GetRecurrence", reporter, reporter.GetRecurrence)
}

// GetTopProducts aceita limite na query; sem ele vale o padrão configurado
func GetTopProducts(reporter reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, err := parseLimit(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		dashboardView("GetTopProducts", reporter, func(ctx context.Context, filters domain.SalesFilters) ([]domain.ProductRevenue, error) {
			return reporter.GetTopProducts(ctx, filters, limit)
		})(w, r)
	}
}

// GetFilterOptions lista períodos, canais, regiões e categorias presentes no conjunto
func GetFilterOptions(reporter reporting.Reporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("dashboard: buscando opções de filtro")

		if !requireDataset(w, r, reporter) {
			return
		}

		options, err := reporter.GetFilterOptions(r.Context())
		if err != nil {
			handleServiceError(w, r, err, "Erro ao buscar opções de filtro")
			return
		}

		writeJSON(w, r, options)
	}
}
