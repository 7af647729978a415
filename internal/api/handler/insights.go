package handler

import (
	"net/http"

	"github.com/vfg2006/strategic-dashboard-api/internal/domain"
	"github.com/vfg2006/strategic-dashboard-api/internal/usecases/insighting"
	"github.com/vfg2006/strategic-dashboard-api/pkg/log"
)

type InsightsResponse struct {
	Filters  domain.SalesFilters `json:"filtros"`
	Insights []domain.Insight    `json:"insights"`
}

// GetInsights retorna as observações em texto calculadas sobre os filtros informados
func GetInsights(insighter insighting.Insighter, dataset DatasetVersioner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		if !requireDataset(w, r, dataset) {
			return
		}

		filters, err := parseFilters(r)
		if err != nil {
			handleServiceError(w, r, err, "Filtros inválidos")
			return
		}

		insights, err := insighter.GetInsights(r.Context(), filters)
		if err != nil {
			handleServiceError(w, r, err, "Erro ao gerar insights")
			return
		}

		logger.WithField("insights", len(insights)).Info("insights: observações geradas")

		writeJSON(w, r, InsightsResponse{
			Filters:  filters,
			Insights: insights,
		})
	}
}
