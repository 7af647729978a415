package handler

import (
	"net/http"
	"strings"

	"github.com/vfg2006/strategic-dashboard-api/internal/usecases/ranking"
	"github.com/vfg2006/strategic-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/strategic-dashboard-api/pkg/log"
)

// GetProductRanking compara o ranking de produtos do período (periodo=MM/YYYY) com o mês anterior
func GetProductRanking(service ranking.RankingService, dataset DatasetVersioner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		if !requireDataset(w, r, dataset) {
			return
		}

		period := strings.TrimSpace(r.URL.Query().Get("periodo"))
		limit, err := parseLimit(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		logger.WithField("period", period).Info("products-ranking: buscando ranking de produtos")

		result, err := service.GetProductRanking(r.Context(), period, limit)
		if err != nil {
			handleServiceError(w, r, err, "Erro ao buscar ranking de produtos")
			return
		}

		writeJSON(w, r, result)
	}
}
