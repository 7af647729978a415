package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/vfg2006/strategic-dashboard-api/internal/domain"
	"github.com/vfg2006/strategic-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/strategic-dashboard-api/pkg/log"
)

// SnapshotHistory lista os resumos mensais gravados a cada atualização
type SnapshotHistory interface {
	ListBySource(ctx context.Context, source string) ([]*domain.MonthlySalesSnapshot, error)
}

type HistoryResponse struct {
	Source    string                         `json:"fonte"`
	Snapshots []*domain.MonthlySalesSnapshot `json:"resumos"`
}

// GetSalesHistory retorna o histórico de resumos mensais da fonte (fonte na query ou a fonte configurada).
// Sem banco de dados o histórico não existe e a rota responde 503.
func GetSalesHistory(history SnapshotHistory, defaultSource string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		if history == nil {
			apiErrors.WriteError(w, apiErrors.ErrDatasetUnavailable, "Histórico mensal indisponível sem banco de dados", nil)
			return
		}

		source := strings.TrimSpace(r.URL.Query().Get("fonte"))
		if source == "" {
			source = defaultSource
		}

		snapshots, err := history.ListBySource(r.Context(), source)
		if err != nil {
			logger.WithError(err).WithField("source", source).Error("history: erro ao buscar resumos mensais")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar histórico mensal", nil)
			return
		}

		if snapshots == nil {
			snapshots = []*domain.MonthlySalesSnapshot{}
		}

		writeJSON(w, r, HistoryResponse{
			Source:    source,
			Snapshots: snapshots,
		})
	}
}
