package handler

import (
	"net/http"
	"time"

	"github.com/starfederation/datastar-go/datastar"
	"github.com/vfg2006/strategic-dashboard-api/internal/domain"
	"github.com/vfg2006/strategic-dashboard-api/internal/usecases/insighting"
	"github.com/vfg2006/strategic-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/strategic-dashboard-api/pkg/log"
)

const defaultStreamInterval = 5 * time.Second

// DashboardSignals sinais enviados ao front a cada atualização do painel
type DashboardSignals struct {
	Dashboard      *domain.Dashboard `json:"dashboard"`
	Insights       []domain.Insight  `json:"insights"`
	DatasetVersion uint64            `json:"versaoDados"`
}

// StreamDashboard abre um stream SSE que envia o painel filtrado como patch de sinais
// e reenvia sempre que a versão do conjunto de vendas mudar.
func StreamDashboard(reporter reporting.Reporter, interval time.Duration) http.HandlerFunc {
	if interval <= 0 {
		interval = defaultStreamInterval
	}

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		logger := log.ForContext(ctx)

		if !requireDataset(w, r, reporter) {
			return
		}

		filters, err := parseFilters(r)
		if err != nil {
			handleServiceError(w, r, err, "Filtros inválidos")
			return
		}

		// erros de filtro são respondidos antes de abrir o stream
		dashboard, err := reporter.GetDashboard(ctx, filters)
		if err != nil {
			handleServiceError(w, r, err, "Erro ao montar painel para o stream")
			return
		}

		sse := datastar.NewSSE(w, r)
		if err := patchDashboard(sse, dashboard); err != nil {
			logger.WithError(err).Warn("stream: erro ao enviar painel inicial")
			return
		}

		version := dashboard.DatasetVersion
		logger.WithField("version", version).Info("stream: painel inicial enviado")

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				logger.Info("stream: cliente desconectado")
				return
			case <-ticker.C:
				if reporter.DatasetVersion() == version {
					continue
				}

				dashboard, err := reporter.GetDashboard(ctx, filters)
				if err != nil {
					logger.WithError(err).Error("stream: erro ao recalcular painel")
					continue
				}

				if err := patchDashboard(sse, dashboard); err != nil {
					logger.WithError(err).Warn("stream: erro ao enviar painel atualizado")
					return
				}

				version = dashboard.DatasetVersion
				logger.WithField("version", version).Info("stream: painel atualizado enviado")
			}
		}
	}
}

func patchDashboard(sse *datastar.ServerSentEventGenerator, dashboard *domain.Dashboard) error {
	signals, err := json.Marshal(DashboardSignals{
		Dashboard:      dashboard,
		Insights:       insighting.FromDashboard(dashboard),
		DatasetVersion: dashboard.DatasetVersion,
	})
	if err != nil {
		return err
	}

	return sse.PatchSignals(signals)
}
