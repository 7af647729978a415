package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/strategic-dashboard-api/internal/scheduler"
	"github.com/vfg2006/strategic-dashboard-api/pkg/apiErrors"
)

// Tipos de job aceitos em /v1/cron/:type/run
const (
	CronJobTypeDataset = "dataset"
	CronJobTypeAll     = "all"
)

// CronJob job de atualização que pode ser disparado manualmente
type CronJob interface {
	TriggerManualSync() error
	GetStatus() scheduler.RefreshStatus
}

// CronJobServices contém os serviços de cron que podem ser executados manualmente
type CronJobServices struct {
	DatasetRefresh CronJob
}

func (s CronJobServices) jobs() map[string]CronJob {
	jobs := make(map[string]CronJob)
	if s.DatasetRefresh != nil {
		jobs[CronJobTypeDataset] = s.DatasetRefresh
	}
	return jobs
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		jobs := services.jobs()

		var selected []string
		switch cronType {
		case CronJobTypeDataset:
			if _, ok := jobs[cronType]; !ok {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de atualização do conjunto de vendas não disponível", nil)
				return
			}
			selected = []string{cronType}
		case CronJobTypeAll:
			for name := range jobs {
				selected = append(selected, name)
			}
		default:
			apiErrors.WriteError(w, apiErrors.ErrUnknownJob, "Tipo de cron job inválido. Valores aceitos: dataset, all", nil)
			return
		}

		for _, name := range selected {
			if err := jobs[name].TriggerManualSync(); err != nil {
				if errors.Is(err, scheduler.ErrRefreshAlreadyRunning) {
					apiErrors.WriteError(w, apiErrors.ErrJobAlreadyRunning, "Atualização já em andamento", map[string]string{"type": name})
					return
				}
				logrus.WithError(err).Error("Erro ao iniciar cron job")
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao iniciar cron job", nil)
				return
			}
		}

		writeJSONStatus(w, r, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		status := make(map[string]scheduler.RefreshStatus)
		for name, job := range services.jobs() {
			status[name] = job.GetStatus()
		}

		writeJSON(w, r, status)
	}
}
