package handler

import (
	"net/http"
	"time"
)

type HealthcheckResponse struct {
	Status         string    `json:"status"`
	DatasetVersion uint64    `json:"versaoDados"`
	Time           time.Time `json:"horario"`
}

// HealthcheckHandler responde 200 mesmo antes da primeira carga; o status indica "carregando"
func HealthcheckHandler(dataset DatasetVersioner) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		version := dataset.DatasetVersion()

		status := "ok"
		if version == 0 {
			status = "carregando"
		}

		writeJSON(w, r, HealthcheckResponse{
			Status:         status,
			DatasetVersion: version,
			Time:           time.Now(),
		})
	})
}
