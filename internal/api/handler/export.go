package handler

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/strategic-dashboard-api/internal/domain"
	"github.com/vfg2006/strategic-dashboard-api/internal/usecases/exporting"
	"github.com/vfg2006/strategic-dashboard-api/pkg/log"
)

type exportWriter func(ctx context.Context, w io.Writer, filters domain.SalesFilters) error

// exportFile gera o arquivo em memória e só então responde; falhas viram erro JSON em vez de arquivo truncado
func exportFile(name string, exporter exporting.Exporter, dataset DatasetVersioner, contentType, prefix, ext string, write exportWriter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - " + name)

		if !requireDataset(w, r, dataset) {
			return
		}

		filters, err := parseFilters(r)
		if err != nil {
			handleServiceError(w, r, err, "Filtros inválidos")
			return
		}

		var buf bytes.Buffer
		if err := write(r.Context(), &buf, filters); err != nil {
			handleServiceError(w, r, err, "Erro ao exportar dados")
			return
		}

		fileName := exporter.FileName(prefix, ext)
		log.ForContext(r.Context()).WithFields(log.Fields{
			"file":  fileName,
			"bytes": buf.Len(),
		}).Info("export: arquivo gerado")

		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
		w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
		if _, err := buf.WriteTo(w); err != nil {
			log.ForContext(r.Context()).WithError(err).Error("export: erro ao enviar arquivo")
		}
	}
}

func ExportSalesCSV(exporter exporting.Exporter, dataset DatasetVersioner) http.HandlerFunc {
	return exportFile("ExportSalesCSV", exporter, dataset, "text/csv; charset=utf-8",
		exporting.SalesFilePrefix, "csv", exporter.ExportSalesCSV)
}

func ExportSalesJSON(exporter exporting.Exporter, dataset DatasetVersioner) http.HandlerFunc {
	return exportFile("ExportSalesJSON", exporter, dataset, "application/json",
		exporting.SalesJSONFilePrefix, "json", exporter.ExportSalesJSON)
}

func ExportDashboardJSON(exporter exporting.Exporter, dataset DatasetVersioner) http.HandlerFunc {
	return exportFile("ExportDashboardJSON", exporter, dataset, "application/json",
		exporting.DashboardFilePrefix, "json", exporter.ExportDashboardJSON)
}

// ExportDashboardPDF gera o relatório executivo em PDF
func ExportDashboardPDF(exporter exporting.Exporter, dataset DatasetVersioner) http.HandlerFunc {
	return exportFile("ExportDashboardPDF", exporter, dataset, "application/pdf",
		exporting.DashboardFilePrefix, "pdf", func(ctx context.Context, w io.Writer, filters domain.SalesFilters) error {
			data, err := exporter.ExportDashboardPDF(ctx, filters)
			if err != nil {
				return err
			}
			_, err = w.Write(data)
			return err
		})
}
