package handler

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/strategic-dashboard-api/internal/domain"
	"github.com/vfg2006/strategic-dashboard-api/internal/usecases/exporting"
	exportmocks "github.com/vfg2006/strategic-dashboard-api/internal/usecases/exporting/mocks"
	"github.com/vfg2006/strategic-dashboard-api/internal/usecases/reporting/mocks"
	"github.com/vfg2006/strategic-dashboard-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func TestExportHandlers(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		handler  func(exporter *exportmocks.MockExporter, reporter *mocks.MockReporter) http.HandlerFunc
		setup    func(exporter *exportmocks.MockExporter)
		validate func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name:    "CSV com nome de arquivo",
			path:    "/v1/export/sales.csv?canal=PDV",
			handler: func(e *exportmocks.MockExporter, r *mocks.MockReporter) http.HandlerFunc { return ExportSalesCSV(e, r) },
			setup: func(exporter *exportmocks.MockExporter) {
				exporter.EXPECT().ExportSalesCSV(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, w io.Writer, filters domain.SalesFilters) error {
						assert.Equal(t, "PDV", filters.Channel)
						_, err := io.WriteString(w, "CLIENTE_ID;PRODUTO\nC1;Notebook\n")
						return err
					})
				exporter.EXPECT().FileName(exporting.SalesFilePrefix, "csv").Return("dashboard_dados_2024-05-24.csv")
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rec.Code)
				assert.Equal(t, "text/csv; charset=utf-8", rec.Header().Get("Content-Type"))
				assert.Equal(t, `attachment; filename="dashboard_dados_2024-05-24.csv"`, rec.Header().Get("Content-Disposition"))
				assert.Equal(t, "CLIENTE_ID;PRODUTO\nC1;Notebook\n", rec.Body.String())
			},
		},
		{
			name:    "JSON das vendas",
			path:    "/v1/export/sales.json",
			handler: func(e *exportmocks.MockExporter, r *mocks.MockReporter) http.HandlerFunc { return ExportSalesJSON(e, r) },
			setup: func(exporter *exportmocks.MockExporter) {
				exporter.EXPECT().ExportSalesJSON(gomock.Any(), gomock.Any(), domain.DefaultSalesFilters()).
					DoAndReturn(func(_ context.Context, w io.Writer, _ domain.SalesFilters) error {
						_, err := io.WriteString(w, "[]")
						return err
					})
				exporter.EXPECT().FileName(exporting.SalesJSONFilePrefix, "json").Return("dados_vendas_2024-05-24.json")
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rec.Code)
				assert.Equal(t, "[]", rec.Body.String())
				assert.Contains(t, rec.Header().Get("Content-Disposition"), "dados_vendas_2024-05-24.json")
			},
		},
		{
			name:    "PDF do painel",
			path:    "/v1/export/dashboard.pdf",
			handler: func(e *exportmocks.MockExporter, r *mocks.MockReporter) http.HandlerFunc { return ExportDashboardPDF(e, r) },
			setup: func(exporter *exportmocks.MockExporter) {
				exporter.EXPECT().ExportDashboardPDF(gomock.Any(), gomock.Any()).Return([]byte("%PDF-1.3"), nil)
				exporter.EXPECT().FileName(exporting.DashboardFilePrefix, "pdf").Return("dashboard_resumo_2024-05-24.pdf")
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rec.Code)
				assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
				assert.Equal(t, "8", rec.Header().Get("Content-Length"))
			},
		},
		{
			name:    "Falha na renderização do PDF",
			path:    "/v1/export/dashboard.pdf",
			handler: func(e *exportmocks.MockExporter, r *mocks.MockReporter) http.HandlerFunc { return ExportDashboardPDF(e, r) },
			setup: func(exporter *exportmocks.MockExporter) {
				exporter.EXPECT().ExportDashboardPDF(gomock.Any(), gomock.Any()).
					Return(nil, exporting.NewExportError(exporting.ErrRenderPDF, apiErrors.ErrExportFailed, "fonte ausente"))
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusInternalServerError, rec.Code)
				assert.Contains(t, rec.Body.String(), apiErrors.ErrExportFailed)
				assert.Empty(t, rec.Header().Get("Content-Disposition"))
			},
		},
		{
			name:    "Falha genérica no JSON do painel",
			path:    "/v1/export/dashboard.json",
			handler: func(e *exportmocks.MockExporter, r *mocks.MockReporter) http.HandlerFunc { return ExportDashboardJSON(e, r) },
			setup: func(exporter *exportmocks.MockExporter) {
				exporter.EXPECT().ExportDashboardJSON(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("disco cheio"))
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusInternalServerError, rec.Code)
				assert.Contains(t, rec.Body.String(), apiErrors.ErrInternalServer)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			exporter := exportmocks.NewMockExporter(ctrl)
			reporter := mocks.NewMockReporter(ctrl)
			reporter.EXPECT().DatasetVersion().Return(uint64(1))
			tt.setup(exporter)

			rec := httptest.NewRecorder()
			tt.handler(exporter, reporter).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			tt.validate(t, rec)
		})
	}
}
