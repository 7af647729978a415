package exporting

import (
	"context"
	"io"
	"time"

	"github.com/vfg2006/strategic-dashboard-api/internal/domain"
	"github.com/vfg2006/strategic-dashboard-api/pkg/apiErrors"
)

// Prefixos dos arquivos exportados
const (
	SalesFilePrefix     = "dashboard_dados"
	SalesJSONFilePrefix = "dados_vendas"
	DashboardFilePrefix = "dashboard_resumo"
)

// PDFRenderer gera o relatório executivo em PDF
type PDFRenderer interface {
	RenderDashboard(ctx context.Context, dashboard *domain.Dashboard, insights []domain.Insight) ([]byte, error)
}

// DashboardSource fornece as vendas filtradas e o painel calculado
type DashboardSource interface {
	FilteredSales(ctx context.Context, filters domain.SalesFilters) ([]domain.Sale, error)
	GetDashboard(ctx context.Context, filters domain.SalesFilters) (*domain.Dashboard, error)
}

type InsightSource interface {
	GetInsights(ctx context.Context, filters domain.SalesFilters) ([]domain.Insight, error)
}

type Exporter interface {
	ExportSalesCSV(ctx context.Context, w io.Writer, filters domain.SalesFilters) error
	ExportSalesJSON(ctx context.Context, w io.Writer, filters domain.SalesFilters) error
	ExportDashboardJSON(ctx context.Context, w io.Writer, filters domain.SalesFilters) error
	ExportDashboardPDF(ctx context.Context, filters domain.SalesFilters) ([]byte, error)
	FileName(prefix string, ext string) string
}

type Service struct {
	source   DashboardSource
	insights InsightSource
	pdf      PDFRenderer
	now      func() time.Time
}

func NewService(source DashboardSource, insights InsightSource, pdf PDFRenderer) *Service {
	return &Service{
		source:   source,
		insights: insights,
		pdf:      pdf,
		now:      time.Now,
	}
}

func (s *Service) ExportSalesCSV(ctx context.Context, w io.Writer, filters domain.SalesFilters) error {
	records, err := s.source.FilteredSales(ctx, filters)
	if err != nil {
		return err
	}
	return WriteSalesCSV(w, records)
}

func (s *Service) ExportSalesJSON(ctx context.Context, w io.Writer, filters domain.SalesFilters) error {
	records, err := s.source.FilteredSales(ctx, filters)
	if err != nil {
		return err
	}
	return WriteSalesJSON(w, records)
}

func (s *Service) ExportDashboardJSON(ctx context.Context, w io.Writer, filters domain.SalesFilters) error {
	dashboard, err := s.source.GetDashboard(ctx, filters)
	if err != nil {
		return err
	}
	return WriteDashboardJSON(w, dashboard)
}

// ExportDashboardPDF gera o relatório executivo com o painel e os insights dos filtros
func (s *Service) ExportDashboardPDF(ctx context.Context, filters domain.SalesFilters) ([]byte, error) {
	dashboard, err := s.source.GetDashboard(ctx, filters)
	if err != nil {
		return nil, err
	}

	insights, err := s.insights.GetInsights(ctx, filters)
	if err != nil {
		return nil, err
	}

	data, err := s.pdf.RenderDashboard(ctx, dashboard, insights)
	if err != nil {
		return nil, NewExportError(ErrRenderPDF, apiErrors.ErrExportFailed, err.Error())
	}
	return data, nil
}

func (s *Service) FileName(prefix string, ext string) string {
	return FileName(prefix, ext, s.now())
}
