// Package salesapi carrega o conjunto de vendas de uma API remota paginada.
package salesapi

import (
	"context"
	"net/url"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/strategic-dashboard-api/infrastructure/integrator/salesapi/salesapiclient"
	"github.com/vfg2006/strategic-dashboard-api/internal/config"
	"github.com/vfg2006/strategic-dashboard-api/internal/domain"
	"github.com/vfg2006/strategic-dashboard-api/pkg/log"
	"github.com/vfg2006/strategic-dashboard-api/pkg/utils"
	"golang.org/x/sync/errgroup"
)

const (
	defaultMaxConcurrentPages = 4
	maxPages                  = 10000
)

// ErrInvalidPagination indica total ou número de páginas incoerente na primeira página
var ErrInvalidPagination = errors.New("paginação inválida na resposta da API de vendas")

// SalesAPIIntegrator busca as vendas do período configurado página a página
type SalesAPIIntegrator struct {
	cfg    config.SalesAPI
	Client salesapiclient.Client
	now    func() time.Time
}

func New(cfg config.SalesAPI, client salesapiclient.Client) *SalesAPIIntegrator {
	return &SalesAPIIntegrator{
		cfg:    cfg,
		Client: client,
		now:    time.Now,
	}
}

func (s *SalesAPIIntegrator) Name() string {
	if endpoint, err := url.Parse(s.cfg.URL); err == nil && endpoint.Host != "" {
		return "api:" + endpoint.Host
	}
	return "api"
}

// Fetch busca a primeira página para descobrir o total e depois as demais em paralelo.
// A ordem final segue a ordem das páginas.
func (s *SalesAPIIntegrator) Fetch(ctx context.Context) ([]domain.Sale, error) {
	return s.FetchFiltered(ctx, s.defaultFilters())
}

func (s *SalesAPIIntegrator) FetchFiltered(ctx context.Context, filters domain.FetchFilters) ([]domain.Sale, error) {
	logger := log.ForContext(ctx).WithField("component", "salesapi")
	base := toParams(filters)

	first, err := s.getPage(ctx, base, 1)
	if err != nil {
		return nil, err
	}

	if first.Total < 0 || first.TotalPages < 0 || first.TotalPages > maxPages {
		return nil, errors.Wrapf(ErrInvalidPagination, "total=%d totalPaginas=%d", first.Total, first.TotalPages)
	}

	pages := make([][]domain.Sale, max(first.TotalPages, 1))
	pages[0] = first.Data

	limit := s.cfg.MaxConcurrentPages
	if limit <= 0 {
		limit = defaultMaxConcurrentPages
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for page := 2; page <= first.TotalPages; page++ {
		g.Go(func() error {
			resp, err := s.getPage(gctx, base, page)
			if err != nil {
				return err
			}
			pages[page-1] = resp.Data
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	size := 0
	for _, page := range pages {
		size += len(page)
	}

	records := make([]domain.Sale, 0, size)
	for _, page := range pages {
		records = append(records, page...)
	}

	for i := range records {
		if err := records[i].Validate(); err != nil {
			return nil, errors.Wrapf(err, "venda %d da API", i+1)
		}
	}

	logger.WithFields(log.Fields{
		"records": len(records),
		"pages":   len(pages),
	}).Infof("salesapi: %d vendas recebidas em %d páginas", len(records), len(pages))

	return records, nil
}

func (s *SalesAPIIntegrator) getPage(ctx context.Context, base salesapiclient.SalesPageParams, page int) (salesapiclient.SalesPageResponse, error) {
	params := base
	params.Page = page

	resp, err := s.Client.GetSalesPage(ctx, params)
	if err != nil {
		return resp, errors.Wrapf(err, "erro ao buscar página %d", page)
	}
	return resp, nil
}

// defaultFilters cobre os últimos LookbackMonths meses completos até hoje
func (s *SalesAPIIntegrator) defaultFilters() domain.FetchFilters {
	if s.cfg.LookbackMonths <= 0 {
		return domain.FetchFilters{}
	}

	end := s.now()
	currentMonth, _ := utils.MonthRange(end)
	startMonth := currentMonth.AddDate(0, -(s.cfg.LookbackMonths - 1), 0)
	return domain.FetchFilters{
		StartDate: &startMonth,
		EndDate:   &end,
	}
}

func toParams(filters domain.FetchFilters) salesapiclient.SalesPageParams {
	params := salesapiclient.SalesPageParams{}
	if filters.StartDate != nil {
		params.StartDate = filters.StartDate.Format(time.DateOnly)
	}
	if filters.EndDate != nil {
		params.EndDate = filters.EndDate.Format(time.DateOnly)
	}
	if filters.Channel != nil {
		params.Channel = string(*filters.Channel)
	}
	if filters.Region != nil {
		params.Region = string(*filters.Region)
	}
	return params
}
