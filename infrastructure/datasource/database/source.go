// Package database expõe a tabela de vendas do Postgres como fonte do painel.
package database

import (
	"context"

	"github.com/pkg/errors"
	"github.com/vfg2006/strategic-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/strategic-dashboard-api/internal/domain"
	"github.com/vfg2006/strategic-dashboard-api/pkg/log"
)

const sourceName = "postgres"

type Source struct {
	repo repository.SalesRepository
}

func NewSource(repo repository.SalesRepository) *Source {
	return &Source{repo: repo}
}

func (s *Source) Name() string {
	return sourceName
}

func (s *Source) Fetch(ctx context.Context) ([]domain.Sale, error) {
	records, err := s.repo.ListSales(ctx, domain.FetchFilters{})
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar vendas do banco")
	}

	for i := range records {
		if err := records[i].Validate(); err != nil {
			return nil, errors.Wrapf(err, "venda %d do banco", i+1)
		}
	}

	log.ForContext(ctx).WithField("records", len(records)).Infof("database: %d vendas carregadas", len(records))
	return records, nil
}
