// Package datasource define a porta de ingestão do conjunto de vendas.
// Toda fonte devolve registros já validados por domain.Sale.Validate.
package datasource

import (
	"context"

	"github.com/vfg2006/strategic-dashboard-api/internal/domain"
)

type Source interface {
	Name() string
	Fetch(ctx context.Context) ([]domain.Sale, error)
}
