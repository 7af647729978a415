package reporting

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/vfg2006/strategic-dashboard-api/internal/domain"
)

const dashboardKeyPrefix = "dashboard:"

// Cache armazena painéis já calculados. Get retorna ErrCacheMiss quando a chave não existe.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	DeletePrefix(ctx context.Context, prefix string) error
}

// NoopCache é usado quando o Redis está desabilitado
type NoopCache struct{}

func (NoopCache) Get(context.Context, string) ([]byte, error) {
	return nil, ErrCacheMiss
}

func (NoopCache) Set(context.Context, string, []byte, time.Duration) error {
	return nil
}

func (NoopCache) DeletePrefix(context.Context, string) error {
	return nil
}

// DashboardKey identifica o painel de uma versão do conjunto de vendas para uma combinação de filtros
func DashboardKey(version uint64, filters domain.SalesFilters) string {
	filters = filters.Normalize()

	minAmount, maxAmount := "", ""
	if filters.MinAmount != nil {
		minAmount = filters.MinAmount.String()
	}
	if filters.MaxAmount != nil {
		maxAmount = filters.MaxAmount.String()
	}

	parts := []string{
		filters.Period,
		strings.ToUpper(filters.Channel),
		strings.ToLower(filters.Region),
		filters.Category,
		strings.ToLower(strings.TrimSpace(filters.Product)),
		minAmount,
		maxAmount,
	}

	return fmt.Sprintf("%sv%d:%s", dashboardKeyPrefix, version, strings.Join(parts, "|"))
}
