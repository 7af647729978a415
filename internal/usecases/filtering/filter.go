// Package filtering aplica os filtros do painel sobre o conjunto de vendas
package filtering

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/vfg2006/strategic-dashboard-api/internal/domain"
	"github.com/vfg2006/strategic-dashboard-api/internal/usecases/analyzing"
)

var (
	ErrInvalidFilter = errors.New("filtro inválido")
	ErrInvalidPeriod = errors.New("período deve estar no formato MM/YYYY")
)

// ParsePeriod lê um período MM/YYYY
func ParsePeriod(period string) (year int, month int, err error) {
	parts := strings.Split(strings.TrimSpace(period), "/")
	if len(parts) != 2 || len(parts[0]) != 2 || len(parts[1]) != 4 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidPeriod, period)
	}

	month, err = strconv.Atoi(parts[0])
	if err != nil || month < 1 || month > 12 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidPeriod, period)
	}

	year, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidPeriod, period)
	}

	return year, month, nil
}

// Validate verifica período, canal, região e intervalo de valores
func Validate(filters domain.SalesFilters) error {
	filters = filters.Normalize()

	if filters.Period != domain.AllPeriods {
		if _, _, err := ParsePeriod(filters.Period); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidFilter, err)
		}
	}

	if filters.Channel != domain.AllChannels {
		if _, err := domain.ParseChannel(filters.Channel); err != nil {
			return fmt.Errorf("%w: canal %q", ErrInvalidFilter, filters.Channel)
		}
	}

	if filters.Region != domain.AllRegions {
		if _, err := domain.ParseRegion(filters.Region); err != nil {
			return fmt.Errorf("%w: região %q", ErrInvalidFilter, filters.Region)
		}
	}

	if filters.MinAmount != nil && filters.MaxAmount != nil && filters.MinAmount.GreaterThan(*filters.MaxAmount) {
		return fmt.Errorf("%w: valor mínimo maior que o valor máximo", ErrInvalidFilter)
	}

	return nil
}

// Apply retorna as vendas que atendem a todos os filtros.
// O resultado é sempre um slice novo, nunca o array da entrada.
func Apply(records []domain.Sale, filters domain.SalesFilters) []domain.Sale {
	filters = filters.Normalize()

	var year, month int
	byPeriod := false
	if filters.Period != domain.AllPeriods {
		y, m, err := ParsePeriod(filters.Period)
		if err == nil {
			year, month, byPeriod = y, m, true
		}
	}

	product := strings.ToLower(strings.TrimSpace(filters.Product))

	result := make([]domain.Sale, 0, len(records))
	for _, record := range records {
		if byPeriod && (record.SaleDate.Year() != year || int(record.SaleDate.Month()) != month) {
			continue
		}
		if filters.Channel != domain.AllChannels && !strings.EqualFold(string(record.Channel), filters.Channel) {
			continue
		}
		if filters.Region != domain.AllRegions && !strings.EqualFold(string(record.Region), filters.Region) {
			continue
		}
		if filters.Category != domain.AllCategories && record.Category != filters.Category {
			continue
		}
		if product != "" && !strings.Contains(strings.ToLower(record.Product), product) {
			continue
		}
		if filters.MinAmount != nil && record.Amount.LessThan(*filters.MinAmount) {
			continue
		}
		if filters.MaxAmount != nil && record.Amount.GreaterThan(*filters.MaxAmount) {
			continue
		}

		result = append(result, record)
	}

	return result
}

// Options monta as opções de cada filtro a partir do conjunto completo.
// Canais, regiões e categorias seguem a ordem de primeira ocorrência;
// períodos seguem a ordem cronológica.
func Options(records []domain.Sale) domain.FilterOptions {
	options := domain.FilterOptions{
		Periods:    []string{domain.AllPeriods},
		Channels:   []string{domain.AllChannels},
		Regions:    []string{domain.AllRegions},
		Categories: []string{domain.AllCategories},
		Available:  analyzing.AvailablePeriods(records),
	}

	options.Periods = append(options.Periods, options.Available.Periods...)

	seenChannels := make(map[domain.Channel]struct{})
	seenRegions := make(map[domain.Region]struct{})
	seenCategories := make(map[string]struct{})

	for _, record := range records {
		if _, seen := seenChannels[record.Channel]; !seen {
			seenChannels[record.Channel] = struct{}{}
			options.Channels = append(options.Channels, string(record.Channel))
		}
		if _, seen := seenRegions[record.Region]; !seen {
			seenRegions[record.Region] = struct{}{}
			options.Regions = append(options.Regions, string(record.Region))
		}
		if _, seen := seenCategories[record.Category]; !seen {
			seenCategories[record.Category] = struct{}{}
			options.Categories = append(options.Categories, record.Category)
		}
	}

	return options
}
