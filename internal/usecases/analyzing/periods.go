package analyzing

import (
	"slices"

	"github.com/vfg2006/strategic-dashboard-api/internal/domain"
)

// PeriodsOf lista os meses (MM/YYYY) presentes nas vendas em ordem cronológica
func PeriodsOf(records []domain.Sale) []string {
	monthly := GroupByMonth(records)

	periods := make([]string, 0, len(monthly))
	for _, month := range monthly {
		periods = append(periods, month.Month)
	}
	return periods
}

// AvailablePeriods lista períodos, anos e meses distintos presentes nas vendas
func AvailablePeriods(records []domain.Sale) domain.AvailablePeriods {
	periods := PeriodsOf(records)

	years := make([]string, 0)
	months := make([]string, 0)
	for _, period := range periods {
		month, year := period[:2], period[3:]
		if !slices.Contains(years, year) {
			years = append(years, year)
		}
		if !slices.Contains(months, month) {
			months = append(months, month)
		}
	}
	slices.Sort(months)

	return domain.AvailablePeriods{
		Periods: periods,
		Years:   years,
		Months:  months,
	}
}
