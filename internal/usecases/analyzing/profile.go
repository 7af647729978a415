package analyzing

import (
	"slices"

	"github.com/vfg2006/strategic-dashboard-api/internal/domain"
)

// CustomerProfile conta clientes únicos por faixa etária e por sexo.
// As faixas saem ordenadas pelo limite inferior; sexo segue a ordem M, F.
func CustomerProfile(records []domain.Sale) domain.CustomerProfile {
	byBracket := make(map[domain.AgeBracket]map[string]struct{})
	brackets := make([]domain.AgeBracket, 0)

	bySex := make(map[domain.Sex]map[string]struct{})

	for _, record := range records {
		customers, exists := byBracket[record.AgeBracket]
		if !exists {
			customers = make(map[string]struct{})
			byBracket[record.AgeBracket] = customers
			brackets = append(brackets, record.AgeBracket)
		}
		customers[record.CustomerID] = struct{}{}

		sexCustomers, exists := bySex[record.Sex]
		if !exists {
			sexCustomers = make(map[string]struct{})
			bySex[record.Sex] = sexCustomers
		}
		sexCustomers[record.CustomerID] = struct{}{}
	}

	slices.SortStableFunc(brackets, func(a, b domain.AgeBracket) int {
		return a.LowerBound() - b.LowerBound()
	})

	profile := domain.CustomerProfile{
		ByAgeBracket: make([]domain.AgeBracketCount, 0, len(brackets)),
		BySex:        make([]domain.SexCount, 0, len(bySex)),
	}

	for _, bracket := range brackets {
		profile.ByAgeBracket = append(profile.ByAgeBracket, domain.AgeBracketCount{
			AgeBracket: bracket,
			Customers:  len(byBracket[bracket]),
		})
	}

	for _, sex := range domain.Sexes {
		customers, exists := bySex[sex]
		if !exists {
			continue
		}
		profile.BySex = append(profile.BySex, domain.SexCount{
			Sex:       sex,
			Label:     sex.Label(),
			Customers: len(customers),
		})
	}

	return profile
}
