package domain

// AvailablePeriods representa os períodos mensais presentes no conjunto de vendas
type AvailablePeriods struct {
	Periods []string `json:"periods"` // Lista de períodos no formato MM/YYYY
	Years   []string `json:"years"`   // Lista de anos únicos disponíveis
	Months  []string `json:"months"`  // Lista de meses únicos disponíveis
}

// FilterOptions opções de cada filtro, com a sentinela na primeira posição
type FilterOptions struct {
	Periods    []string         `json:"periodos"`
	Channels   []string         `json:"canais"`
	Regions    []string         `json:"regioes"`
	Categories []string         `json:"categorias"`
	Available  AvailablePeriods `json:"disponiveis"`
}
