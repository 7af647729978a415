package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type ProductRankingResponse struct {
	Period         string               `json:"period"`          // Formato MM/YYYY
	PreviousPeriod string               `json:"previous_period"` // Formato MM/YYYY
	Ranking        []ProductRankingItem `json:"ranking"`
	LastUpdate     time.Time            `json:"last_update"`
}

type ProductRankingItem struct {
	Product          string          `json:"product"`
	Revenue          decimal.Decimal `json:"revenue"`
	Position         int             `json:"position"`
	PositionChange   int             `json:"position_change"` // Valor positivo = subiu, negativo = desceu, 0 = manteve
	PreviousPosition int             `json:"previous_position"`
}
