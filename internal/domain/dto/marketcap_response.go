package dto

import "github.com/guttosm/eodpulse/internal/domain/models"

// MarketCapResponse is the body of GET /api/v1/market-cap and the JSON output
// of the marketcap command.
type MarketCapResponse struct {
	Summary models.MarketCapSummary `json:"summary"`
	Series  []models.MarketCapPoint `json:"series"`
}
