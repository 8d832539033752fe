package models

// MarketCapPoint is one day (compute method) or one week (api method) of a
// market-capitalization series.
//
// Close and SharesOutstanding are only set by the compute method.
//
// swagger:model MarketCapPoint
type MarketCapPoint struct {
	Date              string   `json:"date" example:"2025-01-02"`
	Close             *float64 `json:"close,omitempty" example:"243.85"`
	SharesOutstanding *float64 `json:"shares_outstanding,omitempty" example:"15115823000"`
	MarketCap         float64  `json:"market_cap" example:"3686013441550"`
}

// MarketCapSummary describes a series in human-readable terms.
//
// swagger:model MarketCapSummary
type MarketCapSummary struct {
	Symbol         string  `json:"symbol" example:"AAPL.US"`
	From           string  `json:"from" example:"2025-01-01"`
	To             string  `json:"to" example:"2025-03-31"`
	Method         string  `json:"method" example:"compute"`
	DataPoints     int     `json:"data_points" example:"61"`
	StartMarketCap string  `json:"start_market_cap" example:"$3.69T"`
	EndMarketCap   string  `json:"end_market_cap" example:"$3.37T"`
	MinMarketCap   string  `json:"min_market_cap" example:"$3.18T"`
	MaxMarketCap   string  `json:"max_market_cap" example:"$3.77T"`
	ChangePct      float64 `json:"change_pct" example:"-8.61"`
}
