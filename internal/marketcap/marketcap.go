// Package marketcap derives market-capitalization series and their summaries.
//
// The compute method multiplies each daily price by a single shares-outstanding
// figure taken at request time, so historical share-count changes are not
// reflected in older rows.
package marketcap

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/guttosm/eodpulse/internal/domain/models"
)

// Supported methods.
const (
	MethodCompute = "compute"
	MethodAPI     = "api"
)

var (
	ErrNoPrices    = errors.New("no price data returned")
	ErrNoShares    = errors.New("could not retrieve SharesOutstanding")
	ErrEmptySeries = errors.New("no data points produced")
)

var printer = message.NewPrinter(language.English)

// ValidMethod reports whether m names a supported method.
func ValidMethod(m string) bool {
	return m == MethodCompute || m == MethodAPI
}

// Compute builds a series of shares x price. Bars without a usable price are
// skipped. shares must be positive.
func Compute(bars []models.PriceBar, shares float64) ([]models.MarketCapPoint, error) {
	if shares <= 0 {
		return nil, ErrNoShares
	}
	dShares := decimal.NewFromFloat(shares)

	points := make([]models.MarketCapPoint, 0, len(bars))
	for _, b := range bars {
		price, ok := b.Price()
		if !ok {
			continue
		}
		mcap, _ := dShares.Mul(decimal.NewFromFloat(price)).Float64()
		px, sharesOut := price, shares
		points = append(points, models.MarketCapPoint{
			Date:              b.Date,
			Close:             &px,
			SharesOutstanding: &sharesOut,
			MarketCap:         mcap,
		})
	}
	return points, nil
}

// Summarize reports start, end, min and max of the series plus the percentage
// change between first and last point.
func Summarize(points []models.MarketCapPoint, symbol, from, to, method string) (models.MarketCapSummary, error) {
	if len(points) == 0 {
		return models.MarketCapSummary{}, ErrEmptySeries
	}
	first, last := points[0].MarketCap, points[len(points)-1].MarketCap
	lo, hi := first, first
	for _, p := range points[1:] {
		if p.MarketCap < lo {
			lo = p.MarketCap
		}
		if p.MarketCap > hi {
			hi = p.MarketCap
		}
	}

	return models.MarketCapSummary{
		Symbol:         symbol,
		From:           from,
		To:             to,
		Method:         method,
		DataPoints:     len(points),
		StartMarketCap: FormatValue(first),
		EndMarketCap:   FormatValue(last),
		MinMarketCap:   FormatValue(lo),
		MaxMarketCap:   FormatValue(hi),
		ChangePct:      ChangePct(first, last),
	}, nil
}

// ChangePct returns (last/first - 1) x 100 rounded to two decimals, or 0 when
// first is zero.
func ChangePct(first, last float64) float64 {
	if first == 0 {
		return 0
	}
	one := decimal.NewFromInt(1)
	hundred := decimal.NewFromInt(100)
	pct, _ := decimal.NewFromFloat(last).
		Div(decimal.NewFromFloat(first)).
		Sub(one).
		Mul(hundred).
		Round(2).
		Float64()
	return pct
}

// FormatValue renders a market cap as $1.23T, $4.56B, $7.89M or $12,345.
func FormatValue(v float64) string {
	switch {
	case v >= 1e12:
		return fmt.Sprintf("$%.2fT", v/1e12)
	case v >= 1e9:
		return fmt.Sprintf("$%.2fB", v/1e9)
	case v >= 1e6:
		return fmt.Sprintf("$%.2fM", v/1e6)
	default:
		return printer.Sprintf("$%.0f", v)
	}
}
