package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/guttosm/eodpulse/internal/domain/dto"
	"github.com/guttosm/eodpulse/internal/domain/models"
	"github.com/guttosm/eodpulse/internal/endpoint"
	"github.com/guttosm/eodpulse/internal/logger"
	"github.com/guttosm/eodpulse/internal/marketcap"
)

const dateLayout = "2006-01-02"

// MarketDataSource supplies the series a market cap is derived from.
type MarketDataSource interface {
	EODPrices(ctx context.Context, symbol, from, to string) ([]models.PriceBar, error)
	SharesOutstanding(ctx context.Context, symbol string) (float64, bool, error)
	HistoricalMarketCap(ctx context.Context, symbol, from, to string) ([]models.MarketCapPoint, error)
}

// MarketCapRequest selects a symbol, an inclusive date range and a method.
// An empty Method means compute.
type MarketCapRequest struct {
	Symbol string
	From   string
	To     string
	Method string
}

// MarketCapService builds market-cap series with their summary.
type MarketCapService interface {
	Series(ctx context.Context, req MarketCapRequest) (*dto.MarketCapResponse, error)
}

type marketCapService struct {
	src MarketDataSource
}

func NewMarketCapService(src MarketDataSource) MarketCapService {
	return &marketCapService{src: src}
}

func (s *marketCapService) Series(ctx context.Context, req MarketCapRequest) (*dto.MarketCapResponse, error) {
	req, err := normalize(req)
	if err != nil {
		return nil, err
	}

	var points []models.MarketCapPoint
	switch req.Method {
	case marketcap.MethodAPI:
		points, err = s.src.HistoricalMarketCap(ctx, req.Symbol, req.From, req.To)
	default:
		points, err = s.compute(ctx, req)
	}
	if err != nil {
		return nil, err
	}

	summary, err := marketcap.Summarize(points, req.Symbol, req.From, req.To, req.Method)
	if err != nil {
		return nil, err
	}
	logger.L().Debug().
		Str("symbol", req.Symbol).
		Str("method", req.Method).
		Int("points", len(points)).
		Msg("market cap series built")

	return &dto.MarketCapResponse{Summary: summary, Series: points}, nil
}

// compute fetches prices first so that an empty range costs a single call.
func (s *marketCapService) compute(ctx context.Context, req MarketCapRequest) ([]models.MarketCapPoint, error) {
	bars, err := s.src.EODPrices(ctx, req.Symbol, req.From, req.To)
	if err != nil {
		return nil, err
	}
	if len(bars) == 0 {
		return nil, fmt.Errorf("%w for %s in %s..%s", marketcap.ErrNoPrices, req.Symbol, req.From, req.To)
	}

	shares, ok, err := s.src.SharesOutstanding(ctx, req.Symbol)
	if err != nil {
		return nil, err
	}
	if !ok || shares <= 0 {
		return nil, fmt.Errorf("%w for %s: the fundamentals endpoint may not cover this instrument", marketcap.ErrNoShares, req.Symbol)
	}
	return marketcap.Compute(bars, shares)
}

func normalize(req MarketCapRequest) (MarketCapRequest, error) {
	req.Symbol = strings.TrimSpace(req.Symbol)
	req.Method = strings.TrimSpace(req.Method)
	if req.Method == "" {
		req.Method = marketcap.MethodCompute
	}

	if req.Symbol == "" {
		return req, fmt.Errorf("%w: symbol is required", endpoint.ErrInvalidInput)
	}
	if !marketcap.ValidMethod(req.Method) {
		return req, fmt.Errorf("%w: method must be %q or %q, got %q", endpoint.ErrInvalidInput, marketcap.MethodCompute, marketcap.MethodAPI, req.Method)
	}
	for _, d := range [][2]string{{"from", req.From}, {"to", req.To}} {
		if _, err := time.Parse(dateLayout, d[1]); err != nil {
			return req, fmt.Errorf("%w: %s must be a YYYY-MM-DD date, got %q", endpoint.ErrInvalidInput, d[0], d[1])
		}
	}
	return req, nil
}
