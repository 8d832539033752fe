package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"

	"github.com/guttosm/eodpulse/internal/domain/models"
	"github.com/guttosm/eodpulse/internal/endpoint"
)

const sharesOutstandingFilter = "Highlights::SharesOutstanding"

// EODPrices fetches daily bars for symbol between from and to (inclusive,
// YYYY-MM-DD).
func (c *Client) EODPrices(ctx context.Context, symbol, from, to string) ([]models.PriceBar, error) {
	body, err := c.Query(ctx, endpoint.Query{Endpoint: "eod", Symbol: symbol, From: from, To: to})
	if err != nil {
		return nil, err
	}
	if err := apiError("EOD", body); err != nil {
		return nil, err
	}
	return decode[[]models.PriceBar](body, "eod")
}

// SharesOutstanding fetches the current shares-outstanding figure. The bool is
// false when the API has no usable value.
func (c *Client) SharesOutstanding(ctx context.Context, symbol string) (float64, bool, error) {
	body, err := c.Query(ctx, endpoint.Query{Endpoint: "fundamentals", Symbol: symbol, Filter: sharesOutstandingFilter})
	if err != nil {
		return 0, false, err
	}
	if err := apiError("Fundamentals", body); err != nil {
		return 0, false, err
	}
	return parseSharesOutstanding(body)
}

// HistoricalMarketCap fetches the provider's precomputed market cap series,
// sorted by position.
func (c *Client) HistoricalMarketCap(ctx context.Context, symbol, from, to string) ([]models.MarketCapPoint, error) {
	body, err := c.Query(ctx, endpoint.Query{Endpoint: "historical-market-cap", Symbol: symbol, From: from, To: to})
	if err != nil {
		return nil, err
	}
	if err := apiError("Historical Market Cap", body); err != nil {
		return nil, err
	}
	return decodeHistoricalMarketCap(body)
}

// The filtered fundamentals call answers either with a bare number or with an
// object carrying SharesOutstanding; both numbers and numeric strings occur.
func parseSharesOutstanding(body []byte) (float64, bool, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return 0, false, fmt.Errorf("%w: fundamentals: %v", ErrMalformedResponse, err)
	}
	if obj, ok := v.(map[string]any); ok {
		v = obj["SharesOutstanding"]
	}
	switch n := v.(type) {
	case json.Number:
		f, err := n.Float64()
		return f, err == nil, nil
	case string:
		f, err := strconv.ParseFloat(n, 64)
		return f, err == nil, nil
	default:
		return 0, false, nil
	}
}

type marketCapRow struct {
	Date  string   `json:"date"`
	Value *float64 `json:"value"`
}

// decodeHistoricalMarketCap accepts a list of rows or an object keyed by
// position ("0", "1", ...). Rows lacking a date or a value are dropped.
func decodeHistoricalMarketCap(body []byte) ([]models.MarketCapPoint, error) {
	var rows []marketCapRow
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var keyed map[string]marketCapRow
		if err := json.Unmarshal(trimmed, &keyed); err != nil {
			return nil, fmt.Errorf("%w: historical-market-cap: %v", ErrMalformedResponse, err)
		}
		keys := make([]string, 0, len(keyed))
		for k := range keyed {
			keys = append(keys, k)
		}
		sort.Slice(keys, func(i, j int) bool {
			a, b := positionKey(keys[i]), positionKey(keys[j])
			if a != b {
				return a < b
			}
			return keys[i] < keys[j]
		})
		for _, k := range keys {
			rows = append(rows, keyed[k])
		}
	} else if err := json.Unmarshal(trimmed, &rows); err != nil {
		return nil, fmt.Errorf("%w: historical-market-cap: %v", ErrMalformedResponse, err)
	}

	points := make([]models.MarketCapPoint, 0, len(rows))
	for _, r := range rows {
		if r.Date == "" || r.Value == nil {
			continue
		}
		points = append(points, models.MarketCapPoint{Date: r.Date, MarketCap: *r.Value})
	}
	return points, nil
}

// positionKey orders digit-only keys numerically; anything else sorts as 0.
func positionKey(k string) int {
	if k == "" {
		return 0
	}
	for _, r := range k {
		if r < '0' || r > '9' {
			return 0
		}
	}
	n, err := strconv.Atoi(k)
	if err != nil {
		return 0
	}
	return n
}

// apiError detects an error object returned with a success status.
func apiError(source string, body []byte) error {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &obj); err != nil {
		return nil
	}
	raw, ok := obj["error"]
	if !ok {
		return nil
	}
	var msg string
	if err := json.Unmarshal(raw, &msg); err != nil {
		msg = string(raw)
	}
	return &APIError{Source: source, Message: msg}
}

func decode[T any](body []byte, what string) (T, error) {
	var v T
	if err := json.Unmarshal(body, &v); err != nil {
		return v, fmt.Errorf("%w: %s: %v", ErrMalformedResponse, what, err)
	}
	return v, nil
}
