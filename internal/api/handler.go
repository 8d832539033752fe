package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/eodpulse/internal/client"
	"github.com/guttosm/eodpulse/internal/domain/dto"
	"github.com/guttosm/eodpulse/internal/endpoint"
	"github.com/guttosm/eodpulse/internal/marketcap"
	"github.com/guttosm/eodpulse/internal/middleware"
	"github.com/guttosm/eodpulse/internal/service"
)

// Handler exposes the query and market-cap operations over HTTP.
//
// Responsibilities:
//   - Translate query-string parameters into service requests
//   - Map service errors onto HTTP status codes
//   - Return upstream JSON untouched, or structured DTOs for derived data
type Handler struct {
	query     service.QueryService
	marketCap service.MarketCapService
}

// NewHandler constructs a Handler around the two services.
func NewHandler(query service.QueryService, marketCap service.MarketCapService) *Handler {
	return &Handler{query: query, marketCap: marketCap}
}

// Query handles GET /api/v1/query/*endpoint.
//
// The endpoint name may contain slashes (calendar/earnings, ust/bill-rates).
// The upstream body is relayed as is; bodies that are not JSON are relayed as
// text/plain.
//
// Query godoc
// @Summary      Query an EODHD endpoint
// @Description  Resolves a logical endpoint name and relays the upstream response
// @Tags         query
// @Produce      json
// @Param        endpoint     path      string  true   "Endpoint name" example(eod)
// @Param        symbol       query     string  false  "Ticker, exchange, country or sector" example(AAPL.US)
// @Param        from         query     string  false  "Start date YYYY-MM-DD" example(2025-01-01)
// @Param        to           query     string  false  "End date YYYY-MM-DD" example(2025-01-31)
// @Param        limit        query     int     false  "Result limit"
// @Param        offset       query     int     false  "Result offset"
// @Param        interval     query     string  false  "Intraday interval" example(5m)
// @Param        function     query     string  false  "Technical function" example(sma)
// @Param        period       query     int     false  "Technical period" example(50)
// @Param        indicator    query     string  false  "Macro indicator"
// @Param        filter       query     string  false  "Fundamentals filter or screener filter"
// @Param        symbols      query     string  false  "Comma-separated symbols for bulk-fundamentals"
// @Param        version      query     string  false  "bulk-fundamentals version"
// @Param        filter_year  query     int     false  "Year filter (treasury, ESG)"
// @Param        frequency    query     string  false  "ESG frequency (FY, Q1..Q4)"
// @Success      200          {object}  map[string]interface{}  "Upstream response"
// @Failure      400          {object}  dto.ErrorResponse       "Invalid input"
// @Failure      404          {object}  dto.ErrorResponse       "Unsupported endpoint"
// @Failure      502          {object}  dto.ErrorResponse       "Upstream error"
// @Failure      504          {object}  dto.ErrorResponse       "Upstream unreachable"
// @Router       /api/v1/query/{endpoint} [get]
func (h *Handler) Query(c *gin.Context) {
	q, err := queryFromRequest(c)
	if err != nil {
		middleware.AbortWithError(c, http.StatusBadRequest, "invalid query parameters", err)
		return
	}

	body, err := h.query.Query(c.Request.Context(), q)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	if !json.Valid(body) {
		c.Data(http.StatusOK, "text/plain; charset=utf-8", body)
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", body)
}

// MarketCap handles GET /api/v1/market-cap.
//
// MarketCap godoc
// @Summary      Market capitalization series
// @Description  Computes shares outstanding x close, or relays the provider's weekly series with method=api
// @Tags         market-cap
// @Produce      json
// @Param        symbol  query     string  true   "Ticker with exchange" example(AAPL.US)
// @Param        from    query     string  true   "Start date YYYY-MM-DD" example(2025-01-01)
// @Param        to      query     string  true   "End date YYYY-MM-DD" example(2025-03-31)
// @Param        method  query     string  false  "compute (default) or api" Enums(compute, api)
// @Success      200     {object}  dto.MarketCapResponse  "Success"
// @Failure      400     {object}  dto.ErrorResponse      "Invalid input"
// @Failure      404     {object}  dto.ErrorResponse      "No data"
// @Failure      502     {object}  dto.ErrorResponse      "Upstream error"
// @Failure      504     {object}  dto.ErrorResponse      "Upstream unreachable"
// @Router       /api/v1/market-cap [get]
func (h *Handler) MarketCap(c *gin.Context) {
	req := service.MarketCapRequest{
		Symbol: c.Query("symbol"),
		From:   c.Query("from"),
		To:     c.Query("to"),
		Method: c.Query("method"),
	}

	resp, err := h.marketCap.Series(c.Request.Context(), req)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// queryFromRequest collects the generic parameters. Integer parameters that do
// not parse are input errors.
func queryFromRequest(c *gin.Context) (endpoint.Query, error) {
	q := endpoint.Query{
		Endpoint:  strings.Trim(c.Param("endpoint"), "/"),
		Symbol:    c.Query("symbol"),
		From:      c.Query("from"),
		To:        c.Query("to"),
		Interval:  c.Query("interval"),
		Function:  c.Query("function"),
		Indicator: c.Query("indicator"),
		Filter:    c.Query("filter"),
		Symbols:   c.Query("symbols"),
		Version:   c.Query("version"),
		Frequency: c.Query("frequency"),
	}

	ints := []struct {
		name string
		dst  **int
	}{
		{"limit", &q.Limit},
		{"offset", &q.Offset},
		{"period", &q.Period},
		{"filter_year", &q.FilterYear},
	}
	for _, p := range ints {
		raw, ok := c.GetQuery(p.name)
		if !ok || raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return q, fmt.Errorf("%w: %s must be an integer, got %q", endpoint.ErrInvalidInput, p.name, raw)
		}
		*p.dst = &n
	}
	return q, nil
}

// abortWithServiceError maps an error from the service layer to a status code
// and an ErrorResponse.
func abortWithServiceError(c *gin.Context, err error) {
	status, body := errorResponse(err)
	middleware.AbortWithResponse(c, status, body, err)
}

func errorResponse(err error) (int, dto.ErrorResponse) {
	var (
		httpErr      *client.HTTPError
		apiErr       *client.APIError
		transportErr *client.TransportError
	)

	switch {
	case errors.Is(err, endpoint.ErrInvalidInput):
		return http.StatusBadRequest, dto.NewErrorResponse(err.Error(), endpoint.ErrInvalidInput)
	case errors.Is(err, endpoint.ErrUnsupportedEndpoint):
		return http.StatusNotFound, dto.NewErrorResponse(err.Error(), endpoint.ErrUnsupportedEndpoint)
	case errors.As(err, &httpErr):
		resp := dto.NewErrorResponse("upstream request failed", err)
		resp.Upstream = &dto.Upstream{
			Status: httpErr.StatusCode,
			Reason: httpErr.Reason,
			URL:    httpErr.URL,
			Body:   httpErr.Body,
		}
		return http.StatusBadGateway, resp
	case errors.As(err, &apiErr):
		return http.StatusBadGateway, dto.NewErrorResponse("upstream returned an error", err)
	case errors.Is(err, client.ErrMalformedResponse):
		return http.StatusBadGateway, dto.NewErrorResponse("upstream response could not be decoded", err)
	case errors.As(err, &transportErr), errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, dto.NewErrorResponse("upstream unreachable", err)
	case errors.Is(err, marketcap.ErrNoPrices),
		errors.Is(err, marketcap.ErrNoShares),
		errors.Is(err, marketcap.ErrEmptySeries):
		return http.StatusNotFound, dto.NewErrorResponse("no data", err)
	default:
		return http.StatusInternalServerError, dto.NewErrorResponse("internal error", err)
	}
}
