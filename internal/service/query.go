// Package service holds the operations shared by the command-line tools and
// the HTTP gateway.
package service

import (
	"context"
	"strings"

	"github.com/guttosm/eodpulse/internal/endpoint"
	"github.com/guttosm/eodpulse/internal/logger"
)

// Querier performs one resolved API call and returns the raw body.
type Querier interface {
	Query(ctx context.Context, q endpoint.Query) ([]byte, error)
}

// QueryService runs generic endpoint queries.
type QueryService interface {
	Query(ctx context.Context, q endpoint.Query) ([]byte, error)
}

type queryService struct {
	api Querier
}

func NewQueryService(api Querier) QueryService {
	return &queryService{api: api}
}

func (s *queryService) Query(ctx context.Context, q endpoint.Query) ([]byte, error) {
	q.Endpoint = strings.TrimSpace(q.Endpoint)
	q.Symbol = strings.TrimSpace(q.Symbol)
	q.Function = strings.TrimSpace(q.Function)

	body, err := s.api.Query(ctx, q)
	if err != nil {
		logger.L().Debug().Err(err).Str("endpoint", q.Endpoint).Str("symbol", q.Symbol).Msg("query failed")
		return nil, err
	}
	return body, nil
}
