package client

import (
	"context"

	"github.com/guttosm/eodpulse/internal/domain/models"
	"github.com/guttosm/eodpulse/internal/endpoint"
)

// CompanyESG fetches ESG scores for a company ticker. year and frequency
// narrow the series when set.
func (c *Client) CompanyESG(ctx context.Context, symbol string, year *int, frequency string) ([]models.ESGScore, error) {
	body, err := c.Query(ctx, endpoint.Query{Endpoint: "esg", Symbol: symbol, FilterYear: year, Frequency: frequency})
	if err != nil {
		return nil, err
	}
	if err := apiError("ESG", body); err != nil {
		return nil, err
	}
	return decode[[]models.ESGScore](body, "esg")
}

// CountryESG fetches country-level ESG aggregates.
func (c *Client) CountryESG(ctx context.Context, country string, year *int, frequency string) ([]models.CountryESG, error) {
	body, err := c.Query(ctx, endpoint.Query{Endpoint: "esg-country", Symbol: country, FilterYear: year, Frequency: frequency})
	if err != nil {
		return nil, err
	}
	if err := apiError("ESG", body); err != nil {
		return nil, err
	}
	return decode[[]models.CountryESG](body, "esg-country")
}

// Sectors lists the sectors known to the ESG provider.
func (c *Client) Sectors(ctx context.Context) ([]models.Sector, error) {
	body, err := c.Query(ctx, endpoint.Query{Endpoint: "esg-sectors"})
	if err != nil {
		return nil, err
	}
	if err := apiError("ESG", body); err != nil {
		return nil, err
	}
	return decode[[]models.Sector](body, "esg-sectors")
}

// SectorESG fetches the industry breakdown of one sector.
func (c *Client) SectorESG(ctx context.Context, sector string) (*models.SectorView, error) {
	body, err := c.Query(ctx, endpoint.Query{Endpoint: "esg-sector", Symbol: sector})
	if err != nil {
		return nil, err
	}
	if err := apiError("ESG", body); err != nil {
		return nil, err
	}
	v, err := decode[models.SectorView](body, "esg-sector")
	if err != nil {
		return nil, err
	}
	return &v, nil
}
