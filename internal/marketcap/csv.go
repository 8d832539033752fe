package marketcap

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/guttosm/eodpulse/internal/domain/models"
)

var csvHeader = []string{"date", "close", "shares_outstanding", "market_cap"}

// WriteCSV writes the series with a header row. Cells for values the method
// does not provide are left empty.
func WriteCSV(w io.Writer, points []models.MarketCapPoint) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, p := range points {
		row := []string{p.Date, optional(p.Close), optional(p.SharesOutstanding), formatFloat(p.MarketCap)}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func optional(v *float64) string {
	if v == nil {
		return ""
	}
	return formatFloat(*v)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
