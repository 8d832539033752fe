package marketcap

import (
	"bytes"
	"errors"
	"testing"

	"github.com/guttosm/eodpulse/internal/domain/models"
)

func f(v float64) *float64 { return &v }

func TestCompute_SharesTimesClose(t *testing.T) {
	bars := []models.PriceBar{
		{Date: "2025-01-02", Close: f(100)},
		{Date: "2025-01-03", Close: f(102)},
	}
	pts, err := Compute(bars, 1000)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(pts) != 2 {
		t.Fatalf("want 2 points, got %d", len(pts))
	}
	if pts[0].MarketCap != 100000 || pts[1].MarketCap != 102000 {
		t.Fatalf("market caps %v %v", pts[0].MarketCap, pts[1].MarketCap)
	}
	if *pts[0].Close != 100 || *pts[1].SharesOutstanding != 1000 {
		t.Fatalf("point fields %+v", pts)
	}
}

func TestCompute_PriceFallbackAndSkips(t *testing.T) {
	bars := []models.PriceBar{
		{Date: "d1", Close: f(0), AdjustedClose: f(50)},
		{Date: "d2", AdjustedClose: f(51)},
		{Date: "d3"},
		{Date: "d4", Close: f(52)},
	}
	pts, err := Compute(bars, 10)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	var dates []string
	for _, p := range pts {
		dates = append(dates, p.Date)
	}
	if len(pts) != 3 || dates[0] != "d1" || dates[2] != "d4" {
		t.Fatalf("dates %v", dates)
	}
	if pts[0].MarketCap != 500 || pts[1].MarketCap != 510 {
		t.Fatalf("fallback prices %v %v", pts[0].MarketCap, pts[1].MarketCap)
	}
}

func TestCompute_DecimalProduct(t *testing.T) {
	pts, err := Compute([]models.PriceBar{{Date: "d", Close: f(100.1)}}, 1000)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if pts[0].MarketCap != 100100 {
		t.Fatalf("want 100100, got %v", pts[0].MarketCap)
	}
}

func TestCompute_InvalidShares(t *testing.T) {
	for _, shares := range []float64{0, -5} {
		if _, err := Compute([]models.PriceBar{{Date: "d", Close: f(1)}}, shares); !errors.Is(err, ErrNoShares) {
			t.Fatalf("shares=%v: want ErrNoShares, got %v", shares, err)
		}
	}
}

func TestSummarize(t *testing.T) {
	pts := []models.MarketCapPoint{
		{Date: "d1", MarketCap: 3.2e12},
		{Date: "d2", MarketCap: 2.9e12},
		{Date: "d3", MarketCap: 3.5e12},
		{Date: "d4", MarketCap: 3.36e12},
	}
	s, err := Summarize(pts, "AAPL.US", "2025-01-01", "2025-03-31", MethodCompute)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	want := models.MarketCapSummary{
		Symbol:         "AAPL.US",
		From:           "2025-01-01",
		To:             "2025-03-31",
		Method:         "compute",
		DataPoints:     4,
		StartMarketCap: "$3.20T",
		EndMarketCap:   "$3.36T",
		MinMarketCap:   "$2.90T",
		MaxMarketCap:   "$3.50T",
		ChangePct:      5,
	}
	if s != want {
		t.Fatalf("want %+v\n got %+v", want, s)
	}

	if _, err := Summarize(nil, "X", "", "", MethodAPI); !errors.Is(err, ErrEmptySeries) {
		t.Fatalf("want ErrEmptySeries, got %v", err)
	}
}

func TestChangePct(t *testing.T) {
	cases := []struct {
		first, last, want float64
	}{
		{100000, 102000, 2},
		{100, 91.39, -8.61},
		{3, 4, 33.33},
		{0, 10, 0},
		{50, 50, 0},
	}
	for _, c := range cases {
		if got := ChangePct(c.first, c.last); got != c.want {
			t.Fatalf("ChangePct(%v,%v)=%v want %v", c.first, c.last, got, c.want)
		}
	}
}

func TestFormatValue(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{3.6860e12, "$3.69T"},
		{1e12, "$1.00T"},
		{4.561e9, "$4.56B"},
		{7.89e6, "$7.89M"},
		{1e6, "$1.00M"},
		{12345, "$12,345"},
		{999999, "$999,999"},
		{42, "$42"},
	}
	for _, c := range cases {
		if got := FormatValue(c.in); got != c.want {
			t.Fatalf("FormatValue(%v)=%q want %q", c.in, got, c.want)
		}
	}
}

func TestValidMethod(t *testing.T) {
	if !ValidMethod("compute") || !ValidMethod("api") || ValidMethod("API") || ValidMethod("") {
		t.Fatalf("unexpected method validation")
	}
}

func TestWriteCSV(t *testing.T) {
	pts := []models.MarketCapPoint{
		{Date: "2025-01-02", Close: f(100), SharesOutstanding: f(1000), MarketCap: 100000},
		{Date: "2025-01-06", MarketCap: 3.1e12},
	}
	var buf bytes.Buffer
	if err := WriteCSV(&buf, pts); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	want := "date,close,shares_outstanding,market_cap\n" +
		"2025-01-02,100,1000,100000\n" +
		"2025-01-06,,,3100000000000\n"
	if buf.String() != want {
		t.Fatalf("csv:\n%s\nwant:\n%s", buf.String(), want)
	}
}
