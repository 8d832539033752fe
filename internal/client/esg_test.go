package client

import (
	"context"
	"net/http"
	"testing"
)

func TestClient_CompanyESG_Filters(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/mp/investverte/esg/AAPL" {
			t.Fatalf("path %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("year") != "2021" || q.Get("frequency") != "FY" {
			t.Fatalf("query %s", r.URL.RawQuery)
		}
		_, _ = w.Write([]byte(`[{"e":61.2,"s":55.0,"g":70.1,"esg":62.1,"year":2021,"frequency":"FY"}]`))
	})

	year := 2021
	scores, err := c.CompanyESG(context.Background(), "AAPL", &year, "FY")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(scores) != 1 || scores[0].ESG != 62.1 || scores[0].Frequency != "FY" {
		t.Fatalf("scores %+v", scores)
	}
}

func TestClient_CompanyESG_NoFilters(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Has("year") || q.Has("frequency") {
			t.Fatalf("unexpected filters %s", r.URL.RawQuery)
		}
		_, _ = w.Write([]byte(`[]`))
	})

	if _, err := c.CompanyESG(context.Background(), "AAPL", nil, ""); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestClient_CountryESG(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/mp/investverte/country/US" {
			t.Fatalf("path %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`[{"symbol":"US","name":"United States","mean":50.5,"median":49,"year":2022,"frequency":"FY"}]`))
	})

	rows, err := c.CountryESG(context.Background(), "US", nil, "")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(rows) != 1 || rows[0].Name != "United States" {
		t.Fatalf("rows %+v", rows)
	}
}

func TestClient_SectorsAndSectorView(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/mp/investverte/sectors":
			_, _ = w.Write([]byte(`[{"sector":"Airlines"},{"sector":"Technology"}]`))
		case "/mp/investverte/sector/Real Estate":
			_, _ = w.Write([]byte(`{"find":true,"industry":{"REITs":[51.2,null]},"years":["2021-FY","2022-FY"]}`))
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	})

	sectors, err := c.Sectors(context.Background())
	if err != nil || len(sectors) != 2 || sectors[1].Sector != "Technology" {
		t.Fatalf("sectors %+v err %v", sectors, err)
	}

	view, err := c.SectorESG(context.Background(), "Real Estate")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	series := view.Industry["REITs"]
	if !view.Find || len(series) != 2 || len(view.Years) != 2 {
		t.Fatalf("view %+v", view)
	}
	if series[0] == nil || *series[0] != 51.2 || series[1] != nil {
		t.Fatalf("series %+v", series)
	}
}
