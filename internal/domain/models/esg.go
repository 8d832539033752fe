package models

// ESGScore is one company ESG record from the Investverte marketplace.
type ESGScore struct {
	E         float64 `json:"e"`
	S         float64 `json:"s"`
	G         float64 `json:"g"`
	ESG       float64 `json:"esg"`
	Year      int     `json:"year"`
	Frequency string  `json:"frequency"`
}

// CountryESG is one country-level ESG record.
type CountryESG struct {
	Symbol    string  `json:"symbol"`
	Name      string  `json:"name"`
	Mean      float64 `json:"mean"`
	Median    float64 `json:"median"`
	Year      int     `json:"year"`
	Frequency string  `json:"frequency"`
}

// Sector is an entry of the sector listing.
type Sector struct {
	Sector string `json:"sector"`
}

// SectorView is the per-sector breakdown. Each industry series is aligned with
// Years ("2021-FY", "2021-Q1", ...); missing scores are null.
type SectorView struct {
	Find     bool                  `json:"find"`
	Industry map[string][]*float64 `json:"industry"`
	Years    []string              `json:"years"`
}
