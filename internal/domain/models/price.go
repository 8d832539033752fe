package models

// PriceBar is one row of the /eod/{symbol} daily series.
//
// Close and AdjustedClose are pointers because the provider omits them on some
// rows; a row lacking both carries no usable price.
type PriceBar struct {
	Date          string   `json:"date"`
	Open          *float64 `json:"open,omitempty"`
	High          *float64 `json:"high,omitempty"`
	Low           *float64 `json:"low,omitempty"`
	Close         *float64 `json:"close,omitempty"`
	AdjustedClose *float64 `json:"adjusted_close,omitempty"`
	Volume        *float64 `json:"volume,omitempty"`
}

// Price returns the close, falling back to the adjusted close when the close
// is absent or zero. ok is false when neither is present.
func (b PriceBar) Price() (price float64, ok bool) {
	if b.Close != nil && *b.Close != 0 {
		return *b.Close, true
	}
	if b.AdjustedClose != nil {
		return *b.AdjustedClose, true
	}
	return 0, false
}
