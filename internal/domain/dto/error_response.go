package dto

import "time"

// ErrorResponse is the JSON body returned for every failed API request.
//
// Upstream carries the provider's HTTP status and body when the failure came
// from the EODHD API itself.
type ErrorResponse struct {
	Message      string    `json:"message" example:"--symbol is required for endpoint=eod"`
	ErrorDetails string    `json:"error,omitempty" example:"invalid input"`
	Upstream     *Upstream `json:"upstream,omitempty"`
	Timestamp    time.Time `json:"timestamp" example:"2025-01-02T15:04:05Z"`
}

// Upstream describes a non-2xx response received from the provider.
type Upstream struct {
	Status int    `json:"status" example:"404"`
	Reason string `json:"reason" example:"Not Found"`
	URL    string `json:"url" example:"https://eodhd.com/api/eod/NOPE.US?api_token=***&fmt=json"`
	Body   string `json:"body,omitempty" example:"Ticker Not Found."`
}

// NewErrorResponse builds an ErrorResponse stamped with the current UTC time.
func NewErrorResponse(message string, err error) ErrorResponse {
	resp := ErrorResponse{Message: message, Timestamp: time.Now().UTC()}
	if err != nil {
		resp.ErrorDetails = err.Error()
	}
	return resp
}

func (e ErrorResponse) Error() string {
	if e.ErrorDetails == "" {
		return e.Message
	}
	return e.Message + ": " + e.ErrorDetails
}
