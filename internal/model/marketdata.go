package model

import "time"

// PriceHistoryResponse matches the JSON shape of a price-history payload,
// either fetched from the price API or loaded from a local file.
//
// Example:
//
//	{
//	  "status_code": 200,
//	  "data": [ { "date": "2023-05-31T00:00:00Z", "hub": "HENRY", "price": 2.41 } ]
//	}
type PriceHistoryResponse struct {
	StatusCode int          `json:"status_code"`
	Data       []PricePoint `json:"data"`
}

// PricePoint is one observed settlement price for a hub on a date.
// Price is $/MMBtu.
type PricePoint struct {
	Date  time.Time `json:"date"`
	Hub   string    `json:"hub,omitempty"`
	Price float64   `json:"price"`
}
