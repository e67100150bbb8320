package strategy

import (
	"github.com/SarthakPDalvi/quant-research/internal/model"
	"github.com/SarthakPDalvi/quant-research/internal/pricing"
)

// Builder constructs a candidate trade schedule from a contract and market
// prices. Builders only propose schedules; feasibility checks stay in the
// contract's validation.
type Builder interface {
	Name() string
	Build(contract model.StorageContract, prices *pricing.Series) (model.TradeSchedule, error)
}

// Info describes a builder for API listings.
type Info struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Parameters  []ParameterInfo `json:"parameters"`
}

// ParameterInfo describes one builder parameter.
type ParameterInfo struct {
	Name        string      `json:"name"`
	Type        string      `json:"type"` // "float", "string", "[]string"
	Description string      `json:"description"`
	Default     interface{} `json:"default,omitempty"`
}

// List enumerates the available builders.
func List() []Info {
	return []Info{
		{
			Name:        "pairs",
			Description: "Paired injection/withdrawal dates at a fixed trade volume",
			Parameters: []ParameterInfo{
				{Name: "inject_dates", Type: "[]string", Description: "Injection dates, YYYY-MM-DD, paired by position with withdraw_dates"},
				{Name: "withdraw_dates", Type: "[]string", Description: "Withdrawal dates, YYYY-MM-DD"},
				{Name: "trade_volume", Type: "float", Description: "Volume per leg; defaults to the contract max volume"},
			},
		},
		{
			Name:        "seasonal",
			Description: "Inject over one month window, withdraw over another, volume split evenly across month ends",
			Parameters: []ParameterInfo{
				{Name: "inject_months", Type: "[]string", Description: "Injection months, YYYY-MM"},
				{Name: "withdraw_months", Type: "[]string", Description: "Withdrawal months, YYYY-MM"},
				{Name: "total_volume", Type: "float", Description: "Total volume cycled through storage"},
			},
		},
	}
}
