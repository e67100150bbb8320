package models

// ValueRequest represents the request body for valuing a single schedule.
// Prices are optional; when omitted the valuation runs against the price
// series the server was started with.
type ValueRequest struct {
	Contract ContractSpec    `json:"contract" binding:"required"`
	Schedule []ScheduleEvent `json:"schedule" binding:"required,min=1"`
	Prices   []PricePoint    `json:"prices,omitempty" binding:"omitempty,min=1"`
	Options  ValueOptions    `json:"options,omitempty"`
}

// ContractSpec defines storage contract parameters.
type ContractSpec struct {
	Name                  string  `json:"name,omitempty"`
	MaxVolume             float64 `json:"max_volume"`
	InjectionRateLimit    float64 `json:"injection_rate_limit"`
	WithdrawalRateLimit   float64 `json:"withdrawal_rate_limit"`
	InjectionCostPerUnit  float64 `json:"injection_cost_per_unit,omitempty"`
	WithdrawalCostPerUnit float64 `json:"withdrawal_cost_per_unit,omitempty"`
	StorageCostPerUnitDay float64 `json:"storage_cost_per_unit_day,omitempty"`
	Start                 string  `json:"start,omitempty"` // YYYY-MM-DD
	End                   string  `json:"end,omitempty"`   // YYYY-MM-DD
}

// ScheduleEvent is one trade leg in a request.
type ScheduleEvent struct {
	Date   string  `json:"date" binding:"required"`   // YYYY-MM-DD
	Action string  `json:"action" binding:"required"` // "INJECT" or "WITHDRAW"
	Volume float64 `json:"volume" binding:"required"`
}

// PricePoint is one observed price in a request.
type PricePoint struct {
	Date  string  `json:"date" binding:"required"` // YYYY-MM-DD
	Price float64 `json:"price" binding:"required"`
}

// ValueOptions contains optional valuation parameters.
type ValueOptions struct {
	IncludeLedger bool `json:"include_ledger,omitempty"` // default: false
}

// RankRequest represents a request to rank candidate schedules.
type RankRequest struct {
	Contract   ContractSpec      `json:"contract" binding:"required"`
	Candidates [][]ScheduleEvent `json:"candidates" binding:"required,min=1"`
	Prices     []PricePoint      `json:"prices" binding:"required,min=1"`
	Workers    int               `json:"workers,omitempty"` // 0 = GOMAXPROCS
	Limit      int               `json:"limit,omitempty"`   // 0 = all
}

// PriceQueryRequest represents GET /api/v1/prices/query parameters.
type PriceQueryRequest struct {
	Date string `form:"date" binding:"required"` // YYYY-MM-DD
}
