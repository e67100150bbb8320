package models

// ValueResponse represents the response from a valuation run.
type ValueResponse struct {
	ID      string       `json:"id"`
	Status  string       `json:"status"`
	Summary ValueSummary `json:"summary"`
	Ledger  []LedgerRow  `json:"ledger,omitempty"`
}

// ValueSummary contains the aggregated valuation results.
type ValueSummary struct {
	NetValue               float64 `json:"net_value"`
	TotalInjectionCost     float64 `json:"total_injection_cost"`
	TotalWithdrawalRevenue float64 `json:"total_withdrawal_revenue"`
	TotalStorageCost       float64 `json:"total_storage_cost"`
	AverageUnitProfit      float64 `json:"average_unit_profit"`
	FinalInventory         float64 `json:"final_inventory"`
	EventCount             int     `json:"event_count"`
}

// LedgerRow represents one schedule event in the valuation ledger.
type LedgerRow struct {
	Index          int     `json:"index"`
	Date           string  `json:"date"`
	Action         string  `json:"action"`
	Volume         float64 `json:"volume"`
	Price          float64 `json:"price"`
	PurchaseCost   float64 `json:"purchase_cost"`
	SaleRevenue    float64 `json:"sale_revenue"`
	HandlingCost   float64 `json:"handling_cost"`
	StorageCost    float64 `json:"storage_cost"`
	InventoryStart float64 `json:"inventory_start"`
	InventoryEnd   float64 `json:"inventory_end"`
	CashFlow       float64 `json:"cash_flow"`
	CumCashFlow    float64 `json:"cum_cash_flow"`
}

// RankResponse represents the response from ranking candidates.
type RankResponse struct {
	Rankings []Ranking           `json:"rankings"`
	Rejected []RejectedCandidate `json:"rejected,omitempty"`
}

// Ranking represents one ranked candidate schedule.
type Ranking struct {
	Rank                int          `json:"rank"`
	CandidateIndex      int          `json:"candidate_index"`
	FinalWithdrawalDate string       `json:"final_withdrawal_date,omitempty"`
	Summary             ValueSummary `json:"summary"`
}

// RejectedCandidate explains why a candidate was dropped from ranking.
type RejectedCandidate struct {
	CandidateIndex int    `json:"candidate_index"`
	Reason         string `json:"reason"`
}

// PriceQueryResponse carries one interpolated price.
type PriceQueryResponse struct {
	Date  string  `json:"date"`
	Price float64 `json:"price"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information.
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
