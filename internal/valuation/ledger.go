package valuation

import (
	"time"

	"github.com/SarthakPDalvi/quant-research/internal/model"
)

// LedgerRow is one row of per-event output. This is the primary artifact for
// "what happened" when a schedule was valued.
type LedgerRow struct {
	Index int

	Date   time.Time
	Action model.Action

	Volume float64
	Price  float64

	// PurchaseCost is gas bought on injection (volume * price).
	// SaleRevenue is gas sold on withdrawal (volume * price).
	PurchaseCost float64
	SaleRevenue  float64

	// HandlingCost is the contract's per-unit injection or withdrawal cost.
	HandlingCost float64

	// StorageCost accrued on inventory held since the previous event.
	StorageCost float64

	InventoryStart float64
	InventoryEnd   float64

	CashFlow    float64
	CumCashFlow float64
}

// Result is the immutable outcome of valuing one schedule. It is owned by
// the caller that requested it; evaluations share no mutable state.
type Result struct {
	Ledger []LedgerRow

	TotalInjectionCost     float64
	TotalWithdrawalRevenue float64
	TotalStorageCost       float64

	NetValue float64

	// AverageUnitProfit is NetValue per injected MMBtu; zero when the
	// schedule injects nothing.
	AverageUnitProfit float64

	FinalInventory float64
}
