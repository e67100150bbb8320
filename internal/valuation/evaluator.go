package valuation

import (
	"fmt"

	"github.com/SarthakPDalvi/quant-research/internal/model"
	"github.com/SarthakPDalvi/quant-research/internal/pricing"
)

const hoursPerDay = 24.0

// Evaluate values a trade schedule against a storage contract and a price
// series. The schedule is validated first; a *model.ScheduleError is
// propagated unchanged so callers can inspect the violation kind and date.
//
// Cash flow convention: injections are negative (gas purchase plus handling),
// withdrawals are positive (gas sale minus handling). Storage cost accrues
// for every interval between consecutive events, proportional to the
// inventory held during that interval. Inventory left after the last event
// accrues nothing further.
func Evaluate(schedule model.TradeSchedule, contract model.StorageContract, prices *pricing.Series) (*Result, error) {
	if prices == nil {
		return nil, fmt.Errorf("price series is nil")
	}
	if err := contract.Validate(); err != nil {
		return nil, fmt.Errorf("contract invalid: %w", err)
	}
	if err := contract.ValidateSchedule(schedule); err != nil {
		return nil, err
	}

	events := schedule.Sorted()
	res := &Result{Ledger: make([]LedgerRow, 0, len(events))}

	inventory := 0.0
	cum := 0.0

	for idx, ev := range events {
		price, err := prices.Query(ev.Date)
		if err != nil {
			return nil, fmt.Errorf("price at %s: %w", ev.Date.Format("2006-01-02"), err)
		}

		row := LedgerRow{
			Index:          idx,
			Date:           ev.Date,
			Action:         ev.Action,
			Volume:         ev.Volume,
			Price:          price,
			InventoryStart: inventory,
		}

		if idx > 0 {
			held := inventory
			days := ev.Date.Sub(events[idx-1].Date).Hours() / hoursPerDay
			row.StorageCost = contract.StorageCost(held, days)
			res.TotalStorageCost += row.StorageCost
		}

		switch ev.Action {
		case model.ActionInject:
			row.PurchaseCost = ev.Volume * price
			row.HandlingCost = contract.CostOfInjection(ev.Volume)
			row.CashFlow = -(row.PurchaseCost + row.HandlingCost) - row.StorageCost
			res.TotalInjectionCost += row.PurchaseCost + row.HandlingCost
		case model.ActionWithdraw:
			row.SaleRevenue = ev.Volume * price
			row.HandlingCost = contract.CostOfWithdrawal(ev.Volume)
			row.CashFlow = row.SaleRevenue - row.HandlingCost - row.StorageCost
			res.TotalWithdrawalRevenue += row.SaleRevenue - row.HandlingCost
		}

		inventory += ev.Action.SignedVolume(ev.Volume)
		row.InventoryEnd = inventory
		cum += row.CashFlow
		row.CumCashFlow = cum

		res.Ledger = append(res.Ledger, row)
	}

	res.NetValue = res.TotalWithdrawalRevenue - res.TotalInjectionCost - res.TotalStorageCost
	res.FinalInventory = inventory
	if injected := schedule.TotalInjectedVolume(); injected > 0 {
		res.AverageUnitProfit = res.NetValue / injected
	}
	return res, nil
}
