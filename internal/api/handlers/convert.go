package handlers

import (
	"fmt"
	"time"

	"github.com/SarthakPDalvi/quant-research/internal/api/models"
	"github.com/SarthakPDalvi/quant-research/internal/model"
	"github.com/SarthakPDalvi/quant-research/internal/pricing"
	"github.com/SarthakPDalvi/quant-research/internal/valuation"
)

const dateLayout = "2006-01-02"

func toContract(spec models.ContractSpec) (model.StorageContract, error) {
	contract := model.StorageContract{
		MaxVolume:             spec.MaxVolume,
		InjectionRateLimit:    spec.InjectionRateLimit,
		WithdrawalRateLimit:   spec.WithdrawalRateLimit,
		InjectionCostPerUnit:  spec.InjectionCostPerUnit,
		WithdrawalCostPerUnit: spec.WithdrawalCostPerUnit,
		StorageCostPerUnitDay: spec.StorageCostPerUnitDay,
	}
	if spec.Start != "" {
		t, err := time.Parse(dateLayout, spec.Start)
		if err != nil {
			return contract, fmt.Errorf("contract start must be YYYY-MM-DD")
		}
		contract.Start = t
	}
	if spec.End != "" {
		t, err := time.Parse(dateLayout, spec.End)
		if err != nil {
			return contract, fmt.Errorf("contract end must be YYYY-MM-DD")
		}
		contract.End = t
	}
	if err := contract.Validate(); err != nil {
		return contract, err
	}
	return contract, nil
}

func toSchedule(events []models.ScheduleEvent) (model.TradeSchedule, error) {
	schedule := make(model.TradeSchedule, 0, len(events))
	for i, ev := range events {
		date, err := time.Parse(dateLayout, ev.Date)
		if err != nil {
			return nil, fmt.Errorf("schedule event %d: date must be YYYY-MM-DD", i)
		}
		action := model.Action(ev.Action)
		if !action.Valid() {
			return nil, fmt.Errorf("schedule event %d: action must be INJECT or WITHDRAW", i)
		}
		schedule = append(schedule, model.TradeEvent{
			Date:   date,
			Action: action,
			Volume: ev.Volume,
		})
	}
	return schedule, nil
}

func toSeries(points []models.PricePoint) (*pricing.Series, error) {
	raw := make([]model.PricePoint, 0, len(points))
	for i, pt := range points {
		date, err := time.Parse(dateLayout, pt.Date)
		if err != nil {
			return nil, fmt.Errorf("price point %d: date must be YYYY-MM-DD", i)
		}
		raw = append(raw, model.PricePoint{Date: date, Price: pt.Price})
	}
	return pricing.NewSeries(raw)
}

func toSummary(res *valuation.Result) models.ValueSummary {
	return models.ValueSummary{
		NetValue:               res.NetValue,
		TotalInjectionCost:     res.TotalInjectionCost,
		TotalWithdrawalRevenue: res.TotalWithdrawalRevenue,
		TotalStorageCost:       res.TotalStorageCost,
		AverageUnitProfit:      res.AverageUnitProfit,
		FinalInventory:         res.FinalInventory,
		EventCount:             len(res.Ledger),
	}
}

func toLedgerRows(ledger []valuation.LedgerRow) []models.LedgerRow {
	rows := make([]models.LedgerRow, len(ledger))
	for i, r := range ledger {
		rows[i] = models.LedgerRow{
			Index:          r.Index,
			Date:           r.Date.Format(dateLayout),
			Action:         string(r.Action),
			Volume:         r.Volume,
			Price:          r.Price,
			PurchaseCost:   r.PurchaseCost,
			SaleRevenue:    r.SaleRevenue,
			HandlingCost:   r.HandlingCost,
			StorageCost:    r.StorageCost,
			InventoryStart: r.InventoryStart,
			InventoryEnd:   r.InventoryEnd,
			CashFlow:       r.CashFlow,
			CumCashFlow:    r.CumCashFlow,
		}
	}
	return rows
}
