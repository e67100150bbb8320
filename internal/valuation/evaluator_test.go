package valuation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SarthakPDalvi/quant-research/internal/model"
	"github.com/SarthakPDalvi/quant-research/internal/pricing"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func mustSeries(t *testing.T, points ...model.PricePoint) *pricing.Series {
	t.Helper()
	s, err := pricing.NewSeries(points)
	require.NoError(t, err)
	return s
}

func testContract() model.StorageContract {
	return model.StorageContract{
		MaxVolume:             1_000_000,
		InjectionRateLimit:    1_000_000,
		WithdrawalRateLimit:   1_000_000,
		InjectionCostPerUnit:  0.01,
		WithdrawalCostPerUnit: 0.02,
		StorageCostPerUnitDay: 0.001,
	}
}

func TestEvaluate_SingleCycleEconomics(t *testing.T) {
	series := mustSeries(t,
		model.PricePoint{Date: date(2023, 6, 30), Price: 2.0},
		model.PricePoint{Date: date(2023, 12, 31), Price: 3.0},
	)
	schedule := model.TradeSchedule{
		{Date: date(2023, 6, 30), Action: model.ActionInject, Volume: 10_000},
		{Date: date(2023, 12, 31), Action: model.ActionWithdraw, Volume: 10_000},
	}

	res, err := Evaluate(schedule, testContract(), series)
	require.NoError(t, err)

	// Buy 10k at 2.0 plus 0.01/unit handling.
	assert.InDelta(t, 20_100, res.TotalInjectionCost, 1e-9)
	// Sell 10k at 3.0 minus 0.02/unit handling.
	assert.InDelta(t, 29_800, res.TotalWithdrawalRevenue, 1e-9)
	// 10k units held for 184 days at 0.001 $/unit/day.
	assert.InDelta(t, 1_840, res.TotalStorageCost, 1e-9)
	assert.InDelta(t, 29_800-20_100-1_840, res.NetValue, 1e-9)
	assert.InDelta(t, res.NetValue/10_000, res.AverageUnitProfit, 1e-12)
	assert.Equal(t, 0.0, res.FinalInventory)

	require.Len(t, res.Ledger, 2)
	assert.Equal(t, model.ActionInject, res.Ledger[0].Action)
	assert.Equal(t, 10_000.0, res.Ledger[0].InventoryEnd)
	assert.Equal(t, 0.0, res.Ledger[0].StorageCost)
	assert.InDelta(t, 1_840, res.Ledger[1].StorageCost, 1e-9)
	assert.InDelta(t, res.NetValue, res.Ledger[1].CumCashFlow, 1e-9)
}

func TestEvaluate_PricesInterpolatedAtEventDates(t *testing.T) {
	series := mustSeries(t,
		model.PricePoint{Date: date(2023, 1, 1), Price: 2.0},
		model.PricePoint{Date: date(2023, 2, 1), Price: 2.5},
	)
	contract := testContract()
	contract.InjectionCostPerUnit = 0
	contract.StorageCostPerUnitDay = 0
	contract.WithdrawalCostPerUnit = 0

	schedule := model.TradeSchedule{
		{Date: date(2023, 1, 16), Action: model.ActionInject, Volume: 100},
		{Date: date(2023, 2, 1), Action: model.ActionWithdraw, Volume: 100},
	}

	res, err := Evaluate(schedule, contract, series)
	require.NoError(t, err)

	wantBuy := 2.0 + 0.5*(15.0/31.0)
	assert.InDelta(t, wantBuy, res.Ledger[0].Price, 1e-12)
	assert.InDelta(t, 100*(2.5-wantBuy), res.NetValue, 1e-9)
}

func TestEvaluate_PropagatesScheduleError(t *testing.T) {
	series := mustSeries(t, model.PricePoint{Date: date(2023, 1, 1), Price: 2.0})
	contract := testContract()
	contract.MaxVolume = 100
	contract.InjectionRateLimit = 100
	contract.WithdrawalRateLimit = 100

	schedule := model.TradeSchedule{
		{Date: date(2023, 1, 1), Action: model.ActionInject, Volume: 60},
		{Date: date(2023, 2, 1), Action: model.ActionInject, Volume: 60},
	}

	_, err := Evaluate(schedule, contract, series)
	var schedErr *model.ScheduleError
	require.ErrorAs(t, err, &schedErr)
	assert.Equal(t, model.CapacityExceeded, schedErr.Kind)
	assert.Equal(t, date(2023, 2, 1), schedErr.At)
}

func TestEvaluate_EmptySeriesSurfacesOutOfDomain(t *testing.T) {
	series := mustSeries(t)
	schedule := model.TradeSchedule{
		{Date: date(2023, 1, 1), Action: model.ActionInject, Volume: 10},
	}
	_, err := Evaluate(schedule, testContract(), series)
	require.Error(t, err)
	assert.ErrorIs(t, err, pricing.ErrOutOfDomain)
}

func TestEvaluate_SameDateNetZeroReorderInvariant(t *testing.T) {
	series := mustSeries(t,
		model.PricePoint{Date: date(2023, 1, 1), Price: 2.0},
		model.PricePoint{Date: date(2023, 6, 1), Price: 2.8},
	)
	contract := testContract()
	contract.MaxVolume = 100

	mid := date(2023, 3, 1)
	base := model.TradeSchedule{
		{Date: date(2023, 1, 1), Action: model.ActionInject, Volume: 50},
		{Date: mid, Action: model.ActionWithdraw, Volume: 20},
		{Date: mid, Action: model.ActionInject, Volume: 20},
		{Date: date(2023, 6, 1), Action: model.ActionWithdraw, Volume: 50},
	}
	reordered := model.TradeSchedule{
		base[0],
		base[2], // inject first at mid
		base[1],
		base[3],
	}

	resA, err := Evaluate(base, contract, series)
	require.NoError(t, err)
	resB, err := Evaluate(reordered, contract, series)
	require.NoError(t, err)

	assert.InDelta(t, resA.NetValue, resB.NetValue, 1e-9)
}

func TestEvaluate_InvalidContract(t *testing.T) {
	series := mustSeries(t, model.PricePoint{Date: date(2023, 1, 1), Price: 2.0})
	contract := testContract()
	contract.MaxVolume = -1
	_, err := Evaluate(model.TradeSchedule{}, contract, series)
	assert.Error(t, err)
}

func TestEvaluate_NilSeries(t *testing.T) {
	_, err := Evaluate(model.TradeSchedule{}, testContract(), nil)
	assert.Error(t, err)
}
