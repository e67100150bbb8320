package strategy

import (
	"fmt"
	"time"

	"github.com/SarthakPDalvi/quant-research/internal/model"
	"github.com/SarthakPDalvi/quant-research/internal/pricing"
)

// SeasonalStrategy cycles a total volume through storage once per season:
// buy at the end of each injection month, sell at the end of each withdrawal
// month, volume split evenly across the injection months. Month-end dates
// are used because the vendor price files settle monthly.
type SeasonalStrategy struct {
	InjectMonths   []time.Time // any day within the month; normalized to month end
	WithdrawMonths []time.Time
	TotalVolume    float64
}

func (s *SeasonalStrategy) Name() string { return "seasonal" }

func (s *SeasonalStrategy) Build(_ model.StorageContract, _ *pricing.Series) (model.TradeSchedule, error) {
	if len(s.InjectMonths) == 0 || len(s.WithdrawMonths) == 0 {
		return nil, fmt.Errorf("seasonal: injection and withdrawal months are required")
	}
	if len(s.InjectMonths) != len(s.WithdrawMonths) {
		return nil, fmt.Errorf("seasonal: %d injection months but %d withdrawal months",
			len(s.InjectMonths), len(s.WithdrawMonths))
	}
	if s.TotalVolume <= 0 {
		return nil, fmt.Errorf("seasonal: total volume must be > 0")
	}

	legVolume := s.TotalVolume / float64(len(s.InjectMonths))
	schedule := make(model.TradeSchedule, 0, 2*len(s.InjectMonths))
	for i := range s.InjectMonths {
		in := monthEnd(s.InjectMonths[i])
		out := monthEnd(s.WithdrawMonths[i])
		if !out.After(in) {
			return nil, fmt.Errorf("seasonal: withdrawal month %s does not follow injection month %s",
				out.Format("2006-01"), in.Format("2006-01"))
		}
		schedule = append(schedule,
			model.TradeEvent{Date: in, Action: model.ActionInject, Volume: legVolume},
			model.TradeEvent{Date: out, Action: model.ActionWithdraw, Volume: legVolume},
		)
	}
	return schedule.Sorted(), nil
}

func monthEnd(t time.Time) time.Time {
	firstOfNext := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location()).AddDate(0, 1, 0)
	return firstOfNext.AddDate(0, 0, -1)
}
