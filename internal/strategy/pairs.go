package strategy

import (
	"fmt"
	"time"

	"github.com/SarthakPDalvi/quant-research/internal/model"
	"github.com/SarthakPDalvi/quant-research/internal/pricing"
)

// PairStrategy builds a schedule from positionally paired injection and
// withdrawal dates, trading a fixed volume on each leg. Each pair buys on
// the injection date and sells the same volume on the matching withdrawal
// date.
type PairStrategy struct {
	InjectDates   []time.Time
	WithdrawDates []time.Time

	// TradeVolume per leg. Zero means "use the contract's max volume".
	TradeVolume float64
}

func (p *PairStrategy) Name() string { return "pairs" }

func (p *PairStrategy) Build(contract model.StorageContract, _ *pricing.Series) (model.TradeSchedule, error) {
	if len(p.InjectDates) == 0 {
		return nil, fmt.Errorf("pairs: no injection dates")
	}
	if len(p.InjectDates) != len(p.WithdrawDates) {
		return nil, fmt.Errorf("pairs: %d injection dates but %d withdrawal dates",
			len(p.InjectDates), len(p.WithdrawDates))
	}
	volume := p.TradeVolume
	if volume == 0 {
		volume = contract.MaxVolume
	}
	if volume <= 0 {
		return nil, fmt.Errorf("pairs: trade volume must be > 0")
	}

	schedule := make(model.TradeSchedule, 0, 2*len(p.InjectDates))
	for i := range p.InjectDates {
		in, out := p.InjectDates[i], p.WithdrawDates[i]
		if !out.After(in) {
			return nil, fmt.Errorf("pairs: withdrawal %s does not follow injection %s",
				out.Format("2006-01-02"), in.Format("2006-01-02"))
		}
		schedule = append(schedule,
			model.TradeEvent{Date: in, Action: model.ActionInject, Volume: volume},
			model.TradeEvent{Date: out, Action: model.ActionWithdraw, Volume: volume},
		)
	}
	return schedule.Sorted(), nil
}
