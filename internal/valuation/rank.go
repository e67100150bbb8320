package valuation

import (
	"runtime"
	"sort"
	"sync"

	"github.com/SarthakPDalvi/quant-research/internal/model"
	"github.com/SarthakPDalvi/quant-research/internal/pricing"
)

// Ranked pairs a candidate schedule with its valuation.
type Ranked struct {
	// Index is the candidate's position in the original input.
	Index    int
	Schedule model.TradeSchedule
	Result   *Result
}

// Rejected records a candidate dropped from ranking and why.
type Rejected struct {
	Index int
	Err   error
}

// RankOptions tunes batch ranking. The zero value picks GOMAXPROCS workers.
type RankOptions struct {
	Workers int
}

// Rank evaluates each candidate schedule independently and returns the valid
// ones ordered by descending net value. Ties break by earliest final
// withdrawal date, then by original input order, so the ranking is
// deterministic regardless of worker completion order.
//
// Candidates failing validation are excluded rather than aborting the batch:
// a caller supplying many strategies expects partial results. The drops are
// reported alongside the ranking.
//
// Evaluations have no data dependency on each other; each worker holds a
// read-only reference to the shared contract and series, so no locks guard
// the inputs.
func Rank(candidates []model.TradeSchedule, contract model.StorageContract, prices *pricing.Series, opts RankOptions) ([]Ranked, []Rejected) {
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(candidates) {
		workers = len(candidates)
	}
	if workers < 1 {
		workers = 1
	}

	type outcome struct {
		res *Result
		err error
	}
	outcomes := make([]outcome, len(candidates))

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				res, err := Evaluate(candidates[i], contract, prices)
				outcomes[i] = outcome{res: res, err: err}
			}
		}()
	}
	for i := range candidates {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	ranked := make([]Ranked, 0, len(candidates))
	rejected := make([]Rejected, 0)
	for i, out := range outcomes {
		if out.err != nil {
			rejected = append(rejected, Rejected{Index: i, Err: out.err})
			continue
		}
		ranked = append(ranked, Ranked{Index: i, Schedule: candidates[i], Result: out.res})
	}

	sort.Slice(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.Result.NetValue != b.Result.NetValue {
			return a.Result.NetValue > b.Result.NetValue
		}
		af, bf := a.Schedule.FinalWithdrawalDate(), b.Schedule.FinalWithdrawalDate()
		if !af.Equal(bf) {
			return af.Before(bf)
		}
		return a.Index < b.Index
	})
	return ranked, rejected
}
