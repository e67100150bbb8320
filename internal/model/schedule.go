package model

import (
	"sort"
	"time"
)

// TradeEvent is a single injection or withdrawal on a date.
type TradeEvent struct {
	Date   time.Time
	Action Action
	Volume float64
}

// TradeSchedule is an ordered sequence of trade events. Callers may supply
// events in any order; evaluation works on the stable date-sorted view so
// same-date events keep their input order.
type TradeSchedule []TradeEvent

// Sorted returns a stable date-sorted copy. The receiver is never mutated.
func (s TradeSchedule) Sorted() TradeSchedule {
	out := make(TradeSchedule, len(s))
	copy(out, s)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out
}

// FinalWithdrawalDate is the date of the last withdrawal in the schedule,
// used as the ranking tie-break. Schedules with no withdrawal fall back to
// the last event's date; an empty schedule yields the zero time.
func (s TradeSchedule) FinalWithdrawalDate() time.Time {
	var last, lastWithdrawal time.Time
	for _, ev := range s {
		if ev.Date.After(last) {
			last = ev.Date
		}
		if ev.Action == ActionWithdraw && ev.Date.After(lastWithdrawal) {
			lastWithdrawal = ev.Date
		}
	}
	if !lastWithdrawal.IsZero() {
		return lastWithdrawal
	}
	return last
}

// TotalInjectedVolume sums injection volumes; used for per-unit profit.
func (s TradeSchedule) TotalInjectedVolume() float64 {
	total := 0.0
	for _, ev := range s {
		if ev.Action == ActionInject {
			total += ev.Volume
		}
	}
	return total
}
