package model

import (
	"errors"
	"fmt"
	"time"
)

// StorageContract defines the physical and economic parameters of a gas
// storage facility lease.
// Units:
// - volumes: MMBtu
// - rate limits: MMBtu per event
// - unit costs: $/MMBtu
// - StorageCostPerUnitDay: $/MMBtu per day of holding
type StorageContract struct {
	MaxVolume             float64
	InjectionRateLimit    float64
	WithdrawalRateLimit   float64
	InjectionCostPerUnit  float64
	WithdrawalCostPerUnit float64
	StorageCostPerUnitDay float64

	// Term is the contract window; schedule events must fall inside it.
	Start time.Time
	End   time.Time
}

func (c StorageContract) Validate() error {
	if c.MaxVolume < 0 {
		return errors.New("MaxVolume must be >= 0")
	}
	if c.InjectionRateLimit < 0 || c.WithdrawalRateLimit < 0 {
		return errors.New("rate limits must be >= 0")
	}
	if c.InjectionCostPerUnit < 0 || c.WithdrawalCostPerUnit < 0 {
		return errors.New("unit costs must be >= 0")
	}
	if c.StorageCostPerUnitDay < 0 {
		return errors.New("StorageCostPerUnitDay must be >= 0")
	}
	if !c.Start.IsZero() && !c.End.IsZero() && c.End.Before(c.Start) {
		return errors.New("contract End must not precede Start")
	}
	return nil
}

// CostOfInjection is the handling cost of injecting a volume, excluding the
// purchase price of the gas itself.
func (c StorageContract) CostOfInjection(volume float64) float64 {
	return c.InjectionCostPerUnit * volume
}

// CostOfWithdrawal is the handling cost of withdrawing a volume, excluding
// the sale proceeds of the gas itself.
func (c StorageContract) CostOfWithdrawal(volume float64) float64 {
	return c.WithdrawalCostPerUnit * volume
}

// StorageCost accrues linearly in volume held and (fractional) days held.
func (c StorageContract) StorageCost(volumeHeld, days float64) float64 {
	return c.StorageCostPerUnitDay * volumeHeld * days
}

// ScheduleErrorKind classifies a schedule validation failure.
type ScheduleErrorKind string

const (
	RateExceeded      ScheduleErrorKind = "RATE_EXCEEDED"
	CapacityExceeded  ScheduleErrorKind = "CAPACITY_EXCEEDED"
	NegativeInventory ScheduleErrorKind = "NEGATIVE_INVENTORY"
	OutsideTerm       ScheduleErrorKind = "OUTSIDE_TERM"
	InvalidVolume     ScheduleErrorKind = "INVALID_VOLUME"
	InvalidAction     ScheduleErrorKind = "INVALID_ACTION"
)

// ScheduleError reports the first violation found while walking a schedule
// in chronological order. At is the date of the offending event.
type ScheduleError struct {
	Kind ScheduleErrorKind
	At   time.Time
}

func (e *ScheduleError) Error() string {
	return fmt.Sprintf("schedule invalid: %s at %s", e.Kind, e.At.Format("2006-01-02"))
}

// ValidateSchedule walks the schedule in chronological order and fails fast
// on the first violation. Same-date events keep their input order. Violations
// are reported, never auto-corrected: undetected capacity violations would
// corrupt profitability comparisons.
func (c StorageContract) ValidateSchedule(schedule TradeSchedule) error {
	inventory := 0.0
	for _, ev := range schedule.Sorted() {
		if !ev.Action.Valid() {
			return &ScheduleError{Kind: InvalidAction, At: ev.Date}
		}
		if ev.Volume <= 0 {
			return &ScheduleError{Kind: InvalidVolume, At: ev.Date}
		}
		if !c.Start.IsZero() && ev.Date.Before(c.Start) {
			return &ScheduleError{Kind: OutsideTerm, At: ev.Date}
		}
		if !c.End.IsZero() && ev.Date.After(c.End) {
			return &ScheduleError{Kind: OutsideTerm, At: ev.Date}
		}
		switch ev.Action {
		case ActionInject:
			if ev.Volume > c.InjectionRateLimit {
				return &ScheduleError{Kind: RateExceeded, At: ev.Date}
			}
		case ActionWithdraw:
			if ev.Volume > c.WithdrawalRateLimit {
				return &ScheduleError{Kind: RateExceeded, At: ev.Date}
			}
		}
		inventory += ev.Action.SignedVolume(ev.Volume)
		if inventory > c.MaxVolume {
			return &ScheduleError{Kind: CapacityExceeded, At: ev.Date}
		}
		if inventory < 0 {
			return &ScheduleError{Kind: NegativeInventory, At: ev.Date}
		}
	}
	return nil
}
