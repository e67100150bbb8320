package analysis

import (
	"math"
	"sort"
	"time"

	"github.com/SarthakPDalvi/quant-research/internal/model"
)

// StoragePotential is a hub-level summary usable for ranking. It does not
// depend on a specific contract; it carries raw price stats plus an
// "intrinsic value" for a canonical 1-MMBtu, zero-cost storage unit.
type StoragePotential struct {
	Hub string

	Start time.Time
	End   time.Time

	Count int

	MinPrice  float64
	MaxPrice  float64
	MeanPrice float64
	P05Price  float64
	P95Price  float64

	SpreadP95P05 float64

	// IntrinsicValue is the best profit ($) achievable by a canonical unit:
	// - 1 MMBtu capacity, no rate limits
	// - zero injection/withdrawal/storage cost
	// - trades only at observation dates
	IntrinsicValue float64
}

func ComputePotential(points []model.PricePoint) StoragePotential {
	p := StoragePotential{}
	if len(points) == 0 {
		return p
	}

	sorted := make([]model.PricePoint, len(points))
	copy(sorted, points)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Date.Before(sorted[j].Date) })

	p.Hub = sorted[0].Hub
	p.Count = len(sorted)
	p.Start = sorted[0].Date
	p.End = sorted[len(sorted)-1].Date

	sum := 0.0
	minv := math.Inf(1)
	maxv := math.Inf(-1)
	vals := make([]float64, 0, len(sorted))
	for _, pt := range sorted {
		v := pt.Price
		vals = append(vals, v)
		sum += v
		if v < minv {
			minv = v
		}
		if v > maxv {
			maxv = v
		}
	}
	sort.Float64s(vals)
	p.MinPrice = minv
	p.MaxPrice = maxv
	p.MeanPrice = sum / float64(len(vals))
	p.P05Price = percentileSorted(vals, 0.05)
	p.P95Price = percentileSorted(vals, 0.95)
	p.SpreadP95P05 = p.P95Price - p.P05Price

	p.IntrinsicValue = intrinsicValueCanonical(sorted)
	return p
}

func percentileSorted(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if q <= 0 {
		return sorted[0]
	}
	if q >= 1 {
		return sorted[len(sorted)-1]
	}
	// Linear interpolation between order stats.
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}

// intrinsicValueCanonical runs a two-state DP over the observation dates:
// the unit is either empty or full. Transitions per date are hold, buy
// (empty -> full, pay the price) or sell (full -> empty, earn the price).
// Repeated cycles are allowed, so the result is the sum of every profitable
// buy-low/sell-high swing in date order.
func intrinsicValueCanonical(sorted []model.PricePoint) float64 {
	if len(sorted) < 2 {
		return 0
	}

	negInf := math.Inf(-1)
	empty, full := 0.0, negInf

	for _, pt := range sorted {
		newEmpty := empty
		if v := full + pt.Price; v > newEmpty { // sell
			newEmpty = v
		}
		newFull := full
		if v := empty - pt.Price; v > newFull { // buy
			newFull = v
		}
		empty, full = newEmpty, newFull
	}
	// Must end empty; holding unsold gas has no value here.
	if empty < 0 {
		return 0
	}
	return empty
}
