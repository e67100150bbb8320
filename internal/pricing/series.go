package pricing

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/SarthakPDalvi/quant-research/internal/model"
)

// ErrOutOfDomain is returned when a price is requested from an empty series.
// Queries outside the sampled window do not fail; they extrapolate flat from
// the nearest observation, since real-world date queries frequently fall
// outside the window.
var ErrOutOfDomain = errors.New("price series is empty")

const hoursPerDay = 24.0

// Observation is one (date, price) sample in a series.
type Observation struct {
	Date  time.Time
	Price float64
}

// Series holds sparse, date-indexed price observations and answers
// interpolated queries for arbitrary dates. Immutable once constructed;
// dates are strictly increasing with no duplicates.
type Series struct {
	obs []Observation
}

// NewSeries builds a series from raw points. Input order does not matter.
// Duplicate dates and non-positive prices are rejected.
func NewSeries(points []model.PricePoint) (*Series, error) {
	obs := make([]Observation, 0, len(points))
	for _, p := range points {
		if p.Price <= 0 {
			return nil, fmt.Errorf("non-positive price %v at %s", p.Price, p.Date.Format("2006-01-02"))
		}
		obs = append(obs, Observation{Date: p.Date, Price: p.Price})
	}
	sort.Slice(obs, func(i, j int) bool { return obs[i].Date.Before(obs[j].Date) })
	for i := 1; i < len(obs); i++ {
		if obs[i].Date.Equal(obs[i-1].Date) {
			return nil, fmt.Errorf("duplicate observation date %s", obs[i].Date.Format("2006-01-02"))
		}
	}
	return &Series{obs: obs}, nil
}

func (s *Series) Len() int { return len(s.obs) }

// First returns the earliest observation. Valid only for non-empty series.
func (s *Series) First() Observation { return s.obs[0] }

// Last returns the latest observation. Valid only for non-empty series.
func (s *Series) Last() Observation { return s.obs[len(s.obs)-1] }

// Observations returns a copy of the underlying samples in date order.
func (s *Series) Observations() []Observation {
	out := make([]Observation, len(s.obs))
	copy(out, s.obs)
	return out
}

// Query returns the price estimate for a date:
// - the observed price on an exact match,
// - a linear interpolation between the nearest earlier and later
//   observations using continuous (fractional-day) time arithmetic,
// - the nearest observation's price when the date falls before the first or
//   after the last sample (flat extrapolation).
// Pure function of the series contents; identical inputs yield identical
// outputs.
func (s *Series) Query(date time.Time) (float64, error) {
	if len(s.obs) == 0 {
		return 0, ErrOutOfDomain
	}

	// Index of the first observation at or after date.
	i := sort.Search(len(s.obs), func(i int) bool {
		return !s.obs[i].Date.Before(date)
	})

	if i < len(s.obs) && s.obs[i].Date.Equal(date) {
		return s.obs[i].Price, nil
	}
	if i == 0 {
		return s.obs[0].Price, nil
	}
	if i == len(s.obs) {
		return s.obs[len(s.obs)-1].Price, nil
	}

	lo, hi := s.obs[i-1], s.obs[i]
	span := hi.Date.Sub(lo.Date).Hours() / hoursPerDay
	elapsed := date.Sub(lo.Date).Hours() / hoursPerDay
	return lo.Price + (hi.Price-lo.Price)*(elapsed/span), nil
}
