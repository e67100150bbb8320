package analysis

import (
	"sort"

	"github.com/SarthakPDalvi/quant-research/internal/model"
)

type RankedPotential struct {
	StoragePotential
}

// RankHubs computes potentials per hub and sorts descending by intrinsic
// value; ties break by hub name so output order is deterministic.
func RankHubs(byHub map[string][]model.PricePoint) []RankedPotential {
	out := make([]RankedPotential, 0, len(byHub))
	for hub, points := range byHub {
		p := ComputePotential(points)
		if p.Hub == "" {
			p.Hub = hub
		}
		out = append(out, RankedPotential{StoragePotential: p})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].IntrinsicValue != out[j].IntrinsicValue {
			return out[i].IntrinsicValue > out[j].IntrinsicValue
		}
		return out[i].Hub < out[j].Hub
	})
	return out
}
