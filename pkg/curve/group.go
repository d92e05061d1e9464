package curve

import (
	"math/rand/v2"
)

// pairKey identifies the unordered node pair an edge connects.
type pairKey struct {
	lo, hi string
}

// keyOf returns the canonical pair key for an edge, independent of which
// endpoint was recorded as From.
func keyOf(e Edge) pairKey {
	if e.To < e.From {
		return pairKey{lo: e.To, hi: e.From}
	}
	return pairKey{lo: e.From, hi: e.To}
}

// assignOffsets computes the perpendicular offset multiplier for every edge,
// indexed by input position. Edges are grouped by unordered pair in order of
// first appearance; within a group the i-th of k edges gets i − (k−1)/2, so a
// lone edge gets 0 and a group fans out symmetrically around the chord.
//
// Group order and in-group order both follow the input edge list, never map
// iteration, so the assignment is stable for identical inputs. Random
// polarity mirrors whole groups with a sign drawn per group from a PCG
// seeded with seed; fixed polarity consumes no randomness.
func assignOffsets(edges []Edge, polarity Polarity, seed uint64) []float64 {
	groups := make(map[pairKey][]int, len(edges))
	var order []pairKey
	for i, e := range edges {
		k := keyOf(e)
		if _, seen := groups[k]; !seen {
			order = append(order, k)
		}
		groups[k] = append(groups[k], i)
	}

	rng := rand.New(rand.NewPCG(seed, seed^0xdeadbeef))

	mults := make([]float64, len(edges))
	for _, k := range order {
		mirror := 1.0
		if polarity == PolarityRandom && rng.IntN(2) == 0 {
			mirror = -1.0
		}
		members := groups[k]
		half := float64(len(members)-1) / 2
		for i, idx := range members {
			mults[idx] = (float64(i) - half) * mirror
		}
	}
	return mults
}
