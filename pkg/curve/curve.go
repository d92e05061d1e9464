package curve

import (
	"sync"

	"github.com/matzehuels/edgebend/pkg/errors"
	"github.com/matzehuels/edgebend/pkg/geom"
)

// Edge is an ordered pair of node identifiers. Multiple edges may connect
// the same unordered pair, in either direction; they are treated as one
// parallel group.
type Edge struct {
	From string
	To   string
}

// Polyline is an ordered sequence of sample points tracing one curve from
// its source position to its target position.
type Polyline []geom.Point

// Segments converts the polyline into consecutive line segments, for
// renderers that consume segment collections rather than point lists.
func (p Polyline) Segments() [][2]geom.Point {
	if len(p) < 2 {
		return nil
	}
	segs := make([][2]geom.Point, len(p)-1)
	for i := range segs {
		segs[i] = [2]geom.Point{p[i], p[i+1]}
	}
	return segs
}

// Generate produces one sampled curve per edge, parallel to the input edge
// list. pos maps every node ID referenced by edges to its position; an
// absent ID aborts the call with a MISSING_NODE error and no output, as does
// a self-loop (INVALID_EDGE). opts may be nil for DefaultOptions; invalid
// options fail before any per-edge work.
//
// An edge whose endpoints share the same position cannot be normalized; its
// curve is Precision copies of that position, a valid zero-length polyline.
func Generate(edges []Edge, pos map[string]geom.Point, opts *Options) ([]Polyline, error) {
	if opts == nil {
		opts = &defaultOpts
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}
	for _, e := range edges {
		if e.From == e.To {
			return nil, errors.New(errors.ErrCodeInvalidEdge, "self-loop on node %q is not supported", e.From)
		}
		if _, ok := pos[e.From]; !ok {
			return nil, errors.New(errors.ErrCodeMissingNode, "no position for node %q", e.From)
		}
		if _, ok := pos[e.To]; !ok {
			return nil, errors.New(errors.ErrCodeMissingNode, "no position for node %q", e.To)
		}
	}

	// Offsets are assigned sequentially over the full edge list before any
	// sampling, so worker count never changes the result.
	mults := assignOffsets(edges, opts.Polarity, opts.Seed)

	out := make([]Polyline, len(edges))
	if opts.Workers > 1 && len(edges) > 1 {
		sampleParallel(edges, pos, mults, opts, out)
	} else {
		for i, e := range edges {
			out[i] = sampleEdge(e, pos, mults[i], opts)
		}
	}
	return out, nil
}

// sampleParallel fans edge sampling across opts.Workers goroutines. Each
// worker writes only its own disjoint slots of out; inputs are read-only.
func sampleParallel(edges []Edge, pos map[string]geom.Point, mults []float64, opts *Options, out []Polyline) {
	workers := opts.Workers
	if workers > len(edges) {
		workers = len(edges)
	}
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(start int) {
			defer wg.Done()
			for i := start; i < len(edges); i += workers {
				out[i] = sampleEdge(edges[i], pos, mults[i], opts)
			}
		}(w)
	}
	wg.Wait()
}

// sampleEdge builds and samples the cubic Bezier for a single edge.
func sampleEdge(e Edge, pos map[string]geom.Point, mult float64, opts *Options) Polyline {
	a := pos[e.From]
	b := pos[e.To]

	ab := b.Sub(a)
	length := ab.Hypot()
	if length == 0 {
		pts := make(Polyline, opts.Precision)
		for i := range pts {
			pts[i] = a
		}
		return pts
	}

	// Anchors sit dist fraction along the chord from each endpoint.
	m1 := a.Translate(ab.Mul(opts.Dist))
	m2 := b.Translate(ab.Mul(-opts.Dist))

	// The perpendicular is taken from the canonical (lo, hi) orientation of
	// the pair, not from the recorded traversal direction, so duplicates
	// stored as (s, t) and (t, s) bend away from each other.
	k := keyOf(e)
	perp := pos[k.hi].Sub(pos[k.lo]).Normalize().Perp()
	off := perp.Mul(mult * opts.Dist * length)

	bez := geom.CubicBez{
		P0: a,
		P1: m1.Translate(off),
		P2: m2.Translate(off),
		P3: b,
	}
	return bez.Sample(opts.Precision)
}
