// Package curve computes smooth curved visual paths for graph edges.
//
// Given an edge list and a node position map, [Generate] produces one sampled
// cubic Bezier polyline per edge, in input order. An edge with no parallel
// sibling degenerates to a straight segment; parallel edges between the same
// unordered node pair fan out symmetrically with perpendicular offsets so
// they never coincide, the way Gephi draws multigraphs.
//
// The generator is a pure function of its inputs: it performs no I/O, keeps
// no state between calls, and with the same inputs (including [Options.Seed])
// returns identical output. Layout computation and rendering are external
// collaborators; this package only turns positions into curve geometry.
//
//	curves, err := curve.Generate(edges, positions, nil)
//	if err != nil {
//	    return err
//	}
//	// curves[i] is the polyline for edges[i], ready for a line renderer.
package curve
