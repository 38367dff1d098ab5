// Package transform reduces a dependency graph to the edges worth drawing.
//
// # Overview
//
// Mods routinely declare dependencies that another dependency already
// implies: if create depends on flywheel and flywheel depends on
// architectury, a direct create→architectury edge adds nothing to the
// picture. This package removes such edges while keeping every node and
// the reachability between them.
//
// # Self-Loops
//
// [RemoveSelfLoops] drops edges N→N. They occur when a manifest lists its
// own mod as a dependency and are always removed first.
//
// # Two-Hop Reduction
//
// [TwoHopReduction] removes A→C whenever A→B and B→C exist. It runs as one
// pass over node triples in insertion order, with removals visible to the
// rest of the pass. This is the default and its output depends on the
// order nodes were added, which is why the inventory scans archives in
// sorted order.
//
// # Full Reduction
//
// [FullReduction] removes every edge whose target stays reachable without
// it. It catches shortcuts spanning more than two hops that the single
// pass keeps.
//
// # Usage
//
//	res := transform.Reduce(g, transform.ModeSinglePass)
//	fmt.Println(res.EdgesBefore, "->", res.EdgesAfter)
//
// Or apply the steps individually:
//
//	transform.RemoveSelfLoops(g)
//	transform.TwoHopReduction(g)
package transform
