package transform

import (
	"fmt"
	"strings"
)

// Mode selects the reduction algorithm applied by [Reduce].
type Mode string

const (
	// ModeSinglePass runs [TwoHopReduction] exactly once. The result depends
	// on node insertion order and may keep shortcuts that only a longer path
	// implies. This is the default.
	ModeSinglePass Mode = "single"

	// ModeFull runs [FullReduction], which removes every edge whose target
	// stays reachable without it.
	ModeFull Mode = "full"
)

// ParseMode converts a user-supplied string into a Mode.
// The empty string maps to [ModeSinglePass].
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ModeSinglePass:
		return ModeSinglePass, nil
	case ModeFull:
		return ModeFull, nil
	}
	return "", fmt.Errorf("unknown reduction mode %q (want %q or %q)", s, ModeSinglePass, ModeFull)
}

// Result contains metrics about a reduction applied by [Reduce].
type Result struct {
	// Mode is the algorithm that ran.
	Mode Mode

	// SelfLoopsRemoved counts edges N→N dropped before reduction.
	SelfLoopsRemoved int

	// TransitiveEdgesRemoved counts edges dropped because another path
	// already implies them.
	TransitiveEdgesRemoved int

	// NodesBefore and EdgesBefore describe the graph as it arrived.
	NodesBefore, EdgesBefore int

	// NodesAfter and EdgesAfter describe the reduced graph. Reduction never
	// removes nodes, so NodesAfter always equals NodesBefore.
	NodesAfter, EdgesAfter int
}
