package resonance

import "fmt"

// InconsistentGraph is answered when a bond references an atom id that
// no atom in the graph carries.
type InconsistentGraph struct {
	AtomID uint64
}

func (e *InconsistentGraph) Error() string {
	return fmt.Sprintf("resonance: bond references unknown atom id %d", e.AtomID)
}

// DuplicateBond is answered when two bonds share the same unordered
// endpoint pair. A self-loop (a bond whose two endpoints are the same
// atom) is reported through this error too, per spec §4.1: it is
// rejected as soon as it is seen, with A and B both set to that atom.
type DuplicateBond struct {
	A, B uint64 // The canonicalised (min, max) endpoint pair.
}

func (e *DuplicateBond) Error() string {
	return fmt.Sprintf("resonance: duplicate bond between atoms %d and %d", e.A, e.B)
}

// KekulizationFailed is answered when an aromatic subgraph has no
// valid Kekule assignment within the attempt budget.
type KekulizationFailed struct {
	Attempts int // The number of backtracking attempts spent before giving up.
}

func (e *KekulizationFailed) Error() string {
	return fmt.Sprintf("resonance: kekulization failed after %d attempts", e.Attempts)
}

// RingPerceptionFailed is answered when SSSR construction cannot
// produce enough independent rings to match the graph's cyclomatic
// number, which indicates a topological anomaly in the input.
type RingPerceptionFailed struct {
	Reason string
}

func (e *RingPerceptionFailed) Error() string {
	return fmt.Sprintf("resonance: ring perception failed: %s", e.Reason)
}

// PerceptionError is the common supertype of every error the public
// entry point can return. All four concrete error types above
// implement it; it exists so callers can type-switch without naming
// every variant.
type PerceptionError interface {
	error
}
