package resonance

import "github.com/TKanX/resonance/common"

// Atom is the read-only view of an atom that any collaborator's graph
// must expose. Ids are opaque to the core: they need not be
// contiguous, and the core assumes only that they are unique among
// atoms, per spec §6.
type Atom interface {
	// ID answers a stable identifier for this atom, unique among the
	// atoms of its graph.
	ID() uint64
	// Element answers this atom's element.
	Element() common.Element
	// Charge answers this atom's formal charge, a signed small
	// integer in [-8, +8].
	Charge() int8
}

// Bond is the read-only view of a bond that any collaborator's graph
// must expose.
type Bond interface {
	// ID answers a stable identifier for this bond, unique among the
	// bonds of its graph.
	ID() uint64
	// Order answers this bond's input order.
	Order() common.BondOrder
	// Atoms answers the two endpoint atom ids of this bond, in no
	// particular order.
	Atoms() (uint64, uint64)
}

// Graph is the input interface the core consumes. It borrows atoms
// and bonds read-only for the duration of one FindResonanceSystems
// call; the core never retains graph data past that call.
//
// A collaborator's Atoms and Bonds methods must each yield every atom
// or bond exactly once. Every bond endpoint must reference an atom
// that Atoms() yields; the core reports InconsistentGraph otherwise.
type Graph interface {
	// Atoms answers every atom in this graph, each exactly once.
	Atoms() []Atom
	// Bonds answers every bond in this graph, each exactly once.
	Bonds() []Bond
}
