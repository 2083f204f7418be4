package resonance

import "github.com/TKanX/resonance/common"

// perceivedAtom is the internal, index-addressed representation of one
// atom for the duration of a single perception call. Fields are
// written by exactly one stage each, in pipeline order, per spec §3.
type perceivedAtom struct {
	externalID uint64
	element    common.Element
	charge     int8

	degree       int  // Count of incident bonds. Written by GraphBuilder.
	totalValence uint8
	isInRing     bool
	isAromatic   bool

	hybridization common.Hybridization
	lonePairs     int

	conjugationRoles     common.ConjugationRole
	isConjugationCandidate bool
}

// perceivedBond is the internal, index-addressed representation of one
// bond for the duration of a single perception call.
type perceivedBond struct {
	externalID uint64
	inputOrder common.BondOrder

	a1, a2 int // Internal atom indices of the two endpoints.

	isInRing   bool
	isAromatic bool

	hasKekuleOrder bool
	kekuleOrder    common.BondOrder
}

// effectiveOrder answers this bond's Kekule order if one has been
// assigned, otherwise its input order, per spec §3/§4.5.
func (b *perceivedBond) effectiveOrder() common.BondOrder {
	if b.hasKekuleOrder {
		return b.kekuleOrder
	}
	return b.inputOrder
}

// otherEndpoint answers the index of the endpoint of this bond other
// than the given one. It panics if idx is not one of this bond's two
// endpoints, which would be an internal invariant violation.
func (b *perceivedBond) otherEndpoint(idx int) int {
	switch idx {
	case b.a1:
		return b.a2
	case b.a2:
		return b.a1
	default:
		panic("resonance: atom index is not an endpoint of this bond")
	}
}

// adjacencyEdge is one entry in an atom's adjacency list: a neighbour
// atom index reached via a particular bond index.
type adjacencyEdge struct {
	neighbor int
	bond     int
}

// ring is a simple cycle: a sorted, deduplicated set of atom indices
// and the bond indices that close them into a loop.
type ring struct {
	atoms []int // Sorted, deduplicated internal atom indices.
	bonds []int // Sorted, deduplicated internal bond indices.
}

// size answers the number of atoms (equivalently, bonds) in this ring.
func (r *ring) size() int {
	return len(r.atoms)
}

// ringInfo is the Smallest Set of Smallest Rings computed by the
// RingFinder.
type ringInfo struct {
	rings []*ring
}

// chemicalPerception is the shared, mutable-by-stage working state of
// one perception call. It exclusively owns all perception arrays and
// maps; the external Graph is borrowed read-only and never retained
// past the call that built this value, per spec §3 Ownership.
type chemicalPerception struct {
	atoms []*perceivedAtom
	bonds []*perceivedBond

	// adjacency[i] lists every edge incident to atom index i.
	adjacency [][]adjacencyEdge

	atomIndexByID map[uint64]int
	bondIndexByID map[uint64]int

	rings ringInfo
}

// atomCount answers the number of atoms in this perception.
func (p *chemicalPerception) atomCount() int {
	return len(p.atoms)
}

// bondCount answers the number of bonds in this perception.
func (p *chemicalPerception) bondCount() int {
	return len(p.bonds)
}

// bondBetween answers the index of the bond between the two given
// atom indices, and true, if one exists. Answers (-1, false)
// otherwise.
func (p *chemicalPerception) bondBetween(a1, a2 int) (int, bool) {
	for _, edge := range p.adjacency[a1] {
		if edge.neighbor == a2 {
			return edge.bond, true
		}
	}
	return -1, false
}
