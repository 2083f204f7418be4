package resonance

import (
	"sort"

	"github.com/TKanX/resonance/common"
)

// findResonanceSystems implements ResonanceGrouper, per spec §4.7: it
// seeds from double/triple/aromatic bonds, expands through bonds whose
// endpoints are both conjugation candidates (except bonds that
// bridgesDistinctRings reports as linking two separate rings), then
// groups the resulting bond set into connected components.
func findResonanceSystems(p *chemicalPerception) []ResonanceSystem {
	inSystem := make([]bool, p.bondCount())
	var frontier []int
	for bi, b := range p.bonds {
		if isSeedBond(b) {
			inSystem[bi] = true
			frontier = append(frontier, bi)
		}
	}

	for len(frontier) > 0 {
		bi := frontier[0]
		frontier = frontier[1:]
		b := p.bonds[bi]

		for _, endpoint := range [2]int{b.a1, b.a2} {
			if !p.atoms[endpoint].isConjugationCandidate {
				continue
			}
			for _, edge := range p.adjacency[endpoint] {
				if inSystem[edge.bond] {
					continue
				}
				if !p.atoms[edge.neighbor].isConjugationCandidate {
					continue
				}
				if bridgesDistinctRings(p, endpoint, edge.neighbor) {
					continue
				}
				inSystem[edge.bond] = true
				frontier = append(frontier, edge.bond)
			}
		}
	}

	groups := groupBondsSharingAtoms(p, inSystem)

	systems := make([]ResonanceSystem, 0, len(groups))
	for _, bondIdxs := range groups {
		systems = append(systems, canonicalizeSystem(p, bondIdxs))
	}

	sort.Slice(systems, func(i, j int) bool {
		return lessUint64Tuple(systems[i].Bonds, systems[j].Bonds)
	})

	return systems
}

// bridgesDistinctRings answers whether a1 and a2 are each a member of
// some ring but share no ring in common: a link bond joining two
// otherwise self-contained ring systems (e.g. biphenyl's inter-ring
// bond), which does not itself carry conjugation between them even
// when both endpoints are independently conjugation candidates.
func bridgesDistinctRings(p *chemicalPerception, a1, a2 int) bool {
	if !p.atoms[a1].isInRing || !p.atoms[a2].isInRing {
		return false
	}
	for _, r := range p.rings.rings {
		in1, in2 := false, false
		for _, a := range r.atoms {
			if a == a1 {
				in1 = true
			}
			if a == a2 {
				in2 = true
			}
		}
		if in1 && in2 {
			return false
		}
	}
	return true
}

// isSeedBond answers whether b qualifies as a ResonanceGrouper seed,
// per spec §4.7 step 1.
func isSeedBond(b *perceivedBond) bool {
	if b.isAromatic {
		return true
	}
	switch b.effectiveOrder() {
	case common.Double, common.Triple:
		return true
	default:
		return false
	}
}

// groupBondsSharingAtoms unions every bond index marked in inSystem
// with every other such bond that shares an endpoint atom, and answers
// the resulting connected components as lists of bond indices.
func groupBondsSharingAtoms(p *chemicalPerception, inSystem []bool) [][]int {
	uf := newUnionFind(p.bondCount())

	atomToBonds := make(map[int][]int)
	for bi, b := range p.bonds {
		if !inSystem[bi] {
			continue
		}
		atomToBonds[b.a1] = append(atomToBonds[b.a1], bi)
		atomToBonds[b.a2] = append(atomToBonds[b.a2], bi)
	}
	for _, bonds := range atomToBonds {
		for i := 1; i < len(bonds); i++ {
			uf.union(bonds[0], bonds[i])
		}
	}

	groups := make(map[int][]int)
	for bi := range p.bonds {
		if !inSystem[bi] {
			continue
		}
		rep := uf.find(bi)
		groups[rep] = append(groups[rep], bi)
	}

	out := make([][]int, 0, len(groups))
	for _, bonds := range groups {
		out = append(out, bonds)
	}
	return out
}

// canonicalizeSystem builds a ResonanceSystem from internal bond
// indices: its atom and bond lists are the external ids, strictly
// sorted and deduplicated, per spec §6.
func canonicalizeSystem(p *chemicalPerception, bondIdxs []int) ResonanceSystem {
	atomIdxSet := make(map[int]struct{}, len(bondIdxs)*2)
	bondExtIDs := make([]uint64, 0, len(bondIdxs))

	for _, bi := range bondIdxs {
		b := p.bonds[bi]
		atomIdxSet[b.a1] = struct{}{}
		atomIdxSet[b.a2] = struct{}{}
		bondExtIDs = append(bondExtIDs, b.externalID)
	}

	atomExtIDs := make([]uint64, 0, len(atomIdxSet))
	for ai := range atomIdxSet {
		atomExtIDs = append(atomExtIDs, p.atoms[ai].externalID)
	}

	sort.Slice(atomExtIDs, func(i, j int) bool { return atomExtIDs[i] < atomExtIDs[j] })
	sort.Slice(bondExtIDs, func(i, j int) bool { return bondExtIDs[i] < bondExtIDs[j] })

	return ResonanceSystem{Atoms: atomExtIDs, Bonds: bondExtIDs}
}

func lessUint64Tuple(a, b []uint64) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}
