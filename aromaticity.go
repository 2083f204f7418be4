package resonance

import "github.com/TKanX/resonance/common"

// aromaticityCapableElements are the elements allowed to participate
// in a Huckel aromatic system, per spec §4.3.
var aromaticityCapableElements = map[uint8]bool{
	5:  true, // B
	6:  true, // C
	7:  true, // N
	8:  true, // O
	9:  true, // F
	14: true, // Si
	15: true, // P
	16: true, // S
	17: true, // Cl
	32: true, // Ge
	33: true, // As
	34: true, // Se
	35: true, // Br
	53: true, // I
}

// perceiveAromaticity runs the two AromaticityPerceiver passes of spec
// §4.3, mutating isAromatic on atoms and bonds.
func perceiveAromaticity(p *chemicalPerception) {
	for _, b := range p.bonds {
		if b.inputOrder == common.Aromatic {
			b.isAromatic = true
			p.atoms[b.a1].isAromatic = true
			p.atoms[b.a2].isAromatic = true
		}
	}

	if len(p.rings.rings) == 0 {
		return
	}

	for _, ringIdxs := range fusedRingSystems(p.rings.rings) {
		atomSet, bondSet := unionRingMembers(p.rings.rings, ringIdxs)
		if isSystemAromatic(p, atomSet, bondSet) {
			for a := range atomSet {
				p.atoms[a].isAromatic = true
			}
			for b := range bondSet {
				p.bonds[b].isAromatic = true
			}
		}
	}
}

// fusedRingSystems groups ring indices into connected components of
// the ring-adjacency graph, where two rings are adjacent iff they
// share at least one bond.
func fusedRingSystems(rings []*ring) [][]int {
	bondToRings := make(map[int][]int)
	for ri, r := range rings {
		for _, bid := range r.bonds {
			bondToRings[bid] = append(bondToRings[bid], ri)
		}
	}

	uf := newUnionFind(len(rings))
	for _, sharing := range bondToRings {
		for i := 1; i < len(sharing); i++ {
			uf.union(sharing[0], sharing[i])
		}
	}

	assignment, _ := uf.components()
	systems := make(map[int][]int)
	for ri, rep := range assignment {
		systems[rep] = append(systems[rep], ri)
	}

	out := make([][]int, 0, len(systems))
	for _, idxs := range systems {
		out = append(out, idxs)
	}
	return out
}

// unionRingMembers answers the union of atom indices and bond indices
// across the given rings, as membership sets.
func unionRingMembers(rings []*ring, ringIdxs []int) (atoms, bonds map[int]struct{}) {
	atoms = make(map[int]struct{})
	bonds = make(map[int]struct{})
	for _, ri := range ringIdxs {
		for _, a := range rings[ri].atoms {
			atoms[a] = struct{}{}
		}
		for _, b := range rings[ri].bonds {
			bonds[b] = struct{}{}
		}
	}
	return atoms, bonds
}

// isSystemAromatic evaluates a fused ring system against Huckel's rule,
// per spec §4.3.
func isSystemAromatic(p *chemicalPerception, atomSet, bondSet map[int]struct{}) bool {
	for a := range atomSet {
		atom := p.atoms[a]
		if atom.degree > 3 || !aromaticityCapableElements[atom.element.Number] {
			return false
		}
	}

	total := 0
	for a := range atomSet {
		atom := p.atoms[a]

		inMultipleBond := false
		for _, edge := range p.adjacency[a] {
			if _, inSystem := bondSet[edge.bond]; !inSystem {
				continue
			}
			order := p.bonds[edge.bond].inputOrder
			if order == common.Double || order == common.Triple {
				inMultipleBond = true
				break
			}
		}

		if inMultipleBond {
			total++
			continue
		}
		total += piElectronContribution(atom)
	}

	return total > 0 && total%4 == 2
}

// piElectronContribution answers the pi-electron contribution of an
// atom that is not incident to a multiple bond within its ring system,
// per the element/environment table of spec §4.3.
func piElectronContribution(atom *perceivedAtom) int {
	switch atom.element.Number {
	case 7: // N
		if atom.degree == 3 {
			if atom.charge != 1 {
				return 2
			}
			return 0
		}
	case 8, 16: // O, S
		if atom.degree == 2 {
			return 2
		}
	case 6: // C
		if atom.degree == 3 && atom.charge == -1 {
			return 2
		}
	case 5: // B
		return 0
	}
	return 0
}
