package resonance

// buildPerception validates the input graph and copies its atoms and
// bonds into a fresh chemicalPerception, establishing id<->index maps
// and an undirected adjacency list, per spec §4.1.
func buildPerception(g Graph) (*chemicalPerception, error) {
	atoms := g.Atoms()
	bonds := g.Bonds()

	p := &chemicalPerception{
		atoms:         make([]*perceivedAtom, 0, len(atoms)),
		atomIndexByID: make(map[uint64]int, len(atoms)),
		bondIndexByID: make(map[uint64]int, len(bonds)),
	}

	for _, a := range atoms {
		idx := len(p.atoms)
		p.atomIndexByID[a.ID()] = idx
		p.atoms = append(p.atoms, &perceivedAtom{
			externalID: a.ID(),
			element:    a.Element(),
			charge:     a.Charge(),
		})
	}
	p.adjacency = make([][]adjacencyEdge, len(p.atoms))

	seenPairs := make(map[[2]uint64]struct{}, len(bonds))

	for _, b := range bonds {
		id1, id2 := b.Atoms()

		if id1 == id2 {
			// A self-loop collapses to a degenerate canonical pair;
			// treat it as an immediate duplicate rather than waiting
			// for a second sighting, per spec §4.1.
			return nil, &DuplicateBond{A: id1, B: id2}
		}

		idx1, ok1 := p.atomIndexByID[id1]
		if !ok1 {
			return nil, &InconsistentGraph{AtomID: id1}
		}
		idx2, ok2 := p.atomIndexByID[id2]
		if !ok2 {
			return nil, &InconsistentGraph{AtomID: id2}
		}

		lo, hi := id1, id2
		if lo > hi {
			lo, hi = hi, lo
		}
		pair := [2]uint64{lo, hi}
		if _, dup := seenPairs[pair]; dup {
			return nil, &DuplicateBond{A: lo, B: hi}
		}
		seenPairs[pair] = struct{}{}

		bondIdx := len(p.bonds)
		p.bondIndexByID[b.ID()] = bondIdx
		p.bonds = append(p.bonds, &perceivedBond{
			externalID: b.ID(),
			inputOrder: b.Order(),
			a1:         idx1,
			a2:         idx2,
		})

		p.adjacency[idx1] = append(p.adjacency[idx1], adjacencyEdge{neighbor: idx2, bond: bondIdx})
		p.adjacency[idx2] = append(p.adjacency[idx2], adjacencyEdge{neighbor: idx1, bond: bondIdx})
	}

	for i, a := range p.atoms {
		a.degree = len(p.adjacency[i])
	}

	return p, nil
}
