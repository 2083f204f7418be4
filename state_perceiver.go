package resonance

import "github.com/TKanX/resonance/common"

// perceiveStates computes total_valence, lone_pairs and hybridization
// for every atom, per spec §4.5.
func perceiveStates(p *chemicalPerception) {
	assignTotalValence(p)
	assignLonePairs(p)

	initial := assignInitialHybridization(p)
	applyConjugationCorrection(p, initial)
}

// assignTotalValence sums bond multiplicities over each atom's
// incident bonds, saturating at common.MaxTotalValence, per spec §4.5
// step 1 and §9's saturating-arithmetic design note.
func assignTotalValence(p *chemicalPerception) {
	for _, b := range p.bonds {
		mult := b.effectiveOrder().Multiplicity()
		addSaturatingValence(p.atoms[b.a1], mult)
		addSaturatingValence(p.atoms[b.a2], mult)
	}
}

func addSaturatingValence(a *perceivedAtom, delta uint8) {
	sum := int(a.totalValence) + int(delta)
	if sum > common.MaxTotalValence {
		sum = common.MaxTotalValence
	}
	a.totalValence = uint8(sum)
}

// assignLonePairs computes lone_pairs per spec §4.5 step 2: atoms
// without a defined main-group valence electron count contribute 0.
func assignLonePairs(p *chemicalPerception) {
	for _, a := range p.atoms {
		if !a.element.HasValenceElectrons() {
			a.lonePairs = 0
			continue
		}
		nonBonding := int(a.element.ValenceElectrons) - int(a.charge) - int(a.totalValence)
		if nonBonding < 0 {
			nonBonding = 0
		}
		a.lonePairs = nonBonding / 2
	}
}

// assignInitialHybridization computes the pre-correction hybridization
// of every atom per spec §4.5 step 3, and answers a snapshot slice
// (indexed by atom index) for the conjugation-correction step to read
// without observing any already-corrected neighbour.
func assignInitialHybridization(p *chemicalPerception) []common.Hybridization {
	snapshot := make([]common.Hybridization, p.atomCount())
	for i, a := range p.atoms {
		var h common.Hybridization
		switch {
		case a.isAromatic:
			h = common.SP2
		default:
			switch a.degree + a.lonePairs {
			case 2:
				h = common.SP
			case 3:
				h = common.SP2
			case 4:
				h = common.SP3
			default:
				h = common.UnknownHybridization
			}
		}
		a.hybridization = h
		snapshot[i] = h
	}
	return snapshot
}

// applyConjugationCorrection reassigns any SP3 atom with a lone pair
// to SP2 if it has a neighbour that was SP or SP2 in the pre-correction
// snapshot, per spec §4.5 step 4. The snapshot is frozen, so this pass
// never cascades.
func applyConjugationCorrection(p *chemicalPerception, snapshot []common.Hybridization) {
	for i, a := range p.atoms {
		if snapshot[i] != common.SP3 || a.lonePairs <= 0 {
			continue
		}
		for _, edge := range p.adjacency[i] {
			nbrHyb := snapshot[edge.neighbor]
			if nbrHyb == common.SP || nbrHyb == common.SP2 {
				a.hybridization = common.SP2
				break
			}
		}
	}
}
