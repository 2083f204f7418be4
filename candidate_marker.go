package resonance

import "github.com/TKanX/resonance/common"

// hypervalentElements are the elements CandidateMarker's first pass
// considers for a HypervalentBridge role, per spec §4.6.
var hypervalentElements = map[uint8]bool{
	15: true, // P
	16: true, // S
	17: true, // Cl
	35: true, // Br
	53: true, // I
}

// conjugatingElements are the elements CandidateMarker treats as
// capable of participating in conjugation when found as a neighbour,
// per spec §4.6's "common conjugation element" / "conjugating
// element" references.
var conjugatingElements = map[uint8]bool{
	6:  true, // C
	7:  true, // N
	8:  true, // O
	15: true, // P
	16: true, // S
}

// determineConjugationCandidates runs the four CandidateMarker passes
// of spec §4.6, in order, then derives is_conjugation_candidate.
func determineConjugationCandidates(p *chemicalPerception) {
	markHypervalentBridges(p)
	markPiCarriers(p)
	markLonePairDonors(p)
	markChargeMediators(p)

	for _, a := range p.atoms {
		a.isConjugationCandidate = !a.conjugationRoles.IsEmpty()
	}
}

// markHypervalentBridges is CandidateMarker pass 1, per spec §4.6.
func markHypervalentBridges(p *chemicalPerception) {
	for i, a := range p.atoms {
		if !hypervalentElements[a.element.Number] || a.totalValence <= 4 {
			continue
		}

		hasMultipleBondToConjugator := false
		hasQualifyingNeighbor := false
		for _, edge := range p.adjacency[i] {
			nbr := p.atoms[edge.neighbor]
			eff := p.bonds[edge.bond].effectiveOrder()
			if (eff == common.Double || eff == common.Triple) && conjugatingElements[nbr.element.Number] {
				hasMultipleBondToConjugator = true
			}
			if nbr.lonePairs >= 1 || nbr.charge < 0 || conjugatingElements[nbr.element.Number] {
				hasQualifyingNeighbor = true
			}
		}

		if hasMultipleBondToConjugator && hasQualifyingNeighbor {
			a.conjugationRoles = a.conjugationRoles.With(common.HypervalentBridge)
		}
	}
}

// markPiCarriers is CandidateMarker pass 2, per spec §4.6.
func markPiCarriers(p *chemicalPerception) {
	for i, a := range p.atoms {
		intrinsicallyPi := a.isAromatic || a.hybridization == common.SP || a.hybridization == common.SP2
		if !intrinsicallyPi {
			continue
		}

		if isBridgingNeutralOxygen(p, i, a) {
			continue
		}

		a.conjugationRoles = a.conjugationRoles.With(common.PiCarrier)
	}
}

// isBridgingNeutralOxygen answers whether atom a (at index i) is a
// neutral, degree>1 oxygen adjacent to a HypervalentBridge, the
// exception carved out in CandidateMarker passes 2 and 3 to separate
// bridging ester oxygens from conjugating ones, per spec §4.6.
func isBridgingNeutralOxygen(p *chemicalPerception, i int, a *perceivedAtom) bool {
	if a.element.Number != 8 || a.charge != 0 || a.degree <= 1 {
		return false
	}
	for _, edge := range p.adjacency[i] {
		if p.atoms[edge.neighbor].conjugationRoles.Has(common.HypervalentBridge) {
			return true
		}
	}
	return false
}

// markLonePairDonors is CandidateMarker pass 3, per spec §4.6.
func markLonePairDonors(p *chemicalPerception) {
	for i, a := range p.atoms {
		if a.lonePairs < 1 {
			continue
		}
		if isBridgingNeutralOxygen(p, i, a) {
			continue
		}

		qualifies := false
		onlyBridgeQualifies := true
		for _, edge := range p.adjacency[i] {
			nbr := p.atoms[edge.neighbor]
			if nbr.conjugationRoles.IsEmpty() {
				continue
			}
			qualifies = true
			if nbr.conjugationRoles != common.HypervalentBridge {
				onlyBridgeQualifies = false
			}
		}
		if !qualifies {
			continue
		}
		if onlyBridgeQualifies && a.charge >= 0 {
			continue
		}

		a.conjugationRoles = a.conjugationRoles.With(common.LonePairDonor)
	}
}

// markChargeMediators is CandidateMarker pass 4, per spec §4.6.
func markChargeMediators(p *chemicalPerception) {
	for _, a := range p.atoms {
		if a.element.Number != 6 {
			continue
		}
		if (a.charge == 1 && a.degree == 3) || a.charge == -1 {
			a.conjugationRoles = a.conjugationRoles.With(common.ChargeMediator)
		}
	}
}
