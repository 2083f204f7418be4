package resonance

import (
	"context"
	"sort"

	"github.com/TKanX/resonance/common"
)

// kekulize assigns alternating Single/Double Kekule orders to every
// aromatic bond's connected component via constrained backtracking,
// per spec §4.4. budget bounds the total number of recursive entries
// across every component. ctx is checked at every recursive entry; a
// cancelled context aborts the search the same way an exhausted budget
// does, surfaced through the same KekulizationFailed error.
func kekulize(ctx context.Context, p *chemicalPerception, budget int) error {
	search := &kekulizeSearch{budget: budget, ctx: ctx}

	for _, bonds := range aromaticBondComponents(p) {
		doubleCount := make(map[int]int, len(bonds))
		ok, exceeded := search.assign(0, bonds, doubleCount)
		if exceeded || !ok {
			return &KekulizationFailed{Attempts: search.attempts}
		}
	}

	for _, b := range p.bonds {
		if b.isAromatic && !b.hasKekuleOrder {
			b.hasKekuleOrder = true
			b.kekuleOrder = common.Single
		}
	}

	return nil
}

// aromaticBondComponents groups every aromatic bond into maximal
// connected components linked through shared atoms, sorted
// deterministically by representative atom index, with bonds within
// each component sorted by bond index.
func aromaticBondComponents(p *chemicalPerception) [][]*perceivedBond {
	uf := newUnionFind(p.atomCount())
	for _, b := range p.bonds {
		if b.isAromatic {
			uf.union(b.a1, b.a2)
		}
	}

	groups := make(map[int][]*perceivedBond)
	for bi, b := range p.bonds {
		if !b.isAromatic {
			continue
		}
		rep := uf.find(b.a1)
		groups[rep] = append(groups[rep], p.bonds[bi])
	}

	reps := make([]int, 0, len(groups))
	for rep := range groups {
		reps = append(reps, rep)
	}
	sort.Ints(reps)

	out := make([][]*perceivedBond, 0, len(reps))
	for _, rep := range reps {
		bonds := groups[rep]
		sort.Slice(bonds, func(i, j int) bool {
			return indexOfBond(p, bonds[i]) < indexOfBond(p, bonds[j])
		})
		out = append(out, bonds)
	}
	return out
}

// indexOfBond answers bond's position in p.bonds via its id lookup.
func indexOfBond(p *chemicalPerception, b *perceivedBond) int {
	return p.bondIndexByID[b.externalID]
}

// kekulizeSearch carries the shared attempt budget across every
// component's backtracking search.
type kekulizeSearch struct {
	attempts int
	budget   int
	ctx      context.Context
}

// assign tries to give every bond in bonds[pos:] a Kekule order such
// that no atom is incident to more than one Double among the bonds
// considered so far, preferring Double at each position and falling
// back to Single, per spec §4.4. It answers (true, false) on success,
// (false, false) if the subtree is exhausted without a valid
// assignment, and (false, true) if the shared attempt budget was
// exceeded, which aborts the whole search immediately.
func (s *kekulizeSearch) assign(pos int, bonds []*perceivedBond, doubleCount map[int]int) (ok bool, exceeded bool) {
	if pos == len(bonds) {
		return true, false
	}

	s.attempts++
	if s.attempts > s.budget {
		return false, true
	}
	if s.ctx != nil && s.ctx.Err() != nil {
		return false, true
	}

	b := bonds[pos]

	if doubleCount[b.a1] == 0 && doubleCount[b.a2] == 0 {
		b.hasKekuleOrder = true
		b.kekuleOrder = common.Double
		doubleCount[b.a1]++
		doubleCount[b.a2]++

		if ok, exceeded := s.assign(pos+1, bonds, doubleCount); ok || exceeded {
			return ok, exceeded
		}

		doubleCount[b.a1]--
		doubleCount[b.a2]--
		b.hasKekuleOrder = false
	}

	b.hasKekuleOrder = true
	b.kekuleOrder = common.Single
	if ok, exceeded := s.assign(pos+1, bonds, doubleCount); ok || exceeded {
		return ok, exceeded
	}
	b.hasKekuleOrder = false

	return false, false
}
