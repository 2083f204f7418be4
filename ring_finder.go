package resonance

import "sort"

// findSSSR computes the Smallest Set of Smallest Rings of p via a
// minimal cycle basis over GF(2), per spec §4.2.
func findSSSR(p *chemicalPerception) (ringInfo, error) {
	v, e := p.atomCount(), p.bondCount()

	uf := newUnionFind(v)
	for _, b := range p.bonds {
		uf.union(b.a1, b.a2)
	}
	_, components := uf.components()

	cyclomatic := e - v + components
	if cyclomatic <= 0 {
		return ringInfo{}, nil
	}

	candidates := enumerateCandidateRings(p)
	sort.Slice(candidates, func(i, j int) bool {
		return len(candidates[i].bonds) < len(candidates[j].bonds)
	})

	type basisEntry struct {
		vector gf2Vector
		pivot  int
	}
	var basis []basisEntry
	var result []*ring

	for _, cand := range candidates {
		if len(result) == cyclomatic {
			break
		}

		reduced := newGF2Vector(e)
		for _, bid := range cand.bonds {
			reduced.set(bid)
		}

		for _, be := range basis {
			if reduced.test(be.pivot) {
				reduced.xorInPlace(be.vector)
			}
		}

		if reduced.isZero() {
			continue // Linearly dependent on the current basis; skip.
		}

		pivot, _ := reduced.highestSetBit()
		basis = append(basis, basisEntry{vector: reduced, pivot: pivot})
		sort.Slice(basis, func(i, j int) bool { return basis[i].pivot < basis[j].pivot })

		result = append(result, cand)
	}

	if len(result) != cyclomatic {
		return ringInfo{}, &RingPerceptionFailed{
			Reason: "candidate enumeration yielded fewer independent cycles than the cyclomatic number",
		}
	}

	for _, r := range result {
		sort.Ints(r.atoms)
		sort.Ints(r.bonds)
	}
	sort.Slice(result, func(i, j int) bool { return lessBondTuple(result[i].bonds, result[j].bonds) })

	return ringInfo{rings: result}, nil
}

// enumerateCandidateRings builds one candidate cycle per bond: for
// bond k=(u,v), a BFS from u excluding k that reaches v yields a
// simple path whose bonds, together with k, close a simple cycle.
// Candidates are deduplicated by their sorted bond-id tuple.
func enumerateCandidateRings(p *chemicalPerception) []*ring {
	seen := make(map[string]struct{})
	var candidates []*ring

	for k, b := range p.bonds {
		u, v := b.a1, b.a2

		atomPath, bondPath, ok := shortestPathExcluding(p, u, v, k)
		if !ok {
			continue // u and v are disconnected without bond k: k is a bridge, not in any ring.
		}

		bonds := append([]int{k}, bondPath...)
		atoms := atomPath

		sort.Ints(bonds)
		key := bondTupleKey(bonds)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		atomsCopy := append([]int(nil), atoms...)
		sort.Ints(atomsCopy)
		candidates = append(candidates, &ring{atoms: dedupSortedInts(atomsCopy), bonds: dedupSortedInts(bonds)})
	}

	return candidates
}

// shortestPathExcluding runs a BFS from start to goal over p's
// adjacency, ignoring the bond with index excludeBond, and answers the
// atom indices and bond indices along the shortest path found, listed
// from goal back to start (atoms include both goal and start), and
// whether goal was reached.
func shortestPathExcluding(p *chemicalPerception, start, goal, excludeBond int) (atoms []int, bonds []int, ok bool) {
	n := p.atomCount()
	parentAtom := make([]int, n)
	parentBond := make([]int, n)
	visited := make([]bool, n)
	for i := range parentAtom {
		parentAtom[i] = -1
		parentBond[i] = -1
	}

	queue := []int{start}
	visited[start] = true

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		if cur == goal {
			break
		}

		for _, edge := range p.adjacency[cur] {
			if edge.bond == excludeBond || visited[edge.neighbor] {
				continue
			}
			visited[edge.neighbor] = true
			parentAtom[edge.neighbor] = cur
			parentBond[edge.neighbor] = edge.bond
			queue = append(queue, edge.neighbor)
		}
	}

	if !visited[goal] {
		return nil, nil, false
	}

	for cur := goal; cur != start; cur = parentAtom[cur] {
		atoms = append(atoms, cur)
		bonds = append(bonds, parentBond[cur])
	}
	atoms = append(atoms, start)

	return atoms, bonds, true
}

func bondTupleKey(sortedBonds []int) string {
	b := make([]byte, 0, len(sortedBonds)*5)
	for _, id := range sortedBonds {
		b = appendInt(b, id)
		b = append(b, ',')
	}
	return string(b)
}

func appendInt(b []byte, n int) []byte {
	if n == 0 {
		return append(b, '0')
	}
	start := len(b)
	for n > 0 {
		b = append(b, byte('0'+n%10))
		n /= 10
	}
	// Reverse the digits just appended.
	for i, j := start, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return b
}

func dedupSortedInts(sorted []int) []int {
	if len(sorted) == 0 {
		return sorted
	}
	out := sorted[:1]
	for _, v := range sorted[1:] {
		if v != out[len(out)-1] {
			out = append(out, v)
		}
	}
	return out
}

func lessBondTuple(a, b []int) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}
