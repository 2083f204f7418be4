package resonance

import bits "github.com/willf/bitset"

// gf2Vector is a bit vector over GF(2), indexed by internal bond id,
// used for the minimal cycle basis search in the RingFinder.
// It wraps the teacher's bitset library rather than hand-rolling
// 64-bit word arithmetic, per spec §9's suggestion that any
// fixed-width word representation would do.
type gf2Vector struct {
	bits *bits.BitSet
}

// newGF2Vector answers a zero vector wide enough to index bond ids
// 0..width-1.
func newGF2Vector(width int) gf2Vector {
	return gf2Vector{bits: bits.New(uint(width))}
}

// set marks bit i.
func (v gf2Vector) set(i int) {
	v.bits.Set(uint(i))
}

// test answers whether bit i is set.
func (v gf2Vector) test(i int) bool {
	return v.bits.Test(uint(i))
}

// isZero answers whether every bit is clear.
func (v gf2Vector) isZero() bool {
	return v.bits.None()
}

// xorInPlace XORs other into v, mutating v.
func (v gf2Vector) xorInPlace(other gf2Vector) {
	v.bits.InPlaceSymmetricDifference(other.bits)
}

// highestSetBit answers the index of the highest set bit, and true,
// or (-1, false) if v is the zero vector. This is the "pivot" used by
// the greedy minimal basis selection in the RingFinder.
func (v gf2Vector) highestSetBit() (int, bool) {
	highest := -1
	for i, ok := v.bits.NextSet(0); ok; i, ok = v.bits.NextSet(i + 1) {
		highest = int(i)
	}
	if highest < 0 {
		return -1, false
	}
	return highest, true
}

// setBits answers every set bit index in ascending order.
func (v gf2Vector) setBits() []int {
	out := make([]int, 0)
	for i, ok := v.bits.NextSet(0); ok; i, ok = v.bits.NextSet(i + 1) {
		out = append(out, int(i))
	}
	return out
}
