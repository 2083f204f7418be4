package resonance_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TKanX/resonance"
	"github.com/TKanX/resonance/common"
	"github.com/TKanX/resonance/internal/testfixture"
)

func element(t *testing.T, number uint8) common.Element {
	t.Helper()
	e, ok := common.ElementByNumber(number)
	require.True(t, ok, "element %d must exist", number)
	return e
}

// benzeneGraph builds a six-membered ring of carbons with alternating
// Double/Single bond orders starting Double at (0,1): the ring itself,
// not an explicit Aromatic annotation, is what AromaticityPerceiver
// must recognise as a Huckel system.
func benzeneGraph(t *testing.T) *testfixture.Graph {
	t.Helper()
	g := testfixture.New()
	carbon := element(t, 6)
	for i := uint64(0); i < 6; i++ {
		g.AddAtom(i, carbon, 0)
	}
	for i := uint64(0); i < 6; i++ {
		order := common.Single
		if i%2 == 0 {
			order = common.Double
		}
		g.AddBond(i, order, i, (i+1)%6)
	}
	return g
}

func TestBenzeneIsFullyAromaticAndKekulizes(t *testing.T) {
	g := benzeneGraph(t)

	systems, err := resonance.FindResonanceSystems(context.Background(), g)
	require.NoError(t, err)
	require.Len(t, systems, 1)
	assert.ElementsMatch(t, []uint64{0, 1, 2, 3, 4, 5}, systems[0].Atoms)
	assert.ElementsMatch(t, []uint64{0, 1, 2, 3, 4, 5}, systems[0].Bonds)
}

// benzeneAromaticAnnotatedGraph builds the same ring, but with every
// bond already carrying the Aromatic placeholder order, exercising
// AromaticityPerceiver's first pass instead of its Huckel pass.
func benzeneAromaticAnnotatedGraph(t *testing.T) *testfixture.Graph {
	t.Helper()
	g := testfixture.New()
	carbon := element(t, 6)
	for i := uint64(0); i < 6; i++ {
		g.AddAtom(i, carbon, 0)
	}
	for i := uint64(0); i < 6; i++ {
		g.AddBond(i, common.Aromatic, i, (i+1)%6)
	}
	return g
}

func TestBenzeneWithExplicitAromaticBondsStillKekulizes(t *testing.T) {
	g := benzeneAromaticAnnotatedGraph(t)

	systems, err := resonance.FindResonanceSystems(context.Background(), g)
	require.NoError(t, err)
	require.Len(t, systems, 1)
	assert.ElementsMatch(t, []uint64{0, 1, 2, 3, 4, 5}, systems[0].Bonds)
}

// cyclohexaneGraph builds a six-membered saturated ring of carbons.
func cyclohexaneGraph(t *testing.T) *testfixture.Graph {
	t.Helper()
	g := testfixture.New()
	carbon := element(t, 6)
	for i := uint64(0); i < 6; i++ {
		g.AddAtom(i, carbon, 0)
	}
	for i := uint64(0); i < 6; i++ {
		g.AddBond(i, common.Single, i, (i+1)%6)
	}
	return g
}

func TestCyclohexaneHasNoResonanceSystems(t *testing.T) {
	g := cyclohexaneGraph(t)

	systems, err := resonance.FindResonanceSystems(context.Background(), g)
	require.NoError(t, err)
	assert.Empty(t, systems)
}

// formateGraph builds the heavy atoms of the formate anion HCO2- (the
// hydrogen on carbon is left out): a central carbon double bonded to
// one oxygen and singly bonded to another, carrying the anion's
// negative charge.
func formateGraph(t *testing.T) *testfixture.Graph {
	t.Helper()
	g := testfixture.New()
	carbon, oxygen := element(t, 6), element(t, 8)
	g.AddAtom(0, carbon, 0)
	g.AddAtom(1, oxygen, 0)
	g.AddAtom(2, oxygen, -1)
	g.AddBond(0, common.Double, 0, 1)
	g.AddBond(1, common.Single, 0, 2)
	return g
}

func TestFormateAnionFormsOneResonanceSystemAcrossBothOxygens(t *testing.T) {
	g := formateGraph(t)

	systems, err := resonance.FindResonanceSystems(context.Background(), g)
	require.NoError(t, err)
	require.Len(t, systems, 1)
	assert.ElementsMatch(t, []uint64{0, 1, 2}, systems[0].Atoms)
	assert.ElementsMatch(t, []uint64{0, 1}, systems[0].Bonds)
}

// glycineZwitterionGraph builds the full heavy-atom-plus-hydrogen
// skeleton of glycine's zwitterionic form, H3N+-CH2-COO-, with ids
// N:0, Calpha:1, Ccarb:2, O-:3, O=:4, H:5-9, matching spec §8's
// glycine layout: bond0 N-Ca, bond1 Ca-Ccarb, bond2 Ccarb-O-, bond3
// Ccarb=O, bonds4-8 the five N-H/Ca-H bonds. Explicit hydrogens matter
// here: without them every heavy atom's degree (and so its steric
// number and hybridization) would be understated.
func glycineZwitterionGraph(t *testing.T) *testfixture.Graph {
	t.Helper()
	g := testfixture.New()
	nitrogen, carbon, oxygen, hydrogen := element(t, 7), element(t, 6), element(t, 8), element(t, 1)
	g.AddAtom(0, nitrogen, 1) // Ammonium nitrogen.
	g.AddAtom(1, carbon, 0)   // Alpha carbon.
	g.AddAtom(2, carbon, 0)   // Carboxylate carbon.
	g.AddAtom(3, oxygen, -1)  // Carboxylate oxygen.
	g.AddAtom(4, oxygen, 0)   // Carbonyl oxygen.
	for id := uint64(5); id <= 9; id++ {
		g.AddAtom(id, hydrogen, 0)
	}
	g.AddBond(0, common.Single, 0, 1)
	g.AddBond(1, common.Single, 1, 2)
	g.AddBond(2, common.Single, 2, 3)
	g.AddBond(3, common.Double, 2, 4)
	g.AddBond(4, common.Single, 0, 5)
	g.AddBond(5, common.Single, 0, 6)
	g.AddBond(6, common.Single, 0, 7)
	g.AddBond(7, common.Single, 1, 8)
	g.AddBond(8, common.Single, 1, 9)
	return g
}

func TestGlycineZwitterionResonanceIsConfinedToCarboxylate(t *testing.T) {
	g := glycineZwitterionGraph(t)

	systems, err := resonance.FindResonanceSystems(context.Background(), g)
	require.NoError(t, err)
	require.Len(t, systems, 1)
	assert.ElementsMatch(t, []uint64{2, 3, 4}, systems[0].Atoms)
	assert.ElementsMatch(t, []uint64{2, 3}, systems[0].Bonds)
}

// pyridineGraph builds a six-membered aromatic ring with one ring
// nitrogen in place of a CH, with every bond carrying the Aromatic
// placeholder order as in benzeneAromaticAnnotatedGraph.
func pyridineGraph(t *testing.T) *testfixture.Graph {
	t.Helper()
	g := testfixture.New()
	carbon, nitrogen := element(t, 6), element(t, 7)
	g.AddAtom(0, nitrogen, 0)
	for i := uint64(1); i < 6; i++ {
		g.AddAtom(i, carbon, 0)
	}
	for i := uint64(0); i < 6; i++ {
		g.AddBond(i, common.Aromatic, i, (i+1)%6)
	}
	return g
}

func TestPyridineIsAromaticWithLonePairOutsideTheSystem(t *testing.T) {
	g := pyridineGraph(t)

	systems, err := resonance.FindResonanceSystems(context.Background(), g)
	require.NoError(t, err)
	require.Len(t, systems, 1)
	assert.ElementsMatch(t, []uint64{0, 1, 2, 3, 4, 5}, systems[0].Atoms)
}

// biphenylGraph builds two benzene rings joined by a single Single
// bond between ring carbons, which is not itself part of either
// aromatic system.
func biphenylGraph(t *testing.T) *testfixture.Graph {
	t.Helper()
	g := testfixture.New()
	carbon := element(t, 6)
	for i := uint64(0); i < 12; i++ {
		g.AddAtom(i, carbon, 0)
	}
	for i := uint64(0); i < 6; i++ {
		g.AddBond(i, common.Aromatic, i, (i+1)%6)
	}
	for i := uint64(0); i < 6; i++ {
		g.AddBond(6+i, common.Aromatic, 6+i, 6+(i+1)%6)
	}
	g.AddBond(12, common.Single, 0, 6)
	return g
}

func TestBiphenylFormsTwoDisjointResonanceSystems(t *testing.T) {
	g := biphenylGraph(t)

	systems, err := resonance.FindResonanceSystems(context.Background(), g)
	require.NoError(t, err)
	require.Len(t, systems, 2)

	seenBonds := make(map[uint64]bool)
	for _, sys := range systems {
		for _, b := range sys.Bonds {
			assert.False(t, seenBonds[b], "bond %d appears in more than one resonance system", b)
			seenBonds[b] = true
		}
		assert.NotContains(t, sys.Bonds, uint64(12), "the inter-ring single bond must not join either system")
	}
}

func TestInconsistentGraphWhenBondReferencesUnknownAtom(t *testing.T) {
	g := testfixture.New()
	carbon := element(t, 6)
	g.AddAtom(0, carbon, 0)
	g.AddBond(0, common.Single, 0, 99)

	_, err := resonance.FindResonanceSystems(context.Background(), g)
	require.Error(t, err)
	var target *resonance.InconsistentGraph
	assert.ErrorAs(t, err, &target)
}

func TestDuplicateBondWhenTwoBondsShareAnEndpointPair(t *testing.T) {
	g := testfixture.New()
	carbon := element(t, 6)
	g.AddAtom(0, carbon, 0)
	g.AddAtom(1, carbon, 0)
	g.AddBond(0, common.Single, 0, 1)
	g.AddBond(1, common.Double, 1, 0)

	_, err := resonance.FindResonanceSystems(context.Background(), g)
	require.Error(t, err)
	var target *resonance.DuplicateBond
	assert.ErrorAs(t, err, &target)
}

func TestDuplicateBondWhenABondIsASelfLoop(t *testing.T) {
	g := testfixture.New()
	carbon := element(t, 6)
	g.AddAtom(0, carbon, 0)
	g.AddBond(0, common.Single, 0, 0)

	_, err := resonance.FindResonanceSystems(context.Background(), g)
	require.Error(t, err)
	var target *resonance.DuplicateBond
	assert.ErrorAs(t, err, &target)
}

func TestKekulizationFailedWhenTheBudgetIsTooSmall(t *testing.T) {
	g := benzeneGraph(t)

	_, err := resonance.FindResonanceSystems(context.Background(), g, resonance.WithKekulizationBudget(0))
	require.Error(t, err)
	var target *resonance.KekulizationFailed
	assert.ErrorAs(t, err, &target)
}

func TestFindResonanceSystemsHonorsCancelledContext(t *testing.T) {
	g := benzeneGraph(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := resonance.FindResonanceSystems(ctx, g)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

// TestResonanceSystemsArePairwiseBondDisjoint is the quantified
// invariant that no bond may belong to more than one resonance system,
// checked across every hand-built scenario in this file.
func TestResonanceSystemsArePairwiseBondDisjoint(t *testing.T) {
	graphs := []*testfixture.Graph{
		benzeneGraph(t),
		formateGraph(t),
		glycineZwitterionGraph(t),
		pyridineGraph(t),
		biphenylGraph(t),
	}

	for _, g := range graphs {
		systems, err := resonance.FindResonanceSystems(context.Background(), g)
		require.NoError(t, err)

		seen := make(map[uint64]bool)
		for _, sys := range systems {
			for _, b := range sys.Bonds {
				assert.False(t, seen[b])
				seen[b] = true
			}
		}
	}
}

// TestFindResonanceSystemsIsDeterministic runs the same graph twice and
// requires byte-identical output, per the determinism invariant of
// spec §5/§8.
func TestFindResonanceSystemsIsDeterministic(t *testing.T) {
	g := biphenylGraph(t)

	first, err := resonance.FindResonanceSystems(context.Background(), g)
	require.NoError(t, err)
	second, err := resonance.FindResonanceSystems(context.Background(), g)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
