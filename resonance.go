package resonance

import (
	"context"

	"github.com/TKanX/resonance/common"
)

// ResonanceSystem is one maximal group of mutually interacting
// conjugated bonds, as found by ResonanceGrouper per spec §4.7. Atoms
// and Bonds are the external ids that the input Graph assigned,
// strictly ascending and deduplicated.
type ResonanceSystem struct {
	Atoms []uint64
	Bonds []uint64
}

// PerceptionOptions carries the tunables FindResonanceSystems accepts
// through functional Option arguments, per spec §9.
type PerceptionOptions struct {
	// KekulizationBudget bounds the total recursive attempts the
	// Kekulizer spends across every aromatic component before it gives
	// up and reports KekulizationFailed.
	KekulizationBudget int
}

// Option configures a FindResonanceSystems call.
type Option func(*PerceptionOptions)

// WithKekulizationBudget overrides the default Kekulizer attempt
// budget, for callers whose fused polycyclic inputs legitimately need
// more backtracking room than common.DefaultKekulizationBudget allows.
func WithKekulizationBudget(n int) Option {
	return func(o *PerceptionOptions) {
		o.KekulizationBudget = n
	}
}

func defaultPerceptionOptions() PerceptionOptions {
	return PerceptionOptions{KekulizationBudget: common.DefaultKekulizationBudget}
}

// FindResonanceSystems runs the full resonance-perception pipeline over
// graph: GraphBuilder, RingFinder, AromaticityPerceiver, Kekulizer,
// StatePerceiver, CandidateMarker, then ResonanceGrouper, in that fixed
// order, per spec §5. Each stage completes fully before the next
// begins; any stage's error is returned immediately with no partial
// result.
//
// ctx is consulted between stages and inside the Kekulizer's
// backtracking loop; a cancelled or expired ctx surfaces as an error
// from whichever stage was running when it was noticed. A nil ctx is
// treated as context.Background().
func FindResonanceSystems(ctx context.Context, graph Graph, opts ...Option) ([]ResonanceSystem, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	options := defaultPerceptionOptions()
	for _, opt := range opts {
		opt(&options)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	p, err := buildPerception(graph)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rings, err := findSSSR(p)
	if err != nil {
		return nil, err
	}
	p.rings = rings
	markRingMembership(p)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	perceiveAromaticity(p)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := kekulize(ctx, p, options.KekulizationBudget); err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	perceiveStates(p)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	determineConjugationCandidates(p)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return findResonanceSystems(p), nil
}

// markRingMembership sets isInRing on every atom and bond that appears
// in at least one ring of p.rings, following RingFinder per spec §4.2.
func markRingMembership(p *chemicalPerception) {
	for _, r := range p.rings.rings {
		for _, a := range r.atoms {
			p.atoms[a].isInRing = true
		}
		for _, b := range r.bonds {
			p.bonds[b].isInRing = true
		}
	}
}
