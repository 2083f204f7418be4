package common

// Program-wide tunable constants.

const (
	// ListSizeSmall is an initial-capacity hint for small per-atom
	// slices (neighbour lists, role lists). No code in this module
	// references it; those slices grow from zero capacity.
	ListSizeSmall = 8

	// DefaultKekulizationBudget is the default number of recursive
	// backtracking entries the Kekulizer allows across all aromatic
	// components in a single perception call, per spec §4.4/§9. It is
	// a guardrail, not a semantic limit: callers that hit it on large
	// fused polycyclics should raise it via PerceptionOptions.
	DefaultKekulizationBudget = 1000

	// MaxFormalCharge and MinFormalCharge give the formal charge range
	// the Atom interface documents, per spec §6 ("signed small integer
	// in [-8, +8]"). The pipeline does not check input charges against
	// them.
	MaxFormalCharge = 8
	MinFormalCharge = -8

	// MaxTotalValence is the saturating ceiling for total_valence
	// accumulation, per spec §3/§9.
	MaxTotalValence = 255
)
