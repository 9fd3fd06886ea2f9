package sat

// heuristic selects the next decision literal and reacts to the two events
// that branching heuristics commonly care about: a variable becoming
// assigned (for phase saving) and a variable appearing in a learnt clause
// (for activity-based heuristics). VSIDS, DLIS, and Random all implement
// it.
type heuristic interface {
	// AddVariable grows the heuristic's internal state to cover one more
	// variable, numbered sequentially from 0.
	AddVariable()

	// Pick returns an unassigned literal to branch on. It must not be
	// called when the assignment is total.
	Pick(s *Solver) Literal

	// OnAssign is called whenever a variable becomes assigned, including by
	// decision, propagation, and restart-surviving global units.
	OnAssign(v int, val LBool)

	// OnUnassign is called whenever a variable is unassigned by backtracking,
	// with the value it held just before being unassigned.
	OnUnassign(v int, val LBool)

	// OnLearnt is called once for every variable of a freshly learnt clause,
	// after conflict analysis has finished resolving it.
	OnLearnt(v int)

	// DecayActivity is called once per conflict, after all of that
	// conflict's OnLearnt calls, giving activity-based heuristics a chance
	// to age out older bumps relative to new ones.
	DecayActivity()
}
