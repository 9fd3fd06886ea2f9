package sat

// trailEntry is one entry on the assignment stack: a literal, the decision
// level at which it was assigned, and the reason that forced it.
type trailEntry struct {
	lit    Literal
	level  int
	reason Reason
}

// assignment is the partial truth assignment over variables. It is a dense
// array of per-variable state, read by literal with the sign
// computed on access, plus the assignment stack and level table that track
// how each variable came to be assigned.
type assignment struct {
	varState  []LBool  // partial assignment, indexed by variable
	varLevel  []int    // level table: decision level by variable, -1 if unassigned
	varReason []Reason // reason by variable, meaningful only while assigned

	trail    []trailEntry
	trailLim []int // trail index of each decision boundary
}

func newAssignment() *assignment {
	return &assignment{}
}

// addVariable grows the assignment to cover one more variable, which starts
// unassigned.
func (a *assignment) addVariable() {
	a.varState = append(a.varState, LUnknown)
	a.varLevel = append(a.varLevel, -1)
	a.varReason = append(a.varReason, Reason{})
}

// NumVariables returns the number of variables the assignment covers.
func (a *assignment) NumVariables() int {
	return len(a.varState)
}

// NumAssigned returns the number of variables currently assigned a value
// other than LUnknown.
func (a *assignment) NumAssigned() int {
	return len(a.trail)
}

// IsTotal reports whether every variable is assigned.
func (a *assignment) IsTotal() bool {
	return len(a.trail) == len(a.varState)
}

// Value returns the value of l: the stored state of its variable, negated
// when l is a negative literal. An unassigned variable reads as LUnknown
// regardless of l's sign.
func (a *assignment) Value(l Literal) LBool {
	v := a.varState[l.VarID()]
	if l.IsPositive() {
		return v
	}
	return v.Opposite()
}

// VarValue returns the value directly assigned to variable v.
func (a *assignment) VarValue(v int) LBool {
	return a.varState[v]
}

// Level returns the decision level at which variable v was assigned, or -1
// if it is unassigned.
func (a *assignment) Level(v int) int {
	return a.varLevel[v]
}

// ReasonOf returns the reason variable v was assigned. Only meaningful while
// v is assigned.
func (a *assignment) ReasonOf(v int) Reason {
	return a.varReason[v]
}

// DecisionLevel returns the current decision level.
func (a *assignment) DecisionLevel() int {
	return len(a.trailLim)
}

// Trail exposes the assignment stack for backward iteration by conflict
// analysis. Callers must not retain the slice past the next mutation.
func (a *assignment) Trail() []trailEntry {
	return a.trail
}

// Assign asserts literal l true at the given decision level for the given
// reason, pushing an entry onto the assignment stack. It panics if l's
// variable is already assigned: re-assigning an assigned variable is
// forbidden.
func (a *assignment) Assign(l Literal, level int, reason Reason) {
	v := l.VarID()
	if a.varState[v] != LUnknown {
		panic("sat: variable already assigned")
	}
	if l.IsPositive() {
		a.varState[v] = LTrue
	} else {
		a.varState[v] = LFalse
	}
	a.varLevel[v] = level
	a.varReason[v] = reason
	a.trail = append(a.trail, trailEntry{lit: l, level: level, reason: reason})
}

// PushDecisionBoundary records the start of a new decision level. It must be
// called before the decision literal that opens the level is assigned.
func (a *assignment) PushDecisionBoundary() {
	a.trailLim = append(a.trailLim, len(a.trail))
}

// UndoOne pops and clears the most recent trail entry, returning the literal
// that was undone. It panics if the trail is empty, enforcing the invariant
// that clearing an already-unassigned variable is forbidden.
func (a *assignment) UndoOne() Literal {
	if len(a.trail) == 0 {
		panic("sat: undo on an empty assignment stack")
	}
	e := a.trail[len(a.trail)-1]
	a.trail = a.trail[:len(a.trail)-1]
	v := e.lit.VarID()
	a.varState[v] = LUnknown
	a.varLevel[v] = -1
	a.varReason[v] = Reason{}
	return e.lit
}

// TrailLenAtLevel returns the trail length at the start of the given decision
// level (1-indexed as stored in trailLim), i.e. the number of entries that
// belong to levels < level.
func (a *assignment) TrailLenAtLevel(level int) int {
	return a.trailLim[level-1]
}

// PopDecisionBoundary removes the most recently opened decision level's
// boundary marker. It must only be called once every trail entry belonging
// to that level has already been undone.
func (a *assignment) PopDecisionBoundary() {
	a.trailLim = a.trailLim[:len(a.trailLim)-1]
}
