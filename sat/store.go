package sat

// clauseStore holds original and learnt clauses, each indexed contiguously,
// with every clause given a stable ClauseRef that is never reused or
// reassigned. AddClause on the solver is only supported before the first
// learnt clause exists: this solver is not incremental, so originals and
// learnts never interleave.
type clauseStore struct {
	originals []*Clause
	learnts   []*Clause
}

// Get returns the tracked clause for ref. The caller must not dereference a
// forgotten clause; doing so silently returns a clause with nil Literals(),
// which is a programmer error to act on.
func (cs *clauseStore) Get(ref ClauseRef) *Clause {
	n := len(cs.originals)
	if int(ref) < n {
		return cs.originals[ref]
	}
	return cs.learnts[int(ref)-n]
}

// newTrackedClause copies lits into a new Clause, assigns it the next
// ClauseRef in the appropriate contiguous range, and appends it to the
// store. It does not register watches; the caller does that once the
// clause's two chosen watches are known.
func (cs *clauseStore) newTrackedClause(lits []Literal, learnt bool) *Clause {
	c := &Clause{prevPos: 2}
	c.literals = append(make([]Literal, 0, len(lits)), lits...)
	if learnt {
		c.status = statusLearnt
		c.ref = ClauseRef(len(cs.originals) + len(cs.learnts))
		cs.learnts = append(cs.learnts, c)
	} else {
		if len(cs.learnts) != 0 {
			panic("sat: cannot add an original clause once learning has started")
		}
		c.ref = ClauseRef(len(cs.originals))
		cs.originals = append(cs.originals, c)
	}
	return c
}

// NumOriginals returns the number of original clauses, including any that
// have since been simplified away. Original clauses are never forgotten,
// only simplified.
func (cs *clauseStore) NumOriginals() int { return len(cs.originals) }

// NumLearnts returns the number of learnt clauses ever added, including
// those since forgotten.
func (cs *clauseStore) NumLearnts() int { return len(cs.learnts) }

// NumLiveLearnts returns the number of learnt clauses not yet forgotten.
func (cs *clauseStore) NumLiveLearnts() int {
	n := 0
	for _, c := range cs.learnts {
		if !c.IsDeleted() {
			n++
		}
	}
	return n
}

// markForgotten tombstones the learnt clause at ref and removes it from its
// watchlists. Forgetting is single-shot: it panics if the clause was
// already forgotten.
func (cs *clauseStore) markForgotten(s *Solver, ref ClauseRef) {
	c := cs.Get(ref)
	if c.IsDeleted() {
		panic("sat: clause forgotten twice")
	}
	c.Delete(s)
}

// IterateLive calls fn for every non-deleted clause, originals first.
func (cs *clauseStore) IterateLive(fn func(*Clause)) {
	for _, c := range cs.originals {
		if !c.IsDeleted() {
			fn(c)
		}
	}
	for _, c := range cs.learnts {
		if !c.IsDeleted() {
			fn(c)
		}
	}
}

// IterateLiveLearnt calls fn for every non-deleted learnt clause.
func (cs *clauseStore) IterateLiveLearnt(fn func(*Clause)) {
	for _, c := range cs.learnts {
		if !c.IsDeleted() {
			fn(c)
		}
	}
}

// simplifyAll drops literals made false by root-level assignments from every
// live clause and tombstones clauses that are now fully satisfied. Clauses
// are never removed from their slice and never moved, since their ClauseRef
// is simply their position: only their status changes. Must only be called
// at decision level 0.
func (cs *clauseStore) simplifyAll(s *Solver) {
	simplifyInPlace(s, cs.originals)
	simplifyInPlace(s, cs.learnts)
}

func simplifyInPlace(s *Solver, clauses []*Clause) {
	for _, c := range clauses {
		if c.IsDeleted() {
			continue
		}
		if c.Simplify(s) {
			c.Delete(s)
		}
	}
}
