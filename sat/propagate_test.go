package sat

import "testing"

// newTestSolver builds a solver over numVars variables with the given
// clauses, each a list of DIMACS-style signed integers.
func newTestSolver(t *testing.T, opts Options, numVars int, clauses [][]int) *Solver {
	t.Helper()
	s := NewSolver(opts)
	for i := 0; i < numVars; i++ {
		s.AddVariable()
	}
	for _, cl := range clauses {
		if err := s.AddClause(lits(cl...)); err != nil {
			t.Fatalf("AddClause(%v): %v", cl, err)
		}
	}
	return s
}

// decide opens a new decision level and schedules l as its decision.
func decide(s *Solver, l Literal) {
	s.assign.PushDecisionBoundary()
	s.enqueue(l, decisionReason)
}

// checkWatchInvariants verifies, at a quiescent point, that every live
// tracked clause has two distinct watched members each appearing in its
// literal's watchlist exactly once, and that every watchlist entry points
// back at a live clause watching that literal.
func checkWatchInvariants(t *testing.T, s *Solver) {
	t.Helper()
	s.store.IterateLive(func(c *Clause) {
		if c.Len() < 2 {
			t.Errorf("live clause %d has %d literals, want >= 2", c.Ref(), c.Len())
			return
		}
		w0, w1 := c.Literals()[0], c.Literals()[1]
		if w0 == w1 {
			t.Errorf("clause %d watches %v twice", c.Ref(), w0)
		}
		for _, w := range [2]Literal{w0, w1} {
			n := 0
			for _, entry := range s.watch.Live(w) {
				if entry.clause == c.Ref() {
					n++
				}
			}
			if n != 1 {
				t.Errorf("clause %d appears %d times in watchlist(%v), want exactly 1", c.Ref(), n, w)
			}
		}
	})
	for v := 0; v < s.NumVariables(); v++ {
		for _, l := range [2]Literal{PositiveLiteral(v), NegativeLiteral(v)} {
			for _, entry := range s.watch.Live(l) {
				c := s.store.Get(entry.clause)
				if c.IsDeleted() {
					t.Errorf("watchlist(%v) references forgotten clause %d", l, entry.clause)
					continue
				}
				if c.Literals()[0] != l && c.Literals()[1] != l {
					t.Errorf("clause %d is in watchlist(%v) but does not watch it", entry.clause, l)
				}
			}
		}
	}
}

func TestPropagate_UnitChain(t *testing.T) {
	// The unit arrives after the binary clauses are tracked, so both
	// implications happen by watched-literal propagation at level 0 and
	// must still be recorded as global units.
	s := newTestSolver(t, DefaultOptions, 3, [][]int{{-1, 2}, {-2, 3}, {1}})

	if pr := s.propagate(); pr.HasConflict {
		t.Fatalf("propagate reported a conflict on a satisfiable chain")
	}
	for v := 0; v < 3; v++ {
		if got := s.assign.VarValue(v); got != LTrue {
			t.Errorf("VarValue(%d) = %v, want true", v, got)
		}
		if got := s.assign.Level(v); got != 0 {
			t.Errorf("Level(%d) = %d, want 0", v, got)
		}
		if got := s.assign.ReasonOf(v); got.Kind != ReasonGlobalUnit {
			t.Errorf("ReasonOf(%d).Kind = %v, want global unit at level 0", v, got.Kind)
		}
	}
	checkWatchInvariants(t, s)
}

func TestPropagate_ConflictReturnsClause(t *testing.T) {
	s := newTestSolver(t, DefaultOptions, 2, [][]int{{-1, 2}, {-1, -2}})

	decide(s, PositiveLiteral(0))
	pr := s.propagate()
	if !pr.HasConflict {
		t.Fatal("propagate found no conflict, want one")
	}
	if c := s.store.Get(pr.Conflict); c.IsDeleted() || !clauseAllFalse(s, c) {
		t.Errorf("conflict clause %v is not fully falsified", c)
	}
	if !s.propQ.IsEmpty() {
		t.Error("propagation queue not cleared after a conflict")
	}
	checkWatchInvariants(t, s)
}

func clauseAllFalse(s *Solver, c *Clause) bool {
	for _, l := range c.Literals() {
		if s.assign.Value(l) != LFalse {
			return false
		}
	}
	return true
}

func TestPropagate_ForcedLiteralRecordsClauseReason(t *testing.T) {
	s := newTestSolver(t, DefaultOptions, 2, [][]int{{-1, 2}})

	decide(s, PositiveLiteral(0))
	if pr := s.propagate(); pr.HasConflict {
		t.Fatal("unexpected conflict")
	}
	if got := s.assign.VarValue(1); got != LTrue {
		t.Fatalf("VarValue(1) = %v, want true", got)
	}
	if got := s.assign.Level(1); got != 1 {
		t.Errorf("Level(1) = %d, want 1", got)
	}
	r := s.assign.ReasonOf(1)
	if r.Kind != ReasonClause {
		t.Fatalf("ReasonOf(1).Kind = %v, want clause", r.Kind)
	}
	if c := s.store.Get(r.Clause); c.Len() != 2 {
		t.Errorf("reason clause = %v, want the binary input clause", c)
	}
	checkWatchInvariants(t, s)
}

func TestPropagate_WatchesMoveOffFalsifiedLiterals(t *testing.T) {
	s := newTestSolver(t, DefaultOptions, 4, [][]int{{1, 2, 3, 4}})

	decide(s, NegativeLiteral(0))
	if pr := s.propagate(); pr.HasConflict {
		t.Fatal("unexpected conflict")
	}
	decide(s, NegativeLiteral(1))
	if pr := s.propagate(); pr.HasConflict {
		t.Fatal("unexpected conflict")
	}
	checkWatchInvariants(t, s)

	c := s.store.Get(0)
	for _, w := range [2]Literal{c.Literals()[0], c.Literals()[1]} {
		if s.assign.Value(w) == LFalse {
			t.Errorf("watch %v is false with unassigned literals remaining", w)
		}
	}
}

func TestPropagate_RedundantLiteralSkipped(t *testing.T) {
	s := newTestSolver(t, DefaultOptions, 1, nil)
	if !s.enqueue(PositiveLiteral(0), globalUnitReason) {
		t.Fatal("first enqueue failed")
	}
	if !s.enqueue(PositiveLiteral(0), globalUnitReason) {
		t.Error("re-enqueueing an already-true literal reported a conflict")
	}
	if s.enqueue(NegativeLiteral(0), globalUnitReason) {
		t.Error("enqueueing a falsified literal did not report a conflict")
	}
	if got := s.assign.NumAssigned(); got != 1 {
		t.Errorf("NumAssigned() = %d, want 1", got)
	}
}
