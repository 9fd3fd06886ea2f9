package sat

// PropagateResult is the outcome of draining the propagation queue. It is
// the single conflict-or-not shape shared by the CDCL and DPLL engines.
type PropagateResult struct {
	HasConflict bool
	// Conflict is the conflicting tracked clause, meaningful only when
	// HasConflict is true. Every conflict propagate reports is found while
	// visiting a clause's watchers, so it always names that clause.
	Conflict ClauseRef
}

// enqueue is the entry point every forcing of a literal goes through:
// decisions, global units, and unit propagation. The value check happens
// at schedule time rather than at dequeue time; only literals that pass
// it are ever placed on the queue. If l's variable already holds the
// opposite value, enqueue reports a conflict by returning false; if it
// already holds this value, it reports success without re-asserting;
// otherwise it asserts l true at the current decision level, pushes it
// onto the assignment stack, and schedules it for propagation.
func (s *Solver) enqueue(l Literal, reason Reason) bool {
	switch s.assign.Value(l) {
	case LFalse:
		return false
	case LTrue:
		return true
	default:
		if s.assign.DecisionLevel() == 0 {
			// An assignment forced at level 0 is permanent: it survives
			// every backjump, including restarts, so its reason must not
			// reference a clause that a later forget pass could tombstone.
			reason = globalUnitReason
		}
		s.assign.Assign(l, s.assign.DecisionLevel(), reason)
		s.propQ.Push(l)
		if l.IsPositive() {
			s.heuristic.OnAssign(l.VarID(), LTrue)
		} else {
			s.heuristic.OnAssign(l.VarID(), LFalse)
		}
		return true
	}
}

// propagate drains the propagation queue, updating watches and assignments,
// until either the queue empties or a conflict is found.
func (s *Solver) propagate() PropagateResult {
	for !s.propQ.IsEmpty() {
		l := s.propQ.Pop()

		snapshot := s.watch.TakeSnapshot(l.Opposite())
		for i, w := range snapshot {
			if s.assign.Value(w.guard) == LTrue {
				s.watch.add(w.clause, l.Opposite(), w.guard)
				continue
			}

			c := s.store.Get(w.clause)
			if c.propagate(s, l.Opposite()) {
				continue
			}

			// Conflict: restore the watchers not yet visited and stop.
			s.watch.RestoreRemaining(l.Opposite(), snapshot[i+1:])
			s.propQ.Clear()
			return PropagateResult{HasConflict: true, Conflict: w.clause}
		}
	}
	return PropagateResult{}
}
