package sat

// backjumpTo pops every assignment above decision level T, clearing the
// assignment store and level table for each, and clears the propagation
// queue. The heuristic is notified of every unassignment so it can save
// phases and reinsert candidates.
func (s *Solver) backjumpTo(t int) {
	for s.assign.DecisionLevel() > t {
		s.undoLevel()
	}
	s.propQ.Clear()
}

func (s *Solver) undoLevel() {
	lim := s.assign.TrailLenAtLevel(s.assign.DecisionLevel())
	for len(s.assign.Trail()) > lim {
		l := s.assign.UndoOne()
		if l.IsPositive() {
			s.heuristic.OnUnassign(l.VarID(), LTrue)
		} else {
			s.heuristic.OnUnassign(l.VarID(), LFalse)
		}
	}
	s.assign.PopDecisionBoundary()
}
