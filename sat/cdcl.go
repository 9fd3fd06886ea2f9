package sat

// searchCDCL runs the CDCL main loop until the formula is proven
// satisfiable, proven unsatisfiable, or the wall-clock budget runs out.
// Preconditioning (unit clauses, trivial contradiction) happens earlier,
// in AddClause.
func (s *Solver) searchCDCL() Status {
	if s.unsat {
		return StatusUnsat
	}

	for {
		if s.checkTimeout() {
			return StatusTimeout
		}
		if s.stats.TotalIterations%10000 == 0 {
			s.printStats()
		}
		s.stats.TotalIterations++

		if pr := s.propagate(); pr.HasConflict {
			s.stats.TotalConflicts++
			if s.restarts != nil {
				s.restarts.OnConflict()
			}
			if s.forgets != nil {
				s.forgets.OnConflict()
			}

			if s.assign.DecisionLevel() == 0 {
				s.unsat = true
				return StatusUnsat
			}

			learnt, backjumpLevel := s.analyze(pr.Conflict)
			s.backjumpTo(backjumpLevel)
			s.heuristic.DecayActivity()
			s.decayClauseActivity()
			s.recordLearnt(learnt)
			continue
		}

		if s.assign.DecisionLevel() == 0 {
			s.store.simplifyAll(s)
		}

		if s.assign.IsTotal() {
			s.saveModel()
			return StatusSat
		}

		if s.restarts != nil && s.restarts.ShouldRestart() {
			s.backjumpTo(0)
			s.restarts.OnRestart()
			if s.forgets != nil && s.forgets.ShouldForget() {
				s.reduceClauseDatabase()
				s.forgets.OnForget()
				s.stats.TotalForgets++
			}
			s.stats.TotalRestarts++
			continue
		}

		l := s.heuristic.Pick(s)
		s.assign.PushDecisionBoundary()
		s.enqueue(l, decisionReason)
	}
}

// recordLearnt adds a learnt clause to the store and enqueues its
// consequence. A single-literal learnt clause never becomes a tracked
// clause and is instead recorded as a global unit, since backjumpTo(0)
// already discarded every other assignment its derivation depended on.
func (s *Solver) recordLearnt(learnt []Literal) {
	if len(learnt) == 1 {
		s.enqueue(learnt[0], globalUnitReason)
		return
	}
	c := newLearntClause(s, learnt)
	s.enqueue(learnt[0], clauseReason(c.Ref()))
}
