package sat

// explain returns the set of literals whose conjunction forced l (or, when l
// is noLiteral, the set of literals falsified by the conflicting clause),
// bumping the originating clause's activity when it is a learnt clause.
func (s *Solver) explain(reason Reason, l Literal) []Literal {
	if reason.Kind != ReasonClause {
		// A decision has no antecedent; a global unit's antecedent is the
		// formula itself, contributing no literals to the learnt clause.
		return nil
	}
	c := s.store.Get(reason.Clause)
	if c.IsLearnt() {
		s.bumpClauseActivity(c)
	}
	if l == noLiteral {
		s.tmpExplain = c.explainConflict(s.tmpExplain)
	} else {
		s.tmpExplain = c.explainAssign(s.tmpExplain)
	}
	return s.tmpExplain
}

// noLiteral is the sentinel meaning "explain the conflicting clause itself"
// rather than "explain why some specific literal was forced".
const noLiteral Literal = -1

// analyze performs first-UIP conflict-driven clause learning: starting
// from the conflicting clause, it resolves backwards along the
// trail until exactly one literal of the current decision level remains in
// the learnt clause, which becomes that literal's negation at position 0.
// It returns the learnt clause (at least one literal; a single-literal
// result must not be passed to newLearntClause, which requires at least
// two) and the level to backjump to.
func (s *Solver) analyze(conflict ClauseRef) ([]Literal, int) {
	s.seen.Clear()
	s.tmpLearnt = append(s.tmpLearnt[:0], noLiteral)

	reason := clauseReason(conflict)
	l := noLiteral
	nextIdx := len(s.assign.Trail()) - 1
	pending := 0
	backjumpLevel := 0

	for {
		for _, q := range s.explain(reason, l) {
			v := q.VarID()
			if s.seen.Contains(v) {
				continue
			}
			s.seen.Add(v)

			if s.assign.Level(v) == s.assign.DecisionLevel() {
				pending++
				continue
			}
			s.tmpLearnt = append(s.tmpLearnt, q.Opposite())
			if lvl := s.assign.Level(v); lvl > backjumpLevel {
				backjumpLevel = lvl
			}
		}

		// Walk the trail backwards to the next literal whose variable was
		// marked seen; it is the next to be resolved against.
		var v int
		for {
			entry := s.assign.Trail()[nextIdx]
			nextIdx--
			v = entry.lit.VarID()
			if s.seen.Contains(v) {
				l = entry.lit
				reason = s.assign.ReasonOf(v)
				break
			}
		}

		pending--
		if pending <= 0 {
			break
		}
	}

	s.tmpLearnt[0] = l.Opposite()

	// Notify the heuristic of the learnt clause as a whole, once, after
	// resolution has finished. Variables resolved away on the way to the
	// first UIP do not count as appearing in the learnt clause.
	for _, q := range s.tmpLearnt {
		s.heuristic.OnLearnt(q.VarID())
	}

	return s.tmpLearnt, backjumpLevel
}
