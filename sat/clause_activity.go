package sat

// bumpClauseActivity increases c's activity by the current increase amount,
// rescaling every learnt clause's activity if c's now exceeds maxActivity.
func (s *Solver) bumpClauseActivity(c *Clause) {
	c.activity += s.clauseActivityInc
	if c.activity > maxActivity {
		s.rescaleClauseActivity()
	}
}

func (s *Solver) rescaleClauseActivity() {
	s.clauseActivityInc *= 1e-100
	s.store.IterateLiveLearnt(func(c *Clause) {
		c.activity *= 1e-100
	})
}

// decayClauseActivity is called once per conflict to age out older bumps
// relative to new ones.
func (s *Solver) decayClauseActivity() {
	s.clauseActivityInc /= s.clauseActivityDecay
}
