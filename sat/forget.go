package sat

// forgetBase scales the Luby sequence into the number of conflicts between
// forget passes; forgetThresholdPct is the fraction of the mean live learnt
// activity below which a clause is considered useless.
const (
	forgetBase         = 400
	forgetThresholdPct = 0.5
)

// forgetter decides which learnt clauses to tombstone to keep the clause
// database, and thus propagation cost, from growing without bound.
type forgetter struct {
	forgetCount          int
	conflictsSinceForget int
	forgetLimit          int
}

func newForgetter() *forgetter {
	f := &forgetter{}
	f.forgetLimit = forgetBase * lubySequence(f.forgetCount+1)
	return f
}

// OnConflict records that a conflict happened since the last forget pass.
func (f *forgetter) OnConflict() {
	f.conflictsSinceForget++
}

// ShouldForget reports whether enough conflicts have accumulated to warrant
// reducing the clause database.
func (f *forgetter) ShouldForget() bool {
	return f.conflictsSinceForget > f.forgetLimit
}

// OnForget resets the conflict counter and computes the next forget pass's
// conflict budget from the Luby sequence.
func (f *forgetter) OnForget() {
	f.forgetCount++
	f.forgetLimit = forgetBase * lubySequence(f.forgetCount+1)
	f.conflictsSinceForget = 0
}

// reduceClauseDatabase tombstones learnt clauses deemed no longer useful. A
// clause is kept if it has at most two literals, has an LBD of at most two,
// or has an activity above forgetThresholdPct of the mean live learnt
// clause activity. A clause that is currently locked, meaning it is the
// antecedent of an assignment still on the trail, is additionally always
// kept regardless of that policy: forgetting it would leave a dangling
// reason on the assignment stack.
func (s *Solver) reduceClauseDatabase() {
	var live []*Clause
	s.store.IterateLiveLearnt(func(c *Clause) {
		live = append(live, c)
	})
	if len(live) == 0 {
		return
	}

	total := 0.0
	for _, c := range live {
		total += c.Activity()
	}
	threshold := forgetThresholdPct * (total / float64(len(live)))

	for _, c := range live {
		if c.locked(s) || c.Len() <= 2 || c.LBD() <= 2 {
			continue
		}
		if c.Activity() <= threshold {
			s.store.markForgotten(s, c.Ref())
		}
	}
}
