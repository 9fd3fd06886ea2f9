package sat

import "testing"

func TestClauseStore_RefsAreStableAndContiguous(t *testing.T) {
	cs := &clauseStore{}
	o0 := cs.newTrackedClause([]Literal{PositiveLiteral(0), PositiveLiteral(1)}, false)
	o1 := cs.newTrackedClause([]Literal{NegativeLiteral(0), PositiveLiteral(2)}, false)
	l0 := cs.newTrackedClause([]Literal{PositiveLiteral(1), PositiveLiteral(2)}, true)
	l1 := cs.newTrackedClause([]Literal{NegativeLiteral(1), NegativeLiteral(2)}, true)

	wantRefs := []ClauseRef{0, 1, 2, 3}
	for i, c := range []*Clause{o0, o1, l0, l1} {
		if c.Ref() != wantRefs[i] {
			t.Errorf("clause %d has ref %d, want %d", i, c.Ref(), wantRefs[i])
		}
		if got := cs.Get(c.Ref()); got != c {
			t.Errorf("Get(%d) returned a different clause", c.Ref())
		}
	}
	if o0.IsLearnt() || o1.IsLearnt() {
		t.Error("original clause reports IsLearnt")
	}
	if !l0.IsLearnt() || !l1.IsLearnt() {
		t.Error("learnt clause does not report IsLearnt")
	}
}

func TestClauseStore_IterateLiveSkipsForgotten(t *testing.T) {
	s := NewSolver(DefaultOptions)
	for i := 0; i < 3; i++ {
		s.AddVariable()
	}
	cs := s.store
	cs.newTrackedClause([]Literal{PositiveLiteral(0), PositiveLiteral(1)}, false)
	l0 := cs.newTrackedClause([]Literal{PositiveLiteral(1), PositiveLiteral(2)}, true)
	l1 := cs.newTrackedClause([]Literal{NegativeLiteral(1), NegativeLiteral(2)}, true)

	cs.markForgotten(s, l0.Ref())

	var liveRefs []ClauseRef
	cs.IterateLive(func(c *Clause) { liveRefs = append(liveRefs, c.Ref()) })
	want := []ClauseRef{0, l1.Ref()}
	if len(liveRefs) != len(want) || liveRefs[0] != want[0] || liveRefs[1] != want[1] {
		t.Errorf("IterateLive visited %v, want %v", liveRefs, want)
	}

	n := 0
	cs.IterateLiveLearnt(func(c *Clause) {
		n++
		if c.Ref() != l1.Ref() {
			t.Errorf("IterateLiveLearnt visited %d, want only %d", c.Ref(), l1.Ref())
		}
	})
	if n != 1 {
		t.Errorf("IterateLiveLearnt visited %d clauses, want 1", n)
	}
	if got := cs.NumLiveLearnts(); got != 1 {
		t.Errorf("NumLiveLearnts() = %d, want 1", got)
	}
}

func TestClauseStore_ForgetTwicePanics(t *testing.T) {
	s := NewSolver(DefaultOptions)
	for i := 0; i < 2; i++ {
		s.AddVariable()
	}
	l := s.store.newTrackedClause([]Literal{PositiveLiteral(0), PositiveLiteral(1)}, true)
	s.store.markForgotten(s, l.Ref())
	defer func() {
		if recover() == nil {
			t.Fatal("forgetting a clause twice did not panic")
		}
	}()
	s.store.markForgotten(s, l.Ref())
}

func TestClauseStore_OriginalAfterLearntPanics(t *testing.T) {
	cs := &clauseStore{}
	cs.newTrackedClause([]Literal{PositiveLiteral(0), PositiveLiteral(1)}, true)
	defer func() {
		if recover() == nil {
			t.Fatal("adding an original after a learnt clause did not panic")
		}
	}()
	cs.newTrackedClause([]Literal{NegativeLiteral(0), NegativeLiteral(1)}, false)
}
