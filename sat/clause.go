package sat

import "strings"

// ClauseRef is the stable identity of a tracked clause, assigned once when
// the clause is added to the store and never reused or reassigned. Original
// clauses occupy [0, numOriginals) and learnt clauses occupy
// [numOriginals, numOriginals+numLearnts).
type ClauseRef int32

type clauseStatus uint8

const (
	statusDeleted clauseStatus = 0b01
	statusLearnt  clauseStatus = 0b10
)

// Clause is a tracked clause: a disjunction of at least two literals
// augmented with a pair of watched literals stored as literals[0] and
// literals[1].
type Clause struct {
	ref      ClauseRef
	status   clauseStatus
	activity float64
	lbd      int

	// literals[0] and literals[1] are the clause's two watched literals.
	// literals is nil once the clause is deleted.
	literals []Literal

	// prevPos speeds up the search for a replacement watch by resuming from
	// where the previous search left off. Always in [2, len(literals)] when
	// meaningful.
	prevPos int
}

func (c *Clause) Ref() ClauseRef { return c.ref }

func (c *Clause) IsLearnt() bool { return c.status&statusLearnt != 0 }

func (c *Clause) IsDeleted() bool { return c.status&statusDeleted != 0 }

// Len returns the number of literals still in the clause.
func (c *Clause) Len() int { return len(c.literals) }

// Literals returns the clause's literals. Callers must not mutate the
// returned slice.
func (c *Clause) Literals() []Literal { return c.literals }

// Activity returns the clause's learnt-clause activity score.
func (c *Clause) Activity() float64 { return c.activity }

// LBD returns the clause's literal block distance, computed when the clause
// was learnt.
func (c *Clause) LBD() int { return c.lbd }

func (c *Clause) locked(s *Solver) bool {
	return s.assign.ReasonOf(c.literals[0].VarID()).Kind == ReasonClause &&
		s.assign.ReasonOf(c.literals[0].VarID()).Clause == c.ref
}

// newClauseForOriginal builds a tracked clause from an original (non-learnt)
// clause after removing duplicate/opposite/already-false literals against
// the root-level assignment. It returns (nil, true) if the clause is already
// satisfied and need not be tracked, (nil, false) if the clause reduces to
// the empty clause (contradiction), and (clause, true) for a >=2 literal
// tracked clause. A unit result is enqueued directly with reason
// ReasonGlobalUnit and reported via (nil, true) as well.
func newClauseForOriginal(s *Solver, lits []Literal) (*Clause, bool) {
	size := len(lits)
	seen := map[Literal]struct{}{}

	for i := size - 1; i >= 0; i-- {
		if _, ok := seen[lits[i].Opposite()]; ok {
			return nil, true // tautological clause
		}
		if _, ok := seen[lits[i]]; ok {
			size--
			lits[i], lits[size] = lits[size], lits[i]
			continue
		}
		seen[lits[i]] = struct{}{}

		switch s.assign.Value(lits[i]) {
		case LTrue:
			return nil, true // already satisfied
		case LFalse:
			size--
			lits[i], lits[size] = lits[size], lits[i]
		}
	}
	lits = lits[:size]

	switch size {
	case 0:
		return nil, false
	case 1:
		return nil, s.enqueue(lits[0], globalUnitReason)
	default:
		c := s.store.newTrackedClause(lits, false)
		s.watch.add(c.ref, c.literals[0], c.literals[1])
		s.watch.add(c.ref, c.literals[1], c.literals[0])
		return c, true
	}
}

// newLearntClause builds a tracked clause from a learnt clause of at least
// two literals. The caller (search engine) is responsible for the
// single-literal case, which never becomes a tracked clause.
// literals[0] must already be the first-UIP literal; the second watch is
// chosen as the literal with the highest assignment level among the rest,
// since that is the literal that will become unassigned soonest on backjump.
func newLearntClause(s *Solver, lits []Literal) *Clause {
	if len(lits) < 2 {
		panic("sat: learnt clause must have at least two literals")
	}
	c := s.store.newTrackedClause(lits, true)
	c.lbd = computeLBD(s, c.literals)

	maxLevel := -1
	wl := -1
	for i := 1; i < len(c.literals); i++ {
		if lvl := s.assign.Level(c.literals[i].VarID()); lvl > maxLevel {
			maxLevel = lvl
			wl = i
		}
	}
	c.literals[wl], c.literals[1] = c.literals[1], c.literals[wl]

	s.watch.add(c.ref, c.literals[0], c.literals[1])
	s.watch.add(c.ref, c.literals[1], c.literals[0])
	return c
}

// computeLBD returns the number of distinct decision levels among the
// variables of lits.
func computeLBD(s *Solver, lits []Literal) int {
	s.lbdSeen.Clear()
	n := 0
	for _, l := range lits {
		lvl := s.assign.Level(l.VarID())
		if lvl < 0 {
			lvl = 0
		}
		if !s.lbdSeen.Contains(lvl) {
			s.lbdSeen.Add(lvl)
			n++
		}
	}
	return n
}

// Delete tombstones the clause and removes it from both of its watches'
// watchlists. Its ClauseRef is never reused.
func (c *Clause) Delete(s *Solver) {
	c.status |= statusDeleted
	s.watch.remove(c.ref, c.literals[0])
	s.watch.remove(c.ref, c.literals[1])
	c.literals = nil
}

// Simplify drops literals assigned false at the root level and reports
// whether the clause as a whole is now satisfied (and can be dropped
// entirely). Only valid to call at decision level 0.
func (c *Clause) Simplify(s *Solver) bool {
	k := 0
	for _, lit := range c.literals {
		switch s.assign.Value(lit) {
		case LTrue:
			return true
		case LFalse:
			// discard
		default:
			c.literals[k] = lit
			k++
		}
	}
	c.literals = c.literals[:k]
	return false
}

// propagate implements the watch-update step, invoked when falseLit, one
// of the clause's own two watched literals, has just become false. It
// returns true if the clause is satisfied or has been re-watched
// without forcing an assignment, and false if c.literals[0] had to be
// enqueued as a unit implication and that enqueue reported a conflict.
func (c *Clause) propagate(s *Solver, falseLit Literal) bool {
	// Ensure the newly-false watch is literals[1], so literals[0] is always
	// the candidate to be forced if everything else is false.
	if c.literals[0] == falseLit {
		c.literals[0], c.literals[1] = c.literals[1], c.literals[0]
	}

	if s.assign.Value(c.literals[0]) == LTrue {
		s.watch.add(c.ref, falseLit, c.literals[0])
		return true
	}

	if c.prevPos < 2 || c.prevPos > len(c.literals) {
		c.prevPos = 2
	}
	for i, lit := range c.literals[c.prevPos:] {
		if s.assign.Value(lit) != LFalse {
			pos := c.prevPos + i
			c.literals[1] = lit
			c.literals[pos] = falseLit
			c.prevPos = pos
			s.watch.add(c.ref, lit, c.literals[0])
			return true
		}
	}
	for i, lit := range c.literals[2:c.prevPos] {
		if s.assign.Value(lit) != LFalse {
			pos := i + 2
			c.literals[1] = lit
			c.literals[pos] = falseLit
			c.prevPos = pos
			s.watch.add(c.ref, lit, c.literals[0])
			return true
		}
	}

	// Every other literal is false: literals[0] must become true.
	s.watch.add(c.ref, falseLit, c.literals[0])
	return s.enqueue(c.literals[0], clauseReason(c.ref))
}

// isSatisfied reports whether any literal of c is currently true.
func (c *Clause) isSatisfied(s *Solver) bool {
	for _, l := range c.literals {
		if s.assign.Value(l) == LTrue {
			return true
		}
	}
	return false
}

// explainConflict returns the negation of every literal of c, i.e. the
// clause's role as a conflicting (all-false) constraint in resolution.
func (c *Clause) explainConflict(buf []Literal) []Literal {
	buf = buf[:0]
	for _, l := range c.literals {
		buf = append(buf, l.Opposite())
	}
	return buf
}

// explainAssign returns the negation of every literal but literals[0], i.e.
// the set of literals that, all being false, forced literals[0] true.
func (c *Clause) explainAssign(buf []Literal) []Literal {
	buf = buf[:0]
	for _, l := range c.literals[1:] {
		buf = append(buf, l.Opposite())
	}
	return buf
}

func (c *Clause) String() string {
	if len(c.literals) == 0 {
		return "Clause[]"
	}
	sb := strings.Builder{}
	sb.WriteString("Clause[")
	sb.WriteString(c.literals[0].String())
	for _, l := range c.literals[1:] {
		sb.WriteByte(' ')
		sb.WriteString(l.String())
	}
	sb.WriteByte(']')
	return sb.String()
}
