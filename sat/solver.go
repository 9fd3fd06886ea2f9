package sat

import (
	"fmt"
	"time"
)

// HeuristicKind selects a branching heuristic.
type HeuristicKind int

const (
	HeuristicVSIDS HeuristicKind = iota
	HeuristicDLIS
	HeuristicRandom
)

// Options configures a Solver: which branching heuristic to use, whether
// restarts and learnt-clause forgetting are enabled, the stop conditions,
// and the tuning knobs of the activity-based components.
type Options struct {
	Heuristic HeuristicKind
	Restarts  bool
	Forgets   bool

	// TimeoutSeconds is the wall-clock budget. Zero means unlimited.
	TimeoutSeconds float64

	ClauseDecay   float64
	VariableDecay float64
	PhaseSaving   bool

	// MaxConflicts is a conflict-count budget independent of the wall
	// clock. Negative means unlimited.
	MaxConflicts int64

	// RandomSeed seeds the Random heuristic.
	RandomSeed int64
}

// DefaultOptions is the recommended configuration: VSIDS with phase
// saving, Luby restarts, and learnt-clause forgetting all enabled, and no
// stop condition beyond completion.
var DefaultOptions = Options{
	Heuristic:      HeuristicVSIDS,
	Restarts:       true,
	Forgets:        true,
	TimeoutSeconds: 0,
	ClauseDecay:    0.95,
	VariableDecay:  0.95,
	PhaseSaving:    true,
	MaxConflicts:   -1,
	RandomSeed:     1,
}

type solverStats struct {
	TotalConflicts  int64
	TotalRestarts   int64
	TotalForgets    int64
	TotalIterations int64
}

// Stats is a snapshot of search-progress counters, exposed for callers
// such as a CLI driver that want to report conflicts/restarts/forgets.
type Stats struct {
	TotalConflicts  int64
	TotalRestarts   int64
	TotalForgets    int64
	TotalIterations int64
	NumLearnts      int
}

// Stats returns a snapshot of the solver's current search-progress counters.
func (s *Solver) Stats() Stats {
	return Stats{
		TotalConflicts:  s.stats.TotalConflicts,
		TotalRestarts:   s.stats.TotalRestarts,
		TotalForgets:    s.stats.TotalForgets,
		TotalIterations: s.stats.TotalIterations,
		NumLearnts:      s.store.NumLiveLearnts(),
	}
}

// Solver is a single-threaded CDCL (and, via SolveDPLL, DPLL) SAT solver
// built on a shared assignment store, clause store, watchlist, and
// propagation engine.
type Solver struct {
	assign *assignment
	store  *clauseStore
	watch  *watchlist
	propQ  *queue

	heuristic heuristic
	restarts  *restarter
	forgets   *forgetter

	clauseActivityInc   float64
	clauseActivityDecay float64

	seen    *seenSet
	lbdSeen *seenSet

	tmpLearnt  []Literal
	tmpExplain []Literal

	unsat bool
	model []bool

	hasTimeout bool
	timeout    time.Duration
	startTime  time.Time

	maxConflicts int64
	hasMaxConf   bool

	stats solverStats
}

// NewSolver returns a Solver configured per opts.
func NewSolver(opts Options) *Solver {
	s := &Solver{
		assign:              newAssignment(),
		store:               &clauseStore{},
		watch:               newWatchlist(),
		propQ:               newQueue(128),
		clauseActivityInc:   1,
		clauseActivityDecay: opts.ClauseDecay,
		seen:                &seenSet{},
		lbdSeen:             &seenSet{},
	}

	switch opts.Heuristic {
	case HeuristicDLIS:
		s.heuristic = newDLISHeuristic()
	case HeuristicRandom:
		s.heuristic = newRandomHeuristic(opts.RandomSeed)
	default:
		s.heuristic = newVSIDSHeuristic(opts.VariableDecay, opts.PhaseSaving)
	}

	if opts.Restarts {
		s.restarts = newRestarter()
	}
	if opts.Forgets {
		s.forgets = newForgetter()
	}

	if opts.TimeoutSeconds > 0 {
		s.hasTimeout = true
		s.timeout = time.Duration(opts.TimeoutSeconds * float64(time.Second))
	}
	if opts.MaxConflicts >= 0 {
		s.hasMaxConf = true
		s.maxConflicts = opts.MaxConflicts
	}

	return s
}

// NewDefaultSolver returns a Solver configured with DefaultOptions.
func NewDefaultSolver() *Solver {
	return NewSolver(DefaultOptions)
}

// AddVariable grows the solver to cover one more variable and returns its
// 0-indexed ID.
func (s *Solver) AddVariable() int {
	v := s.assign.NumVariables()
	s.assign.addVariable()
	s.watch.addVariable()
	s.seen.Expand()
	s.lbdSeen.Expand()
	s.heuristic.AddVariable()
	return v
}

// NumVariables returns the number of variables added so far.
func (s *Solver) NumVariables() int { return s.assign.NumVariables() }

// NumConstraints returns the number of original clauses added so far.
func (s *Solver) NumConstraints() int { return s.store.NumOriginals() }

// NumLearnts returns the number of live learnt clauses.
func (s *Solver) NumLearnts() int { return s.store.NumLiveLearnts() }

// VarValue returns the current value of variable v.
func (s *Solver) VarValue(v int) LBool { return s.assign.VarValue(v) }

// AddClause adds an original clause, or records the formula as
// unsatisfiable if it reduces to the empty clause under the root-level
// assignment. It must only be called at decision level 0.
func (s *Solver) AddClause(lits []Literal) error {
	if s.assign.DecisionLevel() != 0 {
		return fmt.Errorf("sat: AddClause called mid-search")
	}
	for _, l := range lits {
		if l.VarID() < 0 || l.VarID() >= s.assign.NumVariables() {
			return fmt.Errorf("sat: literal %v references an undeclared variable", l)
		}
	}
	if len(lits) == 0 {
		s.unsat = true
		return nil
	}
	if _, ok := newClauseForOriginal(s, lits); !ok {
		s.unsat = true
	}
	return nil
}

// Simplify drops root-level-falsified literals from every live clause and
// tombstones clauses now satisfied. It must only be called at decision
// level 0 and reports false if simplification finds the formula
// unsatisfiable.
func (s *Solver) Simplify() bool {
	if s.assign.DecisionLevel() != 0 {
		panic("sat: Simplify called above decision level 0")
	}
	if s.unsat || s.propagate().HasConflict {
		s.unsat = true
		return false
	}
	s.store.simplifyAll(s)
	return true
}

// Solve runs the CDCL search engine to completion or until a stop
// condition fires.
func (s *Solver) Solve() Status {
	s.startTime = time.Now()
	s.printSeparator()
	s.printSearchHeader()
	s.printSeparator()
	status := s.searchCDCL()
	s.printStats()
	s.printSeparator()
	return status
}

// SolveDPLL runs the reduced DPLL sibling, sharing the propagation
// substrate and heuristic but using chronological backtracking and no
// clause learning.
func (s *Solver) SolveDPLL() Status {
	s.startTime = time.Now()
	s.printSeparator()
	s.printSearchHeader()
	s.printSeparator()
	status := s.searchDPLL()
	s.printStats()
	s.printSeparator()
	return status
}

// Model returns the satisfying assignment from the most recent SAT result,
// indexed by variable. It is meaningless after an UNSAT or TIMEOUT result.
func (s *Solver) Model() []bool { return s.model }

func (s *Solver) saveModel() {
	model := make([]bool, s.assign.NumVariables())
	for v := range model {
		lb := s.assign.VarValue(v)
		if lb == LUnknown {
			panic("sat: saveModel called on a non-total assignment")
		}
		model[v] = lb == LTrue
	}
	s.model = model
}

// checkTimeout reports whether a configured stop condition, wall-clock
// timeout or conflict budget, has fired.
func (s *Solver) checkTimeout() bool {
	if s.hasTimeout && time.Since(s.startTime) > s.timeout {
		return true
	}
	if s.hasMaxConf && s.stats.TotalConflicts >= s.maxConflicts {
		return true
	}
	return false
}

func (s *Solver) printSeparator() {
	fmt.Println("c ---------------------------------------------------------------------------")
}

func (s *Solver) printSearchHeader() {
	fmt.Println("c            time     iterations      conflicts       restarts        learnts")
}

func (s *Solver) printStats() {
	fmt.Printf(
		"c %14.3fs %14d %14d %14d %14d\n",
		time.Since(s.startTime).Seconds(),
		s.stats.TotalIterations,
		s.stats.TotalConflicts,
		s.stats.TotalRestarts,
		s.store.NumLiveLearnts(),
	)
}
