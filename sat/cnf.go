package sat

import "fmt"

// CNF is a conjunctive normal form formula as received from a front-end:
// a variable count and a sequence of clauses, each a list of nonzero
// signed integers with absolute value at most NumVars.
type CNF struct {
	NumVars int
	Clauses [][]int
}

// Result is the outcome of solving a CNF: a verdict and, when Status is
// StatusSat, a satisfying assignment indexed by 0-based variable.
type Result struct {
	Status Status
	Model  []bool
}

// Solve builds a solver from cnf, loads its clauses, and runs CDCL search
// to completion or until opts' stop conditions fire. It returns an error
// if cnf is malformed.
func Solve(cnf CNF, opts Options) (Result, error) {
	if err := validateCNF(cnf); err != nil {
		return Result{}, err
	}

	s := NewSolver(opts)
	for i := 0; i < cnf.NumVars; i++ {
		s.AddVariable()
	}
	for _, clause := range cnf.Clauses {
		if len(clause) == 0 {
			return Result{Status: StatusUnsat}, nil
		}
		lits := make([]Literal, len(clause))
		for i, x := range clause {
			lits[i] = FromSigned(x)
		}
		if err := s.AddClause(lits); err != nil {
			return Result{}, err
		}
	}

	status := s.Solve()
	return Result{Status: status, Model: s.Model()}, nil
}

func validateCNF(cnf CNF) error {
	if cnf.NumVars < 0 {
		return fmt.Errorf("sat: negative variable count %d", cnf.NumVars)
	}
	for ci, clause := range cnf.Clauses {
		for _, lit := range clause {
			if lit == 0 {
				return fmt.Errorf("sat: clause %d contains a zero literal", ci)
			}
			v := lit
			if v < 0 {
				v = -v
			}
			if v > cnf.NumVars {
				return fmt.Errorf("sat: clause %d references undeclared variable %d", ci, v)
			}
		}
	}
	return nil
}
