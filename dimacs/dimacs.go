// Package dimacs reads the DIMACS CNF file format into a sat.Solver.
package dimacs

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"

	"github.com/opencdcl/cdclsat/sat"
	extdimacs "github.com/rhartert/dimacs"
)

// solver is the subset of sat.Solver's API a DIMACS load needs.
type solver interface {
	AddVariable() int
	AddClause([]sat.Literal) error
}

func open(filename string, gzipped bool) (io.ReadCloser, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	rc := io.ReadCloser(file)
	if gzipped {
		rc, err = gzip.NewReader(rc)
		if err != nil {
			file.Close()
			return nil, err
		}
	}
	return rc, nil
}

// Load parses the DIMACS CNF file at filename, declaring its variables and
// clauses on s. It returns an error for anything other than a "cnf" problem
// line, a missing header, or an unreadable file.
func Load(filename string, gzipped bool, s solver) error {
	r, err := open(filename, gzipped)
	if err != nil {
		return fmt.Errorf("dimacs: error reading file %q: %w", filename, err)
	}
	defer r.Close()

	b := &builder{solver: s}
	if err := extdimacs.ReadBuilder(r, b); err != nil {
		return fmt.Errorf("dimacs: %w", err)
	}
	return nil
}

// builder adapts a solver to extdimacs.Builder.
type builder struct {
	solver solver
}

func (b *builder) Problem(problem string, nVars int, nClauses int) error {
	if problem != "cnf" {
		return fmt.Errorf("dimacs: instance of type %q is not supported", problem)
	}
	for i := 0; i < nVars; i++ {
		b.solver.AddVariable()
	}
	return nil
}

func (b *builder) Clause(tmp []int) error {
	clause := make([]sat.Literal, len(tmp))
	for i, l := range tmp {
		clause[i] = sat.FromSigned(l)
	}
	return b.solver.AddClause(clause)
}

func (b *builder) Comment(_ string) error {
	return nil
}
