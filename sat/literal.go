package sat

import "fmt"

// Literal represents a signed reference to a boolean variable: a positive
// literal asserts the variable true, its opposite asserts it false.
//
// Literals are represented as small non-negative integers so they can index
// directly into assignment and watchlist arrays: variable v's positive
// literal is 2v, its negative literal is 2v+1.
type Literal int

// PositiveLiteral returns the literal asserting variable v true.
func PositiveLiteral(v int) Literal {
	return Literal(v * 2)
}

// NegativeLiteral returns the literal asserting variable v false.
func NegativeLiteral(v int) Literal {
	return Literal(v*2 + 1)
}

// VarID returns the ID of the literal's variable.
func (l Literal) VarID() int {
	return int(l) / 2
}

// IsPositive returns true if and only if the literal asserts its variable
// true (i.e. is not a negation).
func (l Literal) IsPositive() bool {
	return l&1 == 0
}

// Opposite returns the negation of the literal.
func (l Literal) Opposite() Literal {
	return l ^ 1
}

// FromSigned converts a DIMACS-style nonzero signed integer (positive asserts
// the variable (1-indexed) true, negative asserts it false) into a Literal.
// It panics if given 0.
func FromSigned(x int) Literal {
	if x == 0 {
		panic("sat: literal 0 is not valid")
	}
	if x < 0 {
		return NegativeLiteral(-x - 1)
	}
	return PositiveLiteral(x - 1)
}

func (l Literal) String() string {
	if l.IsPositive() {
		return fmt.Sprintf("%d", l.VarID())
	}
	return fmt.Sprintf("!%d", l.VarID())
}
