package formula

import "github.com/opencdcl/cdclsat/sat"

// ImplicationFree rewrites every A -> B into !A | B.
func ImplicationFree(n *Node) *Node {
	if n == nil {
		return nil
	}
	switch n.Kind {
	case KindLetter:
		return n
	case KindImplies:
		l := ImplicationFree(n.Left)
		r := ImplicationFree(n.Right)
		return Or(Not(l), r)
	default:
		return &Node{Kind: n.Kind, Letter: n.Letter, Left: ImplicationFree(n.Left), Right: ImplicationFree(n.Right)}
	}
}

// NNF pushes negations down to the letters of an implication-free formula,
// via double-negation elimination and De Morgan's laws.
func NNF(n *Node) *Node {
	if n == nil {
		return nil
	}
	if n.Kind == KindNot {
		if n.Left.Kind == KindLetter {
			return n
		}
		child := NNF(n.Left)
		switch child.Kind {
		case KindNot:
			return NNF(child.Left) // !!A = A
		case KindOr:
			return And(NNF(Not(child.Left)), NNF(Not(child.Right))) // !(A|B) = !A & !B
		case KindAnd:
			return Or(NNF(Not(child.Left)), NNF(Not(child.Right))) // !(A&B) = !A | !B
		default:
			return Not(child)
		}
	}
	return &Node{Kind: n.Kind, Letter: n.Letter, Left: NNF(n.Left), Right: NNF(n.Right)}
}

// tseitinizer replaces an And that appears underneath an Or with a fresh
// letter, recording the two Tseitin-style implication clauses (!X | B) and
// (!X | C) needed to keep the result equisatisfiable, rather than
// distributing And over Or (which is exponential).
type tseitinizer struct {
	nextLetter int
	tail       [][2]*Node // each entry is (!X | left), (!X | right)
}

func (t *tseitinizer) transform(n *Node, inOr bool) *Node {
	if n == nil {
		return nil
	}
	switch n.Kind {
	case KindLetter:
		return n
	case KindNot:
		// NNF guarantees Not only wraps a letter at this point.
		return n
	case KindOr:
		l := t.transform(n.Left, true)
		r := t.transform(n.Right, true)
		return Or(l, r)
	case KindAnd:
		l := t.transform(n.Left, inOr)
		r := t.transform(n.Right, inOr)
		if !inOr {
			return And(l, r)
		}
		x := Letter(t.nextLetter)
		t.nextLetter++
		t.tail = append(t.tail, [2]*Node{Or(Not(x), l), Or(Not(x), r)})
		return x
	default:
		panic("formula: unexpected node kind in Tseitin conversion")
	}
}

// TseitinCNF converts an NNF formula into an equisatisfiable formula whose
// top level is a conjunction of disjunctions of literals, introducing one
// fresh letter per And found beneath an Or. firstFreeLetter must be
// strictly greater than every letter id already used in n.
func TseitinCNF(n *Node, firstFreeLetter int) *Node {
	t := &tseitinizer{nextLetter: firstFreeLetter}
	root := t.transform(n, false)
	for _, pair := range t.tail {
		root = And(And(pair[0], pair[1]), root)
	}
	return root
}

// ToCNF converts a CNF-shaped Node (top level only And/Or/Not-of-letter/
// Letter) into a sat.CNF, collecting one clause per maximal Or-subtree and
// one literal per maximal Letter/Not-of-letter leaf of that subtree.
func ToCNF(n *Node, numVars int) sat.CNF {
	cnf := sat.CNF{NumVars: numVars}
	collectConjuncts(n, &cnf)
	return cnf
}

func collectConjuncts(n *Node, cnf *sat.CNF) {
	if n == nil {
		return
	}
	if n.Kind == KindAnd {
		collectConjuncts(n.Left, cnf)
		collectConjuncts(n.Right, cnf)
		return
	}
	cnf.Clauses = append(cnf.Clauses, collectDisjuncts(n, nil))
}

func collectDisjuncts(n *Node, clause []int) []int {
	switch n.Kind {
	case KindOr:
		clause = collectDisjuncts(n.Left, clause)
		clause = collectDisjuncts(n.Right, clause)
		return clause
	case KindLetter:
		return append(clause, n.Letter)
	case KindNot:
		return append(clause, -n.Left.Letter)
	default:
		panic("formula: node is not in CNF shape")
	}
}

// Normalize runs ImplicationFree, NNF, and TseitinCNF in sequence and
// returns the resulting equisatisfiable sat.CNF. Its NumVars is the largest
// letter in the result, which covers the original letters plus every Tseitin
// auxiliary introduced.
func Normalize(n *Node) sat.CNF {
	nnf := NNF(ImplicationFree(n))
	firstFree := MaxLetter(nnf) + 1
	cnfForm := TseitinCNF(nnf, firstFree)
	return ToCNF(cnfForm, MaxLetter(cnfForm))
}
