package sat

// ReasonKind distinguishes why a literal was assigned.
type ReasonKind uint8

const (
	// ReasonDecision marks a free decision taken by the search engine.
	ReasonDecision ReasonKind = iota
	// ReasonGlobalUnit marks a literal derived from an input unit clause or
	// a learnt unit clause. Global units persist across every backjump,
	// including restarts.
	ReasonGlobalUnit
	// ReasonClause marks a literal forced by unit propagation over a
	// tracked clause.
	ReasonClause
)

// Reason records why an assignment-stack entry exists.
type Reason struct {
	Kind ReasonKind
	// Clause is only meaningful when Kind == ReasonClause.
	Clause ClauseRef
}

var decisionReason = Reason{Kind: ReasonDecision}
var globalUnitReason = Reason{Kind: ReasonGlobalUnit}

func clauseReason(ref ClauseRef) Reason {
	return Reason{Kind: ReasonClause, Clause: ref}
}
