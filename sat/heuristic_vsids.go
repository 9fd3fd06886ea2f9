package sat

import (
	"log"

	"github.com/rhartert/yagh"
)

// vsidsHeuristic is Variable State Independent Decaying Sum: the branching
// variable is the unassigned variable with the highest activity, and its
// polarity follows the phase it last held, negative until a first
// assignment has been recorded.
type vsidsHeuristic struct {
	heap *yagh.IntMap[float64]

	scores     []float64
	scoreInc   float64
	scoreDecay float64

	phases      []LBool
	phaseSaving bool
}

func newVSIDSHeuristic(decay float64, phaseSaving bool) *vsidsHeuristic {
	return &vsidsHeuristic{
		heap:        yagh.New[float64](0),
		scoreInc:    1,
		scoreDecay:  decay,
		phaseSaving: phaseSaving,
	}
}

func (h *vsidsHeuristic) AddVariable() {
	v := len(h.phases)
	h.scores = append(h.scores, 0)
	h.phases = append(h.phases, LFalse)
	h.heap.GrowBy(1)
	h.heap.Put(v, 0)
}

func (h *vsidsHeuristic) Pick(s *Solver) Literal {
	for {
		next, ok := h.heap.Pop()
		if !ok {
			log.Fatalln("sat: VSIDS heap exhausted with an unassigned variable remaining")
		}
		if s.assign.VarValue(next.Elem) != LUnknown {
			continue
		}
		if h.phases[next.Elem] == LTrue {
			return PositiveLiteral(next.Elem)
		}
		return NegativeLiteral(next.Elem)
	}
}

func (h *vsidsHeuristic) OnAssign(v int, val LBool) {
	if h.phaseSaving {
		h.phases[v] = val
	}
}

// OnUnassign reinserts v into the heap so it can be picked again, recording
// its last phase when phase saving is enabled.
func (h *vsidsHeuristic) OnUnassign(v int, val LBool) {
	if h.phaseSaving {
		h.phases[v] = val
	}
	h.heap.Put(v, -h.scores[v])
}

func (h *vsidsHeuristic) OnLearnt(v int) {
	h.scores[v] += h.scoreInc
	if h.heap.Contains(v) {
		h.heap.Put(v, -h.scores[v])
	}
	if h.scores[v] > maxActivity {
		h.rescale()
	}
}

func (h *vsidsHeuristic) DecayActivity() {
	h.scoreInc /= h.scoreDecay
	if h.scoreInc > maxActivity {
		h.rescale()
	}
}

func (h *vsidsHeuristic) rescale() {
	h.scoreInc *= 1e-100
	for v, sc := range h.scores {
		newScore := sc * 1e-100
		h.scores[v] = newScore
		if h.heap.Contains(v) {
			h.heap.Put(v, -newScore)
		}
	}
}
