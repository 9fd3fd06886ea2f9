package sat

// watcher is a clause attached to one literal's watchlist.
type watcher struct {
	clause ClauseRef
	// guard is one of the clause's other literals. If it is currently true,
	// the clause is already satisfied and does not need to be visited,
	// saving the clause-memory touch.
	guard Literal
}

// watchlist maps literal to the set of clauses currently watching it.
type watchlist struct {
	lists   [][]watcher
	scratch []watcher
}

func newWatchlist() *watchlist {
	return &watchlist{}
}

// addVariable grows the watchlist to cover one more variable's two literals.
func (wl *watchlist) addVariable() {
	wl.lists = append(wl.lists, nil, nil)
}

// add registers clause ref to be visited when lit becomes false, with guard
// as the clause's "no need to propagate" shortcut literal.
func (wl *watchlist) add(ref ClauseRef, lit Literal, guard Literal) {
	wl.lists[lit] = append(wl.lists[lit], watcher{clause: ref, guard: guard})
}

// remove removes clause ref from lit's watchlist.
func (wl *watchlist) remove(ref ClauseRef, lit Literal) {
	list := wl.lists[lit]
	j := 0
	for i := range list {
		if list[i].clause != ref {
			list[j] = list[i]
			j++
		}
	}
	wl.lists[lit] = list[:j]
}

// Live returns lit's current watchlist without disturbing it. Callers must
// not retain or mutate the returned slice across any call that modifies
// lit's watchlist.
func (wl *watchlist) Live(lit Literal) []watcher {
	return wl.lists[lit]
}

// TakeSnapshot empties lit's watchlist into a scratch buffer and returns it.
// The propagation engine visits this snapshot while watches may be added
// back onto lit's (now empty) live list, so watch changes made during the
// visit never disturb the visit itself. The returned slice is only valid
// until the next call to TakeSnapshot.
func (wl *watchlist) TakeSnapshot(lit Literal) []watcher {
	wl.scratch = append(wl.scratch[:0], wl.lists[lit]...)
	wl.lists[lit] = wl.lists[lit][:0]
	return wl.scratch
}

// RestoreRemaining appends the given watchers back onto lit's live list,
// used when propagation stops early (a conflict was found) and the
// not-yet-visited tail of the snapshot must not be dropped.
func (wl *watchlist) RestoreRemaining(lit Literal, remaining []watcher) {
	wl.lists[lit] = append(wl.lists[lit], remaining...)
}
